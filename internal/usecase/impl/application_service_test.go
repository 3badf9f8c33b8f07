package impl

import (
	"context"
	"testing"

	"gia/internal/domain/entity"
	mockRepo "gia/internal/mocks/repository"
	"gia/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Submit_StatusPending(t *testing.T) {
	applicationRepo := mockRepo.NewMockApplicationRepository(t)
	svc := NewApplicationService(applicationRepo, newDiscardLogger())

	ctx := context.Background()
	caller := &entity.User{ID: "uid-1", Role: entity.RoleUser}

	applicationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Application")).
		Run(func(ctx context.Context, application *entity.Application) {
			assert.Equal(t, "pending", application.Status)
			assert.Equal(t, "uid-1", application.UserID)
		}).
		Return("app-1", nil)

	application, err := svc.Submit(ctx, caller, &usecase.ApplicationInput{
		ArtistName:      "Asha Rao",
		Email:           "asha@example.com",
		ArtForm:         "Madhubani",
		Region:          "Bihar",
		YearsOfPractice: 12,
		Bio:             "Third generation painter",
		MobileNumber:    "9999999999",
	})

	require.NoError(t, err)
	assert.Equal(t, "app-1", application.ID)
	assert.Equal(t, "pending", application.Status)
}
