package impl

import (
	"context"
	"log/slog"
	"time"

	"gia/internal/domain/entity"
	"gia/internal/domain/repository"
	"gia/internal/usecase"

	"github.com/pkg/errors"
)

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	applicationRepo repository.ApplicationRepository
	logger          *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	return &applicationService{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// Submit records the application with status pending. Review happens out of
// band; the submitter's role is not changed here.
func (srv *applicationService) Submit(ctx context.Context, caller *entity.User, input *usecase.ApplicationInput) (*entity.Application, error) {
	now := time.Now()
	application := &entity.Application{
		UserID:          caller.ID,
		ArtistName:      input.ArtistName,
		Email:           input.Email,
		ArtForm:         input.ArtForm,
		Region:          input.Region,
		YearsOfPractice: input.YearsOfPractice,
		Bio:             input.Bio,
		Portfolio:       input.Portfolio,
		MobileNumber:    input.MobileNumber,
		Status:          "pending",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := srv.applicationRepo.Create(ctx, application)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit application")
	}
	application.ID = id

	srv.logger.Info("application submitted", "applicationID", id, "userID", caller.ID)

	return application, nil
}
