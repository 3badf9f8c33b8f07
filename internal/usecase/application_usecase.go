package usecase

import (
	"context"

	"gia/internal/domain/entity"
)

// ApplicationUsecase defines work-with-us application operations.
type ApplicationUsecase interface {
	// Submit records an artist application from the caller with status pending.
	Submit(ctx context.Context, caller *entity.User, input *ApplicationInput) (*entity.Application, error)
}

// ApplicationInput defines the caller-supplied application fields.
type ApplicationInput struct {
	ArtistName      string   `json:"artistName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	ArtForm         string   `json:"artForm" validate:"required"`
	Region          string   `json:"region" validate:"required"`
	YearsOfPractice int      `json:"yearsOfPractice" validate:"gte=0"`
	Bio             string   `json:"bio" validate:"required"`
	Portfolio       []string `json:"portfolio"`
	MobileNumber    string   `json:"mobileNumber" validate:"required"`
}
