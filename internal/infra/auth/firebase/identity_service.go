// Package firebase implements the identity gateway adapter over Firebase
// Auth. Provider errors are mapped onto the domain taxonomy here; nothing
// upstream-shaped leaks past this boundary. Calls are never retried because
// the provider does not guarantee idempotent account creation.
package firebase

import (
	"context"
	"time"

	"gia/config"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type identityService struct {
	client  *auth.Client
	timeout time.Duration
}

// NewIdentityService initializes the Firebase app and returns the identity
// gateway adapter.
func NewIdentityService(ctx context.Context, cfg *config.Config) (service.IdentityService, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase auth client")
	}

	return &identityService{
		client:  client,
		timeout: cfg.External.CallTimeout,
	}, nil
}

func (s *identityService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *identityService) VerifyToken(ctx context.Context, token string) (*service.IdentityClaims, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	decoded, err := s.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("token verification failed")
	}

	claims := &service.IdentityClaims{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		claims.Name = name
	}

	return claims, nil
}

func (s *identityService) CreateAccount(ctx context.Context, email, password, displayName string) (*service.IdentityAccount, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrConflict.WrapMessage("email already registered")
		}

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("identity creation failed")
	}

	return accountFromRecord(record), nil
}

func (s *identityService) GetAccount(ctx context.Context, uid string) (*service.IdentityAccount, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	record, err := s.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, domainerrors.ErrNotFound.WrapMessage("identity not found")
		}

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("identity lookup failed")
	}

	return accountFromRecord(record), nil
}

func (s *identityService) DeleteAccount(ctx context.Context, uid string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.DeleteUser(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return domainerrors.ErrNotFound.WrapMessage("identity not found")
		}

		return domainerrors.ErrUpstreamFailure.WrapMessage("identity deletion failed")
	}

	return nil
}

func (s *identityService) SetRoleClaims(ctx context.Context, uid string, claims map[string]any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return domainerrors.ErrUpstreamFailure.WrapMessage("failed to set role claims")
	}

	return nil
}

func accountFromRecord(record *auth.UserRecord) *service.IdentityAccount {
	return &service.IdentityAccount{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
	}
}
