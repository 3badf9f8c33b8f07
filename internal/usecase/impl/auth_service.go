// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	"gia/internal/domain/service"
	"gia/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identity service.IdentityService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	identity service.IdentityService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		identity: identity,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup registers the identity with the provider first, then writes the
// profile document under the new UID. A profile write failure leaves an
// identity without a profile; the next authenticated request provisions it
// lazily, so nothing is lost.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	account, err := srv.identity.CreateAccount(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	now := time.Now()
	user := &entity.User{
		ID:        account.UID,
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		srv.logger.Warn("profile write failed after identity creation, will provision lazily",
			"uid", account.UID, "error", err)
	}

	srv.logger.Info("user registered", "uid", account.UID)

	return &usecase.SignupOutput{
		Message: "User created successfully",
		UID:     account.UID,
	}, nil
}

// ResolveCaller turns a bearer token into a caller profile.
func (srv *authService) ResolveCaller(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.identity.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up caller profile")
	}

	return srv.provisionProfile(ctx, claims)
}

// provisionProfile creates the first profile record for an identity. Profile
// defaults come from the provider record, falling back to token claims when
// the provider lookup fails. The write is an upsert keyed by the UID, so a
// concurrent first request racing this one lands on the same document.
func (srv *authService) provisionProfile(ctx context.Context, claims *service.IdentityClaims) (*entity.User, error) {
	email, name := claims.Email, claims.Name

	if account, err := srv.identity.GetAccount(ctx, claims.UID); err == nil {
		email = account.Email
		if account.DisplayName != "" {
			name = account.DisplayName
		}
	} else {
		srv.logger.Warn("identity lookup failed during provisioning, using token claims",
			"uid", claims.UID, "error", err)
	}
	if name == "" {
		name = "User"
	}

	now := time.Now()
	user := &entity.User{
		ID:        claims.UID,
		Email:     email,
		Name:      name,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to provision caller profile")
	}

	srv.logger.Info("profile provisioned lazily", "uid", claims.UID)

	return user, nil
}

// GrantAdmin promotes the target profile to admin.
func (srv *authService) GrantAdmin(ctx context.Context, userID string) (*entity.User, error) {
	return srv.setRole(ctx, userID, entity.RoleAdmin)
}

// RevokeAdmin demotes the target profile back to a regular user.
func (srv *authService) RevokeAdmin(ctx context.Context, userID string) (*entity.User, error) {
	return srv.setRole(ctx, userID, entity.RoleUser)
}

func (srv *authService) setRole(ctx context.Context, userID string, role entity.Role) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	now := time.Now()
	if err := srv.userRepo.Update(ctx, userID, map[string]any{
		"role":      role,
		"updatedAt": now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to update role")
	}

	// Mirror the role into provider claims so future tokens carry it.
	if err := srv.identity.SetRoleClaims(ctx, userID, map[string]any{"role": role.String()}); err != nil {
		return nil, errors.Wrap(err, "failed to sync role claims")
	}

	srv.logger.Info("role changed", "uid", userID, "role", role)

	user.Role = role
	user.UpdatedAt = now

	return user, nil
}

// SearchUsers filters all profiles by an email/name substring.
func (srv *authService) SearchUsers(ctx context.Context, query string) ([]entity.User, error) {
	users, err := srv.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users, nil
	}

	matched := make([]entity.User, 0, len(users))
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Email), query) ||
			strings.Contains(strings.ToLower(user.Name), query) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}
