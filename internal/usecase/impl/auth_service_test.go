package impl

import (
	"context"
	"testing"

	"gia/internal/domain/entity"
	domainerrors "gia/internal/domain/errors"
	"gia/internal/domain/repository"
	"gia/internal/domain/service"
	mockRepo "gia/internal/mocks/repository"
	mockService "gia/internal/mocks/service"
	"gia/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	identity *mockService.MockIdentityService
	userRepo *mockRepo.MockUserRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	identity := mockService.NewMockIdentityService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewAuthService(identity, userRepo, newDiscardLogger())

	return authServiceFixtures{
		service:  svc,
		identity: identity,
		userRepo: userRepo,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New User",
		Phone:    "9999999999",
	}

	fx.identity.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, input.Name).
		Return(&service.IdentityAccount{UID: "uid-1", Email: input.Email, DisplayName: input.Name}, nil)

	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "uid-1", user.ID)
			assert.Equal(t, entity.RoleUser, user.Role)
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", output.UID)
}

func TestAuthService_Signup_EmailConflict(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "taken@example.com",
		Password: "secret123",
		Name:     "Someone",
	}

	fx.identity.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, input.Name).
		Return(nil, domainerrors.ErrConflict.WrapMessage("email already registered"))

	_, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestAuthService_Signup_ProfileWriteFailureStillSucceeds(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New User",
	}

	fx.identity.EXPECT().
		CreateAccount(ctx, input.Email, input.Password, input.Name).
		Return(&service.IdentityAccount{UID: "uid-1"}, nil)

	// Lazy provisioning recovers a missing profile, so signup still reports
	// success when only the profile write fails.
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("store unavailable"))

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", output.UID)
}

func TestAuthService_ResolveCaller_ExistingProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: "uid-1", Email: "user@example.com", Name: "User", Role: entity.RoleArtist}

	fx.identity.EXPECT().
		VerifyToken(ctx, "valid-token").
		Return(&service.IdentityClaims{UID: "uid-1", Email: "user@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-1").
		Return(existing, nil)

	caller, err := fx.service.ResolveCaller(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, existing, caller)
}

func TestAuthService_ResolveCaller_LazyProvisioning(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		VerifyToken(ctx, "valid-token").
		Return(&service.IdentityClaims{UID: "uid-2", Email: "claims@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-2").
		Return(nil, repository.ErrUserNotFound)
	fx.identity.EXPECT().
		GetAccount(ctx, "uid-2").
		Return(&service.IdentityAccount{UID: "uid-2", Email: "account@example.com", DisplayName: "Account Name"}, nil)
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	caller, err := fx.service.ResolveCaller(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, "uid-2", caller.ID)
	assert.Equal(t, "account@example.com", caller.Email)
	assert.Equal(t, "Account Name", caller.Name)
	assert.Equal(t, entity.RoleUser, caller.Role)
}

func TestAuthService_ResolveCaller_ProvisioningFallsBackToClaims(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		VerifyToken(ctx, "valid-token").
		Return(&service.IdentityClaims{UID: "uid-3", Email: "claims@example.com"}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-3").
		Return(nil, repository.ErrUserNotFound)
	fx.identity.EXPECT().
		GetAccount(ctx, "uid-3").
		Return(nil, domainerrors.ErrNotFound)
	fx.userRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	caller, err := fx.service.ResolveCaller(ctx, "valid-token")

	require.NoError(t, err)
	assert.Equal(t, "claims@example.com", caller.Email)
	assert.Equal(t, "User", caller.Name)
}

func TestAuthService_ResolveCaller_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.identity.EXPECT().
		VerifyToken(ctx, "garbage").
		Return(nil, domainerrors.ErrUnauthenticated)

	_, err := fx.service.ResolveCaller(ctx, "garbage")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_GrantAdmin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	target := &entity.User{ID: "uid-4", Email: "target@example.com", Role: entity.RoleUser}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-4").
		Return(target, nil)
	fx.userRepo.EXPECT().
		Update(ctx, "uid-4", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, fields map[string]interface{}) {
			assert.Equal(t, entity.RoleAdmin, fields["role"])
		}).
		Return(nil)
	fx.identity.EXPECT().
		SetRoleClaims(ctx, "uid-4", map[string]interface{}{"role": "admin"}).
		Return(nil)

	user, err := fx.service.GrantAdmin(ctx, "uid-4")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAuthService_RevokeAdmin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	target := &entity.User{ID: "uid-5", Email: "target@example.com", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().
		FindByID(ctx, "uid-5").
		Return(target, nil)
	fx.userRepo.EXPECT().
		Update(ctx, "uid-5", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.identity.EXPECT().
		SetRoleClaims(ctx, "uid-5", map[string]interface{}{"role": "user"}).
		Return(nil)

	user, err := fx.service.RevokeAdmin(ctx, "uid-5")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestAuthService_GrantAdmin_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GrantAdmin(ctx, "missing")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAuthService_SearchUsers_FiltersByQuery(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	users := []entity.User{
		{ID: "a", Email: "alice@example.com", Name: "Alice"},
		{ID: "b", Email: "bob@example.com", Name: "Bob"},
		{ID: "c", Email: "carol@other.org", Name: "Carol Alicesson"},
	}

	fx.userRepo.EXPECT().
		List(ctx, 0, 0).
		Return(users, nil)

	matched, err := fx.service.SearchUsers(ctx, "ALICE")

	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "c", matched[1].ID)
}

func TestAuthService_SearchUsers_EmptyQueryReturnsAll(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	users := []entity.User{
		{ID: "a", Email: "alice@example.com"},
		{ID: "b", Email: "bob@example.com"},
	}

	fx.userRepo.EXPECT().
		List(ctx, 0, 0).
		Return(users, nil)

	matched, err := fx.service.SearchUsers(ctx, "   ")

	require.NoError(t, err)
	assert.Len(t, matched, 2)
}
