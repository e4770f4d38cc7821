package impl

import (
	"context"
	"testing"
	"time"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/domain/service"
	mockRepo "clawdeck/internal/mocks/repository"
	mockSvc "clawdeck/internal/mocks/service"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	settingsRepo *mockRepo.MockSettingsRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	snapshots    *Snapshots
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	snapshots := NewSnapshots()

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		SettingsRepo: settingsRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Snapshots:    snapshots,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		settingsRepo: settingsRepo,
		hasher:       hasher,
		tokenService: tokenService,
		snapshots:    snapshots,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
					assert.Equal(t, input.Email, auth.ProviderUserID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Name, output.User.Name)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123",
		IP:       "203.0.113.7",
		Device:   "Chrome / macOS",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email, Name: "Test User"}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.NotEmpty(t, token.TokenHash)
			assert.NotEqual(t, "refresh-token", token.TokenHash)
		}).
		Return(nil)
	fx.settingsRepo.EXPECT().ClearCurrentLoginRecords(ctx, userID).Return(nil)
	fx.settingsRepo.EXPECT().
		CreateLoginRecord(ctx, mock.AnythingOfType("*entity.LoginRecord")).
		Run(func(ctx context.Context, record *entity.LoginRecord) {
			assert.Equal(t, input.IP, record.IP)
			assert.Equal(t, input.Device, record.Device)
			assert.True(t, record.Current)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "test@example.com", Password: "wrong"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_OnlyNewestRecordIsCurrent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123",
		IP:       "203.0.113.7",
		Device:   "Chrome / macOS",
	}

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil).
		Times(2)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true).Times(2)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil).
		Times(2)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil).Times(2)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour).Times(2)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil).
		Times(2)

	// In-memory stand-in for the login history table.
	history := []*entity.LoginRecord{}
	fx.settingsRepo.EXPECT().
		ClearCurrentLoginRecords(ctx, userID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) error {
			for _, record := range history {
				record.Current = false
			}
			return nil
		}).
		Times(2)
	fx.settingsRepo.EXPECT().
		CreateLoginRecord(ctx, mock.AnythingOfType("*entity.LoginRecord")).
		RunAndReturn(func(ctx context.Context, record *entity.LoginRecord) error {
			history = append(history, record)
			return nil
		}).
		Times(2)

	_, err := fx.service.Login(ctx, input)
	require.NoError(t, err)
	_, err = fx.service.Login(ctx, input)
	require.NoError(t, err)

	// Only the newest login carries the current-session flag.
	require.Len(t, history, 2)
	assert.False(t, history[0].Current)
	assert.True(t, history[1].Current)
}

func TestUserService_Logout_ResetsSnapshots(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Load something into the device snapshot first.
	generation := fx.snapshots.Devices.Begin(userID)
	fx.snapshots.Devices.Replace(userID, generation, []*entity.Device{{ID: uuid.New(), UserID: userID}})
	require.True(t, fx.snapshots.Devices.Loaded(userID))

	fx.authRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, hashRefreshToken("refresh-token")).
		Return(nil)
	fx.settingsRepo.EXPECT().ClearCurrentLoginRecords(ctx, userID).Return(nil)

	err := fx.service.Logout(ctx, userID, "refresh-token")

	require.NoError(t, err)
	assert.False(t, fx.snapshots.Devices.Loaded(userID))
}

func TestUserService_Logout_TokenAlreadyGone(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
		Return(repository.ErrTokenNotFound)
	fx.settingsRepo.EXPECT().ClearCurrentLoginRecords(ctx, userID).Return(nil)

	err := fx.service.Logout(ctx, userID, "stale-token")

	assert.NoError(t, err)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "test@example.com", Name: "Old Name"}, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "New Name", user.Name)
		}).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Name: strPtr("New Name")})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_RefreshSession_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.authRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("old-refresh")).
		Return(&entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: hashRefreshToken("old-refresh"),
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "test@example.com"}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.authRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, hashRefreshToken("old-refresh")).
		Return(nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, hashRefreshToken("new-refresh"), token.TokenHash)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)

	output, err := fx.service.RefreshSession(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshSession_AccessTokenRejected(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	_, err := fx.service.RefreshSession(ctx, "access-token")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	fx.authRepo.AssertNotCalled(t, "FindRefreshTokenByHash", mock.Anything, mock.Anything)
}

func TestUserService_RefreshSession_ExpiredSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.authRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("old-refresh")).
		Return(&entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: hashRefreshToken("old-refresh"),
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
	fx.authRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, hashRefreshToken("old-refresh")).
		Return(nil)

	_, err := fx.service.RefreshSession(ctx, "old-refresh")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything)
}

func TestUserService_RefreshSession_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("forged-refresh").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)
	fx.authRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashRefreshToken("forged-refresh")).
		Return(nil, repository.ErrTokenNotFound)

	_, err := fx.service.RefreshSession(ctx, "forged-refresh")

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RequestPasswordReset_IssuesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "test@example.com").
		Return(&entity.Authentication{UserID: userID}, nil)
	// A new request revokes whatever token was outstanding.
	fx.authRepo.EXPECT().DeletePasswordResetTokensByUserID(ctx, userID).Return(nil)
	fx.authRepo.EXPECT().
		CreatePasswordResetToken(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
		Run(func(ctx context.Context, token *entity.PasswordResetToken) {
			assert.Equal(t, userID, token.UserID)
			assert.Len(t, token.TokenHash, 64)
			assert.True(t, token.ExpiresAt.After(time.Now()))
		}).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, "test@example.com")

	require.NoError(t, err)
}

func TestUserService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	// Unknown addresses succeed without a write, so the endpoint does not
	// reveal which emails are registered.
	err := fx.service.RequestPasswordReset(ctx, "ghost@example.com")

	require.NoError(t, err)
	fx.authRepo.AssertNotCalled(t, "CreatePasswordResetToken", mock.Anything, mock.Anything)
}
