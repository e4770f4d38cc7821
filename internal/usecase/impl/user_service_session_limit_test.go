package impl

import (
	"context"
	"testing"
	"time"

	"clawdeck/config"
	"clawdeck/internal/domain/entity"
	mockRepo "clawdeck/internal/mocks/repository"
	mockSvc "clawdeck/internal/mocks/service"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createSessionLimitedUserService(t *testing.T, maxSessions int) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	snapshots := NewSnapshots()

	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{BcryptCost: 12, MaxActiveSessions: maxSessions}

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		SettingsRepo: settingsRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Snapshots:    snapshots,
		Config:       cfg,
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

func expectSuccessfulCredentialCheck(ctx context.Context, fx userServiceFixtures, userID uuid.UUID, input usecase.LoginInput) {
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
		Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: input.Email}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.authRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.settingsRepo.EXPECT().ClearCurrentLoginRecords(ctx, userID).Return(nil)
	fx.settingsRepo.EXPECT().
		CreateLoginRecord(ctx, mock.AnythingOfType("*entity.LoginRecord")).
		Return(nil)
}

func TestUserService_Login_SessionLimitReached(t *testing.T) {
	fx := createSessionLimitedUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{Email: "test@example.com", Password: "Password123"}

	expectSuccessfulCredentialCheck(ctx, fx, userID, input)
	fx.authRepo.EXPECT().CountRefreshTokensByUserID(ctx, userID).Return(3, nil)
	// At the cap, all existing sessions are revoked before the new one opens.
	fx.authRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Login_BelowSessionLimit(t *testing.T) {
	fx := createSessionLimitedUserService(t, 3)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{Email: "test@example.com", Password: "Password123"}

	expectSuccessfulCredentialCheck(ctx, fx, userID, input)
	fx.authRepo.EXPECT().CountRefreshTokensByUserID(ctx, userID).Return(1, nil)

	_, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	fx.authRepo.AssertNotCalled(t, "DeleteRefreshTokensByUserID", mock.Anything, mock.Anything)
}

func TestUserService_Login_NoSessionLimitConfigured(t *testing.T) {
	fx := createSessionLimitedUserService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.LoginInput{Email: "test@example.com", Password: "Password123"}

	expectSuccessfulCredentialCheck(ctx, fx, userID, input)

	_, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	fx.authRepo.AssertNotCalled(t, "CountRefreshTokensByUserID", mock.Anything, mock.Anything)
}
