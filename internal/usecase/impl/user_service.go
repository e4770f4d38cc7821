package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"
	"unicode"

	"clawdeck/config"
	deliverycontext "clawdeck/internal/delivery/context"
	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/domain/service"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordResetTokenTTL bounds how long a reset token stays redeemable.
const passwordResetTokenTTL = 30 * time.Minute

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	settingsRepo      repository.SettingsRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	snapshots         *Snapshots
	passwordStrength  *config.PasswordStrengthConfig
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	SettingsRepo repository.SettingsRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Snapshots    *Snapshots
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var strength *config.PasswordStrengthConfig
	var maxActiveSessions int
	if params.Config != nil {
		strength = params.Config.PasswordStrength
		if params.Config.Auth != nil {
			maxActiveSessions = params.Config.Auth.MaxActiveSessions
		}
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		settingsRepo:      params.SettingsRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		snapshots:         params.Snapshots,
		passwordStrength:  strength,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := validatePasswordStrength(srv.passwordStrength, input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		// 1. Reject the registration when the email is already taken.
		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// 2. Create the user record.
		newUser := &entity.User{
			ID:    uuid.New(),
			Email: input.Email,
			Name:  input.Name,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		// 3. Attach the email credential.
		auth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   passwordHash,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to create authentication")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies the credential, opens a session and records the login.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))
		return nil, domainerrors.ErrInvalidCredentials
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, auth.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// Logging in past the session cap signs the user out everywhere else.
	if srv.maxActiveSessions > 0 {
		count, err := srv.authRepo.CountRefreshTokensByUserID(ctx, loggedInUser.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count sessions")
		}
		if count >= int64(srv.maxActiveSessions) {
			srv.log(ctx).Info("Session limit reached, revoking existing sessions", slog.Any("userID", loggedInUser.ID))
			if err := srv.authRepo.DeleteRefreshTokensByUserID(ctx, loggedInUser.ID); err != nil {
				return nil, errors.Wrap(err, "failed to revoke sessions")
			}
		}
	}

	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    loggedInUser.ID,
		TokenHash: hashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.authRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	// Login history is best effort; a failed write never blocks the login.
	// The newest record is the current session, so earlier flags are cleared
	// before the new entry is written.
	if err := srv.settingsRepo.ClearCurrentLoginRecords(ctx, loggedInUser.ID); err != nil {
		srv.log(ctx).Warn("Failed to clear current login records", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))
	}
	record := &entity.LoginRecord{
		ID:       uuid.New(),
		UserID:   loggedInUser.ID,
		IP:       input.IP,
		Device:   input.Device,
		Location: resolveLocation(input.IP),
		Current:  true,
		LoggedAt: time.Now(),
	}
	if err := srv.settingsRepo.CreateLoginRecord(ctx, record); err != nil {
		srv.log(ctx).Warn("Failed to record login", slog.Any("userID", loggedInUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

// RefreshSession rotates a refresh token. The presented token must be a
// valid refresh JWT backed by a live session row; the old session is revoked
// before the new pair is handed out.
func (srv *userService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	session, err := srv.authRepo.FindRefreshTokenByHash(ctx, hashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	if time.Now().After(session.ExpiresAt) {
		if err := srv.authRepo.DeleteRefreshTokenByHash(ctx, session.TokenHash); err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
			srv.log(ctx).Warn("Failed to delete expired refresh token", slog.Any("error", err))
		}

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.authRepo.DeleteRefreshTokenByHash(ctx, session.TokenHash); err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return nil, errors.Wrap(err, "failed to revoke refresh token")
	}

	newSession := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashRefreshToken(newRefreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.authRepo.CreateRefreshToken(ctx, newSession); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// Logout revokes the session and discards the user's snapshots.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", userID))

	err := srv.authRepo.DeleteRefreshTokenByHash(ctx, hashRefreshToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))
		return errors.Wrap(err, "failed to delete refresh token")
	}

	// The session is over, so no login record is current anymore.
	if err := srv.settingsRepo.ClearCurrentLoginRecords(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to clear current login records", slog.Any("userID", userID), slog.Any("error", err))
	}

	srv.snapshots.ResetUser(userID)
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", userID))

	return nil
}

// RequestPasswordReset issues a fresh single-use reset token for the account
// behind email, revoking any earlier one. The raw token is handed to the
// notification pipeline out of band; unknown addresses succeed silently so
// the endpoint does not reveal which emails are registered.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")
			return nil
		}

		return errors.Wrap(err, "failed to find authentication")
	}

	raw, err := generateResetToken()
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset token", slog.Any("error", err))
		return errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.authRepo.DeletePasswordResetTokensByUserID(ctx, auth.UserID); err != nil {
		return errors.Wrap(err, "failed to revoke reset tokens")
	}

	token := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    auth.UserID,
		TokenHash: hashRefreshToken(raw),
		ExpiresAt: time.Now().Add(passwordResetTokenTTL),
	}
	if err := srv.authRepo.CreatePasswordResetToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to create reset token")
	}

	srv.log(ctx).Info("Password reset token issued", slog.Any("userID", auth.UserID))

	return nil
}

// GetProfile returns the user's basic account information.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the user's account information.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// hashRefreshToken derives the storage hash of a raw refresh token.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// generateResetToken produces the raw single-use password reset token.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}

// resolveLocation maps a client address to the coarse location label shown
// in the login history. Address lookup is not wired up yet, so private and
// loopback addresses get a label and everything else is unknown.
func resolveLocation(ip string) string {
	if ip == "127.0.0.1" || ip == "::1" {
		return "本機"
	}

	return "未知位置"
}

// validatePasswordStrength checks the password against the configured rules.
func validatePasswordStrength(cfg *config.PasswordStrengthConfig, password string) error {
	if cfg == nil {
		return nil
	}

	if cfg.MinLength > 0 && len(password) < cfg.MinLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too short")
	}
	if cfg.MaxLength > 0 && len(password) > cfg.MaxLength {
		return domainerrors.ErrValidationFailed.WrapMessage("password is too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if cfg.RequireUppercase && !hasUpper {
		return domainerrors.ErrValidationFailed.WrapMessage("password requires an uppercase letter")
	}
	if cfg.RequireLowercase && !hasLower {
		return domainerrors.ErrValidationFailed.WrapMessage("password requires a lowercase letter")
	}
	if cfg.RequireNumbers && !hasNumber {
		return domainerrors.ErrValidationFailed.WrapMessage("password requires a number")
	}
	if cfg.RequireSpecial && !hasSpecial {
		return domainerrors.ErrValidationFailed.WrapMessage("password requires a special character")
	}

	return nil
}
