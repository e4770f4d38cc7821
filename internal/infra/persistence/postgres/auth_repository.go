// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	"clawdeck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication persists a new authentication method record.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("authentication method already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthentication retrieves an authentication method by provider and provider user ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&authM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	return toAuthenticationDomain(&authM), nil
}

// CreateRefreshToken persists a new refresh token record.
func (repo *authRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := fromRefreshTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByHash retrieves a refresh token record by its hash.
func (repo *authRepository) FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// DeleteRefreshTokenByHash deletes a refresh token by its hash.
func (repo *authRepository) DeleteRefreshTokenByHash(ctx context.Context, hash string) error {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", hash).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// CountRefreshTokensByUserID returns the number of live sessions a user has.
func (repo *authRepository) CountRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count refresh tokens")
	}

	return count, nil
}

// DeleteRefreshTokensByUserID removes all refresh tokens for a specific user.
func (repo *authRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete refresh tokens")
	}

	return nil
}

// CreatePasswordResetToken persists a new password reset token record.
func (repo *authRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromPasswordResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// DeletePasswordResetTokensByUserID revokes every outstanding reset token of a user.
func (repo *authRepository) DeletePasswordResetTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PasswordResetTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete password reset tokens")
	}

	return nil
}

// --- Mapper Functions ---

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
	}
}

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromPasswordResetTokenDomain(data *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
