package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	"clawdeck/internal/domain/repository"
	mockRepo "clawdeck/internal/mocks/repository"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingsServiceFixtures holds all test dependencies for settings service tests.
type settingsServiceFixtures struct {
	service      usecase.SettingsUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	snapshots    *Snapshots
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	snapshots := NewSnapshots()

	service := NewSettingsService(SettingsServiceParams{
		SettingsRepo: settingsRepo,
		Snapshots:    snapshots,
		Logger:       newDiscardLogger(),
	})

	return settingsServiceFixtures{
		service:      service,
		settingsRepo: settingsRepo,
		snapshots:    snapshots,
	}
}

func TestSettingsService_GetSettings_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, Language: "zh-TW", Timezone: "Asia/Taipei"}, nil)

	settings, err := fx.service.GetSettings(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "zh-TW", settings.Language)

	cached, ok := fx.snapshots.Settings.Get(userID)
	require.True(t, ok)
	assert.Equal(t, settings, cached)
}

func TestSettingsService_GetSettings_NotFound(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	_, err := fx.service.GetSettings(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrSettingsNotFound)
}

func TestSettingsService_UpdateSettings_PartialFields(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, Language: "zh-TW", Timezone: "Asia/Taipei", Theme: entity.ThemeSystem}, nil)
	fx.settingsRepo.EXPECT().
		UpdateUserSettingsFields(ctx, userID, mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id uuid.UUID, fields map[string]any) {
			assert.Equal(t, "dark", fields["theme"])
			assert.NotContains(t, fields, "language")
			assert.NotContains(t, fields, "timezone")
		}).
		Return(nil)

	theme := entity.ThemeDark
	settings, err := fx.service.UpdateSettings(ctx, userID, usecase.UpdateSettingsInput{Theme: &theme})

	require.NoError(t, err)
	assert.Equal(t, entity.ThemeDark, settings.Theme)
	assert.Equal(t, "zh-TW", settings.Language)
}

func TestSettingsService_UpdateSettings_EmailNotif(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(&entity.UserSettings{UserID: userID}, nil)
	fx.settingsRepo.EXPECT().
		UpdateUserSettingsFields(ctx, userID, mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id uuid.UUID, fields map[string]any) {
			raw, ok := fields["email_notif"].([]byte)
			require.True(t, ok)
			assert.Contains(t, string(raw), `"billing":true`)
		}).
		Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, userID, usecase.UpdateSettingsInput{
		EmailNotif: &entity.EmailNotifications{Billing: true, Security: true},
	})

	require.NoError(t, err)
	assert.True(t, settings.EmailNotif.Billing)
	assert.False(t, settings.EmailNotif.Updates)
}

func TestSettingsService_UpdateSettings_NoChanges(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, userID).
		Return(&entity.UserSettings{UserID: userID, Language: "zh-TW"}, nil)

	settings, err := fx.service.UpdateSettings(ctx, userID, usecase.UpdateSettingsInput{})

	require.NoError(t, err)
	assert.Equal(t, "zh-TW", settings.Language)
}

func TestSettingsService_CreateAPIKey_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		CreateAPIKey(ctx, mock.AnythingOfType("*entity.APIKey")).
		Run(func(ctx context.Context, key *entity.APIKey) {
			assert.Equal(t, userID, key.UserID)
			assert.True(t, strings.HasPrefix(key.Key, "cd_"))
			assert.Len(t, key.Key, len("cd_")+48)
		}).
		Return(nil)

	key, err := fx.service.CreateAPIKey(ctx, userID, usecase.CreateAPIKeyInput{Name: "CI 部署"})

	require.NoError(t, err)
	assert.Equal(t, "CI 部署", key.Name)
	assert.NotEmpty(t, key.Key)
}

func TestSettingsService_CreateAPIKey_KeysAreUnique(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		CreateAPIKey(ctx, mock.AnythingOfType("*entity.APIKey")).
		Return(nil).
		Times(2)

	first, err := fx.service.CreateAPIKey(ctx, userID, usecase.CreateAPIKeyInput{Name: "first"})
	require.NoError(t, err)
	second, err := fx.service.CreateAPIKey(ctx, userID, usecase.CreateAPIKeyInput{Name: "second"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
}

func TestSettingsService_CreateAPIKey_NameRequired(t *testing.T) {
	fx := createTestSettingsService(t)

	_, err := fx.service.CreateAPIKey(context.Background(), uuid.New(), usecase.CreateAPIKeyInput{Name: "  "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSettingsService_DeleteAPIKey_NotOwned(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	keyID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindAPIKeyByID(ctx, keyID).
		Return(&entity.APIKey{ID: keyID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteAPIKey(ctx, uuid.New(), keyID)

	assert.ErrorIs(t, err, domainerrors.ErrAPIKeyNotFound)
}

func TestSettingsService_DeleteAPIKey_Success(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()
	keyID := uuid.New()
	key := &entity.APIKey{ID: keyID, UserID: userID, Name: "CI 部署"}

	fx.snapshots.APIKeys.Put(userID, key)

	fx.settingsRepo.EXPECT().FindAPIKeyByID(ctx, keyID).Return(key, nil)
	fx.settingsRepo.EXPECT().DeleteAPIKey(ctx, keyID).Return(nil)

	err := fx.service.DeleteAPIKey(ctx, userID, keyID)

	require.NoError(t, err)
	_, ok := fx.snapshots.APIKeys.Get(userID, keyID.String())
	assert.False(t, ok)
}

func TestSettingsService_ListLoginHistory(t *testing.T) {
	fx := createTestSettingsService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().
		FindLoginRecordsByUser(ctx, userID).
		Return([]*entity.LoginRecord{
			{ID: uuid.New(), UserID: userID, IP: "203.0.113.7", Device: "Chrome / macOS", Location: "本機", Current: true, LoggedAt: time.Now()},
		}, nil)

	records, err := fx.service.ListLoginHistory(ctx, userID)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Current)
}
