package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"clawdeck/internal/domain/entity"
	"clawdeck/internal/domain/repository"
	mockRepo "clawdeck/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAPIKeyMiddleware(t *testing.T) (*APIKeyMiddleware, *mockRepo.MockSettingsRepository) {
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	m := NewAPIKeyMiddleware(settingsRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return m, settingsRepo
}

func apiKeyContext(apiKey string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/gateway/v1/heartbeat", nil)
	if apiKey != "" {
		req.Header.Set(HeaderAPIKey, apiKey)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAPIKeyMiddleware_Authenticate(t *testing.T) {
	m, settingsRepo := newTestAPIKeyMiddleware(t)
	userID := uuid.New()
	key := &entity.APIKey{ID: uuid.New(), UserID: userID, Name: "生產環境", Key: "ck_live_abc123"}

	settingsRepo.EXPECT().FindAPIKeyByKey(mock.Anything, "ck_live_abc123").Return(key, nil)
	settingsRepo.EXPECT().TouchAPIKey(mock.Anything, key.ID).Return(nil)

	c, rec := apiKeyContext("ck_live_abc123")
	next := func(c echo.Context) error {
		resolved, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, resolved)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, settingsRepo := newTestAPIKeyMiddleware(t)

	c, rec := apiKeyContext("")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_API_KEY")
	settingsRepo.AssertNotCalled(t, "FindAPIKeyByKey", mock.Anything, mock.Anything)
}

func TestAPIKeyMiddleware_Authenticate_UnknownKey(t *testing.T) {
	m, settingsRepo := newTestAPIKeyMiddleware(t)

	settingsRepo.EXPECT().FindAPIKeyByKey(mock.Anything, "ck_live_revoked").Return(nil, repository.ErrAPIKeyNotFound)

	c, rec := apiKeyContext("ck_live_revoked")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_API_KEY")
}

func TestAPIKeyMiddleware_Authenticate_TouchFailureIsIgnored(t *testing.T) {
	m, settingsRepo := newTestAPIKeyMiddleware(t)
	key := &entity.APIKey{ID: uuid.New(), UserID: uuid.New(), Key: "ck_live_abc123"}

	settingsRepo.EXPECT().FindAPIKeyByKey(mock.Anything, "ck_live_abc123").Return(key, nil)
	settingsRepo.EXPECT().TouchAPIKey(mock.Anything, key.ID).Return(errors.New("deadlock"))

	c, rec := apiKeyContext("ck_live_abc123")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	// The last-used stamp is best effort and never blocks the request.
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
