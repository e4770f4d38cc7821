package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"clawdeck/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newHandlerContext builds an Echo context with the request validator wired,
// the same way the API server configures it.
func newHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// authenticate stores the user ID the way the auth middleware does after a
// successful token validation.
func authenticate(c echo.Context, userID uuid.UUID) {
	c.Set("userID", userID)
}
