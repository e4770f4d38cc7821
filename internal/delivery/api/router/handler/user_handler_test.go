package handler

import (
	"net/http"
	"testing"

	mockUC "clawdeck/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestUserHandler(t *testing.T) (*UserHandler, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)

	h := NewUserHandler(UserHandlerParams{
		UserUC:      userUC,
		BootstrapUC: mockUC.NewMockBootstrapUsecase(t),
		Logger:      newDiscardLogger(),
	})

	return h, userUC
}

func TestUserHandler_RequestPasswordReset(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	userUC.EXPECT().RequestPasswordReset(mock.Anything, "test@example.com").Return(nil)

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/password-reset", `{"email":"test@example.com"}`)

	require.NoError(t, h.RequestPasswordReset(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "密碼重設信件")
}

func TestUserHandler_RequestPasswordReset_InvalidEmail(t *testing.T) {
	h, userUC := newTestUserHandler(t)

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/password-reset", `{"email":"not-an-email"}`)

	require.NoError(t, h.RequestPasswordReset(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	userUC.AssertNotCalled(t, "RequestPasswordReset", mock.Anything, mock.Anything)
}
