package handler

import (
	"net/http"
	"testing"

	"clawdeck/internal/domain/entity"
	domainerrors "clawdeck/internal/domain/errors"
	mockUC "clawdeck/internal/mocks/usecase"
	"clawdeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBillingHandler(t *testing.T) (*BillingHandler, *mockUC.MockBillingUsecase) {
	billingUC := mockUC.NewMockBillingUsecase(t)

	h := NewBillingHandler(BillingHandlerParams{
		BillingUC: billingUC,
		Logger:    newDiscardLogger(),
	})

	return h, billingUC
}

func TestBillingHandler_GetOverview(t *testing.T) {
	h, billingUC := newTestBillingHandler(t)
	userID := uuid.New()

	billingUC.EXPECT().
		GetOverview(mock.Anything, userID).
		Return(&usecase.BillingOverview{
			Account: &entity.BillingAccount{UserID: userID, Balance: 128.5, CurrentPlan: "pro"},
			Plans:   []*entity.Plan{{ID: "pro", Name: "專業版", Price: 299}},
		}, nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/billing/overview", "")
	authenticate(c, userID)

	require.NoError(t, h.GetOverview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":128.5`)
	assert.Contains(t, rec.Body.String(), "專業版")
}

func TestBillingHandler_Recharge(t *testing.T) {
	h, billingUC := newTestBillingHandler(t)
	userID := uuid.New()

	billingUC.EXPECT().
		Recharge(mock.Anything, userID, usecase.RechargeInput{Amount: 100}).
		Return(&entity.BillingAccount{UserID: userID, Balance: 228.5, CurrentPlan: "pro"}, nil)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/billing/recharge", `{"amount":100}`)
	authenticate(c, userID)

	require.NoError(t, h.Recharge(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":228.5`)
}

func TestBillingHandler_Recharge_NonPositiveAmount(t *testing.T) {
	h, billingUC := newTestBillingHandler(t)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/billing/recharge", `{"amount":-50}`)
	authenticate(c, uuid.New())

	require.NoError(t, h.Recharge(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	billingUC.AssertNotCalled(t, "Recharge", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingHandler_ChangePlan_UnknownPlan(t *testing.T) {
	h, billingUC := newTestBillingHandler(t)
	userID := uuid.New()

	billingUC.EXPECT().ChangePlan(mock.Anything, userID, "platinum").Return(nil, domainerrors.ErrPlanNotFound)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/v1/billing/plan", `{"plan_id":"platinum"}`)
	authenticate(c, userID)

	require.NoError(t, h.ChangePlan(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PLAN_NOT_FOUND")
}

func TestBillingHandler_SaveAlertSetting(t *testing.T) {
	h, billingUC := newTestBillingHandler(t)
	userID := uuid.New()

	billingUC.EXPECT().
		SaveAlertSetting(mock.Anything, userID, usecase.AlertSettingInput{
			BalanceThreshold: 20,
			UsageThreshold:   80,
			NotifyEmail:      true,
			NotifyInApp:      true,
		}).
		Return(&entity.AlertSetting{
			UserID:           userID,
			BalanceThreshold: 20,
			UsageThreshold:   80,
			NotifyEmail:      true,
			NotifyInApp:      true,
		}, nil)

	body := `{"balance_threshold":20,"usage_threshold":80,"notify_email":true,"notify_in_app":true}`
	c, rec := newHandlerContext(t, http.MethodPut, "/api/v1/billing/alerts", body)
	authenticate(c, userID)

	require.NoError(t, h.SaveAlertSetting(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance_threshold":20`)
}

func TestBillingHandler_ExportTransactions(t *testing.T) {
	h, billingUC := newTestBillingHandler(t)
	userID := uuid.New()

	csv := "occurred_at,type,amount,balance\n2026-08-01T00:00:00Z,recharge,100,228.5\n"
	billingUC.EXPECT().ExportTransactionsCSV(mock.Anything, userID).Return([]byte(csv), nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/v1/billing/transactions/export", "")
	authenticate(c, userID)

	require.NoError(t, h.ExportTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.Equal(t, csv, rec.Body.String())
}
