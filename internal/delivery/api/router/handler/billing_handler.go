package handler

import (
	"log/slog"
	"net/http"
	"time"

	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/response"
	"clawdeck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	BillingUC usecase.BillingUsecase
	Logger    *slog.Logger
}

// BillingHandler holds dependencies for balance and subscription handlers
type BillingHandler struct {
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		billingUC: params.BillingUC,
		logger:    params.Logger,
	}
}

// RechargeRequest represents the request body for a balance top-up
type RechargeRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// ChangePlanRequest represents the request body for a plan switch
type ChangePlanRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// AlertSettingRequest represents the full alert setting document
type AlertSettingRequest struct {
	BalanceThreshold float64 `json:"balance_threshold" validate:"gte=0"`
	UsageThreshold   int     `json:"usage_threshold" validate:"gte=0"`
	NotifyEmail      bool    `json:"notify_email"`
	NotifySMS        bool    `json:"notify_sms"`
	NotifyInApp      bool    `json:"notify_in_app"`
}

// GetOverview handles retrieving the billing account and plan catalog
func (h *BillingHandler) GetOverview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	overview, err := h.billingUC.GetOverview(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"account": overview.Account,
		"plans":   overview.Plans,
	})
}

// ListTransactions handles retrieving the user's ledger
func (h *BillingHandler) ListTransactions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	transactions, err := h.billingUC.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions)
}

// ListBills handles retrieving the user's monthly statements
func (h *BillingHandler) ListBills(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bills, err := h.billingUC.ListBills(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bills)
}

// ListPlans handles retrieving the subscription plan catalog
func (h *BillingHandler) ListPlans(c echo.Context) error {
	plans, err := h.billingUC.ListPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// Recharge handles crediting the user's balance
func (h *BillingHandler) Recharge(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RechargeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recharge input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.billingUC.Recharge(c.Request().Context(), userID, usecase.RechargeInput{Amount: req.Amount})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// ChangePlan handles switching the user's subscription plan
func (h *BillingHandler) ChangePlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ChangePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.billingUC.ChangePlan(c.Request().Context(), userID, req.PlanID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account)
}

// GetAlertSetting handles retrieving the user's alert thresholds
func (h *BillingHandler) GetAlertSetting(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	setting, err := h.billingUC.GetAlertSetting(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// SaveAlertSetting handles replacing the user's alert thresholds
func (h *BillingHandler) SaveAlertSetting(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AlertSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert setting input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	setting, err := h.billingUC.SaveAlertSetting(c.Request().Context(), userID, usecase.AlertSettingInput{
		BalanceThreshold: req.BalanceThreshold,
		UsageThreshold:   req.UsageThreshold,
		NotifyEmail:      req.NotifyEmail,
		NotifySMS:        req.NotifySMS,
		NotifyInApp:      req.NotifyInApp,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// ExportTransactions streams the user's ledger as a CSV attachment
func (h *BillingHandler) ExportTransactions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	data, err := h.billingUC.ExportTransactionsCSV(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := "transactions-" + time.Now().Format("20060102") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}
