package errors

import (
	"net/http"

	"clawdeck/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"無效或已過期的重新整理權杖",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該設備",
		"",
	)

	ErrDeviceMACInvalid = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_MAC_INVALID",
		"設備 MAC 位址格式不正確",
		"",
	)

	ErrDeviceMACConflict = NewBaseError(
		http.StatusConflict,
		"DEVICE_MAC_CONFLICT",
		"此 MAC 位址已被其他設備使用",
		"",
	)

	ErrDeviceOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"DEVICE_OWNERSHIP_VIOLATION",
		"您沒有權限存取此設備",
		"",
	)

	// Skill-related errors
	ErrSkillNotFound = NewBaseError(
		http.StatusNotFound,
		"SKILL_NOT_FOUND",
		"找不到該技能",
		"",
	)

	ErrSkillNotInstalled = NewBaseError(
		http.StatusNotFound,
		"SKILL_NOT_INSTALLED",
		"該設備尚未安裝此技能",
		"",
	)

	// Billing-related errors
	ErrBillingAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"BILLING_ACCOUNT_NOT_FOUND",
		"找不到帳務資料",
		"",
	)

	ErrRechargeAmountInvalid = NewBaseError(
		http.StatusBadRequest,
		"RECHARGE_AMOUNT_INVALID",
		"儲值金額必須大於零",
		"",
	)

	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"找不到該方案",
		"",
	)

	// Settings-related errors
	ErrSettingsNotFound = NewBaseError(
		http.StatusNotFound,
		"SETTINGS_NOT_FOUND",
		"找不到使用者設定",
		"",
	)

	ErrAPIKeyNotFound = NewBaseError(
		http.StatusNotFound,
		"API_KEY_NOT_FOUND",
		"找不到該 API 金鑰",
		"",
	)

	// Seeding-related errors
	ErrSeedIncomplete = NewBaseError(
		http.StatusInternalServerError,
		"SEED_INCOMPLETE",
		"初始化資料建立失敗",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
