package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeQuantityLimit        = "QUANTITY_LIMIT_EXCEEDED"
	ErrCodeEmptyOrder           = "EMPTY_ORDER"
	ErrCodeInvalidStatus        = "INVALID_STATUS"
	ErrCodeInvalidPaymentOption = "INVALID_PAYMENT_OPTION"
	ErrCodeTransitionNotAllowed = "TRANSITION_NOT_ALLOWED"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodePersistence          = "PERSISTENCE_ERROR"
	ErrCodeNetwork              = "NETWORK_ERROR"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError carries a machine-readable code alongside a human message so
// handlers can map business failures to HTTP statuses without string matching.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrQuantityLimit        = NewDomainError(ErrCodeQuantityLimit, "Quantity exceeds the per-item limit")
	ErrEmptyOrder           = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrInvalidPaymentOption = NewDomainError(ErrCodeInvalidPaymentOption, "Payment option must be cod or full")
	ErrTransitionNotAllowed = NewDomainError(ErrCodeTransitionNotAllowed, "Order status transition not allowed")
)
