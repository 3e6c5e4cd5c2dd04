package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON    = "INVALID_JSON"
	ErrCodeMissingField   = "MISSING_FIELD"
	ErrCodeInvalidEmail   = "INVALID_EMAIL"
	ErrCodeDuplicateEmail = "DUPLICATE_EMAIL"
	ErrCodeInvalidRating  = "INVALID_RATING"
	ErrCodeInvalidItems   = "INVALID_ITEMS"
	ErrCodeOrderNotFound  = "ORDER_NOT_FOUND"
	ErrCodeMailDispatch   = "MAIL_DISPATCH_FAILED"
	ErrCodeUnauthorised   = "UNAUTHORIZED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside the human-readable message
// surfaced in the response envelope.
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
	ErrInvalidEmail      = NewDomainError(ErrCodeInvalidEmail, "Valid email address is required")
	ErrAlreadySubscribed = NewDomainError(ErrCodeDuplicateEmail, "Email already subscribed to newsletter")
	ErrInvalidRating     = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidItems, "Item quantity must be greater than zero")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrMailDispatch      = NewDomainError(ErrCodeMailDispatch, "Failed to send message")
)
