package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound               = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists          = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput           = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidPeriod          = NewDomainError("INVALID_PERIOD", "Period is not a valid year/quarter")
	ErrDuplicatePeriod        = NewDomainError("DUPLICATE_PERIOD", "An advance payment is already registered for this period")
	ErrInvalidAmount          = NewDomainError("INVALID_AMOUNT", "Amount fails domain validation")
	ErrDuplicateInvoiceNumber = NewDomainError("DUPLICATE_INVOICE_NUMBER", "An invoice with this number already exists")
)
