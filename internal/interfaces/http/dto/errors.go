package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
)

// Domain error codes, matching the codes carried by domain errors
const (
	// ErrCodeNotFound is used when a record is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate record
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidPeriod is used for malformed or out-of-range periods
	ErrCodeInvalidPeriod = "INVALID_PERIOD"
	// ErrCodeDuplicatePeriod is used when a period already has an advance payment
	ErrCodeDuplicatePeriod = "DUPLICATE_PERIOD"
	// ErrCodeInvalidAmount is used for negative or out-of-range amounts
	ErrCodeInvalidAmount = "INVALID_AMOUNT"
	// ErrCodeDuplicateInvoiceNumber is used when an invoice number is already taken
	ErrCodeDuplicateInvoiceNumber = "DUPLICATE_INVOICE_NUMBER"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeAlreadyExists:          http.StatusConflict,
	ErrCodeInvalidInput:           http.StatusBadRequest,
	ErrCodeInvalidPeriod:          http.StatusBadRequest,
	ErrCodeDuplicatePeriod:        http.StatusConflict,
	ErrCodeInvalidAmount:          http.StatusBadRequest,
	ErrCodeDuplicateInvoiceNumber: http.StatusConflict,

	"INVALID_INVOICE_NUMBER": http.StatusBadRequest,
	"INVALID_CLIENT":         http.StatusBadRequest,
	"INVALID_SUPPLIER":       http.StatusBadRequest,
	"INVALID_DATE":           http.StatusBadRequest,
	"INVALID_ACTIVITY":       http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
