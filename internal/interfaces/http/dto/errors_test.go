package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeInvalidPeriod))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeDuplicatePeriod))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeDuplicateInvoiceNumber))
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
	})

	t.Run("defaults unknown codes to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
	})
}

func TestResponses(t *testing.T) {
	t.Run("success response has no error", func(t *testing.T) {
		r := NewSuccessResponse("ok")
		assert.True(t, r.Success)
		assert.Nil(t, r.Error)
	})

	t.Run("error response carries code and request id", func(t *testing.T) {
		r := NewErrorResponse(ErrCodeInvalidAmount, "Amount is not valid", "req-1")
		assert.False(t, r.Success)
		assert.Equal(t, ErrCodeInvalidAmount, r.Error.Code)
		assert.Equal(t, "req-1", r.Error.RequestID)
	})
}
