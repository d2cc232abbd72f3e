package dto

import (
	"net/http"
	"testing"

	"github.com/procure/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"ERR_NO_SUCH_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestCodeForKind(t *testing.T) {
	assert.Equal(t, ErrCodeInvalidInput, CodeForKind(shared.KindInvalidInput))
	assert.Equal(t, ErrCodeNotFound, CodeForKind(shared.KindNotFound))
	assert.Equal(t, ErrCodeUnknown, CodeForKind(shared.ErrorKind("SOMETHING_ELSE")))
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	resp := NewErrorResponseWithDetails(
		ErrCodeInvalidInput,
		"Invalid supplier ID.; Duplicate items found: 1.",
		[]string{"Invalid supplier ID.", "Duplicate items found: 1."},
		"req-123",
	)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]int{1, 2, 3}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
