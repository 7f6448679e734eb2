package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status  int
		message string
		code    ErrorCode
		want    string
	}{
		{http.StatusBadRequest, "name is required", ErrCodeValidation, "name is required"},
		{http.StatusUnprocessableEntity, "", ErrCodeValidation, "The request was rejected."},
		{http.StatusUnauthorized, "", ErrCodeUnauthorized, "Your session has expired. Please sign in again."},
		{http.StatusForbidden, "admins only", ErrCodeForbidden, "admins only"},
		{http.StatusNotFound, "Salon not found", ErrCodeNotFound, "Salon not found"},
		{http.StatusConflict, "", ErrCodeConflict, "This value already exists."},
		{http.StatusGatewayTimeout, "", ErrCodeTimeout, "Request timed out. Please try again."},
		{http.StatusInternalServerError, "  ", ErrCodeUpstream, "The salon service is unavailable. Please try again."},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := FromStatus(tt.status, tt.message, nil)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.want, err.Message)
		})
	}
}

func TestMapTransportError(t *testing.T) {
	assert.NoError(t, MapTransportError(nil))
	assert.True(t, IsTimeout(MapTransportError(fmt.Errorf("get: %w", context.DeadlineExceeded))))
	assert.True(t, IsCanceled(MapTransportError(context.Canceled)))
	assert.True(t, IsUpstream(MapTransportError(errors.New("dial tcp: refused"))))

	nf := NotFound("gone")
	assert.Same(t, nf, MapTransportError(nf))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("x")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthorized("x")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Upstream("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{}
	require.NoError(t, fe.Err())

	fe.Required("name", "  ", "Name")
	fe.Required("city", "Paris", "City")
	fe.Add("name", "second message ignored")

	err := fe.Err()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Name is required", err.(*AppError).Message)

	got := Fields(err)
	assert.Equal(t, FieldErrors{"name": "Name is required"}, got)

	fe.Add("street", "Street is required")
	assert.Equal(t, "Please fix the highlighted fields.", fe.Err().(*AppError).Message)
	assert.Equal(t, "name: Name is required; street: Street is required", fe.Error())
}

func TestFields_SingleFieldAppError(t *testing.T) {
	assert.Equal(t, FieldErrors{"email": "bad"}, Fields(ValidationField("email", "bad")))
	assert.Nil(t, Fields(errors.New("plain")))
}
