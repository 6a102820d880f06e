package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without internal",
			err:  ErrBadRequest,
			want: "bad_request: Invalid request",
		},
		{
			name: "with internal",
			err:  ErrUpstream.WithInternal(errors.New("connection refused")),
			want: "upstream_error: Upstream service failed (connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_CopiesDoNotMutateSentinel(t *testing.T) {
	custom := ErrValidation.
		WithMessage("Please check your form inputs").
		WithDetails(map[string]any{"name": "too short"})

	assert.Equal(t, "Validation failed", ErrValidation.Message)
	assert.Nil(t, ErrValidation.Details)
	assert.Equal(t, "Please check your form inputs", custom.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, custom.HTTPStatus)
}

func TestError_IsAndUnwrap(t *testing.T) {
	root := errors.New("dial tcp: timeout")
	err := fmt.Errorf("forward: %w", ErrUpstream.WithInternal(root))

	assert.True(t, errors.Is(err, ErrUpstream))
	assert.True(t, errors.Is(err, root))
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestToHTTPError(t *testing.T) {
	status, body := ToHTTPError(ErrValidation.WithDetails(map[string]any{"email": "bad"}))
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	errBody := body["error"].(map[string]any)
	assert.Equal(t, "validation_error", errBody["code"])
	assert.Equal(t, map[string]any{"email": "bad"}, errBody["details"])

	status, body = ToHTTPError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, nil, ErrTooManyRequests)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "too_many_requests", resp["error"]["code"])
}

func TestNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}
