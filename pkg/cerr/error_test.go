package cerr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func serve(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	NewJSONResponseChiMiddleware()(h).ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_WritesResponseWithStatus(t *testing.T) {
	rec := serve(t, func(w http.ResponseWriter, r *http.Request) {
		SetJSONResponseWithStatus(r.Context(), http.StatusCreated, map[string]string{"status": "ready"})
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestMiddleware_WritesError(t *testing.T) {
	rec := serve(t, func(w http.ResponseWriter, r *http.Request) {
		SetNewJSONError(r.Context(), FailedPrecondition, "task is not ready (status: processing)", errSentinel)
	})

	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	var body HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FailedPrecondition", body.Code)
	assert.Equal(t, "task is not ready (status: processing)", body.Message)
}

func TestMiddleware_UnknownErrorIsHidden(t *testing.T) {
	rec := serve(t, func(w http.ResponseWriter, r *http.Request) {
		SetJSONError(r.Context(), errors.New("disk on fire"))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"Unknown","message":"unknown error"}`, rec.Body.String())
}

func TestError_UnwrapAndIsCode(t *testing.T) {
	err := fmt.Errorf("create: %w", NewError(NotFound, "task not found", errSentinel))

	assert.True(t, IsCode(err, NotFound))
	assert.False(t, IsCode(err, Internal))
	assert.ErrorIs(t, err, errSentinel)
	assert.Contains(t, err.Error(), "[NotFound] task not found: sentinel")
}

func TestError_StackOnlyForServerErrors(t *testing.T) {
	assert.NotEmpty(t, NewError(Internal, "server error", nil).Stack)
	assert.Empty(t, NewError(InvalidArgument, "bad", nil).Stack)
}

func TestCodeFromConnect(t *testing.T) {
	for c := Canceled; c <= Unauthenticated; c++ {
		got, ok := CodeFromConnect(c.ConnectCode())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := CodeFromConnect(connect.Code(99))
	assert.False(t, ok)
}
