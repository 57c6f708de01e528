package gateway

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/events?afterSeq=12&limit=abc", nil)

	n, err := QueryInt64(r, "afterSeq")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(12), *n)

	n, err = QueryInt64(r, "worldId")
	assert.Equal(t, nil, err)
	assert.Nil(t, n)

	_, err = QueryInt64(r, "limit")
	assert.Equal(t, apperr.NewValidationError("invalid query parameter", apperr.Issue{
		Path:    "limit",
		Code:    "invalid_type",
		Message: "expected integer",
	}), err)
}

func TestQueryTime(t *testing.T) {
	def := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := httptest.NewRequest(http.MethodGet, "/x?at=2024-01-02T09:00:00%2B07:00&bad=yesterday", nil)

	at, err := QueryTime(r, "at", def)
	assert.Equal(t, nil, err)
	assert.Equal(t, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC), at)

	at, err = QueryTime(r, "missing", def)
	assert.Equal(t, nil, err)
	assert.Equal(t, def, at)

	_, err = QueryTime(r, "bad", def)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		EventID string `json:"eventId"`
	}

	r := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{"eventId": "A.B"}`))
	assert.Equal(t, nil, DecodeJSON(r, &body))
	assert.Equal(t, "A.B", body.EventID)

	r = httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{"eventId":`))
	err := DecodeJSON(r, &body)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestWriteError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/events", nil)

	w := httptest.NewRecorder()
	WriteError(w, r, apperr.NewNotFoundError("event spec", "X"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)

	w = httptest.NewRecorder()
	WriteError(w, r, apperr.Storage("list", errors.New("connection refused")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"DB_ERROR"`)
}
