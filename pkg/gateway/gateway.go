// Package gateway has the JSON helpers shared by the HTTP handlers
// registered on the grpc-gateway mux.
package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/QuangTung97/airsim-events/pkg/otellib"
	"go.uber.org/zap"
)

// WriteJSON ...
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError writes err as an apperr.Response, unexpected errors are logged
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	resp := apperr.ToResponse(err)
	if resp.HTTPStatus >= http.StatusInternalServerError {
		otellib.Extract(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path), zap.Error(err))
	}
	WriteJSON(w, resp.HTTPStatus, resp)
}

// DecodeJSON decodes the request body into dest
func DecodeJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperr.NewValidationError("invalid request body", apperr.Issue{
			Code:    "invalid_json",
			Message: err.Error(),
		})
	}
	return nil
}

// QueryInt64 parses an optional integer query param
func QueryInt64(r *http.Request, name string) (*int64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, InvalidParam(name, "invalid_type", "expected integer")
	}
	return &n, nil
}

// QueryTime parses an optional RFC3339 query param, returns def if absent
func QueryTime(r *http.Request, name string, def time.Time) (time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, InvalidParam(name, "invalid_date", "expected RFC3339 timestamp")
	}
	return t.UTC(), nil
}

// InvalidParam ...
func InvalidParam(name string, code string, msg string) error {
	return apperr.NewValidationError("invalid query parameter", apperr.Issue{
		Path:    name,
		Code:    code,
		Message: msg,
	})
}
