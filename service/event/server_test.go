package event

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/QuangTung97/airsim-events/catalog"
	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type serverTest struct {
	service *IServiceMock
	mux     *runtime.ServeMux
}

func newServerTest(t *testing.T) *serverTest {
	service := &IServiceMock{}
	s := newServer(service, catalog.Default(), 1)
	s.now = func() time.Time { return newTime("2024-01-01T10:00:00Z") }

	mux := runtime.NewServeMux()
	assert.Equal(t, nil, s.Register(mux))

	return &serverTest{
		service: service,
		mux:     mux,
	}
}

func (st *serverTest) do(method string, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	st.mux.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	assert.Equal(t, nil, err)
	return result
}

func TestServer_CreateEvent(t *testing.T) {
	st := newServerTest(t)
	st.service.CreateFunc = func(
		ctx context.Context, worldID int64, eventID string, payload json.RawMessage,
	) (CreateResult, error) {
		return CreateResult{
			Instance:  model.EventInstance{ID: "id-1", WorldID: worldID, Seq: 3, EventID: eventID},
			Modifiers: []model.MetricModifier{},
			Mutations: []model.Mutation{},
		}, nil
	}

	w := st.do(http.MethodPost, "/v1/events",
		`{"eventId": "GLOBAL.MARKET.FUEL_SHOCK", "payload": {"factor": 1.5, "ttlHours": 24}}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	calls := st.service.CreateCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(1), calls[0].WorldID)
	assert.Equal(t, "GLOBAL.MARKET.FUEL_SHOCK", calls[0].EventID)
	assert.JSONEq(t, `{"factor": 1.5, "ttlHours": 24}`, string(calls[0].Payload))

	body := decodeBody(t, w)
	instance := body["instance"].(map[string]interface{})
	assert.Equal(t, float64(3), instance["seq"])
	assert.Equal(t, []interface{}{}, body["modifiers"])
}

func TestServer_CreateEvent__Validation_Error(t *testing.T) {
	st := newServerTest(t)
	st.service.CreateFunc = func(
		ctx context.Context, worldID int64, eventID string, payload json.RawMessage,
	) (CreateResult, error) {
		return CreateResult{}, apperr.NewValidationError("unknown eventId: NOT.REAL", apperr.Issue{
			Path: "eventId", Code: "unknown_event", Message: "unknown eventId: NOT.REAL",
		})
	}

	w := st.do(http.MethodPost, "/v1/events", `{"worldId": 2, "eventId": "NOT.REAL"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"error": true,
		"code": "VALIDATION_ERROR",
		"httpStatus": 400,
		"message": "unknown eventId: NOT.REAL",
		"issues": [{"path": "eventId", "code": "unknown_event", "message": "unknown eventId: NOT.REAL"}]
	}`, w.Body.String())
	assert.Equal(t, int64(2), st.service.CreateCalls()[0].WorldID)
}

func TestServer_CreateEvent__Malformed_Body(t *testing.T) {
	st := newServerTest(t)

	w := st.do(http.MethodPost, "/v1/events", `{"eventId": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
	assert.Equal(t, 0, len(st.service.CreateCalls()))
}

func TestServer_CreateEvent__Storage_Error_Hides_Details(t *testing.T) {
	st := newServerTest(t)
	st.service.CreateFunc = func(
		ctx context.Context, worldID int64, eventID string, payload json.RawMessage,
	) (CreateResult, error) {
		return CreateResult{}, apperr.Storage("create event", errors.New("dial tcp 10.0.0.1:3306"))
	}

	w := st.do(http.MethodPost, "/v1/events", `{"eventId": "GLOBAL.MARKET.FUEL_SHOCK"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "DB_ERROR", body["code"])
	assert.Equal(t, "something went wrong", body["message"])
}

func TestServer_ListEvents(t *testing.T) {
	st := newServerTest(t)
	st.service.ListFunc = func(ctx context.Context, worldID int64, afterSeq *int64, limit int) (ListResult, error) {
		return ListResult{Data: []model.EventInstance{}}, nil
	}

	w := st.do(http.MethodGet, "/v1/events?worldId=4&afterSeq=10&limit=500", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": [], "nextAfterSeq": null}`, w.Body.String())

	w = st.do(http.MethodGet, "/v1/events", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = st.do(http.MethodGet, "/v1/events?limit=0", "")
	assert.Equal(t, http.StatusOK, w.Code)

	calls := st.service.ListCalls()
	assert.Equal(t, 3, len(calls))

	assert.Equal(t, int64(4), calls[0].WorldID)
	assert.Equal(t, newInt64Ptr(10), calls[0].AfterSeq)
	assert.Equal(t, 500, calls[0].Limit)

	assert.Equal(t, int64(1), calls[1].WorldID)
	assert.Equal(t, (*int64)(nil), calls[1].AfterSeq)
	assert.Equal(t, 0, calls[1].Limit)

	assert.Equal(t, 1, calls[2].Limit)
}

func TestServer_ListEvents__Nothing_New_Keeps_Cursor(t *testing.T) {
	st := newServiceTest()
	st.eventRepo.ListEventsAfterFunc = func(
		ctx context.Context, worldID int64, afterSeq int64, limit int,
	) ([]model.EventInstance, error) {
		return nil, nil
	}

	mux := runtime.NewServeMux()
	assert.Equal(t, nil, newServer(st.service, catalog.Default(), 1).Register(mux))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/events?afterSeq=42", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": [], "nextAfterSeq": 42}`, w.Body.String())

	calls := st.eventRepo.ListEventsAfterCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(42), calls[0].AfterSeq)
}

func TestServer_ListEvents__Invalid_After_Seq(t *testing.T) {
	st := newServerTest(t)

	w := st.do(http.MethodGet, "/v1/events?afterSeq=abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	issues := decodeBody(t, w)["issues"].([]interface{})
	assert.Equal(t, "afterSeq", issues[0].(map[string]interface{})["path"])
	assert.Equal(t, 0, len(st.service.ListCalls()))
}

func TestServer_GetActiveMultiplier(t *testing.T) {
	st := newServerTest(t)
	st.service.GetActiveMultiplierFunc = func(
		ctx context.Context, worldID int64, metric model.MetricKey, target model.TargetKey, at time.Time,
	) (decimal.Decimal, error) {
		return newDecimal("1.8"), nil
	}

	w := st.do(http.MethodGet, "/v1/modifiers/multiplier?metric=fuelPrice", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"worldId": 1,
		"metric": "fuelPrice",
		"target": "world",
		"at": "2024-01-01T10:00:00Z",
		"multiplier": "1.8"
	}`, w.Body.String())

	calls := st.service.GetActiveMultiplierCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, newTime("2024-01-01T10:00:00Z"), calls[0].At)
}

func TestServer_EffectiveValue(t *testing.T) {
	st := newServerTest(t)
	st.service.EffectiveValueFunc = func(
		ctx context.Context, worldID int64, metric model.MetricKey,
		targets []model.TargetKey, base decimal.Decimal, at time.Time,
	) (decimal.Decimal, error) {
		return base.Mul(newDecimal("1.5")), nil
	}

	w := st.do(http.MethodGet,
		"/v1/metrics/effective?metric=demand&target=world&target=region:EU&base=200&at=2024-01-01T11:00:00Z", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "300", decodeBody(t, w)["value"])

	calls := st.service.EffectiveValueCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, []model.TargetKey{model.TargetWorld, model.RegionTarget("EU")}, calls[0].Targets)
	assert.Equal(t, newTime("2024-01-01T11:00:00Z"), calls[0].At)
}

func TestServer_EffectiveValue__Invalid_Base(t *testing.T) {
	st := newServerTest(t)

	w := st.do(http.MethodGet, "/v1/metrics/effective?metric=demand&target=world&base=lots", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, len(st.service.EffectiveValueCalls()))
}

func TestServer_Catalog(t *testing.T) {
	st := newServerTest(t)

	w := st.do(http.MethodGet, "/v1/catalog", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data": [
		{"id": "AIRLINE.REPUTATION_HIT"},
		{"id": "AIRPORT.RUNWAY_CLOSED"},
		{"id": "GLOBAL.MARKET.FUEL_SHOCK"}
	]}`, w.Body.String())

	w = st.do(http.MethodGet, "/v1/catalog/AIRPORT.RUNWAY_CLOSED", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": "AIRPORT.RUNWAY_CLOSED"}`, w.Body.String())

	w = st.do(http.MethodGet, "/v1/catalog/NOT.REAL", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
}
