package event

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/QuangTung97/airsim-events/catalog"
	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/QuangTung97/airsim-events/pkg/gateway"
	"github.com/QuangTung97/airsim-events/repository"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
)

// Server exposes the event engine over HTTP on the gateway mux
type Server struct {
	service IService
	catalog *catalog.Catalog

	defaultWorldID int64
	now            func() time.Time
}

// NewServer ...
func NewServer(
	provider repository.Provider, eventCatalog *catalog.Catalog, defaultWorldID int64, options ...Option,
) *Server {
	tracer := otel.GetTracerProvider().Tracer("event")

	eventRepo := repository.NewEventWrapper(repository.NewEvent(), tracer, "repo::")
	modifierRepo := repository.NewModifierWrapper(repository.NewModifier(), tracer, "repo::")

	s := NewService(provider, eventRepo, modifierRepo, eventCatalog, options...)
	return newServer(NewIServiceWrapper(s, tracer, "service::"), eventCatalog, defaultWorldID)
}

func newServer(service IService, eventCatalog *catalog.Catalog, defaultWorldID int64) *Server {
	return &Server{
		service: service,
		catalog: eventCatalog,

		defaultWorldID: defaultWorldID,
		now:            time.Now,
	}
}

// Service returns the traced event service
func (s *Server) Service() IService {
	return s.service
}

// Register adds the event routes to mux
func (s *Server) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodPost, "/v1/events", s.createEvent},
		{http.MethodGet, "/v1/events", s.listEvents},
		{http.MethodGet, "/v1/modifiers/multiplier", s.getActiveMultiplier},
		{http.MethodGet, "/v1/metrics/effective", s.effectiveValue},
		{http.MethodGet, "/v1/catalog", s.listCatalog},
		{http.MethodGet, "/v1/catalog/{event_id}", s.getCatalogEntry},
	}
	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) worldID(r *http.Request) (int64, error) {
	id, err := gateway.QueryInt64(r, "worldId")
	if err != nil {
		return 0, err
	}
	if id == nil {
		return s.defaultWorldID, nil
	}
	return *id, nil
}

type createEventRequest struct {
	WorldID int64           `json:"worldId"`
	EventID string          `json:"eventId"`
	Payload json.RawMessage `json:"payload"`
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req createEventRequest
	if err := gateway.DecodeJSON(r, &req); err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	if req.WorldID == 0 {
		req.WorldID = s.defaultWorldID
	}

	result, err := s.service.Create(r.Context(), req.WorldID, req.EventID, req.Payload)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusCreated, result)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	worldID, err := s.worldID(r)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	afterSeq, err := gateway.QueryInt64(r, "afterSeq")
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	limit, err := gateway.QueryInt64(r, "limit")
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}

	requested := 0
	if limit != nil {
		requested = int(*limit)
		if requested == 0 {
			requested = 1
		}
	}

	result, err := s.service.List(r.Context(), worldID, afterSeq, requested)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusOK, result)
}

type multiplierResponse struct {
	WorldID    int64           `json:"worldId"`
	Metric     model.MetricKey `json:"metric"`
	Target     model.TargetKey `json:"target"`
	At         time.Time       `json:"at"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (s *Server) getActiveMultiplier(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	worldID, err := s.worldID(r)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	at, err := gateway.QueryTime(r, "at", s.now().UTC())
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}

	query := r.URL.Query()
	metric := model.MetricKey(query.Get("metric"))
	target := model.TargetKey(query.Get("target"))
	if target == "" {
		target = model.TargetWorld
	}

	product, err := s.service.GetActiveMultiplier(r.Context(), worldID, metric, target, at)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusOK, multiplierResponse{
		WorldID:    worldID,
		Metric:     metric,
		Target:     target,
		At:         at,
		Multiplier: product,
	})
}

type effectiveValueResponse struct {
	WorldID int64             `json:"worldId"`
	Metric  model.MetricKey   `json:"metric"`
	Targets []model.TargetKey `json:"targets"`
	At      time.Time         `json:"at"`
	Base    decimal.Decimal   `json:"base"`
	Value   decimal.Decimal   `json:"value"`
}

func (s *Server) effectiveValue(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	worldID, err := s.worldID(r)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	at, err := gateway.QueryTime(r, "at", s.now().UTC())
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}

	query := r.URL.Query()
	base, err := decimal.NewFromString(query.Get("base"))
	if err != nil {
		gateway.WriteError(w, r, gateway.InvalidParam("base", "invalid_type", "expected decimal number"))
		return
	}

	metric := model.MetricKey(query.Get("metric"))
	targets := make([]model.TargetKey, 0, len(query["target"]))
	for _, t := range query["target"] {
		targets = append(targets, model.TargetKey(t))
	}

	value, err := s.service.EffectiveValue(r.Context(), worldID, metric, targets, base, at)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusOK, effectiveValueResponse{
		WorldID: worldID,
		Metric:  metric,
		Targets: targets,
		At:      at,
		Base:    base,
		Value:   value,
	})
}

type catalogEntryResponse struct {
	ID string `json:"id"`
}

func (s *Server) listCatalog(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	ids := s.catalog.IDs()
	entries := make([]catalogEntryResponse, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, catalogEntryResponse{ID: id})
	}
	gateway.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data": entries,
	})
}

func (s *Server) getCatalogEntry(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id := params["event_id"]
	spec, ok := s.catalog.Lookup(id)
	if !ok {
		gateway.WriteError(w, r, apperr.NewNotFoundError("event spec", id))
		return
	}
	gateway.WriteJSON(w, http.StatusOK, catalogEntryResponse{ID: spec.ID()})
}
