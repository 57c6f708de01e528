package fuel

import (
	"net/http"

	"github.com/QuangTung97/airsim-events/pkg/gateway"
	"github.com/QuangTung97/airsim-events/repository"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.opentelemetry.io/otel"
)

// Server exposes fuel prices over HTTP on the gateway mux
type Server struct {
	service        IService
	defaultWorldID int64
}

// NewServer ...
func NewServer(
	provider repository.Provider, multipliers MultiplierSource, params Params, defaultWorldID int64,
) *Server {
	repo := repository.NewFuelPriceWrapper(repository.NewFuelPrice(),
		otel.GetTracerProvider().Tracer("fuel"), "repo::")
	return &Server{
		service:        NewService(provider, repo, multipliers, params),
		defaultWorldID: defaultWorldID,
	}
}

// Register adds the fuel routes to mux
func (s *Server) Register(mux *runtime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/fuel", s.getCurrentPrice); err != nil {
		return err
	}
	if err := mux.HandlePath(http.MethodPost, "/v1/fuel/generate", s.forceGenerate); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, "/v1/fuel/history", s.getHistory)
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

func (s *Server) getCurrentPrice(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	worldID, err := s.worldID(r)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	quote, err := s.service.GetCurrentPrice(r.Context(), worldID)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusOK, quote)
}

func (s *Server) forceGenerate(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	worldID, err := s.worldID(r)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	quote, err := s.service.ForceGenerate(r.Context(), worldID)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusCreated, quote)
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	worldID, err := s.worldID(r)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	hours, err := gateway.QueryInt64(r, "hours")
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}

	requested := DefaultHistoryHours
	if hours != nil {
		requested = int(*hours)
	}

	history, err := s.service.GetHistory(r.Context(), worldID, requested)
	if err != nil {
		gateway.WriteError(w, r, err)
		return
	}
	gateway.WriteJSON(w, http.StatusOK, history)
}
