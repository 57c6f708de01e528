package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/QuangTung97/airsim-events/catalog"
	"github.com/QuangTung97/airsim-events/engine"
	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/QuangTung97/airsim-events/pkg/otellib"
	"github.com/QuangTung97/airsim-events/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate moq -rm -out service_mocks.go . IService
//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Create(ctx context.Context, worldID int64, eventID string, payload json.RawMessage) (CreateResult, error)
	List(ctx context.Context, worldID int64, afterSeq *int64, limit int) (ListResult, error)
	GetActiveMultiplier(
		ctx context.Context, worldID int64, metric model.MetricKey, target model.TargetKey, at time.Time,
	) (decimal.Decimal, error)
	EffectiveValue(
		ctx context.Context, worldID int64, metric model.MetricKey,
		targets []model.TargetKey, base decimal.Decimal, at time.Time,
	) (decimal.Decimal, error)
}

// CreateResult ...
type CreateResult struct {
	Instance  model.EventInstance    `json:"instance"`
	Modifiers []model.MetricModifier `json:"modifiers"`
	Mutations []model.Mutation       `json:"mutations"`
}

// ListResult ...
type ListResult struct {
	Data         []model.EventInstance `json:"data"`
	NextAfterSeq *int64                `json:"nextAfterSeq"`
}

const (
	// DefaultListLimit is used when the requested limit is zero
	DefaultListLimit = 50

	// MaxListLimit ...
	MaxListLimit = 200
)

// sourceKeyWorld marks instances created by the world event engine itself
const sourceKeyWorld = "world"

// Service ...
type Service struct {
	provider     repository.Provider
	eventRepo    repository.Event
	modifierRepo repository.Modifier
	catalog      *catalog.Catalog

	opts  serviceOptions
	heads seqHeads
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	eventRepo repository.Event,
	modifierRepo repository.Modifier,
	eventCatalog *catalog.Catalog,
	options ...Option,
) *Service {
	opts := newServiceOptions(options...)
	return &Service{
		provider:     provider,
		eventRepo:    eventRepo,
		modifierRepo: modifierRepo,
		catalog:      eventCatalog,

		opts:  opts,
		heads: seqHeads{cache: opts.heads},
	}
}

func validateWorldID(worldID int64) error {
	if worldID > 0 {
		return nil
	}
	return apperr.NewValidationError("invalid world id", apperr.Issue{
		Path:    "worldId",
		Code:    "too_small",
		Message: "worldId must be positive",
	})
}

func (s *Service) buildDefinition(eventID string, raw json.RawMessage) (model.EventDefinition, json.RawMessage, error) {
	spec, ok := s.catalog.Lookup(eventID)
	if !ok {
		msg := "unknown eventId: " + eventID
		return model.EventDefinition{}, nil, apperr.NewValidationError(msg, apperr.Issue{
			Path:    "eventId",
			Code:    "unknown_event",
			Message: msg,
		})
	}

	payload, err := spec.Validate(raw)
	if err != nil {
		return model.EventDefinition{}, nil, err
	}

	def := spec.Define(payload)
	if err := def.Validate(); err != nil {
		return model.EventDefinition{}, nil, apperr.NewValidationError("invalid event definition", apperr.Issue{
			Path:    "payload",
			Code:    "invalid_definition",
			Message: err.Error(),
		})
	}

	normalized, err := json.Marshal(payload)
	if err != nil {
		return model.EventDefinition{}, nil, err
	}
	return def, normalized, nil
}

// Create validates the payload, derives the definition and persists the instance
// together with its modifiers in one transaction
func (s *Service) Create(
	ctx context.Context, worldID int64, eventID string, payload json.RawMessage,
) (CreateResult, error) {
	result, err := s.create(ctx, worldID, eventID, payload)
	if err != nil {
		eventCreateFailedTotal.WithLabelValues(string(apperr.CodeOf(err))).Inc()
		return CreateResult{}, err
	}
	return result, nil
}

func (s *Service) create(
	ctx context.Context, worldID int64, eventID string, raw json.RawMessage,
) (CreateResult, error) {
	if err := validateWorldID(worldID); err != nil {
		return CreateResult{}, err
	}

	def, payload, err := s.buildDefinition(eventID, raw)
	if err != nil {
		return CreateResult{}, err
	}

	logger := otellib.Extract(ctx)

	now := s.opts.now().UTC().Truncate(time.Millisecond)
	if chain, ok := def.Continuance.(model.ChainContinuance); ok {
		logger.Debug("chain continuance left open",
			zap.String("event_id", def.ID), zap.String("chain_id", chain.ChainID))
	}

	instance := model.EventInstance{
		ID:      s.opts.newID(),
		WorldID: worldID,
		EventID: def.ID,

		Severity:       def.Severity,
		RequiresAction: def.RequiresPlayerAction,
		Status:         model.EventStatusActive,

		TitleKey:       def.TitleKey,
		DescriptionKey: def.DescriptionKey,
		SourceKey:      sourceKeyWorld,

		Payload: payload,

		StartsAt:  now,
		EndsAt:    engine.InstanceEndsAt(def.Continuance, now),
		CreatedAt: now,
	}

	var out engine.MaterializeOutput
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		seq, err := s.eventRepo.InsertEventInstance(ctx, instance)
		if err != nil {
			return apperr.Storage("insert event instance", err)
		}
		instance.Seq = seq

		out = engine.Materialize(engine.MaterializeInput{
			WorldID:         worldID,
			EventInstanceID: instance.ID,
			Effects:         def.Effects,
			Now:             now,
			DeltaWindow:     s.opts.deltaWindow,
			NewID:           s.opts.newID,
		})

		if len(out.Modifiers) > 0 {
			if err := s.modifierRepo.InsertModifiers(ctx, out.Modifiers); err != nil {
				return apperr.Storage("insert metric modifiers", err)
			}
		}

		if len(out.Mutations) > 0 {
			if err := s.opts.sink.Apply(ctx, instance, out.Mutations); err != nil {
				return apperr.Storage("apply mutations", err)
			}
		}
		return nil
	})
	if err != nil {
		return CreateResult{}, apperr.Storage("create event", err)
	}

	s.heads.advance(worldID, instance.Seq)

	eventsCreatedTotal.WithLabelValues(instance.EventID).Inc()
	for _, m := range out.Modifiers {
		modifiersMaterializedTotal.WithLabelValues(string(m.Kind)).Inc()
	}

	logger.Info("event created",
		zap.String("id", instance.ID),
		zap.String("event_id", instance.EventID),
		zap.Int64("world_id", worldID),
		zap.Int64("seq", instance.Seq),
		zap.Int("modifiers", len(out.Modifiers)),
	)

	modifiers := out.Modifiers
	if modifiers == nil {
		modifiers = []model.MetricModifier{}
	}
	mutations := out.Mutations
	if mutations == nil {
		mutations = []model.Mutation{}
	}
	return CreateResult{
		Instance:  instance,
		Modifiers: modifiers,
		Mutations: mutations,
	}, nil
}

func clampLimit(limit int) int {
	if limit == 0 {
		return DefaultListLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// List returns instances with seq > afterSeq ascending, or the latest ones descending
// when afterSeq is nil. NextAfterSeq is the largest seq of the page. An empty page keeps
// afterSeq as the cursor, it is nil only when afterSeq is nil.
func (s *Service) List(ctx context.Context, worldID int64, afterSeq *int64, limit int) (ListResult, error) {
	if err := validateWorldID(worldID); err != nil {
		return ListResult{}, err
	}
	limit = clampLimit(limit)

	if afterSeq != nil {
		if head, ok := s.heads.get(worldID); ok && head <= *afterSeq {
			headCacheHitTotal.Inc()
			return ListResult{Data: []model.EventInstance{}, NextAfterSeq: copySeq(afterSeq)}, nil
		}
	}

	ctx = s.provider.Readonly(ctx)

	var rows []model.EventInstance
	var err error
	if afterSeq != nil {
		rows, err = s.eventRepo.ListEventsAfter(ctx, worldID, *afterSeq, limit)
	} else {
		rows, err = s.eventRepo.ListLatestEvents(ctx, worldID, limit)
	}
	if err != nil {
		return ListResult{}, apperr.Storage("list events", err)
	}

	if rows == nil {
		rows = []model.EventInstance{}
	}

	result := ListResult{Data: rows, NextAfterSeq: copySeq(afterSeq)}
	if len(rows) > 0 {
		var maxSeq int64
		for _, row := range rows {
			if row.Seq > maxSeq {
				maxSeq = row.Seq
			}
		}
		result.NextAfterSeq = &maxSeq
		s.heads.advance(worldID, maxSeq)
	}
	return result, nil
}

func copySeq(seq *int64) *int64 {
	if seq == nil {
		return nil
	}
	n := *seq
	return &n
}

func validateMetric(metric model.MetricKey) error {
	if metric.Valid() {
		return nil
	}
	return apperr.NewValidationError("invalid metric", apperr.Issue{
		Path:    "metric",
		Code:    "invalid_enum_value",
		Message: "unknown metric: " + string(metric),
	})
}

func validateTargets(targets []model.TargetKey) error {
	var issues []apperr.Issue
	for _, t := range targets {
		if t.Valid() {
			continue
		}
		issues = append(issues, apperr.Issue{
			Path:    "target",
			Code:    "invalid_target",
			Message: "invalid target key: " + string(t),
		})
	}
	if len(issues) == 0 {
		return nil
	}
	return apperr.NewValidationError("invalid target", issues...)
}

func (s *Service) queryModifiers(
	ctx context.Context, worldID int64, metric model.MetricKey, targets []model.TargetKey, at time.Time,
) ([]model.MetricModifier, error) {
	start := time.Now()
	mods, err := s.modifierRepo.QueryActiveModifiers(s.provider.Readonly(ctx), repository.ModifierQuery{
		WorldID: worldID,
		Metric:  metric,
		Targets: targets,
		At:      at,
	})
	modifierQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, apperr.Storage("query active modifiers", err)
	}
	return mods, nil
}

// GetActiveMultiplier returns the product of active multipliers of (metric, target) at the instant,
// 1 when there is none
func (s *Service) GetActiveMultiplier(
	ctx context.Context, worldID int64, metric model.MetricKey, target model.TargetKey, at time.Time,
) (decimal.Decimal, error) {
	if err := validateWorldID(worldID); err != nil {
		return decimal.Decimal{}, err
	}
	if err := validateMetric(metric); err != nil {
		return decimal.Decimal{}, err
	}
	if err := validateTargets([]model.TargetKey{target}); err != nil {
		return decimal.Decimal{}, err
	}

	mods, err := s.queryModifiers(ctx, worldID, metric, []model.TargetKey{target}, at)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return engine.ActiveMultiplierProduct(metric, target, at, mods), nil
}

// EffectiveValue returns base multiplied by every active multiplier on any of targets
func (s *Service) EffectiveValue(
	ctx context.Context, worldID int64, metric model.MetricKey,
	targets []model.TargetKey, base decimal.Decimal, at time.Time,
) (decimal.Decimal, error) {
	if err := validateWorldID(worldID); err != nil {
		return decimal.Decimal{}, err
	}
	if err := validateMetric(metric); err != nil {
		return decimal.Decimal{}, err
	}
	if err := validateTargets(targets); err != nil {
		return decimal.Decimal{}, err
	}
	if len(targets) == 0 {
		return base, nil
	}

	mods, err := s.queryModifiers(ctx, worldID, metric, targets, at)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return engine.EffectiveValue(metric, targets, base, at, mods), nil
}
