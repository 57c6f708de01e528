package event

import (
	"context"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/otellib"
	"go.uber.org/zap"
)

//go:generate moq -rm -out sink_mocks.go . MutationSink

// MutationSink applies the immediate mutations of delta effects.
// Apply runs inside the create transaction, an error rolls the whole event back.
type MutationSink interface {
	Apply(ctx context.Context, instance model.EventInstance, mutations []model.Mutation) error
}

// LogSink only records mutations in the log, for worlds without a mutable metric store
type LogSink struct {
}

var _ MutationSink = LogSink{}

// Apply ...
func (LogSink) Apply(ctx context.Context, instance model.EventInstance, mutations []model.Mutation) error {
	logger := otellib.Extract(ctx)
	for _, m := range mutations {
		logger.Info("delta mutation",
			zap.String("event_instance_id", instance.ID),
			zap.Int64("world_id", instance.WorldID),
			zap.Int64("seq", instance.Seq),
			zap.String("metric", string(m.Metric)),
			zap.String("target", string(m.Target)),
			zap.String("amount", m.Amount.String()),
		)
	}
	return nil
}
