package event

import (
	"time"

	"github.com/QuangTung97/airsim-events/engine"
	"github.com/google/uuid"
)

type serviceOptions struct {
	deltaWindow time.Duration
	now         func() time.Time
	newID       func() string
	sink        MutationSink
	heads       SeqHeadCache
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		deltaWindow: engine.DefaultDeltaWindow,
		now:         time.Now,
		newID:       uuid.NewString,
		sink:        LogSink{},
	}
}

func newServiceOptions(options ...Option) serviceOptions {
	opts := defaultServiceOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *serviceOptions)

// WithDeltaWindow sets the audit window of delta modifier rows, must be positive
func WithDeltaWindow(d time.Duration) Option {
	return func(opts *serviceOptions) {
		if d <= 0 {
			panic("event: delta window must be positive")
		}
		opts.deltaWindow = d
	}
}

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(opts *serviceOptions) {
		opts.now = now
	}
}

// WithIDGenerator is used for both event instance and modifier ids
func WithIDGenerator(newID func() string) Option {
	return func(opts *serviceOptions) {
		opts.newID = newID
	}
}

// WithMutationSink ...
func WithMutationSink(sink MutationSink) Option {
	return func(opts *serviceOptions) {
		opts.sink = sink
	}
}

// WithSeqHeadCache enables short-circuiting polls that are already at the head of a world
func WithSeqHeadCache(cache SeqHeadCache) Option {
	return func(opts *serviceOptions) {
		opts.heads = cache
	}
}
