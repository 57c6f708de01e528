package otellib

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HTTPMiddleware starts a server span per request and puts logger into the request context
func HTTPMiddleware(provider trace.TracerProvider, logger *zap.Logger, next http.Handler) http.Handler {
	tracer := provider.Tracer("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		ctx = ToContext(ctx, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
