package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const reconcileTracerName = "github.com/esdrassantos06/tarevity-notification-core/internal/service/reconcile"

func ReconcileTracer() trace.Tracer {
	return otel.Tracer(reconcileTracerName)
}

func StartReconcilePassSpan(ctx context.Context, userID, runID string, now time.Time) (context.Context, trace.Span) {
	return ReconcileTracer().Start(ctx, "notification.reconcile_pass",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("run_id", runID),
			attribute.String("pass.now", now.Format(time.RFC3339)),
		),
	)
}

func StartSweepSpan(ctx context.Context, trigger string) (context.Context, trace.Span) {
	return ReconcileTracer().Start(ctx, "notification.sweep",
		trace.WithAttributes(
			attribute.String("trigger", trigger),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ReconcileTracer().Start(ctx, "notification.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordReconcileResult(span trace.Span, created, updated, dismissed, unchanged, failed int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	span.SetAttributes(
		attribute.Int("reconcile.created", created),
		attribute.Int("reconcile.updated", updated),
		attribute.Int("reconcile.dismissed", dismissed),
		attribute.Int("reconcile.unchanged", unchanged),
		attribute.Int("reconcile.failed", failed),
	)
	span.SetStatus(codes.Ok, "")
}

// InjectToHTTPRequest propagates the current trace context onto an outgoing
// request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
