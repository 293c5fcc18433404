package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	reconcileMeterName = "notification.reconcile"
)

type ReconcileMetrics struct {
	notificationsWritten metric.Int64Counter
	passDuration         metric.Float64Histogram
	passFailures         metric.Int64Counter
	bucketDistribution   metric.Int64Counter
}

func NewReconcileMetrics() (*ReconcileMetrics, error) {
	meter := otel.Meter(reconcileMeterName)

	notificationsWritten, err := meter.Int64Counter(
		"notification_writes_total",
		metric.WithDescription("Notification writes by outcome (created, updated, dismissed, unchanged, failed)"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	passDuration, err := meter.Float64Histogram(
		"notification_reconcile_pass_duration_seconds",
		metric.WithDescription("Duration of one reconciliation pass"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	passFailures, err := meter.Int64Counter(
		"notification_reconcile_pass_failures_total",
		metric.WithDescription("Reconciliation passes aborted before reconciling"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	bucketDistribution, err := meter.Int64Counter(
		"notification_bucket_distribution_total",
		metric.WithDescription("Distribution of classified tasks across urgency buckets"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	return &ReconcileMetrics{
		notificationsWritten: notificationsWritten,
		passDuration:         passDuration,
		passFailures:         passFailures,
		bucketDistribution:   bucketDistribution,
	}, nil
}

func (m *ReconcileMetrics) RecordWrite(ctx context.Context, outcome, bucket string) {
	m.notificationsWritten.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("bucket", bucket),
	))
}

func (m *ReconcileMetrics) RecordPassDuration(ctx context.Context, trigger string, duration time.Duration) {
	m.passDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("trigger", trigger),
	))
}

func (m *ReconcileMetrics) RecordPassFailure(ctx context.Context, reason string) {
	m.passFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

func (m *ReconcileMetrics) RecordBucket(ctx context.Context, bucket string) {
	m.bucketDistribution.Add(ctx, 1, metric.WithAttributes(
		attribute.String("bucket", bucket),
	))
}
