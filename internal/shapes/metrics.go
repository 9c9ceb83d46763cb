package shapes

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	calcCounter       metric.Int64Counter
	calcHistogram     metric.Float64Histogram
	validationCounter metric.Int64Counter
	errorCounter      metric.Int64Counter
	areaGauge         metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the shapes domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("shapes")

	var err error

	calcCounter, err = meter.Int64Counter("shapes.calculations.total",
		metric.WithDescription("Total number of shape calculations performed"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	calcHistogram, err = meter.Float64Histogram("shapes.calculation.duration",
		metric.WithDescription("Duration of shape calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	validationCounter, err = meter.Int64Counter("shapes.validation_errors.total",
		metric.WithDescription("Total number of rejected shape requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating validation counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("shapes.errors.total",
		metric.WithDescription("Total number of shape request failures other than validation"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	areaGauge, err = meter.Float64Gauge("shapes.last_area",
		metric.WithDescription("The area produced by the most recent calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating area gauge: %w", err)
	}

	return nil
}
