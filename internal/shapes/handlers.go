package shapes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"shapes-api/internal/handlers"
	"shapes-api/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the shapes domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("shapes")

// Circle handles POST /circle.
func Circle(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startCalculation(r, "circle")
	defer span.End()

	var req CircleRequest
	if !decodeRequest(ctx, span, logger, w, r.Body, "circle", &req) {
		return
	}

	span.SetAttributes(attribute.Float64("shapes.radius", *req.Radius))

	start := time.Now()
	resp := ComputeCircle(*req.Radius)
	elapsed := millisSince(start)

	finishCalculation(ctx, span, "circle", resp.Area, elapsed)

	logger.Info("calculation completed",
		zap.String("shape", "circle"),
		zap.Float64("radius", *req.Radius),
		zap.Float64("area", resp.Area),
		zap.Float64("circumference", resp.Circumference),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Rectangle handles POST /rectangle.
func Rectangle(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startCalculation(r, "rectangle")
	defer span.End()

	var req RectangleRequest
	if !decodeRequest(ctx, span, logger, w, r.Body, "rectangle", &req) {
		return
	}

	span.SetAttributes(
		attribute.Float64("shapes.length", *req.Length),
		attribute.Float64("shapes.width", *req.Width),
	)

	start := time.Now()
	resp := ComputeRectangle(*req.Length, *req.Width)
	elapsed := millisSince(start)

	finishCalculation(ctx, span, "rectangle", resp.Area, elapsed)

	logger.Info("calculation completed",
		zap.String("shape", "rectangle"),
		zap.Float64("length", *req.Length),
		zap.Float64("width", *req.Width),
		zap.Float64("area", resp.Area),
		zap.Float64("perimeter", resp.Perimeter),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Triangle handles POST /triangle.
func Triangle(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startCalculation(r, "triangle")
	defer span.End()

	var req TriangleRequest
	if !decodeRequest(ctx, span, logger, w, r.Body, "triangle", &req) {
		return
	}

	span.SetAttributes(
		attribute.Float64("shapes.base", *req.Base),
		attribute.Float64("shapes.height", *req.Height),
	)

	start := time.Now()
	resp := ComputeTriangle(*req.Base, *req.Height)
	elapsed := millisSince(start)

	finishCalculation(ctx, span, "triangle", resp.Area, elapsed)

	logger.Info("calculation completed",
		zap.String("shape", "triangle"),
		zap.Float64("base", *req.Base),
		zap.Float64("height", *req.Height),
		zap.Float64("area", resp.Area),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// startCalculation opens a child span for one calculation and returns the
// span-scoped context and trace-correlated logger.
func startCalculation(r *http.Request, shape string) (context.Context, trace.Span, *zap.Logger) {
	reqCtx := r.Context()
	logger := observability.LoggerWithTrace(reqCtx)

	ctx, span := tracer.Start(reqCtx, fmt.Sprintf("shapes.%s", shape),
		trace.WithAttributes(
			attribute.String("shapes.shape", shape),
			attribute.String("request.id", observability.RequestIDFromContext(reqCtx)),
		),
	)

	return ctx, span, logger
}

// decodeRequest decodes and validates one shape request. On failure it writes
// the HTTP error response and returns false. A field of the wrong JSON type
// is a validation failure naming that field; a syntactically broken body is a
// plain bad request.
func decodeRequest(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, body io.Reader, shape string, dst any) bool {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			rejectRequest(ctx, span, logger, w, shape, &ValidationError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be a number", typeErr.Field),
			})
			return false
		}

		observability.RecordError(ctx, span, logger, errorCounter, shape, "invalid request body", err, http.StatusBadRequest, w)
		return false
	}

	if ve := ValidateRequest(dst); ve != nil {
		rejectRequest(ctx, span, logger, w, shape, ve)
		return false
	}

	return true
}

// rejectRequest records a validation failure and answers 422.
func rejectRequest(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, shape string, ve *ValidationError) {
	span.RecordError(ve)
	span.SetStatus(codes.Error, ve.Message)

	validationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("shape", shape),
		attribute.String("field", ve.Field),
	))

	logger.Warn("request validation failed",
		zap.String("shape", shape),
		zap.String("field", ve.Field),
		zap.String("reason", ve.Message),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteError(w, http.StatusUnprocessableEntity, ve.Message)
}

// finishCalculation records metrics and span bookkeeping for a successful
// calculation.
func finishCalculation(ctx context.Context, span trace.Span, shape string, area, elapsed float64) {
	attrs := metric.WithAttributes(attribute.String("shape", shape))
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)
	areaGauge.Record(ctx, area, attrs)

	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("area", area),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("shapes.area", area))
	span.SetStatus(codes.Ok, "")
}

func millisSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
