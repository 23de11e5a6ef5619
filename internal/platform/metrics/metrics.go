// Package metrics holds the OpenTelemetry instruments of the booking API.
// Production exports them through the Prometheus bridge set up by InitProvider;
// tests build a Metrics over a ManualReader backed provider
package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "voicebooking"

// OTP verification outcomes
const (
	OutcomeVerified        = "verified"
	OutcomeInvalid         = "invalid"
	OutcomeExpired         = "expired"
	OutcomeAlreadyVerified = "already_verified"
	OutcomeNotFound        = "not_found"
)

// Metrics holds every instrument; all fields are safe for concurrent use
type Metrics struct {
	// Intents counts classified utterances, attributes intent and context
	Intents metric.Int64Counter

	BookingsCreated metric.Int64Counter

	// OTPVerifications counts verify attempts, attribute outcome
	OTPVerifications metric.Int64Counter

	// ActiveSessions tracks NLP sessions currently held in the session cache
	ActiveSessions metric.Int64UpDownCounter

	// HTTPRequestDuration is recorded by Middleware, attributes method, route and status
	HTTPRequestDuration metric.Float64Histogram
}

var latencyBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// NewMetrics creates the instruments on mp
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Intents, err = m.Int64Counter("voicebooking.intents",
		metric.WithDescription("Utterances classified by intent and context."),
	); err != nil {
		return nil, err
	}
	if met.BookingsCreated, err = m.Int64Counter("voicebooking.bookings.created",
		metric.WithDescription("Bookings created."),
	); err != nil {
		return nil, err
	}
	if met.OTPVerifications, err = m.Int64Counter("voicebooking.otp.verifications",
		metric.WithDescription("OTP verification attempts by outcome."),
	); err != nil {
		return nil, err
	}
	if met.ActiveSessions, err = m.Int64UpDownCounter("voicebooking.nlp.sessions.active",
		metric.WithDescription("Conversation sessions held in memory."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("voicebooking.http.request.duration",
		metric.WithDescription("HTTP request latency by method and route."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

// Nop returns instruments that record nothing
func Nop() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider())
	return m
}

// OrNop returns m, or Nop when m is nil
func OrNop(m *Metrics) *Metrics {
	if m == nil {
		return Nop()
	}
	return m
}

// RecordIntent counts one classified utterance
func (m *Metrics) RecordIntent(ctx context.Context, intent, convContext string) {
	m.Intents.Add(ctx, 1, metric.WithAttributes(
		attribute.String("intent", intent),
		attribute.String("context", convContext),
	))
}

// RecordBooking counts one created booking
func (m *Metrics) RecordBooking(ctx context.Context) { m.BookingsCreated.Add(ctx, 1) }

// RecordOTP counts one verification attempt with its outcome
func (m *Metrics) RecordOTP(ctx context.Context, outcome string) {
	m.OTPVerifications.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
