package appr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"skyclaim/internal/appr/metrics"
	dErrors "skyclaim/pkg/domain-errors"
	"skyclaim/pkg/requestcontext"
)

// Validation is the service-level outcome: the engine decision wrapped with
// the request identifier and processing timestamp the transport layer needs.
type Validation struct {
	RequestID   string
	Applicable  bool
	Reason      string
	Result      CompensationResult
	ProcessedAt time.Time
}

// Service runs the engine, stamps request metadata, records metrics, and
// appends to the audit trail. The engine stays pure; all side effects live
// here.
type Service struct {
	engine  *Engine
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional Service collaborators.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs the validation service. The store is required so
// every decision leaves an audit record.
func NewService(engine *Engine, store Store, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if store == nil {
		return nil, fmt.Errorf("decision store is required")
	}

	svc := &Service{
		engine: engine,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Rates exposes the engine's rate table for informational endpoints.
func (s *Service) Rates() RateTable {
	return s.engine.Rates()
}

// Validate evaluates one disruption and returns the full decision. The
// request ID comes from middleware when present so responses and access logs
// correlate; otherwise a fresh UUID is assigned.
func (s *Service) Validate(ctx context.Context, req ValidationRequest) (*Validation, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveValidateLatency(time.Since(start))
	}()

	requestID := requestcontext.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	now := requestcontext.Now(ctx).UTC()

	applicable, reason, result := s.engine.Evaluate(req)

	s.metrics.ObserveValidation(applicable, result.Eligible, result.Amount)

	rec := Record{
		RequestID:        requestID,
		FlightNumber:     req.Flight.FlightNumber,
		DepartureAirport: req.Flight.DepartureAirport,
		DisruptionType:   req.Disruption.Type,
		Applicable:       applicable,
		Eligible:         result.Eligible,
		Amount:           result.Amount,
		ProcessedAt:      now,
	}
	if err := s.store.Append(ctx, rec); err != nil {
		// The decision itself is sound; a failed audit append is an
		// infrastructure fault.
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to record decision")
	}

	s.logger.InfoContext(ctx, "appr validation completed",
		"request_id", requestID,
		"flight_number", req.Flight.FlightNumber,
		"disruption_type", req.Disruption.Type,
		"appr_applicable", applicable,
		"eligible", result.Eligible,
		"amount", result.Amount,
	)

	return &Validation{
		RequestID:   requestID,
		Applicable:  applicable,
		Reason:      reason,
		Result:      result,
		ProcessedAt: now,
	}, nil
}

// RecentDecisions returns the newest audit records, capped at limit.
func (s *Service) RecentDecisions(ctx context.Context, limit int) ([]Record, error) {
	records, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list decisions")
	}
	return records, nil
}
