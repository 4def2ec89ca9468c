package appr

import (
	"context"
	"time"
)

// Record is one line of the decision audit trail. It carries enough to
// reconstruct what was decided without retaining passenger detail.
type Record struct {
	RequestID        string         `json:"request_id"`
	FlightNumber     string         `json:"flight_number"`
	DepartureAirport string         `json:"departure_airport"`
	DisruptionType   DisruptionType `json:"disruption_type"`
	Applicable       bool           `json:"appr_applicable"`
	Eligible         bool           `json:"eligible_for_compensation"`
	Amount           float64        `json:"compensation_amount"`
	ProcessedAt      time.Time      `json:"processed_at"`
}

// Store persists decision records for auditability. Swap with concrete
// storage without touching the service.
type Store interface {
	Append(ctx context.Context, rec Record) error
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
