package appr

import "time"

// FlightInfo holds the facts about the disrupted flight. Airport codes are
// normalized to upper case by the boundary layer before the engine sees them.
// Treated as immutable for the lifetime of the request.
type FlightInfo struct {
	FlightNumber       string
	DepartureAirport   string
	ArrivalAirport     string
	ScheduledDeparture time.Time
	ActualDeparture    *time.Time
	ScheduledArrival   time.Time
	ActualArrival      *time.Time
}

// PassengerInfo holds the facts about the affected passenger.
type PassengerInfo struct {
	Type          PassengerType
	MinorAge      *int
	HasDisability bool
	TicketPrice   float64
	BookingClass  string
}

// DisruptionEvent holds the facts about the disruption itself. The numeric
// fields are pointers because absence is a distinct input state from zero:
// the delay handler treats a missing duration as "unspecified" while the
// cancellation handler treats a missing substitute-flight delay as zero.
type DisruptionEvent struct {
	Type           DisruptionType
	Category       DisruptionCategory
	DelayHours     *float64
	NoticeDays     *int
	TarmacHours    *float64
	Reason         string
	WeatherRelated bool
}

// ValidationRequest is the unit of work: one engine invocation consumes
// exactly one.
type ValidationRequest struct {
	Flight     FlightInfo
	Passenger  PassengerInfo
	Disruption DisruptionEvent
}

// CompensationResult is the engine's structured decision. Amount > 0 implies
// Eligible; the reverse does not hold (a notice-compliant cancellation can be
// eligible with zero compensation). Built incrementally during one
// evaluation, never mutated after return.
type CompensationResult struct {
	Eligible                bool
	Amount                  float64
	CareObligations         []string
	RebookingRights         []string
	RefundRights            []string
	ComplianceNotes         []string
	AlternativeArrangements []string
}

// newResult returns an empty, non-eligible result with allocated lists so
// JSON rendering produces arrays rather than nulls.
func newResult() CompensationResult {
	return CompensationResult{
		CareObligations:         []string{},
		RebookingRights:         []string{},
		RefundRights:            []string{},
		ComplianceNotes:         []string{},
		AlternativeArrangements: []string{},
	}
}
