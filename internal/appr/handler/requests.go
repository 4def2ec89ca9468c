package handler

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"

	"skyclaim/internal/appr"
	dErrors "skyclaim/pkg/domain-errors"
)

// ValidateRequest is the HTTP request body for POST /validate-appr.
type ValidateRequest struct {
	FlightInfo      FlightInfoRequest      `json:"flight_info"`
	PassengerInfo   PassengerInfoRequest   `json:"passenger_info"`
	DisruptionEvent DisruptionEventRequest `json:"disruption_event"`

	// Parsed domain request (populated by Validate)
	parsed appr.ValidationRequest
}

type FlightInfoRequest struct {
	FlightNumber       string     `json:"flight_number"`
	DepartureAirport   string     `json:"departure_airport"`
	ArrivalAirport     string     `json:"arrival_airport"`
	ScheduledDeparture time.Time  `json:"scheduled_departure"`
	ActualDeparture    *time.Time `json:"actual_departure,omitempty"`
	ScheduledArrival   time.Time  `json:"scheduled_arrival"`
	ActualArrival      *time.Time `json:"actual_arrival,omitempty"`
}

type PassengerInfoRequest struct {
	PassengerType string   `json:"passenger_type"`
	MinorAge      *int     `json:"minor_age,omitempty"`
	HasDisability bool     `json:"has_disability"`
	TicketPrice   *float64 `json:"ticket_price"`
	BookingClass  string   `json:"booking_class"`
}

type DisruptionEventRequest struct {
	DisruptionType     string   `json:"disruption_type"`
	DisruptionCategory string   `json:"disruption_category"`
	DelayDurationHours *float64 `json:"delay_duration_hours,omitempty"`
	CancellationNotice *int     `json:"cancellation_notice_days,omitempty"`
	TarmacDelayHours   *float64 `json:"tarmac_delay_hours,omitempty"`
	Reason             string   `json:"reason,omitempty"`
	WeatherRelated     bool     `json:"weather_related"`
}

// Validate validates and normalizes the request, building the domain request
// the engine consumes. Implements httputil.Validatable.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	flight, err := r.FlightInfo.validate()
	if err != nil {
		return err
	}

	passenger, err := r.PassengerInfo.validate()
	if err != nil {
		return err
	}

	disruption, err := r.DisruptionEvent.validate()
	if err != nil {
		return err
	}

	r.parsed = appr.ValidationRequest{
		Flight:     flight,
		Passenger:  passenger,
		Disruption: disruption,
	}
	return nil
}

// Parsed returns the validated domain request.
func (r *ValidateRequest) Parsed() appr.ValidationRequest {
	return r.parsed
}

func (f *FlightInfoRequest) validate() (appr.FlightInfo, error) {
	f.FlightNumber = strings.TrimSpace(f.FlightNumber)
	if f.FlightNumber == "" {
		return appr.FlightInfo{}, dErrors.New(dErrors.CodeValidation, "flight_info.flight_number is required")
	}

	departure, err := normalizeAirportCode(f.DepartureAirport, "flight_info.departure_airport")
	if err != nil {
		return appr.FlightInfo{}, err
	}
	arrival, err := normalizeAirportCode(f.ArrivalAirport, "flight_info.arrival_airport")
	if err != nil {
		return appr.FlightInfo{}, err
	}

	if f.ScheduledDeparture.IsZero() {
		return appr.FlightInfo{}, dErrors.New(dErrors.CodeValidation, "flight_info.scheduled_departure is required")
	}
	if f.ScheduledArrival.IsZero() {
		return appr.FlightInfo{}, dErrors.New(dErrors.CodeValidation, "flight_info.scheduled_arrival is required")
	}

	return appr.FlightInfo{
		FlightNumber:       f.FlightNumber,
		DepartureAirport:   departure,
		ArrivalAirport:     arrival,
		ScheduledDeparture: f.ScheduledDeparture,
		ActualDeparture:    f.ActualDeparture,
		ScheduledArrival:   f.ScheduledArrival,
		ActualArrival:      f.ActualArrival,
	}, nil
}

func (p *PassengerInfoRequest) validate() (appr.PassengerInfo, error) {
	passengerType, err := appr.ParsePassengerType(strings.TrimSpace(p.PassengerType))
	if err != nil {
		return appr.PassengerInfo{}, err
	}

	if p.TicketPrice == nil {
		return appr.PassengerInfo{}, dErrors.New(dErrors.CodeValidation, "passenger_info.ticket_price is required")
	}
	if *p.TicketPrice < 0 {
		return appr.PassengerInfo{}, dErrors.New(dErrors.CodeValidation, "passenger_info.ticket_price must be non-negative")
	}

	p.BookingClass = strings.TrimSpace(p.BookingClass)
	if p.BookingClass == "" {
		return appr.PassengerInfo{}, dErrors.New(dErrors.CodeValidation, "passenger_info.booking_class is required")
	}

	if p.MinorAge != nil && (*p.MinorAge < 0 || *p.MinorAge > 17) {
		return appr.PassengerInfo{}, dErrors.New(dErrors.CodeValidation, "passenger_info.minor_age must be between 0 and 17")
	}

	return appr.PassengerInfo{
		Type:          passengerType,
		MinorAge:      p.MinorAge,
		HasDisability: p.HasDisability,
		TicketPrice:   *p.TicketPrice,
		BookingClass:  p.BookingClass,
	}, nil
}

func (d *DisruptionEventRequest) validate() (appr.DisruptionEvent, error) {
	disruptionType, err := appr.ParseDisruptionType(strings.TrimSpace(d.DisruptionType))
	if err != nil {
		return appr.DisruptionEvent{}, err
	}

	category, err := appr.ParseDisruptionCategory(strings.TrimSpace(d.DisruptionCategory))
	if err != nil {
		return appr.DisruptionEvent{}, err
	}

	if d.DelayDurationHours != nil && *d.DelayDurationHours < 0 {
		return appr.DisruptionEvent{}, dErrors.New(dErrors.CodeValidation, "disruption_event.delay_duration_hours must be non-negative")
	}
	if d.TarmacDelayHours != nil && *d.TarmacDelayHours < 0 {
		return appr.DisruptionEvent{}, dErrors.New(dErrors.CodeValidation, "disruption_event.tarmac_delay_hours must be non-negative")
	}
	if d.CancellationNotice != nil && *d.CancellationNotice < 0 {
		return appr.DisruptionEvent{}, dErrors.New(dErrors.CodeValidation, "disruption_event.cancellation_notice_days must be non-negative")
	}

	return appr.DisruptionEvent{
		Type:           disruptionType,
		Category:       category,
		DelayHours:     d.DelayDurationHours,
		NoticeDays:     d.CancellationNotice,
		TarmacHours:    d.TarmacDelayHours,
		Reason:         strings.TrimSpace(d.Reason),
		WeatherRelated: d.WeatherRelated,
	}, nil
}

// CheckAirportRequest is the HTTP request body for POST /check-airport.
type CheckAirportRequest struct {
	AirportCode string `json:"airport_code"`
}

// Validate normalizes the airport code. Implements httputil.Validatable.
func (r *CheckAirportRequest) Validate() error {
	code, err := normalizeAirportCode(r.AirportCode, "airport_code")
	if err != nil {
		return err
	}
	r.AirportCode = code
	return nil
}

// normalizeAirportCode enforces the 3-letter IATA invariant and upper-cases
// the code.
func normalizeAirportCode(code, field string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 || !govalidator.IsAlpha(code) {
		return "", dErrors.New(dErrors.CodeValidation, field+" must be a 3-letter IATA code")
	}
	return code, nil
}
