package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyclaim/internal/appr"
	dErrors "skyclaim/pkg/domain-errors"
)

func validBody() ValidateRequest {
	price := 450.0
	return ValidateRequest{
		FlightInfo: FlightInfoRequest{
			FlightNumber:       "WS123",
			DepartureAirport:   "yyz",
			ArrivalAirport:     "YVR",
			ScheduledDeparture: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC),
			ScheduledArrival:   time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC),
		},
		PassengerInfo: PassengerInfoRequest{
			PassengerType: "regular",
			TicketPrice:   &price,
			BookingClass:  "economy",
		},
		DisruptionEvent: DisruptionEventRequest{
			DisruptionType:     "delay",
			DisruptionCategory: "within_carrier_control",
		},
	}
}

func TestValidateRequestValidate(t *testing.T) {
	t.Run("normalizes airport codes to upper case", func(t *testing.T) {
		req := validBody()
		require.NoError(t, req.Validate())

		assert.Equal(t, "YYZ", req.Parsed().Flight.DepartureAirport)
		assert.Equal(t, "YVR", req.Parsed().Flight.ArrivalAirport)
	})

	t.Run("empty passenger_type defaults to regular", func(t *testing.T) {
		req := validBody()
		req.PassengerInfo.PassengerType = ""
		require.NoError(t, req.Validate())
		assert.Equal(t, appr.PassengerRegular, req.Parsed().Passenger.Type)
	})

	t.Run("rejects malformed airport codes", func(t *testing.T) {
		for _, code := range []string{"", "YY", "YYYZ", "Y2Z"} {
			req := validBody()
			req.FlightInfo.DepartureAirport = code
			err := req.Validate()
			require.Error(t, err, "code %q", code)
			assert.True(t, dErrors.Is(err, dErrors.CodeValidation), "code %q", code)
		}
	})

	t.Run("rejects unknown disruption_type", func(t *testing.T) {
		req := validBody()
		req.DisruptionEvent.DisruptionType = "meteor_strike"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("rejects unknown disruption_category", func(t *testing.T) {
		req := validBody()
		req.DisruptionEvent.DisruptionCategory = "act_of_god"
		assert.Error(t, req.Validate())
	})

	t.Run("requires ticket_price", func(t *testing.T) {
		req := validBody()
		req.PassengerInfo.TicketPrice = nil
		assert.Error(t, req.Validate())
	})

	t.Run("rejects negative ticket_price", func(t *testing.T) {
		req := validBody()
		price := -1.0
		req.PassengerInfo.TicketPrice = &price
		assert.Error(t, req.Validate())
	})

	t.Run("rejects negative durations", func(t *testing.T) {
		req := validBody()
		hours := -2.0
		req.DisruptionEvent.DelayDurationHours = &hours
		assert.Error(t, req.Validate())
	})

	t.Run("absent optional durations stay absent", func(t *testing.T) {
		req := validBody()
		require.NoError(t, req.Validate())
		assert.Nil(t, req.Parsed().Disruption.DelayHours)
		assert.Nil(t, req.Parsed().Disruption.TarmacHours)
		assert.Nil(t, req.Parsed().Disruption.NoticeDays)
	})
}

func TestCheckAirportRequestValidate(t *testing.T) {
	req := CheckAirportRequest{AirportCode: " yvr "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "YVR", req.AirportCode)

	bad := CheckAirportRequest{AirportCode: "12"}
	assert.Error(t, bad.Validate())
}
