package appr

import (
	"fmt"

	dErrors "skyclaim/pkg/domain-errors"
)

// DisruptionType is the closed set of disruption kinds the engine rules on.
type DisruptionType string

const (
	DisruptionDelay          DisruptionType = "delay"
	DisruptionCancellation   DisruptionType = "cancellation"
	DisruptionDeniedBoarding DisruptionType = "denied_boarding"
	DisruptionTarmacDelay    DisruptionType = "tarmac_delay"
	DisruptionDowngrade      DisruptionType = "downgrade"
	DisruptionBaggageIssue   DisruptionType = "baggage_issue"
)

// ParseDisruptionType validates a wire value against the closed set.
func ParseDisruptionType(s string) (DisruptionType, error) {
	switch DisruptionType(s) {
	case DisruptionDelay, DisruptionCancellation, DisruptionDeniedBoarding,
		DisruptionTarmacDelay, DisruptionDowngrade, DisruptionBaggageIssue:
		return DisruptionType(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown disruption_type %q", s))
}

// DisruptionCategory classifies the cause of a disruption for compensation
// eligibility.
type DisruptionCategory string

const (
	WithinCarrierControl       DisruptionCategory = "within_carrier_control"
	WithinCarrierControlSafety DisruptionCategory = "within_carrier_control_safety"
	OutsideCarrierControl      DisruptionCategory = "outside_carrier_control"
)

// ParseDisruptionCategory validates a wire value against the closed set.
func ParseDisruptionCategory(s string) (DisruptionCategory, error) {
	switch DisruptionCategory(s) {
	case WithinCarrierControl, WithinCarrierControlSafety, OutsideCarrierControl:
		return DisruptionCategory(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown disruption_category %q", s))
}

// PassengerType marks passengers who attract additional obligations.
type PassengerType string

const (
	PassengerRegular    PassengerType = "regular"
	PassengerMinor      PassengerType = "minor"
	PassengerDisability PassengerType = "disability"
)

// ParsePassengerType validates a wire value against the closed set. An empty
// value defaults to regular.
func ParsePassengerType(s string) (PassengerType, error) {
	if s == "" {
		return PassengerRegular, nil
	}
	switch PassengerType(s) {
	case PassengerRegular, PassengerMinor, PassengerDisability:
		return PassengerType(s), nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown passenger_type %q", s))
}
