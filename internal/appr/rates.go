package appr

// RateTable holds the compensation amounts for a carrier class, in CAD.
// Injected into the engine so jurisdiction or rate updates never touch rule
// logic. Immutable after construction.
type RateTable struct {
	DelayTier1 float64 // delay of [3,6) hours
	DelayTier2 float64 // delay of [6,9) hours
	DelayTier3 float64 // delay of 9+ hours

	DeniedBoardingDomestic          float64
	DeniedBoardingInternational     float64
	DeniedBoardingInternationalLong float64
}

// DefaultLargeCarrierRates returns the APPR rates for large carriers.
// Only large-carrier rates are modeled; small-carrier classification is out
// of scope.
func DefaultLargeCarrierRates() RateTable {
	return RateTable{
		DelayTier1:                      400,
		DelayTier2:                      700,
		DelayTier3:                      1000,
		DeniedBoardingDomestic:          900,
		DeniedBoardingInternational:     1800,
		DeniedBoardingInternationalLong: 2400,
	}
}

// DelayTier maps an arrival delay to its compensation tier using half-open
// intervals: [3,6) tier1, [6,9) tier2, [9,inf) tier3. Hours below 3 map to
// zero; callers decide whether that means ineligible (delay) or eligible with
// no compensation (cancellation).
func (rt RateTable) DelayTier(hours float64) float64 {
	switch {
	case hours < 3:
		return 0
	case hours < 6:
		return rt.DelayTier1
	case hours < 9:
		return rt.DelayTier2
	default:
		return rt.DelayTier3
	}
}
