package appr

import (
	"fmt"
	"strings"
)

// This file is pure domain logic - no I/O, no side effects. Each handler
// receives the facts it needs and returns a fresh result; Evaluate folds the
// handler output with the cross-cutting passes.

// handleDelay applies the delay compensation rules. A missing duration is a
// valid input state: it yields a conservative non-eligible result with a
// compliance note, never an error.
func handleDelay(rates RateTable, d DisruptionEvent) CompensationResult {
	result := newResult()

	if d.DelayHours == nil {
		result.ComplianceNotes = append(result.ComplianceNotes, "Delay duration not specified")
		return result
	}

	delayHours := *d.DelayHours

	// No compensation for delays under 3 hours.
	if delayHours < 3 {
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Delay of %v hours is under 3-hour threshold - no compensation required", delayHours))
		return result
	}

	switch d.Category {
	case OutsideCarrierControl:
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Delay outside carrier control - no monetary compensation required")
	case WithinCarrierControlSafety:
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Delay within carrier control but required for safety - no monetary compensation required")
	case WithinCarrierControl:
		result.Eligible = true
		result.Amount = rates.DelayTier(delayHours)
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Delay of %v hours within carrier control - compensation required", delayHours))
	}

	return result
}

// handleCancellation applies the cancellation rules. Advance notice of 14+
// days is a safe harbor independent of category. For carrier-controlled
// cancellations the amount keys on the delay to the substitute flight; a
// missing substitute delay counts as zero, which is eligible with no
// compensation rather than ineligible.
func handleCancellation(rates RateTable, d DisruptionEvent) CompensationResult {
	result := newResult()

	if d.NoticeDays != nil && *d.NoticeDays >= 14 {
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Cancellation with 14+ days notice - no compensation required")
		return result
	}

	switch d.Category {
	case OutsideCarrierControl:
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Cancellation outside carrier control - no monetary compensation required")
	case WithinCarrierControlSafety:
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Cancellation within carrier control but required for safety - no monetary compensation required")
	case WithinCarrierControl:
		result.Eligible = true

		var delayHours float64
		if d.DelayHours != nil {
			delayHours = *d.DelayHours
		}

		if delayHours < 3 {
			result.ComplianceNotes = append(result.ComplianceNotes,
				"Alternative flight within 3 hours - no compensation required")
		} else {
			result.Amount = rates.DelayTier(delayHours)
		}
		result.ComplianceNotes = append(result.ComplianceNotes,
			fmt.Sprintf("Cancellation within carrier control - compensation based on %v hour delay to alternative flight", delayHours))
	}

	return result
}

// handleDeniedBoarding always yields eligibility. International flights all
// receive the long-haul flat rate; no distance tiering is computed here even
// though the regulation implies finer tiers exist.
func handleDeniedBoarding(rates RateTable, domestic bool) CompensationResult {
	result := newResult()
	result.Eligible = true

	if domestic {
		result.Amount = rates.DeniedBoardingDomestic
		result.ComplianceNotes = append(result.ComplianceNotes, "Denied boarding on domestic flight")
	} else {
		result.Amount = rates.DeniedBoardingInternationalLong
		result.ComplianceNotes = append(result.ComplianceNotes, "Denied boarding on international flight")
	}

	return result
}

// handleTarmacDelay applies the disembarkation rule, then folds in the
// regular delay rules when a general delay duration is also present. The
// tarmac obligation is independent of monetary compensation.
func handleTarmacDelay(rates RateTable, d DisruptionEvent) CompensationResult {
	result := newResult()

	if d.TarmacHours == nil {
		result.ComplianceNotes = append(result.ComplianceNotes, "Tarmac delay duration not specified")
		return result
	}

	if *d.TarmacHours >= 4 {
		result.ComplianceNotes = append(result.ComplianceNotes,
			"Tarmac delay of 4+ hours requires mandatory disembarkation")
		result.AlternativeArrangements = append(result.AlternativeArrangements,
			"Passenger disembarkation required after 4 hours on tarmac")
	}

	if d.DelayHours != nil {
		delayResult := handleDelay(rates, d)
		result.Eligible = delayResult.Eligible
		result.Amount = delayResult.Amount
		result.ComplianceNotes = append(result.ComplianceNotes, delayResult.ComplianceNotes...)
	}

	return result
}

// handleDowngrade refunds a percentage of the original ticket price: 75% for
// premium cabins, 50% otherwise.
func handleDowngrade(p PassengerInfo) CompensationResult {
	result := newResult()
	result.Eligible = true

	if isPremiumClass(p.BookingClass) {
		result.Amount = p.TicketPrice * 0.75
	} else {
		result.Amount = p.TicketPrice * 0.50
	}
	result.ComplianceNotes = append(result.ComplianceNotes,
		fmt.Sprintf("Service downgrade from %s class", p.BookingClass))

	return result
}

// handleBaggageIssue never yields monetary compensation under this regime;
// the carrier owes interim-expense reimbursement instead.
func handleBaggageIssue() CompensationResult {
	result := newResult()
	result.ComplianceNotes = append(result.ComplianceNotes,
		"Baggage issue - carrier must reimburse reasonable interim expenses")
	result.AlternativeArrangements = append(result.AlternativeArrangements,
		"Reimbursement for essential items while baggage is delayed")
	return result
}

// careObligations returns the duties owed during the disruption, keyed on
// the longer of the general and tarmac delays. The thresholds are
// independent and cumulative.
func careObligations(d DisruptionEvent) []string {
	hours := maxHours(d.DelayHours, d.TarmacHours)

	var obligations []string
	if hours >= 2 {
		obligations = append(obligations, "Communication: Provide updates on delay status and passenger rights")
	}
	if hours >= 3 {
		obligations = append(obligations, "Food and drink: Provide meals and refreshments")
	}
	if hours >= 8 {
		obligations = append(obligations,
			"Accommodation: Provide overnight accommodation if required",
			"Transportation: Provide transport between airport and accommodation")
	}
	return obligations
}

// rebookingRefundRights returns the rebooking and refund rights attached to
// the disruption type. Tarmac-only and baggage-only disruptions carry none.
func rebookingRefundRights(t DisruptionType) (rebooking, refund []string) {
	switch t {
	case DisruptionDelay, DisruptionCancellation:
		rebooking = append(rebooking, "Right to rebooking on next available flight at no additional cost")
		refund = append(refund, "Right to refund if passenger chooses not to travel")
	case DisruptionDeniedBoarding:
		rebooking = append(rebooking, "Right to alternative flight or rebooking")
		refund = append(refund, "Right to full refund if alternative not acceptable")
	}
	return rebooking, refund
}

// specialPassengerRights returns the additional obligations owed to minors
// and passengers with disabilities. The two blocks are independent and
// additive.
func specialPassengerRights(p PassengerInfo) (notes, care, arrangements []string) {
	if p.Type == PassengerMinor {
		notes = append(notes, "Minor passenger - enhanced care obligations apply")
		care = append(care, "Special assistance for unaccompanied minors")
	}

	if p.HasDisability || p.Type == PassengerDisability {
		notes = append(notes, "Passenger with disability - enhanced protections apply")
		care = append(care, "Assistance appropriate to passenger's disability")
		arrangements = append(arrangements, "Priority rebooking for passengers with disabilities")
	}

	return notes, care, arrangements
}

func isPremiumClass(class string) bool {
	switch strings.ToLower(class) {
	case "business", "first":
		return true
	}
	return false
}

func maxHours(values ...*float64) float64 {
	var longest float64
	for _, v := range values {
		if v != nil && *v > longest {
			longest = *v
		}
	}
	return longest
}
