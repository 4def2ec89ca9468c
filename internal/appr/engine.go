package appr

import "fmt"

// JurisdictionRegistry answers whether an airport code falls inside the
// regulated jurisdiction. Lookups must be safe for concurrent use.
type JurisdictionRegistry interface {
	IsCanadian(code string) bool
}

// Engine evaluates a single disruption against the APPR rules. It is a pure
// function of its input: the only shared state is the immutable rate table
// and the registry, so one Engine serves unbounded concurrent callers.
type Engine struct {
	registry JurisdictionRegistry
	rates    RateTable
}

// NewEngine constructs an engine over the given registry and rate table.
func NewEngine(registry JurisdictionRegistry, rates RateTable) *Engine {
	return &Engine{registry: registry, rates: rates}
}

// Rates returns the rate table the engine was configured with.
func (e *Engine) Rates() RateTable {
	return e.rates
}

// Evaluate determines APPR applicability and, when applicable, the
// compensation and passenger rights owed. The pipeline is straight-line:
// jurisdiction gate, disruption dispatch, then the three cross-cutting
// passes folded into the dispatch result.
func (e *Engine) Evaluate(req ValidationRequest) (applicable bool, reason string, result CompensationResult) {
	departure := req.Flight.DepartureAirport

	// APPR applies only to flights departing from Canada. Non-qualifying
	// flights short-circuit: no partial obligations accrue.
	if !e.registry.IsCanadian(departure) {
		return false,
			fmt.Sprintf("APPR does not apply - flight departs from %s (non-Canadian airport)", departure),
			newResult()
	}

	reason = fmt.Sprintf("APPR applies - flight departs from Canadian airport %s", departure)

	result = e.dispatch(req)
	result = e.applyCrossCuttingRules(req, result)

	return true, reason, result
}

// dispatch routes to exactly one disruption handler. An unrecognized type
// falls through to the non-eligible default; the boundary layer rejects
// unknown wire values, so this arm is reachable only programmatically.
func (e *Engine) dispatch(req ValidationRequest) CompensationResult {
	switch req.Disruption.Type {
	case DisruptionDelay:
		return handleDelay(e.rates, req.Disruption)
	case DisruptionCancellation:
		return handleCancellation(e.rates, req.Disruption)
	case DisruptionDeniedBoarding:
		domestic := e.registry.IsCanadian(req.Flight.DepartureAirport) &&
			e.registry.IsCanadian(req.Flight.ArrivalAirport)
		return handleDeniedBoarding(e.rates, domestic)
	case DisruptionTarmacDelay:
		return handleTarmacDelay(e.rates, req.Disruption)
	case DisruptionDowngrade:
		return handleDowngrade(req.Passenger)
	case DisruptionBaggageIssue:
		return handleBaggageIssue()
	default:
		return newResult()
	}
}

// applyCrossCuttingRules folds the care, rebooking/refund, and
// special-passenger passes into the dispatch result. The passes run
// unconditionally and only append.
func (e *Engine) applyCrossCuttingRules(req ValidationRequest, result CompensationResult) CompensationResult {
	result.CareObligations = append(result.CareObligations, careObligations(req.Disruption)...)

	rebooking, refund := rebookingRefundRights(req.Disruption.Type)
	result.RebookingRights = append(result.RebookingRights, rebooking...)
	result.RefundRights = append(result.RefundRights, refund...)

	notes, care, arrangements := specialPassengerRights(req.Passenger)
	result.ComplianceNotes = append(result.ComplianceNotes, notes...)
	result.CareObligations = append(result.CareObligations, care...)
	result.AlternativeArrangements = append(result.AlternativeArrangements, arrangements...)

	return result
}
