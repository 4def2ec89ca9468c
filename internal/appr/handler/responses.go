package handler

import (
	"time"

	"skyclaim/internal/appr"
)

// ValidateResponse is the HTTP response for POST /validate-appr.
type ValidateResponse struct {
	RequestID           string                     `json:"request_id"`
	IsAPPRApplicable    bool                       `json:"is_appr_applicable"`
	EligibilityReason   string                     `json:"appr_eligibility_reason"`
	CompensationResult  CompensationResultResponse `json:"compensation_result"`
	ProcessingTimestamp time.Time                  `json:"processing_timestamp"`
}

// CompensationResultResponse is the decision portion of the response.
type CompensationResultResponse struct {
	EligibleForCompensation bool     `json:"eligible_for_compensation"`
	CompensationAmount      float64  `json:"compensation_amount"`
	CareObligations         []string `json:"care_obligations"`
	RebookingRights         []string `json:"rebooking_rights"`
	RefundRights            []string `json:"refund_rights"`
	ComplianceNotes         []string `json:"compliance_notes"`
	AlternativeArrangements []string `json:"alternative_arrangements"`
}

// FromValidation converts a service Validation to the HTTP response.
func FromValidation(v *appr.Validation) *ValidateResponse {
	return &ValidateResponse{
		RequestID:         v.RequestID,
		IsAPPRApplicable:  v.Applicable,
		EligibilityReason: v.Reason,
		CompensationResult: CompensationResultResponse{
			EligibleForCompensation: v.Result.Eligible,
			CompensationAmount:      v.Result.Amount,
			CareObligations:         orEmpty(v.Result.CareObligations),
			RebookingRights:         orEmpty(v.Result.RebookingRights),
			RefundRights:            orEmpty(v.Result.RefundRights),
			ComplianceNotes:         orEmpty(v.Result.ComplianceNotes),
			AlternativeArrangements: orEmpty(v.Result.AlternativeArrangements),
		},
		ProcessingTimestamp: v.ProcessedAt,
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// CheckAirportResponse is the HTTP response for POST /check-airport.
type CheckAirportResponse struct {
	AirportCode  string `json:"airport_code"`
	IsCanadian   bool   `json:"is_canadian"`
	AirportName  string `json:"airport_name"`
	APPREligible bool   `json:"appr_eligible"`
	Note         string `json:"note"`
}

// HealthResponse is the HTTP response for GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// AirportsResponse is the HTTP response for GET /canadian-airports.
type AirportsResponse struct {
	Airports   map[string]string `json:"airports"`
	TotalCount int               `json:"total_count"`
	Note       string            `json:"note"`
}
