package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"skyclaim/internal/airports"
	"skyclaim/internal/appr"
	dErrors "skyclaim/pkg/domain-errors"
	"skyclaim/pkg/platform/httputil"
	"skyclaim/pkg/requestcontext"
)

const serviceVersion = "1.0.0"

// Service defines the interface for APPR validation operations.
type Service interface {
	Validate(ctx context.Context, req appr.ValidationRequest) (*appr.Validation, error)
	RecentDecisions(ctx context.Context, limit int) ([]appr.Record, error)
	Rates() appr.RateTable
}

// Handler wires APPR endpoints to the validation service.
type Handler struct {
	service  Service
	registry *airports.Registry
	logger   *slog.Logger
}

// New constructs an APPR handler with its dependencies.
func New(service Service, registry *airports.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		registry: registry,
		logger:   logger,
	}
}

// Register mounts the APPR endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate-appr", h.HandleValidate)
	r.Post("/check-airport", h.HandleCheckAirport)
	r.Get("/canadian-airports", h.HandleAirports)
	r.Get("/appr-info", h.HandleInfo)
	r.Get("/health", h.HandleHealth)
	r.Get("/admin/decisions", h.HandleRecentDecisions)
}

// HandleValidate handles POST /validate-appr, the main validation operation.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	validation, err := h.service.Validate(ctx, req.Parsed())
	if err != nil {
		h.logger.ErrorContext(ctx, "appr validation failed",
			"request_id", requestID,
			"flight_number", req.FlightInfo.FlightNumber,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "appr validation served",
		"request_id", requestID,
		"flight_number", req.FlightInfo.FlightNumber,
		"appr_applicable", validation.Applicable,
		"eligible", validation.Result.Eligible,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromValidation(validation))
}

// HandleCheckAirport handles POST /check-airport.
func (h *Handler) HandleCheckAirport(w http.ResponseWriter, r *http.Request) {
	requestID := requestcontext.RequestID(r.Context())

	req, ok := httputil.DecodeAndPrepare[CheckAirportRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	name, isCanadian := h.registry.Name(req.AirportCode)
	if !isCanadian {
		name = "Not a Canadian airport"
	}

	httputil.WriteJSON(w, http.StatusOK, CheckAirportResponse{
		AirportCode:  req.AirportCode,
		IsCanadian:   isCanadian,
		AirportName:  name,
		APPREligible: isCanadian,
		Note:         "APPR applies only to flights departing from Canadian airports",
	})
}

// HandleAirports handles GET /canadian-airports.
func (h *Handler) HandleAirports(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, AirportsResponse{
		Airports:   h.registry.All(),
		TotalCount: h.registry.Count(),
		Note:       "APPR applies only to flights departing from these Canadian airports",
	})
}

// HandleInfo handles GET /appr-info with a summary of the modeled regime.
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	rates := h.service.Rates()

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"appr_coverage": map[string]any{
			"applies_to":             "Flights departing from Canada",
			"carrier_classification": "Large Carrier",
			"disruption_types": []string{
				"delays", "cancellations", "denied_boarding",
				"tarmac_delays", "downgrades", "baggage_issues",
			},
		},
		"compensation_structure": map[string]any{
			"large_carrier_rates": map[string]float64{
				"3_to_6_hours":                   rates.DelayTier1,
				"6_to_9_hours":                   rates.DelayTier2,
				"9_plus_hours":                   rates.DelayTier3,
				"denied_boarding_domestic":       rates.DeniedBoardingDomestic,
				"denied_boarding_international":  rates.DeniedBoardingInternational,
				"denied_boarding_intl_long_haul": rates.DeniedBoardingInternationalLong,
			},
		},
		"disruption_categories": map[string]string{
			"within_carrier_control":        "Full compensation required",
			"within_carrier_control_safety": "No monetary compensation, care obligations apply",
			"outside_carrier_control":       "No compensation, limited care obligations",
		},
		"care_obligations": map[string]string{
			"2_hours": "Communication and updates",
			"3_hours": "Food and beverages",
			"8_hours": "Accommodation and transportation",
		},
		"canadian_airports_count": h.registry.Count(),
		"tarmac_delay_rule":       "Mandatory disembarkation after 4 hours",
	})
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: requestcontext.Now(r.Context()).UTC(),
		Service:   "APPR Validation Engine",
		Version:   serviceVersion,
	})
}

// HandleRecentDecisions handles GET /admin/decisions, exposing the audit
// trail for operator inspection.
func (h *Handler) HandleRecentDecisions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := h.service.RecentDecisions(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list decisions", "error", err)
		httputil.WriteError(w, err)
		return
	}
	if records == nil {
		records = []appr.Record{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"decisions": records,
		"count":     len(records),
	})
}
