package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyclaim/internal/airports"
	"skyclaim/internal/appr"
	"skyclaim/internal/appr/store/memory"
	"skyclaim/internal/platform/middleware"
)

func newTestRouter(t *testing.T) (chi.Router, *memory.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := airports.NewRegistry()
	engine := appr.NewEngine(registry, appr.DefaultLargeCarrierRates())
	store := memory.NewStore(100)

	svc, err := appr.NewService(engine, store, appr.WithLogger(logger))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	New(svc, registry, logger).Register(r)
	return r, store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidate(t *testing.T) {
	t.Run("carrier-controlled delay returns compensation", func(t *testing.T) {
		router, store := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/validate-appr", validBody())
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ValidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.RequestID)
		assert.True(t, resp.IsAPPRApplicable)
		assert.Equal(t, "APPR applies - flight departs from Canadian airport YYZ", resp.EligibilityReason)
		assert.False(t, resp.ProcessingTimestamp.IsZero())

		// 4h delay was not set in validBody; add one via a fresh request.
		body := validBody()
		hours := 4.0
		body.DisruptionEvent.DelayDurationHours = &hours
		rec = doJSON(t, router, http.MethodPost, "/validate-appr", body)
		require.Equal(t, http.StatusOK, rec.Code)

		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.CompensationResult.EligibleForCompensation)
		assert.Equal(t, 400.0, resp.CompensationResult.CompensationAmount)
		assert.NotEmpty(t, resp.CompensationResult.CareObligations)

		assert.Equal(t, 2, store.Len())
	})

	t.Run("non-Canadian departure is not applicable", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := validBody()
		body.FlightInfo.DepartureAirport = "LAX"
		body.FlightInfo.ArrivalAirport = "YYZ"
		hours := 4.0
		body.DisruptionEvent.DelayDurationHours = &hours

		rec := doJSON(t, router, http.MethodPost, "/validate-appr", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ValidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.IsAPPRApplicable)
		assert.False(t, resp.CompensationResult.EligibleForCompensation)
		assert.Zero(t, resp.CompensationResult.CompensationAmount)
	})

	t.Run("empty obligation lists render as arrays", func(t *testing.T) {
		router, _ := newTestRouter(t)

		body := validBody()
		body.FlightInfo.DepartureAirport = "LAX"
		rec := doJSON(t, router, http.MethodPost, "/validate-appr", body)
		require.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
		result, ok := raw["compensation_result"].(map[string]any)
		require.True(t, ok)
		for _, key := range []string{
			"care_obligations", "rebooking_rights", "refund_rights",
			"compliance_notes", "alternative_arrangements",
		} {
			_, isArray := result[key].([]any)
			assert.True(t, isArray, "expected %s to be a JSON array", key)
		}
	})

	t.Run("unknown disruption type is a client error", func(t *testing.T) {
		router, store := newTestRouter(t)

		body := validBody()
		body.DisruptionEvent.DisruptionType = "meteor_strike"
		rec := doJSON(t, router, http.MethodPost, "/validate-appr", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
		assert.Equal(t, "validation_error", errResp["error"])
		assert.Equal(t, 0, store.Len(), "rejected requests must not reach the audit trail")
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/validate-appr", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("response request_id matches the middleware header", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/validate-appr", validBody())
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ValidateResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, rec.Header().Get("X-Request-ID"), resp.RequestID)
	})
}

func TestHandleCheckAirport(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("Canadian airport", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/check-airport", CheckAirportRequest{AirportCode: "yyz"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CheckAirportResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "YYZ", resp.AirportCode)
		assert.True(t, resp.IsCanadian)
		assert.True(t, resp.APPREligible)
		assert.Equal(t, "Toronto Pearson International Airport", resp.AirportName)
	})

	t.Run("foreign airport", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/check-airport", CheckAirportRequest{AirportCode: "LAX"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp CheckAirportResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.IsCanadian)
		assert.Equal(t, "Not a Canadian airport", resp.AirportName)
	})

	t.Run("invalid code", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/check-airport", CheckAirportRequest{AirportCode: "12"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInformationalEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "APPR Validation Engine", resp.Service)
	})

	t.Run("canadian-airports", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/canadian-airports", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AirportsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, len(resp.Airports), resp.TotalCount)
		assert.Contains(t, resp.Airports, "YYZ")
	})

	t.Run("appr-info", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/appr-info", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp, "compensation_structure")
		assert.Contains(t, resp, "care_obligations")
		assert.Contains(t, resp, "tarmac_delay_rule")
	})
}

func TestHandleRecentDecisions(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/admin/decisions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var empty struct {
		Decisions []appr.Record `json:"decisions"`
		Count     int           `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&empty))
	assert.Zero(t, empty.Count)

	doJSON(t, router, http.MethodPost, "/validate-appr", validBody())

	rec = doJSON(t, router, http.MethodGet, "/admin/decisions?limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Decisions []appr.Record `json:"decisions"`
		Count     int           `json:"count"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listed))
	require.Equal(t, 1, listed.Count)
	assert.Equal(t, "WS123", listed.Decisions[0].FlightNumber)
	assert.True(t, listed.Decisions[0].Applicable)

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/admin/decisions?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
