package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCalculation(t *testing.T) {
	m := New()

	m.ObserveCalculation("natural-gas", calculator.Result{})
	m.ObserveCalculation("natural-gas", calculator.Result{
		ReferenceError: errors.New("bad mixture"),
		OperatingError: errors.New("bad mixture"),
		Pending:        []string{calculator.PendingCapacity},
	})
	m.ObserveCalculation("lpg", calculator.Result{OperatingError: errors.New("out of range")})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("natural-gas")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("lpg")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookupFailures.WithLabelValues("reference")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookupFailures.WithLabelValues("operating")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pendingInputs))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveCalculation("lng", calculator.Result{})
	m.ObserveRequest("/api/calculate", http.StatusOK, 15*time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `boiler_fuel_calculations_total{fuel="lng"} 1`), body)
	assert.Contains(t, body, "boiler_fuel_http_request_duration_seconds")
}
