package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnalysis(t *testing.T) {
	m := New()

	m.ObserveAnalysis("ok", 20*time.Millisecond)
	m.ObserveAnalysis("ok", 30*time.Millisecond)
	m.ObserveAnalysis("no_barcode_found", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues("no_barcode_found")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.analysisSeconds))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/analyzer/greenPass/analysis/perform", http.StatusOK)
	m.ObserveRequest(http.MethodPost, "/analyzer/greenPass/analysis/perform", http.StatusInternalServerError)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/analyzer/greenPass/analysis/perform", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodPost, "/analyzer/greenPass/analysis/perform", "500")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveAnalysis("type_mismatch", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `greenpass_analyses_total{outcome="type_mismatch"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
