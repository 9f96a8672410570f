package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndNilReceiver(t *testing.T) {
	m := New()
	m.VisitSaved("create")
	m.VisitSaved("create")
	m.FormRejected("update", "date")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.visitsSaved.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.formErrors.WithLabelValues("update", "date")))

	var off *Metrics
	assert.NotPanics(t, func() {
		off.VisitSaved("create")
		off.FormRejected("create", "date")
	})
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pets/"+id, nil))
	}

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() != "petclinic_http_request_duration_seconds" {
			continue
		}
		require.Len(t, f.GetMetric(), 1, "ids must not become labels")
		labels := map[string]string{}
		for _, l := range f.GetMetric()[0].GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		assert.Equal(t, "/pets/{petID}", labels["route"])
		assert.Equal(t, "418", labels["status"])
		assert.Equal(t, uint64(3), f.GetMetric()[0].GetHistogram().GetSampleCount())
		found = true
	}
	assert.True(t, found)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.VisitSaved("update")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `petclinic_visits_saved_total{op="update"} 1`))
}
