package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveGenerationDuration("recursive", 150*time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.IncBarrelResult(ResultWritten)
	pr.IncBarrelResult(ResultWritten)
	pr.IncBarrelResult(ResultEmpty)
	pr.ObserveExportCount(3)
	pr.IncChildFailure()

	assert.InDelta(t, 2, testutil.ToFloat64(pr.barrelResults.WithLabelValues(string(ResultWritten))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.barrelResults.WithLabelValues(string(ResultEmpty))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.childFailures), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.runOutcomes.WithLabelValues(string(OutcomeSuccess))), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveGenerationDuration("regular", time.Second)
		pr.IncRunOutcome(OutcomeFailed)
		pr.IncBarrelResult(ResultFailed)
		pr.ObserveExportCount(1)
		pr.IncChildFailure()
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncBarrelResult(ResultWritten)

	path := filepath.Join(t.TempDir(), "barrelgen.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `barrelgen_barrel_results_total{result="written"} 1`)
}
