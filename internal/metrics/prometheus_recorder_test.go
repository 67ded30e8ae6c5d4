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
	pr.ObserveLoadDuration(15 * time.Millisecond)
	pr.IncLoadOutcome(OutcomeSuccess, "")
	pr.IncLoadOutcome(OutcomeFailed, "config")
	pr.IncLoadOutcome(OutcomeFailed, "config")
	pr.SetPluginsResolved("theme", 3)
	pr.SetDocsVersions("default", 2)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.loadOutcomes.WithLabelValues("failed", "config")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.pluginsResolved.WithLabelValues("theme")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 4)
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncLoadOutcome(OutcomeSuccess, "")

	path := filepath.Join(t.TempDir(), "docsite.prom")
	require.NoError(t, pr.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "docsite_config_loads_total")
	assert.Contains(t, string(data), `outcome="success"`)

	err = pr.WriteTextfile(filepath.Join(t.TempDir(), "missing", "docsite.prom"))
	assert.Error(t, err)
}

func TestNilPrometheusRecorder(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveLoadDuration(time.Second)
		pr.IncLoadOutcome(OutcomeSuccess, "")
		pr.SetPluginsResolved("plugin", 1)
		pr.SetDocsVersions("default", 1)
	})
}
