// Package metrics tracks per-invocation counters and, on exit,
// best-effort writes them to disk in the Prometheus textfile-collector
// format (spec §6 NEW item 10) — the plugin is a one-shot process and
// cannot itself be scraped.
package metrics

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector holds this invocation's counters.
type Collector struct {
	registry *prometheus.Registry

	AddTotal         prometheus.Counter
	AddFailuresTotal *prometheus.CounterVec
	DelTotal         prometheus.Counter
	DelFailuresTotal *prometheus.CounterVec
	IPAMDurationMS   prometheus.Gauge
}

// New registers a fresh set of counters against a private registry, so
// writing the textfile never mixes in process-default collectors.
func New() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		AddTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fabric_cni_add_total",
			Help: "Total number of ADD commands processed.",
		}),
		AddFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fabric_cni_add_failures_total",
			Help: "Total number of ADD commands that failed, by error kind.",
		}, []string{"kind"}),
		DelTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fabric_cni_del_total",
			Help: "Total number of DEL commands processed.",
		}),
		DelFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fabric_cni_del_failures_total",
			Help: "Total number of DEL commands that failed, by error kind.",
		}, []string{"kind"}),
		IPAMDurationMS: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fabric_cni_ipam_duration_milliseconds",
			Help: "Duration of the most recent IPAM call.",
		}),
	}

	registry.MustRegister(c.AddTotal, c.AddFailuresTotal, c.DelTotal, c.DelFailuresTotal, c.IPAMDurationMS)
	return c
}

// WriteTextfile gathers the current metric values and atomically writes
// them to <logDir>/fabric-cni.prom in the node-exporter textfile
// collector format. Failure is never fatal to the caller.
func (c *Collector) WriteTextfile(logDir string) error {
	families, err := c.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating metrics directory %s", logDir)
	}

	dest := filepath.Join(logDir, "fabric-cni.prom")
	tmp := dest + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "creating temporary metrics file %s", tmp)
	}

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			f.Close()
			os.Remove(tmp)
			return errors.Wrap(err, "encoding metric family")
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "closing temporary metrics file")
	}

	if err := os.Rename(tmp, dest); err != nil {
		return errors.Wrapf(err, "renaming metrics file into place at %s", dest)
	}
	return nil
}
