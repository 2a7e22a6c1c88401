package polar

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// decodeCounters accumulates per-decoder decode metrics. Fields are atomics
// so a metrics scrape can read them while the owner is decoding.
type decodeCounters struct {
	decodes    atomic.Int64
	leafVisits atomic.Int64
	totalNanos atomic.Int64
	lastNanos  atomic.Int64
}

func (c *decodeCounters) record(d time.Duration, leaves int) {
	c.decodes.Add(1)
	c.leafVisits.Add(int64(leaves))
	c.totalNanos.Add(int64(d))
	c.lastNanos.Store(int64(d))
}

// DecodeStats is an exported snapshot of a decoder's decode metrics.
type DecodeStats struct {
	Decodes    int64
	LeafVisits int64
	Total      time.Duration
	Last       time.Duration
	AvgPerCall time.Duration
}

// Stats returns a snapshot of the accumulated decode metrics.
func (d *Decoder) Stats() DecodeStats {
	n := d.stats.decodes.Load()
	total := time.Duration(d.stats.totalNanos.Load())
	avg := time.Duration(0)
	if n > 0 {
		avg = total / time.Duration(n)
	}
	return DecodeStats{
		Decodes:    n,
		LeafVisits: d.stats.leafVisits.Load(),
		Total:      total,
		Last:       time.Duration(d.stats.lastNanos.Load()),
		AvgPerCall: avg,
	}
}

// ResetStats clears the accumulated decode metrics.
func (d *Decoder) ResetStats() {
	d.stats.decodes.Store(0)
	d.stats.leafVisits.Store(0)
	d.stats.totalNanos.Store(0)
	d.stats.lastNanos.Store(0)
}

// DecoderCollector exposes a decoder's decode metrics to Prometheus.
type DecoderCollector struct {
	d *Decoder

	decodes    *prometheus.Desc
	leafVisits *prometheus.Desc
	seconds    *prometheus.Desc
}

var _ prometheus.Collector = (*DecoderCollector)(nil)

// NewDecoderCollector wraps d for registration in a Prometheus registry.
// name labels the metrics so several decoders can coexist.
func NewDecoderCollector(d *Decoder, name string) *DecoderCollector {
	labels := prometheus.Labels{"decoder": name}
	return &DecoderCollector{
		d: d,
		decodes: prometheus.NewDesc(
			"polar_decodes_total",
			"Number of completed decode passes.",
			nil, labels,
		),
		leafVisits: prometheus.NewDesc(
			"polar_leaf_visits_total",
			"Number of decoding tree leaves processed.",
			nil, labels,
		),
		seconds: prometheus.NewDesc(
			"polar_decode_seconds_total",
			"Cumulative wall time spent in decode passes.",
			nil, labels,
		),
	}
}

func (c *DecoderCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.decodes
	ch <- c.leafVisits
	ch <- c.seconds
}

func (c *DecoderCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.d.Stats()
	ch <- prometheus.MustNewConstMetric(c.decodes, prometheus.CounterValue, float64(s.Decodes))
	ch <- prometheus.MustNewConstMetric(c.leafVisits, prometheus.CounterValue, float64(s.LeafVisits))
	ch <- prometheus.MustNewConstMetric(c.seconds, prometheus.CounterValue, s.Total.Seconds())
}
