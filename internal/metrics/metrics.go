package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"leadline/internal/db"
)

var (
	qualificationDesc = prometheus.NewDesc(
		"leadline_qualifications_total",
		"Total qualification decisions by tier, transfer target and urgency",
		[]string{"tier", "transfer_target", "urgency"},
		nil,
	)
)

// OutcomeCollector is a custom Prometheus collector that reads qualification
// outcome counts from the database on each scrape.
type OutcomeCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *OutcomeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- qualificationDesc
}

// Collect queries the database for all outcome counts and emits them as counters.
func (c *OutcomeCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.GetAllOutcomeCounts(context.Background())
	if err != nil {
		slog.Error("failed to collect qualification metrics", "error", err)
		return
	}
	for _, o := range counts {
		ch <- prometheus.MustNewConstMetric(
			qualificationDesc,
			prometheus.CounterValue,
			float64(o.Count),
			o.Tier,
			o.TransferTarget,
			o.Urgency,
		)
	}
}

// Recorder provides async outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&OutcomeCollector{db: database})
	})
}

// RecordOutcome asynchronously records a qualification outcome.
func RecordOutcome(tier, transferTarget, urgency string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementOutcome(context.Background(), tier, transferTarget, urgency); err != nil {
			slog.Error("failed to record qualification outcome",
				"tier", tier, "transfer_target", transferTarget, "urgency", urgency, "error", err)
		}
	}()
}
