package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AcceptanceMetrics covers the write path, report generation and the
// spreadsheet import.
type AcceptanceMetrics struct {
	AcceptancesCreatedTotal *prometheus.CounterVec
	AcceptancesUpdatedTotal prometheus.Counter
	AcceptancesDeletedTotal prometheus.Counter

	ReportsGeneratedTotal *prometheus.CounterVec
	ReportDuration        *prometheus.HistogramVec

	ImportRowsTotal     prometheus.Counter
	ImportFailuresTotal prometheus.Counter

	BackupsTotal *prometheus.CounterVec
}

var (
	defaultMetrics *AcceptanceMetrics
	defaultOnce    sync.Once
)

// Default returns the process-wide metrics set. promauto registers on the
// default registry, so construction happens exactly once.
func Default() *AcceptanceMetrics {
	defaultOnce.Do(func() {
		defaultMetrics = &AcceptanceMetrics{
			AcceptancesCreatedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "acceptances_created_total",
					Help: "Acceptance records created, by status",
				},
				[]string{"status"},
			),
			AcceptancesUpdatedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "acceptances_updated_total",
					Help: "Acceptance records updated in place",
				},
			),
			AcceptancesDeletedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "acceptances_deleted_total",
					Help: "Acceptance records hard-deleted",
				},
			),
			ReportsGeneratedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "reports_generated_total",
					Help: "Report artifacts generated, by format",
				},
				[]string{"format"},
			),
			ReportDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "report_generation_duration_seconds",
					Help:    "Time spent filtering, grouping and rendering a report",
					Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
				},
				[]string{"format"},
			),
			ImportRowsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "import_rows_total",
					Help: "Rows inserted through the spreadsheet import",
				},
			),
			ImportFailuresTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "import_failures_total",
					Help: "Spreadsheet imports rejected as a whole batch",
				},
			),
			BackupsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "backups_total",
					Help: "Database dump invocations, by result",
				},
				[]string{"result"},
			),
		}
	})

	return defaultMetrics
}

func (m *AcceptanceMetrics) RecordCreated(status string) {
	m.AcceptancesCreatedTotal.WithLabelValues(status).Inc()
}

func (m *AcceptanceMetrics) RecordUpdated() {
	m.AcceptancesUpdatedTotal.Inc()
}

func (m *AcceptanceMetrics) RecordDeleted() {
	m.AcceptancesDeletedTotal.Inc()
}

func (m *AcceptanceMetrics) RecordReport(format string, started time.Time) {
	m.ReportsGeneratedTotal.WithLabelValues(format).Inc()
	m.ReportDuration.WithLabelValues(format).Observe(time.Since(started).Seconds())
}

func (m *AcceptanceMetrics) RecordImport(rows int) {
	m.ImportRowsTotal.Add(float64(rows))
}

func (m *AcceptanceMetrics) RecordImportFailure() {
	m.ImportFailuresTotal.Inc()
}

func (m *AcceptanceMetrics) RecordBackup(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}

	m.BackupsTotal.WithLabelValues(result).Inc()
}

// Serve exposes /metrics on its own listener, away from the API port.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return http.ListenAndServe(addr, mux)
}
