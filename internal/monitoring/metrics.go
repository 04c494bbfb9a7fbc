package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	FetchesTotal  *prometheus.CounterVec
	PagesParsed   prometheus.Counter
	ContactsTotal prometheus.Counter
	ErrorsTotal   *prometheus.CounterVec
	RepairedRows  prometheus.Counter
}

// NewMetrics registers and returns the metric set. Tests pass a private
// prometheus.NewRegistry to avoid double registration on the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_fetches_total",
			Help: "The total number of HTTP fetches issued",
		}, []string{"result"}), // 'success', 'bad_status', 'transport_error'
		PagesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "scraper_result_pages_parsed_total",
			Help: "The total number of search-result pages parsed",
		}),
		ContactsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "scraper_contacts_extracted_total",
			Help: "The total number of contact records assembled",
		}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_errors_total",
			Help: "The total number of errors encountered",
		}, []string{"type"}), // e.g. 'fetch_failed', 'persist_failed'
		RepairedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "scraper_repaired_rows_total",
			Help: "The total number of phone values repaired from exponential notation",
		}),
	}
}

func (m *Metrics) IncFetch(result string) {
	m.FetchesTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncErrors(errorType string) {
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}
