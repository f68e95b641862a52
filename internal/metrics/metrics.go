package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "presenca"

// Metrics holds the HTTP and domain collectors of one registry.
type Metrics struct {
	Registry *prometheus.Registry

	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	RecordsCreated      prometheus.Counter
	RecordStatusToggles *prometheus.CounterVec
	SignaturesSubmitted prometheus.Counter
	SignatureRejections *prometheus.CounterVec
	ValidationLookups   *prometheus.CounterVec
	Exports             *prometheus.CounterVec
	AdminLogins         *prometheus.CounterVec
}

// NewMetrics registers every collector on a fresh registry, along with the Go and process collectors.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RecordsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Attendance records created.",
		}),
		RecordStatusToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_status_toggles_total",
			Help:      "Record status changes, by resulting status.",
		}, []string{"status"}),
		SignaturesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signatures_submitted_total",
			Help:      "Signatures accepted.",
		}),
		SignatureRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_rejections_total",
			Help:      "Signatures rejected, by reason.",
		}, []string{"reason"}),
		ValidationLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_lookups_total",
			Help:      "Validation code lookups, by result.",
		}, []string{"result"}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Generated exports, by format.",
		}, []string{"format"}),
		AdminLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_logins_total",
			Help:      "Admin login attempts, by result.",
		}, []string{"result"}),
	}

	toRegister := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCount,
		m.RequestDuration,
		m.RecordsCreated,
		m.RecordStatusToggles,
		m.SignaturesSubmitted,
		m.SignatureRejections,
		m.ValidationLookups,
		m.Exports,
		m.AdminLogins,
	}
	for _, c := range toRegister {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
