package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total emails accepted by the delivery provider",
		},
		[]string{"scene"},
	)

	EmailFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_failures_total",
			Help: "Total emails the delivery provider rejected",
		},
		[]string{"scene"},
	)

	LogWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "email_log_write_failures_total",
			Help: "Audit log writes that failed without affecting the response",
		},
	)
)

func Init() {
	prometheus.MustRegister(EmailsSent)
	prometheus.MustRegister(EmailFailures)
	prometheus.MustRegister(LogWriteFailures)
}
