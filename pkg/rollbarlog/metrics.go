package rollbarlog

import "github.com/prometheus/client_golang/prometheus"

const (
	kindError   = "error"
	kindMessage = "message"
)

type reportMetrics struct {
	reports *prometheus.CounterVec
}

func newReportMetrics(reg prometheus.Registerer) (*reportMetrics, error) {
	reports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rollbarlog",
		Name:      "reports_total",
		Help:      "Records dispatched to the reporter, by kind and severity.",
	}, []string{"kind", "level"})

	if err := reg.Register(reports); err != nil {
		return nil, err
	}
	return &reportMetrics{reports: reports}, nil
}

func (m *reportMetrics) observe(kind, level string) {
	if m == nil {
		return
	}
	m.reports.WithLabelValues(kind, level).Inc()
}
