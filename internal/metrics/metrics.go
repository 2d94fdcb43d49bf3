package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "message_board"

// Metrics 收集留言板的計數器，使用獨立的 registry 方便測試
type Metrics struct {
	Registry *prometheus.Registry

	MessagesSubmitted prometheus.Counter
	Replies           *prometheus.CounterVec
	AdminLogins       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		MessagesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_submitted_total",
			Help:      "Number of messages accepted from visitors.",
		}),
		Replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_total",
			Help:      "Number of admin reply operations by result.",
		}, []string{"result"}),
		AdminLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_logins_total",
			Help:      "Number of admin login attempts by result.",
		}, []string{"result"}),
	}

	m.Registry.MustRegister(
		m.MessagesSubmitted,
		m.Replies,
		m.AdminLogins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}
