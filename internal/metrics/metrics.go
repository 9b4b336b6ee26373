package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pairline_submissions_total",
			Help: "Form submissions by form and outcome",
		},
		[]string{"form", "outcome"}, // consultation|newsletter , accepted|rejected|failed
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pairline_notifications_total",
			Help: "Transactional emails by kind and outcome",
		},
		[]string{"kind", "outcome"}, // confirmation|admin-alert|welcome , sent|failed
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		SubmissionsTotal,
		NotificationsTotal,
	)
}
