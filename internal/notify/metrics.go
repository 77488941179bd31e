package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsSentTotal tracks delivered alerts by channel.
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_notifications_sent_total",
		Help: "Total number of trade alerts delivered",
	}, []string{"channel"})

	// NotificationsFailedTotal tracks delivery failures by channel.
	NotificationsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_notifications_failed_total",
		Help: "Total number of trade alert delivery failures",
	}, []string{"channel"})

	// NotificationsThrottledTotal tracks suppressed alerts by reason.
	NotificationsThrottledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymix_notifications_throttled_total",
		Help: "Total number of trade alerts suppressed by throttling",
	}, []string{"reason"})
)
