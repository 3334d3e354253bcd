package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the client's delivery counters. With a nil Registerer the
// counters still count, they just aren't exported anywhere.
type metrics struct {
	reportsSent        prometheus.Counter
	sendFailures       prometheus.Counter
	reportsDropped     prometheus.Counter
	breadcrumbsEvicted prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		reportsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "errtrail",
			Name:      "reports_sent_total",
			Help:      "Reports handed to the sender, including ones that later fail in transit.",
		}),
		sendFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "errtrail",
			Name:      "send_failures_total",
			Help:      "Sends that failed with a transport error or non-success HTTP status.",
		}),
		reportsDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "errtrail",
			Name:      "reports_dropped_total",
			Help:      "Reports vetoed by the BeforeSend transform.",
		}),
		breadcrumbsEvicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "errtrail",
			Name:      "breadcrumbs_evicted_total",
			Help:      "Breadcrumbs evicted from the trail after exceeding the cap.",
		}),
	}
}
