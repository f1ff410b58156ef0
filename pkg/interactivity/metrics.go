package interactivity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arbor_routed_events_total",
		Help: "Routed events raised, by event name.",
	}, []string{"event"})

	handlerInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arbor_routed_handler_invocations_total",
		Help: "Routed event handler invocations by phase and handler kind (class, instance).",
	}, []string{"route", "kind"})
)
