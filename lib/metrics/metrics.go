// Package metrics counts lifecycle transitions with Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pthm/hxlife"
)

// Collector holds the lifecycle counters.
type Collector struct {
	transitions *prometheus.CounterVec
	attributes  *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hxlife_transitions_total",
				Help: "Total number of lifecycle transitions",
			},
			[]string{"phase", "component"},
		),
		attributes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hxlife_attribute_changes_total",
				Help: "Total number of classified attribute changes",
			},
			[]string{"component", "type"},
		),
	}
	reg.MustRegister(c.transitions, c.attributes)
	return c
}

// Hooks returns lifecycle hooks feeding the counters.
func (c *Collector) Hooks() hxlife.Hooks {
	return hxlife.Hooks{
		OnCreated: func(_ hxlife.Element, def *hxlife.Definition) {
			c.transitions.WithLabelValues(string(hxlife.PhaseCreated), def.ID).Inc()
		},
		OnAttached: func(_ hxlife.Element, def *hxlife.Definition) {
			c.transitions.WithLabelValues(string(hxlife.PhaseAttached), def.ID).Inc()
		},
		OnDetached: func(_ hxlife.Element, def *hxlife.Definition) {
			c.transitions.WithLabelValues(string(hxlife.PhaseDetached), def.ID).Inc()
		},
		OnAttributeChanged: func(_ hxlife.Element, def *hxlife.Definition, change hxlife.AttributeChange) {
			c.attributes.WithLabelValues(def.ID, string(change.Type)).Inc()
		},
	}
}

// Transitions returns the counter for one phase and component.
func (c *Collector) Transitions(phase hxlife.Phase, component string) prometheus.Counter {
	return c.transitions.WithLabelValues(string(phase), component)
}

// AttributeChanges returns the counter for one component and change type.
func (c *Collector) AttributeChanges(component string, t hxlife.ChangeType) prometheus.Counter {
	return c.attributes.WithLabelValues(component, string(t))
}
