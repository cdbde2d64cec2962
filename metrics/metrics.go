// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics exposes rc object lifecycle events as prometheus metrics.
//
//	metrics.RegisterMetrics(prometheus.DefaultRegisterer)
//	rc.SetObserver(metrics.Observer{})
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/rc"
)

const rcNamespaceName = "rc"

var (
	// ObjectsMade counts objects made live.
	ObjectsMade = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: rcNamespaceName,
			Name:      "objects_made_total",
			Help:      "Total number of objects made live.",
		},
	)

	// Teardowns counts strong counts that reached zero.
	Teardowns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: rcNamespaceName,
			Name:      "teardowns_total",
			Help:      "Total number of objects whose last strong handle was dropped.",
		},
	)

	// Deallocations counts weak counts that reached zero.
	Deallocations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: rcNamespaceName,
			Name:      "deallocations_total",
			Help:      "Total number of objects whose storage was given up.",
		},
	)

	// LockFailures counts weak upgrades that found the object dead.
	LockFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: rcNamespaceName,
			Name:      "lock_failures_total",
			Help:      "Total number of weak handle upgrades that found the object dead.",
		},
	)

	// LiveObjects discloses objects made but not yet torn down.
	LiveObjects = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: rcNamespaceName,
			Name:      "live_objects",
			Help:      "Number of objects that have at least one strong handle.",
		},
	)
)

// RegisterMetrics registers the rc metrics with a given prometheus registerer.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(ObjectsMade)
	reg.MustRegister(Teardowns)
	reg.MustRegister(Deallocations)
	reg.MustRegister(LockFailures)
	reg.MustRegister(LiveObjects)
}

// Observer feeds rc lifecycle events into the package metrics.
type Observer struct{}

// Observe implements rc.Observer.
func (Observer) Observe(ev rc.Event) {
	switch ev.Kind {
	case rc.EventMake:
		ObjectsMade.Inc()
		LiveObjects.Inc()
	case rc.EventTeardown:
		Teardowns.Inc()
		LiveObjects.Dec()
	case rc.EventDeallocate:
		Deallocations.Inc()
	case rc.EventLockFailed:
		LockFailures.Inc()
	}
}
