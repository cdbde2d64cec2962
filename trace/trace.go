// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trace logs rc object lifecycle events through a logr.Logger.
//
// Lifecycle transitions are logged at V(1), lock failures at V(2).
// Keys: "serial" (the object serial), "event".
package trace

import (
	"github.com/go-logr/logr"

	"code.hybscloud.com/rc"
)

// Observer logs lifecycle events.
type Observer struct {
	log logr.Logger
}

// New returns an Observer writing to log.
func New(log logr.Logger) Observer {
	return Observer{log: log.WithName("rc")}
}

// Observe implements rc.Observer.
func (o Observer) Observe(ev rc.Event) {
	switch ev.Kind {
	case rc.EventMake:
		o.log.V(1).Info("object made", "event", ev.Kind.String(), "serial", ev.Serial)
	case rc.EventTeardown:
		o.log.V(1).Info("object torn down", "event", ev.Kind.String(), "serial", ev.Serial)
	case rc.EventDeallocate:
		o.log.V(1).Info("object deallocated", "event", ev.Kind.String(), "serial", ev.Serial)
	case rc.EventLockFailed:
		o.log.V(2).Info("lock on dead object", "event", ev.Kind.String(), "serial", ev.Serial)
	}
}
