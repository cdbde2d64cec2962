// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import "code.hybscloud.com/atomix"

// EventKind names a lifecycle transition of an object.
type EventKind uint8

const (
	// EventMake: the object became live through Make.
	EventMake EventKind = iota + 1
	// EventTeardown: the strong count reached zero and ReleaseResources ran.
	EventTeardown
	// EventDeallocate: the weak count reached zero.
	EventDeallocate
	// EventLockFailed: a weak handle found the object dead.
	EventLockFailed
)

func (k EventKind) String() string {
	switch k {
	case EventMake:
		return "make"
	case EventTeardown:
		return "teardown"
	case EventDeallocate:
		return "deallocate"
	case EventLockFailed:
		return "lock-failed"
	}
	return "unknown"
}

// Event is one lifecycle transition.
type Event struct {
	Kind   EventKind
	Serial Serial
}

// Observer receives lifecycle events. Observe is called synchronously on
// the goroutine performing the transition, possibly from many goroutines at
// once, and must not block or touch the handles of the object.
// Count increments and decrements that do not change the lifecycle state
// are not reported.
type Observer interface {
	Observe(ev Event)
}

type observerBox struct {
	o Observer
}

// observer is published with release and read with acquire ordering.
var observer atomix.Pointer[observerBox]

// SetObserver installs o as the process-wide observer and returns the
// previous one. A nil o disables observation.
//
// Install observers before the objects they watch are shared between
// goroutines: under the race detector the atomix publication is not
// visible as synchronization.
func SetObserver(o Observer) Observer {
	var next *observerBox
	if o != nil {
		next = &observerBox{o: o}
	}
	prev := observer.SwapAcqRel(next)
	if prev == nil {
		return nil
	}
	return prev.o
}

func notify(kind EventKind, serial Serial) {
	if b := observer.LoadAcquire(); b != nil {
		b.o.Observe(Event{Kind: kind, Serial: serial})
	}
}

// Observers returns an observer forwarding each event to all of obs in order.
func Observers(obs ...Observer) Observer {
	return multiObserver(obs)
}

type multiObserver []Observer

func (m multiObserver) Observe(ev Event) {
	for _, o := range m {
		o.Observe(ev)
	}
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) {
	f(ev)
}
