// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import "code.hybscloud.com/rc/internal/debug"

// Target is the count state every ownable object carries.
// Embed it by value as a field of the object type:
//
//	type Tensor struct {
//		rc.Target
//		data []float32
//	}
//
// A zero Target has both counts at zero, which is the state of every object
// that was never passed to [Make]. Counts belong to the storage location,
// not to the logical value: do not copy a Target that has been made live.
// The counters carry a noCopy marker, so go vet's copylocks check flags
// value copies of a Target and of every type embedding it.
type Target struct {
	strong count
	weak   count
	serial Serial
}

// intrusiveTarget is promoted to every type embedding Target.
func (t *Target) intrusiveTarget() *Target {
	return t
}

// Object is implemented by pointers to types that embed [Target].
// The method is unexported, so embedding is the only way to satisfy it.
type Object interface {
	intrusiveTarget() *Target
}

// Pointer is the type constraint of the handle types.
// T is usually a pointer to a struct embedding [Target].
type Pointer interface {
	comparable
	Object
}

// ResourceReleaser is implemented by objects that free expensive resources
// when the last strong handle goes away. ReleaseResources runs exactly once,
// before the object is deallocated. Weak handles may still exist: the object
// must tolerate count queries afterwards, but its payload is not used again.
type ResourceReleaser interface {
	ReleaseResources()
}

// Disposer is implemented by objects that want to know when their storage
// is given up, i.e. when the last weak unit is gone. Dispose runs exactly
// once. Objects that only ever had weak handles are disposed without
// ReleaseResources being called.
type Disposer interface {
	Dispose()
}

// SerialOf returns the serial assigned to obj by [Make].
// Objects that were never made have serial 0.
func SerialOf(obj Object) Serial {
	return obj.intrusiveTarget().serial
}

// releaseStrong drops one strong unit of obj.
// The Add result alone decides which caller performs teardown.
func releaseStrong[T Pointer](obj T) {
	t := obj.intrusiveTarget()
	n := t.strong.Add(^uint32(0))
	debug.Assert(n != ^uint32(0), "rc: strong count dropped below zero")
	if n != 0 {
		return
	}
	if r, ok := any(obj).(ResourceReleaser); ok {
		r.ReleaseResources()
	}
	notify(EventTeardown, t.serial)
	releaseWeak(obj)
}

// releaseWeak drops one weak unit of obj, deallocating on zero.
func releaseWeak[T Pointer](obj T) {
	t := obj.intrusiveTarget()
	n := t.weak.Add(^uint32(0))
	debug.Assert(n != ^uint32(0), "rc: weak count dropped below zero")
	if n == 0 {
		deallocate(obj)
	}
}

// deallocate is the only teardown path of the storage.
func deallocate[T Pointer](obj T) {
	t := obj.intrusiveTarget()
	if debug.Enabled {
		debug.Assert(t.strong.LoadAcquire() == 0, "rc: deallocating an object that still has strong handles")
		debug.Assert(t.weak.LoadAcquire() == 0, "rc: deallocating an object that still has weak handles")
	}
	if d, ok := any(obj).(Disposer); ok {
		d.Dispose()
	}
	notify(EventDeallocate, t.serial)
}

// retainStrong adds one strong unit. Reviving a dead object is a violation.
func (t *Target) retainStrong() {
	n := t.strong.Add(1)
	debug.Assert(n != 1, "rc: cannot increase strong count after it reached zero")
}

// retainWeak adds one weak unit. Reviving deallocated storage is a violation.
func (t *Target) retainWeak() {
	n := t.weak.Add(1)
	debug.Assert(n != 1, "rc: cannot increase weak count after it reached zero")
}
