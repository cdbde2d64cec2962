// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import (
	"code.hybscloud.com/spin"

	"code.hybscloud.com/rc/internal/debug"
)

// lockSpins is the number of immediate CAS retries in Lock before spinning.
const lockSpins = 4

// WeakOf is a non-owning handle with null-sentinel policy N.
// It keeps the object's storage valid for queries but not its value alive;
// [WeakOf.Lock] upgrades it to a strong handle while the object lives.
//
// The copy rules of [StrongOf] apply: Clone for a new observer, Move to
// transfer, and exactly one of Reset or Release per defined handle.
type WeakOf[T Pointer, N Nullable[T]] struct {
	target T
}

// Weak is a non-owning handle with the nil sentinel.
type Weak[T Pointer] = WeakOf[T, Nil[T]]

// ReclaimWeakOf takes over a weak reference produced by [WeakOf.Release]
// without touching the counts. Every Release must be matched by exactly
// one ReclaimWeakOf (or [ReclaimWeak]).
func ReclaimWeakOf[T Pointer, N Nullable[T]](owningWeak T) WeakOf[T, N] {
	if debug.Enabled && !isNull[T, N](owningWeak) {
		t := owningWeak.intrusiveTarget()
		strong, weak := t.strong.LoadAcquire(), t.weak.LoadAcquire()
		debug.Assert(weak > 1 || (strong == 0 && weak > 0),
			"rc: can only reclaim weak references released by a weak handle")
	}
	return WeakOf[T, N]{target: owningWeak}
}

// ReclaimWeak is [ReclaimWeakOf] with the nil sentinel.
func ReclaimWeak[T Pointer](owningWeak T) Weak[T] {
	return ReclaimWeakOf[T, Nil[T]](owningWeak)
}

func (w *WeakOf[T, N]) retain() {
	if !isNull[T, N](w.target) {
		w.target.intrusiveTarget().retainWeak()
	}
}

// Clone returns a new observer of the same object.
func (w WeakOf[T, N]) Clone() WeakOf[T, N] {
	v := WeakOf[T, N]{target: w.target}
	v.retain()
	return v
}

// Move transfers the reference out of w, leaving w at the sentinel.
func (w *WeakOf[T, N]) Move() WeakOf[T, N] {
	v := WeakOf[T, N]{target: w.target}
	w.target = null[T, N]()
	return v
}

// Replace takes over v and drops the reference w held before.
func (w *WeakOf[T, N]) Replace(v WeakOf[T, N]) {
	old := WeakOf[T, N]{target: w.target}
	w.target = v.target
	old.Reset()
}

// Assign makes w another observer of the object v references.
func (w *WeakOf[T, N]) Assign(v WeakOf[T, N]) {
	w.Replace(v.Clone())
}

// Swap exchanges the references of w and v.
func (w *WeakOf[T, N]) Swap(v *WeakOf[T, N]) {
	w.target, v.target = v.target, w.target
}

// Reset drops w and leaves it at the sentinel.
// Dropping the last weak unit deallocates the object.
func (w *WeakOf[T, N]) Reset() {
	obj := w.target
	w.target = null[T, N]()
	if !isNull[T, N](obj) {
		releaseWeak(obj)
	}
}

// Release returns the held reference with its weak unit and leaves w at the
// sentinel. The reference must be handed back to [ReclaimWeakOf] exactly once.
func (w *WeakOf[T, N]) Release() T {
	obj := w.UnsafeGet()
	w.target = null[T, N]()
	return obj
}

// UnsafeGet returns the observed reference without any liveness guarantee.
// The object may already be torn down; only count queries are safe on it.
func (w WeakOf[T, N]) UnsafeGet() T {
	if isNull[T, N](w.target) {
		return null[T, N]()
	}
	return w.target
}

// Lock returns a strong handle to the object, or the sentinel if the object
// is dead. Failure is not an error: the object may be gone at any moment.
//
// The strong count is raised by compare-and-swap from a nonzero value only,
// so a dead object is never revived. Observing zero is an acquire: writes
// made through the last strong handle are visible to the caller.
func (w WeakOf[T, N]) Lock() StrongOf[T, N] {
	if isNull[T, N](w.target) {
		return NullOf[T, N]()
	}
	t := w.target.intrusiveTarget()
	var sw spin.Wait
	n := t.strong.LoadAcquire()
	for spins := 0; ; spins++ {
		if n == 0 {
			notify(EventLockFailed, t.serial)
			return NullOf[T, N]()
		}
		if t.strong.CompareAndSwap(n, n+1) {
			return StrongOf[T, N]{target: w.target}
		}
		if spins >= lockSpins {
			sw.Once()
		}
		n = t.strong.LoadAcquire()
	}
}

// Expired reports whether the object is dead.
// True means dead at the moment of observation, and writes made through the
// last strong handle are visible; false is only a snapshot.
func (w WeakOf[T, N]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount returns the strong count of the observed object, or 0 for the
// sentinel.
func (w WeakOf[T, N]) UseCount() uint32 {
	if isNull[T, N](w.target) {
		return 0
	}
	return w.target.intrusiveTarget().strong.LoadAcquire()
}

// WeakUseCount returns the weak count of the observed object, including the
// phantom unit while it is alive, or 0 for the sentinel.
func (w WeakOf[T, N]) WeakUseCount() uint32 {
	if isNull[T, N](w.target) {
		return 0
	}
	return w.target.intrusiveTarget().weak.LoadAcquire()
}

// RebindWeak moves w into a handle with a different sentinel policy.
func RebindWeak[To Nullable[T], T Pointer, From Nullable[T]](w *WeakOf[T, From]) WeakOf[T, To] {
	return WeakOf[T, To]{target: rebind[T, To, From](w.Move().target)}
}
