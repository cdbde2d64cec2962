// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import "code.hybscloud.com/rc/internal/debug"

// StrongOf is an owning handle to an object with null-sentinel policy N.
// While a defined StrongOf exists the object is alive.
//
// A StrongOf is a value holding one reference. Duplicating it by plain
// assignment does not add an owner: use [StrongOf.Clone] for a new owner and
// [StrongOf.Move] to transfer ownership. Every defined handle must end in
// exactly one of Reset, Release or a Move whose result is reset later.
type StrongOf[T Pointer, N Nullable[T]] struct {
	target T
}

// Strong is an owning handle with the nil sentinel.
type Strong[T Pointer] = StrongOf[T, Nil[T]]

// NullOf returns a handle holding the sentinel of N.
func NullOf[T Pointer, N Nullable[T]]() StrongOf[T, N] {
	return StrongOf[T, N]{target: null[T, N]()}
}

// ReclaimOf takes over ownership of a reference produced by
// [StrongOf.Release] without touching the counts.
//
// Every Release must be matched by exactly one ReclaimOf (or [Reclaim]).
// Reclaiming a reference that was not released leads to a double
// decrement; this pairing is not checked at run time.
func ReclaimOf[T Pointer, N Nullable[T]](owning T) StrongOf[T, N] {
	if debug.Enabled && !isNull[T, N](owning) {
		debug.Assert(owning.intrusiveTarget().strong.LoadAcquire() > 0,
			"rc: can only reclaim references released by a strong handle")
	}
	return StrongOf[T, N]{target: owning}
}

// Reclaim is [ReclaimOf] with the nil sentinel.
func Reclaim[T Pointer](owning T) Strong[T] {
	return ReclaimOf[T, Nil[T]](owning)
}

// RetainOf returns a new owner of an object reachable through a non-owning
// raw reference. Someone else must hold a strong handle to it for the
// duration of the call; the strong count is increased.
func RetainOf[T Pointer, N Nullable[T]](borrowed T) StrongOf[T, N] {
	if debug.Enabled && !isNull[T, N](borrowed) {
		debug.Assert(borrowed.intrusiveTarget().strong.LoadAcquire() > 0,
			"rc: can only retain references that are owned by someone")
	}
	p := StrongOf[T, N]{target: borrowed}
	p.retain()
	return p
}

// Retain is [RetainOf] with the nil sentinel.
func Retain[T Pointer](borrowed T) Strong[T] {
	return RetainOf[T, Nil[T]](borrowed)
}

// Rebind moves p into a handle with a different sentinel policy.
// The sentinel of From becomes the sentinel of To; counts are untouched.
func Rebind[To Nullable[T], T Pointer, From Nullable[T]](p *StrongOf[T, From]) StrongOf[T, To] {
	return StrongOf[T, To]{target: rebind[T, To, From](p.Move().target)}
}

func (p *StrongOf[T, N]) retain() {
	if !isNull[T, N](p.target) {
		p.target.intrusiveTarget().retainStrong()
	}
}

// Get returns the held reference, or the sentinel.
// The reference stays valid only while p (or another owner) is alive.
func (p StrongOf[T, N]) Get() T {
	if isNull[T, N](p.target) {
		return null[T, N]()
	}
	return p.target
}

// Defined reports whether p references an object.
func (p StrongOf[T, N]) Defined() bool {
	return !isNull[T, N](p.target)
}

// Clone returns a new owner of the same object.
func (p StrongOf[T, N]) Clone() StrongOf[T, N] {
	q := StrongOf[T, N]{target: p.target}
	q.retain()
	return q
}

// Move transfers the reference out of p, leaving p at the sentinel.
func (p *StrongOf[T, N]) Move() StrongOf[T, N] {
	q := StrongOf[T, N]{target: p.target}
	p.target = null[T, N]()
	return q
}

// Replace takes ownership of q and drops the reference p held before.
func (p *StrongOf[T, N]) Replace(q StrongOf[T, N]) {
	old := StrongOf[T, N]{target: p.target}
	p.target = q.target
	old.Reset()
}

// Assign makes p another owner of the object q references.
func (p *StrongOf[T, N]) Assign(q StrongOf[T, N]) {
	p.Replace(q.Clone())
}

// Swap exchanges the references of p and q.
func (p *StrongOf[T, N]) Swap(q *StrongOf[T, N]) {
	p.target, q.target = q.target, p.target
}

// Reset drops p's ownership and leaves p at the sentinel.
// Dropping the last strong handle runs ReleaseResources and gives up the
// phantom weak unit, deallocating the object if no weak handle remains.
func (p *StrongOf[T, N]) Reset() {
	obj := p.target
	p.target = null[T, N]()
	if !isNull[T, N](obj) {
		releaseStrong(obj)
	}
}

// Release returns the held reference together with its ownership and leaves
// p at the sentinel. The count is not decreased; the reference must be
// handed back to [ReclaimOf] exactly once.
func (p *StrongOf[T, N]) Release() T {
	obj := p.Get()
	p.target = null[T, N]()
	return obj
}

// Downgrade returns a weak handle observing the same object.
func (p StrongOf[T, N]) Downgrade() WeakOf[T, N] {
	w := WeakOf[T, N]{target: p.target}
	w.retain()
	return w
}

// UseCount returns the current strong count, or 0 for the sentinel.
func (p StrongOf[T, N]) UseCount() uint32 {
	if isNull[T, N](p.target) {
		return 0
	}
	return p.target.intrusiveTarget().strong.LoadAcquire()
}

// WeakUseCount returns the current weak count, including the phantom unit,
// or 0 for the sentinel.
func (p StrongOf[T, N]) WeakUseCount() uint32 {
	if isNull[T, N](p.target) {
		return 0
	}
	return p.target.intrusiveTarget().weak.LoadAcquire()
}

// Unique reports whether p is the only strong owner.
func (p StrongOf[T, N]) Unique() bool {
	return p.UseCount() == 1
}
