// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package raw manipulates the counts of rc objects through bare references,
// for call sites that cannot carry typed handles across an API boundary.
//
// Every function materializes the matching handle with Reclaim or
// ReclaimWeak, performs the operation, and Releases the handle again, so the
// count arithmetic is exactly that of the typed paths.
//
// Nothing here is checked at run time beyond the rcdebug assertions of the
// handle types. The caller guarantees that:
//
//   - IncRef, DecRef, MakeWeak and UseCount get a reference that carries a
//     strong claim (obtained from Strong.Release or IncRef).
//   - IncWeakRef, DecWeakRef, Lock and WeakUseCount get a reference that
//     carries a weak claim (obtained from Weak.Release, MakeWeak or IncWeakRef).
//
// Go pointers passed through cgo remain subject to the cgo pointer rules.
package raw

import (
	"code.hybscloud.com/rc"
)

// IncRef adds a strong claim to self. Nil is ignored.
func IncRef[T rc.Pointer](self T) {
	p := rc.Reclaim(self)
	q := p.Clone()
	p.Release()
	q.Release()
}

// DecRef gives up one strong claim on self, tearing it down and possibly
// deallocating it when that was the last one. Nil is ignored.
func DecRef[T rc.Pointer](self T) {
	p := rc.Reclaim(self)
	p.Reset()
}

// MakeWeak returns a new weak claim on self, which keeps its strong claim.
func MakeWeak[T rc.Pointer](self T) T {
	p := rc.Reclaim(self)
	w := p.Downgrade()
	p.Release()
	return w.Release()
}

// UseCount returns the strong count of self.
func UseCount[T rc.Pointer](self T) uint32 {
	p := rc.Reclaim(self)
	n := p.UseCount()
	p.Release()
	return n
}

// IncWeakRef adds a weak claim to self. Nil is ignored.
func IncWeakRef[T rc.Pointer](self T) {
	w := rc.ReclaimWeak(self)
	v := w.Clone()
	w.Release()
	v.Release()
}

// DecWeakRef gives up one weak claim on self, deallocating it when that was
// the last unit. Nil is ignored.
func DecWeakRef[T rc.Pointer](self T) {
	w := rc.ReclaimWeak(self)
	w.Reset()
}

// Lock tries to turn the weak claim on self into an additional strong
// claim. It returns self with a new strong claim, or nil if self is dead.
// The weak claim is kept either way.
func Lock[T rc.Pointer](self T) T {
	w := rc.ReclaimWeak(self)
	p := w.Lock()
	w.Release()
	return p.Release()
}

// WeakUseCount returns the strong count of self as observed through a weak
// claim; 0 means self is dead.
func WeakUseCount[T rc.Pointer](self T) uint32 {
	w := rc.ReclaimWeak(self)
	n := w.UseCount()
	w.Release()
	return n
}
