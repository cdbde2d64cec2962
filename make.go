// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import "code.hybscloud.com/rc/internal/debug"

// MakeOf turns a freshly constructed object into a live one and returns its
// first strong handle. Both counts are set to 1: the strong handle and the
// phantom weak unit held on behalf of all strong handles.
//
// MakeOf is the only origin of live objects. It panics, in every build, if
// obj is the sentinel or its counts are not zero: nonzero counts mean obj is
// already owned, or is a copy of an owned value.
func MakeOf[T Pointer, N Nullable[T]](obj T) StrongOf[T, N] {
	if isNull[T, N](obj) {
		debug.Violation("rc: cannot make the null sentinel")
	}
	t := obj.intrusiveTarget()
	if t.strong.LoadAcquire() != 0 || t.weak.LoadAcquire() != 0 {
		debug.Violation("rc: cannot make an object that is already owned")
	}
	t.serial = nextSerial()
	t.weak.StoreRelease(1)
	t.strong.StoreRelease(1)
	notify(EventMake, t.serial)
	return StrongOf[T, N]{target: obj}
}

// Make is [MakeOf] with the nil sentinel.
func Make[T Pointer](obj T) Strong[T] {
	return MakeOf[T, Nil[T]](obj)
}

// New allocates an E, lets init fill it in, and makes it live.
// init may be nil.
//
//	t := rc.New(func(t *Tensor) { t.data = make([]float32, n) })
//	defer t.Reset()
func New[E any, P interface {
	*E
	Pointer
}](init func(P)) Strong[P] {
	obj := P(new(E))
	if init != nil {
		init(obj)
	}
	return Make(obj)
}
