// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import (
	"cmp"
	"encoding/binary"
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// Handles are comparable values: == compares the held references, so
// handles can be used directly as map keys. The functions below add
// ordering and hashing by reference identity. Unlike ==, they treat a zero
// handle and a handle at a custom sentinel as the same reference.

// addressOf returns the identity of obj as an address; nil is 0.
func addressOf[T Pointer](obj T) uintptr {
	var zero T
	if obj == zero {
		return 0
	}
	return uintptr(unsafe.Pointer(obj.intrusiveTarget()))
}

// hashAddress mixes an address into a 64-bit hash.
func hashAddress(addr uintptr) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(addr))
	return xxhash.Sum64(b[:])
}

// Equal reports whether p and q reference the same object.
func (p StrongOf[T, N]) Equal(q StrongOf[T, N]) bool {
	return p.Get() == q.Get()
}

// Hash returns a hash of the held reference's identity.
func (p StrongOf[T, N]) Hash() uint64 {
	return hashAddress(addressOf(p.Get()))
}

// Compare orders strong handles by the address of the referenced object.
// A nil reference sorts first. Suitable for slices.SortFunc.
func Compare[T Pointer, N Nullable[T]](p, q StrongOf[T, N]) int {
	return cmp.Compare(addressOf(p.Get()), addressOf(q.Get()))
}

// Equal reports whether w and v observe the same object.
func (w WeakOf[T, N]) Equal(v WeakOf[T, N]) bool {
	return w.UnsafeGet() == v.UnsafeGet()
}

// Hash returns a hash of the observed reference's identity.
func (w WeakOf[T, N]) Hash() uint64 {
	return hashAddress(addressOf(w.UnsafeGet()))
}

// CompareWeak orders weak handles by the address of the observed object.
func CompareWeak[T Pointer, N Nullable[T]](w, v WeakOf[T, N]) int {
	return cmp.Compare(addressOf(w.UnsafeGet()), addressOf(v.UnsafeGet()))
}
