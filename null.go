// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

// Nullable is the null-sentinel policy of a handle type.
// Null returns the reference that stands for "no object". It is called on
// the zero value of the policy type, so policies are empty structs resolved
// at compile time. Handles never touch the counts of the sentinel, which
// allows a static, never-made default instance to serve as the sentinel.
//
// The zero value of a handle holds the zero T, which every policy treats
// like its sentinel: a handle field left unset is simply undefined.
type Nullable[T Pointer] interface {
	Null() T
}

// Nil is the default policy: the zero value of T (a nil pointer).
type Nil[T Pointer] struct{}

// Null returns the zero value of T.
func (Nil[T]) Null() T {
	var zero T
	return zero
}

// null returns the sentinel of policy N.
func null[T Pointer, N Nullable[T]]() T {
	var n N
	return n.Null()
}

// isNull reports whether v stands for "no object" under policy N: the
// sentinel, or the zero T held by a handle that was declared but never set.
func isNull[T Pointer, N Nullable[T]](v T) bool {
	var zero T
	return v == zero || v == null[T, N]()
}

// rebind maps the sentinel of one policy to the sentinel of another.
func rebind[T Pointer, To Nullable[T], From Nullable[T]](v T) T {
	if isNull[T, From](v) {
		return null[T, To]()
	}
	return v
}
