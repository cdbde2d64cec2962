// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package debug holds the invariant checks of the rc package.
// Checks compile to nothing unless the rcdebug build tag is set.
package debug

import "github.com/pkg/errors"

// ErrInvariant is wrapped by every panic raised by a failed check.
var ErrInvariant = errors.New("invariant violation")

// Violation panics with msg wrapped around ErrInvariant.
// The panic value carries the stack of the violating call.
func Violation(msg string) {
	panic(errors.Wrap(ErrInvariant, msg))
}
