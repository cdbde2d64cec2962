// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !rcdebug

package debug

// Enabled reports whether invariant checks are compiled in.
const Enabled = false

// Assert is a no-op without the rcdebug build tag.
// Arguments are still evaluated; guard costly ones with Enabled.
func Assert(bool, string) {}
