// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package rc

import "sync/atomic"

// count is one reference counter of a Target under the race detector.
// atomix operations are assembly the detector cannot see, so the 1→0
// transition would not order payload writes before teardown. sync/atomic
// operations are instrumented and give the detector those edges.
type count struct {
	v atomic.Uint32
}

func (c *count) LoadAcquire() uint32 { return c.v.Load() }

func (c *count) StoreRelease(val uint32) { c.v.Store(val) }

func (c *count) Add(delta uint32) uint32 { return c.v.Add(delta) }

func (c *count) CompareAndSwap(old, new uint32) bool { return c.v.CompareAndSwap(old, new) }
