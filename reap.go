// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Reaper moves the drop of strong handles off a hot path.
// Handles are released into a bounded lock-free single-producer
// single-consumer queue and reset later by the consumer, so teardown and
// deallocation run on the consumer's goroutine.
//
// Exactly one goroutine may call Defer and exactly one may call Reap or
// ReapN at a time.
type Reaper[T Pointer] struct {
	q lfq.SPSC[T]
}

// NewReaper creates an empty Reaper holding up to capacity deferred handles.
// Capacity rounds up to the next power of 2 and must be at least 2.
func NewReaper[T Pointer](capacity int) *Reaper[T] {
	r := &Reaper[T]{}
	r.q.Init(capacity)
	return r
}

// Cap returns the number of handles the Reaper can hold.
func (r *Reaper[T]) Cap() int {
	return r.q.Cap()
}

// Defer takes ownership of p's reference and leaves p at the sentinel.
// It reports whether the handle was queued: if the queue is full
// (iox.ErrWouldBlock) the handle is reset inline instead.
func (r *Reaper[T]) Defer(p *Strong[T]) bool {
	if !p.Defined() {
		return false
	}
	obj := p.Release()
	if err := r.q.Enqueue(&obj); err != nil {
		q := Reclaim(obj)
		q.Reset()
		return false
	}
	return true
}

// Reap resets every queued handle and returns how many it reset.
// Never blocks.
func (r *Reaper[T]) Reap() int {
	n := 0
	for {
		obj, err := r.q.Dequeue()
		if err != nil {
			return n
		}
		p := Reclaim(obj)
		p.Reset()
		n++
	}
}

// ReapN resets queued handles until at least n were reset, waiting with
// adaptive backoff while the queue is empty. Only handles for which Defer
// returned true count.
func (r *Reaper[T]) ReapN(n int) {
	var bo iox.Backoff
	for n > 0 {
		if k := r.Reap(); k > 0 {
			n -= k
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}
