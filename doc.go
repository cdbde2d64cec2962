// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rc provides intrusive reference counting: strong and weak handles
// whose counts live inside the referenced object rather than in a separate
// control block.
//
// An object becomes countable by embedding [Target]; [Make] turns it into a
// live object owned by its first [Strong] handle.
//
// # Architecture
//
//   - Counts: two lock-free counters in [Target] via [code.hybscloud.com/atomix].
//     The weak count carries one phantom unit on behalf of all strong handles
//     while the object is alive. Decrements are acquire-release and liveness
//     reads are acquire, so a goroutine that sees the strong count reach zero
//     also sees every write made through the strong handles.
//   - Race detector: atomix operations are assembly the race detector cannot
//     see. Under -race the counters switch to sync/atomic, which it does
//     see, so teardown reading the payload is not reported. The lfq queue
//     behind [Reaper] and the observer slot stay on atomix and give no such
//     edges.
//   - Teardown: when the strong count drops to zero, [ResourceReleaser] runs
//     exactly once and the phantom unit is released.
//   - Deallocation: when the weak count drops to zero, [Disposer] runs exactly
//     once and the storage is left to the garbage collector.
//   - Upgrade: [WeakOf.Lock] raises the strong count by compare-and-swap from
//     a nonzero value only, spinning with [code.hybscloud.com/spin] under
//     contention. Death is monotonic.
//   - Sentinel: the "no object" reference is a compile-time policy
//     ([Nullable]); [Nil] is the default.
//   - Invariants: checked with the rcdebug build tag, panicking with an error
//     wrapping [ErrInvariantViolation]; compiled out otherwise.
//
// # API Topologies
//
//   - Strong: [Make], [New], [StrongOf.Clone], [StrongOf.Move], [StrongOf.Reset],
//     [StrongOf.Downgrade], [StrongOf.UseCount], [StrongOf.Unique].
//   - Weak: [WeakOf.Lock], [WeakOf.Expired], [WeakOf.Clone], [WeakOf.Reset].
//   - Boundary: [StrongOf.Release]/[Reclaim] and [WeakOf.Release]/[ReclaimWeak]
//     pairs; package [code.hybscloud.com/rc/raw] for bare-reference call sites.
//   - Identity: handles are comparable map keys; [Compare] and Hash order and
//     hash by reference identity.
//   - Deferral: [Reaper] moves drops to a consumer goroutine through a
//     lock-free SPSC queue from [code.hybscloud.com/lfq].
//   - Scopes: [Scoped] runs a [code.hybscloud.com/kont] computation whose
//     [Borrow] and [Hold] effects acquire objects until the scope ends.
//   - Observation: [SetObserver] receives lifecycle [Event]s; see packages
//     [code.hybscloud.com/rc/metrics] and [code.hybscloud.com/rc/trace].
//
// # Copying
//
// Handles are single-field values. Plain assignment copies the reference
// without adding an owner, so treat handles like move-only values: Clone to
// share, Move to transfer, Reset or Release exactly once.
//
// # Example
//
//	type Blob struct {
//		rc.Target
//		data []byte
//	}
//
//	p := rc.Make(&Blob{data: buf})
//	w := p.Downgrade()
//	q := p.Clone()        // UseCount() == 2
//	p.Reset()             // still alive through q
//	q.Reset()             // teardown; storage kept for w
//	if l := w.Lock(); !l.Defined() {
//		// dead
//	}
//	w.Reset()             // deallocated
package rc

import "code.hybscloud.com/rc/internal/debug"

// ErrInvariantViolation is wrapped by the panic value of every failed count
// invariant check. Use errors.Is on the recovered value.
var ErrInvariantViolation = debug.ErrInvariant

// DebugChecks reports whether count invariant checks are compiled in
// (the rcdebug build tag).
const DebugChecks = debug.Enabled
