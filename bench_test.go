// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc_test

import (
	"testing"

	"code.hybscloud.com/rc"
)

// BenchmarkMakeReset measures the full lifecycle of one object.
func BenchmarkMakeReset(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		p := rc.Make(newBlob("bench"))
		p.Reset()
	}
}

// BenchmarkCloneReset measures one strong increment/decrement pair.
func BenchmarkCloneReset(b *testing.B) {
	p := rc.Make(newBlob("bench"))
	defer p.Reset()
	b.ReportAllocs()
	for b.Loop() {
		q := p.Clone()
		q.Reset()
	}
}

// BenchmarkCloneResetParallel measures strong counting under contention.
func BenchmarkCloneResetParallel(b *testing.B) {
	p := rc.Make(newBlob("bench"))
	defer p.Reset()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q := p.Clone()
			q.Reset()
		}
	})
}

// BenchmarkLock measures an uncontended weak upgrade.
func BenchmarkLock(b *testing.B) {
	p := rc.Make(newBlob("bench"))
	w := p.Downgrade()
	defer w.Reset()
	defer p.Reset()
	b.ReportAllocs()
	for b.Loop() {
		l := w.Lock()
		l.Reset()
	}
}

// BenchmarkLockParallel measures the CAS upgrade loop under contention.
func BenchmarkLockParallel(b *testing.B) {
	p := rc.Make(newBlob("bench"))
	w := p.Downgrade()
	defer w.Reset()
	defer p.Reset()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l := w.Lock()
			l.Reset()
		}
	})
}

// BenchmarkReaper measures deferred drops drained in batches.
func BenchmarkReaper(b *testing.B) {
	skipRace(b)
	r := rc.NewReaper[*blob](1024)
	p := rc.Make(newBlob("bench"))
	defer p.Reset()
	b.ReportAllocs()
	n := 0
	for b.Loop() {
		q := p.Clone()
		r.Defer(&q)
		if n++; n == 512 {
			r.Reap()
			n = 0
		}
	}
	r.Reap()
}
