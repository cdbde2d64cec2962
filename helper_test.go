// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc_test

import (
	"testing"

	"code.hybscloud.com/atomix"
	"github.com/pkg/errors"

	"code.hybscloud.com/rc"
)

// blob is the test object: it records its teardown and deallocation.
type blob struct {
	rc.Target
	name string

	released atomix.Uint32
	disposed atomix.Uint32
	// releasedFirst is set by Dispose when teardown already ran.
	releasedFirst atomix.Uint32
	// drops, if set, is shared by many blobs and counts teardowns.
	drops *atomix.Uint32
}

func newBlob(name string) *blob {
	return &blob{name: name}
}

func (b *blob) ReleaseResources() {
	b.released.Add(1)
	if b.drops != nil {
		b.drops.Add(1)
	}
}

func (b *blob) Dispose() {
	if b.released.Load() > 0 {
		b.releasedFirst.Store(1)
	}
	b.disposed.Add(1)
}

// undefinedBlob is a never-made sentinel instance.
var undefinedBlob = newBlob("undefined")

// undefined is a null-sentinel policy resolving to undefinedBlob.
type undefined struct{}

func (undefined) Null() *blob { return undefinedBlob }

// blobRef is a strong handle whose sentinel is undefinedBlob.
type blobRef = rc.StrongOf[*blob, undefined]

// weakBlobRef is a weak handle whose sentinel is undefinedBlob.
type weakBlobRef = rc.WeakOf[*blob, undefined]

// counts returns (strong, weak) as seen through a weak handle.
func counts(w rc.Weak[*blob]) (uint32, uint32) {
	return w.UseCount(), w.WeakUseCount()
}

// mustViolate runs f and fails unless it panics with ErrInvariantViolation.
func mustViolate(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T), want error", r, r)
		}
		if !errors.Is(err, rc.ErrInvariantViolation) {
			t.Fatalf("panic %v does not wrap ErrInvariantViolation", err)
		}
	}()
	f()
}
