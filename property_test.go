// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rc_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/rc"
)

// TestPropertyCountBalance proves that for any sequence of clone, move,
// assign and drop operations on strong handles to one object, the strong
// count equals the number of live handles, the phantom weak unit is present
// while the object lives, and teardown runs exactly when the last handle
// goes away.
func TestPropertyCountBalance(t *testing.T) {
	propertyBalance := func(ops []uint8) bool {
		b := newBlob("prop")
		first := rc.Make(b)
		w := first.Downgrade()
		handles := []rc.Strong[*blob]{first}

		live := func() uint32 {
			n := uint32(0)
			for _, h := range handles {
				if h.Defined() {
					n++
				}
			}
			return n
		}

		for _, op := range ops {
			if live() == 0 {
				break
			}
			i := int(op>>2) % len(handles)
			switch op & 3 {
			case 0:
				handles = append(handles, handles[i].Clone())
			case 1:
				handles[i].Reset()
			case 2:
				handles = append(handles, handles[i].Move())
			case 3:
				j := int(op>>5) % len(handles)
				handles[i].Assign(handles[j])
			}

			n := live()
			if w.UseCount() != n {
				return false
			}
			// Phantom unit plus w while alive; only w once dead.
			if n > 0 && w.WeakUseCount() != 2 {
				return false
			}
			if n == 0 && w.WeakUseCount() != 1 {
				return false
			}
			if (n == 0) != (b.released.Load() == 1) {
				return false
			}
		}

		for i := range handles {
			handles[i].Reset()
		}
		w.Reset()
		return b.released.Load() == 1 && b.disposed.Load() == 1 && b.releasedFirst.Load() == 1
	}

	if err := quick.Check(propertyBalance, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyRawRoundTrip proves that any number of release/reclaim round
// trips leaves the strong count unchanged.
func TestPropertyRawRoundTrip(t *testing.T) {
	propertyRoundTrip := func(extra uint8, trips uint8) bool {
		b := newBlob("trip")
		p := rc.Make(b)
		owners := make([]rc.Strong[*blob], int(extra%16))
		for i := range owners {
			owners[i] = p.Clone()
		}
		before := p.UseCount()
		for n := 0; n < int(trips); n++ {
			raw := p.Release()
			p = rc.Reclaim(raw)
		}
		ok := p.UseCount() == before
		p.Reset()
		for i := range owners {
			owners[i].Reset()
		}
		return ok && b.released.Load() == 1
	}

	if err := quick.Check(propertyRoundTrip, nil); err != nil {
		t.Error(err)
	}
}
