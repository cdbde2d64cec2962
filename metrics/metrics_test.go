// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"code.hybscloud.com/rc"
	"code.hybscloud.com/rc/metrics"
)

type gauge struct {
	rc.Target
}

func TestObserverCounts(t *testing.T) {
	prev := rc.SetObserver(metrics.Observer{})
	defer rc.SetObserver(prev)

	made := testutil.ToFloat64(metrics.ObjectsMade)
	torn := testutil.ToFloat64(metrics.Teardowns)
	freed := testutil.ToFloat64(metrics.Deallocations)
	failed := testutil.ToFloat64(metrics.LockFailures)
	live := testutil.ToFloat64(metrics.LiveObjects)

	p := rc.Make(&gauge{})
	q := rc.Make(&gauge{})
	w := p.Downgrade()
	if got := testutil.ToFloat64(metrics.LiveObjects) - live; got != 2 {
		t.Fatalf("live objects delta = %v, want 2", got)
	}

	p.Reset()
	l := w.Lock()
	l.Reset()
	w.Reset()
	q.Reset()

	for _, c := range []struct {
		name string
		got  float64
		want float64
	}{
		{"made", testutil.ToFloat64(metrics.ObjectsMade) - made, 2},
		{"teardowns", testutil.ToFloat64(metrics.Teardowns) - torn, 2},
		{"deallocations", testutil.ToFloat64(metrics.Deallocations) - freed, 2},
		{"lock failures", testutil.ToFloat64(metrics.LockFailures) - failed, 1},
		{"live", testutil.ToFloat64(metrics.LiveObjects) - live, 0},
	} {
		if c.got != c.want {
			t.Errorf("%s delta = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.RegisterMetrics(reg)

	p := rc.Make(&gauge{})
	p.Reset()

	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("gathered %d metrics, want 5", n)
	}
}
