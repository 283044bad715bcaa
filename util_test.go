package sketch

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.DistanceSquared(p2) <= 1e-18
})

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := math.Sqrt(p1.DistanceSquared(p0)); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}
