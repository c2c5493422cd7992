package filter

import (
	"testing"

	"github.com/chrisdick79/altaz-core/internal/vector"
)

func TestAverageOfConstantSignal(t *testing.T) {
	var f SlidingFilter
	v := vector.Vector3{X: 1.5, Y: -2.5, Z: 3.0}
	for i := 0; i < 4; i++ {
		f.Push(v)
	}
	if got := f.Average(); got != v {
		t.Errorf("Average = %+v, want %+v", got, v)
	}
}

func TestCursorAdvancesModRingSize(t *testing.T) {
	var f SlidingFilter
	samples := []vector.Vector3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	for n := 0; n < 10; n++ {
		f.Push(samples[n%len(samples)])
		if got, want := f.Cursor(), (n+1)%ringSize; got != want {
			t.Errorf("after %d pushes cursor = %d, want %d", n+1, got, want)
		}
	}
}

func TestAverageOfDistinctSamples(t *testing.T) {
	var f SlidingFilter
	f.Push(vector.Vector3{X: 0})
	f.Push(vector.Vector3{X: 4})
	f.Push(vector.Vector3{X: 8})
	f.Push(vector.Vector3{X: 12})
	want := vector.Vector3{X: 6}
	if got := f.Average(); got != want {
		t.Errorf("Average = %+v, want %+v", got, want)
	}
}
