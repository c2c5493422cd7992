package sexagesimal

import (
	"math"
	"testing"
)

func TestDecimaliseRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1.5, 13.5, 23.999, -1.5, -13.5} {
		got := Decimalise(Undecimalise(x))
		if math.Abs(got-x) > 1e-9 {
			t.Errorf("Decimalise(Undecimalise(%v)) = %v, want %v", x, got, x)
		}
	}
}

func TestUndecimaliseNegative(t *testing.T) {
	got := Undecimalise(-1.5)
	want := Time{Hours: -1, Minutes: -30, Seconds: -0.0}
	if got.Hours != want.Hours || got.Minutes != want.Minutes || math.Abs(got.Seconds) > 1e-9 {
		t.Errorf("Undecimalise(-1.5) = %+v, want {-1 -30 0}", got)
	}
}

func TestUndecimalise13Point5(t *testing.T) {
	got := Undecimalise(13.5)
	if got.Hours != 13 || got.Minutes != 30 || math.Abs(got.Seconds) > 1e-9 {
		t.Errorf("Undecimalise(13.5) = %+v, want {13 30 0}", got)
	}
	if math.Abs(Decimalise(got)-13.5) > 1e-9 {
		t.Errorf("Decimalise(Undecimalise(13.5)) = %v, want 13.5", Decimalise(got))
	}
}

func TestTimeToAngleDegrees(t *testing.T) {
	got := TimeToAngleDegrees(Time{Hours: 1, Minutes: 0, Seconds: 0})
	if math.Abs(got-15.0) > 1e-9 {
		t.Errorf("TimeToAngleDegrees(1h) = %v, want 15", got)
	}
}

func TestRadiansToTime(t *testing.T) {
	got := RadiansToTime(math.Pi)
	if got.Hours != 12 {
		t.Errorf("RadiansToTime(pi).Hours = %v, want 12", got.Hours)
	}
}

func TestRadiansToDegreesSexagesimal(t *testing.T) {
	got := RadiansToDegreesSexagesimal(math.Pi)
	if got.Hours != 180 || got.Minutes != 0 || math.Abs(got.Seconds) > 1e-9 {
		t.Errorf("RadiansToDegreesSexagesimal(pi) = %+v, want {180 0 0}", got)
	}
}

func TestRadiansToDegreesSexagesimalAbove127(t *testing.T) {
	// 150 degrees is past int8's +-127 range; Hours must hold it without
	// wrapping (a plain int8(150) would wrap to -106).
	got := RadiansToDegreesSexagesimal(150.0 * math.Pi / 180.0)
	if got.Hours != 150 || got.Minutes != 0 || math.Abs(got.Seconds) > 1e-6 {
		t.Errorf("RadiansToDegreesSexagesimal(150deg) = %+v, want {150 0 0}", got)
	}
}
