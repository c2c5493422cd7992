package vector

import "testing"

func TestAddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}
	if got := a.Add(b); got != (Vector3{5, 7, 9}) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vector3{3, 3, 3}) {
		t.Errorf("Sub = %+v", got)
	}
}

func TestScale(t *testing.T) {
	v := Vector3{1, -2, 3}
	if got := v.Scale(2); got != (Vector3{2, -4, 6}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestMinMax(t *testing.T) {
	a := Vector3{1, 5, -1}
	b := Vector3{3, 2, -4}
	if got := Min(a, b); got != (Vector3{1, 2, -4}) {
		t.Errorf("Min = %+v", got)
	}
	if got := Max(a, b); got != (Vector3{3, 5, -1}) {
		t.Errorf("Max = %+v", got)
	}
}

func TestComponent(t *testing.T) {
	v := Vector3{1, 2, 3}
	for _, tc := range []struct {
		axis Axis
		want float64
	}{
		{AxisX, 1}, {AxisY, 2}, {AxisZ, 3},
	} {
		if got := v.Component(tc.axis); got != tc.want {
			t.Errorf("Component(%v) = %v, want %v", tc.axis, got, tc.want)
		}
	}
}
