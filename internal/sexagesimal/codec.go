// Package sexagesimal converts between decimal angle/time values and
// their (hours|degrees, minutes, seconds) sexagesimal form.
package sexagesimal

import "math"

// Time is a sexagesimal hours-or-degrees/minutes/seconds triple. When
// the represented decimal value is negative, Hours, Minutes, and
// Seconds all carry the negative sign; when non-negative, all three are
// non-negative.
//
// Hours and Minutes are signed rather than the unsigned fields of the
// original source, since Go has no implementation-defined
// unsigned-wraparound-on-negation to rely on — representing the
// negative-sign contract at all requires a signed type. Hours is int16,
// not int8: Undecimalise backs both RadiansToTime (hours, |value| < 24)
// and RadiansToDegreesSexagesimal (degrees, |value| < 360), and an int8
// silently wraps anywhere past +-127 degrees — e.g. 150 degrees would
// come out as Hours: -106. Minutes stays int8 because a sexagesimal
// fractional remainder is always in (-60, 60) regardless of which of
// the two callers produced it.
type Time struct {
	Hours   int16
	Minutes int8
	Seconds float64
}

// Decimalise converts a Time back to a decimal value: h + m/60 + s/3600.
func Decimalise(t Time) float64 {
	return float64(t.Hours) + float64(t.Minutes)/60.0 + t.Seconds/3600.0
}

// Undecimalise splits x into sexagesimal components. If x is negative,
// Hours, Minutes, and Seconds are all negated in the result.
func Undecimalise(x float64) Time {
	sign := 1.0
	if x < 0 {
		sign = -1.0
	}
	abs := math.Abs(x)

	hours := math.Floor(abs)
	fracMinutes := (abs - hours) * 60.0
	minutes := math.Floor(fracMinutes)
	seconds := (fracMinutes - minutes) * 60.0

	return Time{
		Hours:   int16(sign * hours),
		Minutes: int8(sign * minutes),
		Seconds: sign * seconds,
	}
}

// RadiansToTime converts radians to hours-sexagesimal: undecimalise(r * 12/pi).
func RadiansToTime(r float64) Time {
	return Undecimalise(r * 12.0 / math.Pi)
}

// RadiansToDegreesSexagesimal converts radians to degrees-sexagesimal:
// undecimalise(r * 180/pi).
func RadiansToDegreesSexagesimal(r float64) Time {
	return Undecimalise(r * 180.0 / math.Pi)
}

// TimeToAngleDegrees converts an hours-sexagesimal Time to degrees:
// decimalise(t) * 15.
func TimeToAngleDegrees(t Time) float64 {
	return Decimalise(t) * 15.0
}
