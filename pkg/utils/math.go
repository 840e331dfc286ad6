package utils

// Abs returns the absolute value of a float.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// NearlyEqual reports whether two floats differ by less than tolerance.
func NearlyEqual(a, b, tolerance float64) bool {
	return Abs(a-b) < tolerance
}
