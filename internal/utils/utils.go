package utils

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// RoundUp2 - Rounds a value up to the nearest exponent of 2
func RoundUp2(value int64) (result int64) {
	result = 1
	for result < value {
		result <<= 1
	}

	return
}
