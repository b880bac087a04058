package metrics

import (
	"fmt"
)

// BER returns the fraction of positions where a and b differ. Empty sequences have no errors.
func BER(a, b []uint8) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	var errs int
	for i := range a {
		if a[i] != b[i] {
			errs++
		}
	}
	return float64(errs) / float64(len(a)), nil
}

// BERText compares two strings character by character. Characters of original missing from extracted count as
// errors and the result is normalized by the length of original. If either string is empty the result is 1.
func BERText(original, extracted string) float64 {
	a, b := []rune(original), []rune(extracted)
	if len(a) == 0 || len(b) == 0 {
		return 1
	}

	errs := max(len(a)-len(b), 0)
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			errs++
		}
	}
	return float64(errs) / float64(len(a))
}
