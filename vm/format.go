package vm

import "strconv"

// FormatNumber is the fixed rule IMPR uses to print a popped real number: a
// minimal decimal form with a guaranteed trailing ".0" when the value has
// no fractional digits, so 14 prints as "14.0" and 3.5 stays "3.5". Fixed
// once here so every IMPR in every run is reproducible.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
