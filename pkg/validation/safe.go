package validation

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// SafeCalculate evaluates fn and substitutes defaultValue whenever the result
// is NaN or infinite, or the evaluation panics. It is the single generic
// containment mechanism for arithmetic degeneracy: every calculation that
// divides by a value that could be zero goes through it.
func SafeCalculate(fn func() float64, defaultValue float64) (result float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("calculation error: %v", r)
			result = defaultValue
		}
	}()
	result = fn()
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return defaultValue
	}
	return result
}
