package types

import (
	"math"
	"strings"
)

// Material is a raw material with a unit cost. Identity is the trimmed
// Code; re-adding a code overwrites Desc and Cost in place.
type Material struct {
	Code string  `json:"code"`
	Desc string  `json:"desc"`
	Cost float64 `json:"cost"`
}

// NormalizeCode trims surrounding whitespace from a material or product
// code. All code comparison goes through this so that " FLOUR" and "FLOUR"
// cannot become two entries.
func NormalizeCode(code string) string {
	return strings.TrimSpace(code)
}

// Validate checks the material's field constraints. It returns a sentinel
// validation error on the first violation.
func (m Material) Validate() error {
	if NormalizeCode(m.Code) == "" {
		return ErrCodeRequired
	}
	if strings.TrimSpace(m.Desc) == "" {
		return ErrDescRequired
	}
	if !finiteNonNegative(m.Cost) {
		return ErrCostNegative
	}
	return nil
}

// finiteNonNegative reports whether f is a real number >= 0. NaN and the
// infinities fail every comparison-based guard and cannot be serialized to
// JSON, so they are rejected up front.
func finiteNonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// finitePositive reports whether f is a real number > 0.
func finitePositive(f float64) bool {
	return finiteNonNegative(f) && f > 0
}
