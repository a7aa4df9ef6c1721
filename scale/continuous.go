// SPDX-License-Identifier: MIT
// Package: phonetics/scale
//
// continuous.go - bounded real intervals.
//
// Contract:
//   - NaN and ±Inf are never inside an interval, whatever its bounds.
//   - Advance/Retreat/Scale return the new value or an InvalidFeatureValue
//     error; they never clamp.

package scale

import (
	"math"
	"strconv"

	"github.com/katalvlaran/phonetics/errs"
)

// Continuous describes a real interval. The zero value is the empty interval
// [0, 0]; build one with NewContinuous.
type Continuous struct {
	feature        string
	lo, hi         float64
	loOpen, hiOpen bool
}

// NewContinuous returns the closed interval [lo, hi]. Use math.Inf(1) for an
// unbounded top.
func NewContinuous(feature string, lo, hi float64) Continuous {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		panic("scale: NewContinuous with invalid bounds")
	}

	return Continuous{feature: feature, lo: lo, hi: hi}
}

// OpenBelow returns a copy of c that excludes its lower bound.
func (c Continuous) OpenBelow() Continuous {
	c.loOpen = true

	return c
}

// OpenAbove returns a copy of c that excludes its upper bound.
func (c Continuous) OpenAbove() Continuous {
	c.hiOpen = true

	return c
}

// Feature returns the feature name used in error messages.
func (c Continuous) Feature() string { return c.feature }

// Bounds returns the interval ends.
func (c Continuous) Bounds() (lo, hi float64) { return c.lo, c.hi }

// Contains reports whether v lies in the interval.
func (c Continuous) Contains(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v < c.lo || (c.loOpen && v == c.lo) {
		return false
	}
	if v > c.hi || (c.hiOpen && v == c.hi) {
		return false
	}

	return true
}

// Check returns nil when v lies in the interval.
func (c Continuous) Check(v float64) error {
	if c.Contains(v) {
		return nil
	}

	return errs.Newf(errs.KindInvalidFeatureValue, "%s %g outside %s", c.feature, v, c.String())
}

// Advance returns v+delta when that stays in range.
func (c Continuous) Advance(v, delta float64) (float64, error) {
	return c.result(v + delta)
}

// Retreat returns v-delta when that stays in range.
func (c Continuous) Retreat(v, delta float64) (float64, error) {
	return c.result(v - delta)
}

// Scale returns v*factor when that stays in range.
func (c Continuous) Scale(v, factor float64) (float64, error) {
	return c.result(v * factor)
}

// String renders the interval in bracket notation, e.g. "(0, +Inf)".
func (c Continuous) String() string {
	open, closing := "[", "]"
	if c.loOpen {
		open = "("
	}
	if c.hiOpen || math.IsInf(c.hi, 1) {
		closing = ")"
	}

	return open + formatBound(c.lo) + ", " + formatBound(c.hi) + closing
}

func (c Continuous) result(v float64) (float64, error) {
	if err := c.Check(v); err != nil {
		return 0, err
	}

	return v, nil
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
