// SPDX-License-Identifier: MIT
// Package: phonetics/scale
//
// circular.go - wrap-around categorical domains.
//
// Contract:
//   - Advance/Retreat never fail and never leave the domain (mod Size).
//   - Check reports out-of-domain values as KindInvalidFeatureValue.
//   - NewCircular panics on an empty name list (programmer error).

package scale

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phonetics/errs"
)

// Circular describes a cyclic domain of Size() consecutive integers starting
// at Lo, each with a display name.
type Circular[T ~int] struct {
	feature string
	lo      T
	names   []string
}

// NewCircular builds a domain named feature, starting at lo, with one value
// per name.
func NewCircular[T ~int](feature string, lo T, names ...string) Circular[T] {
	if len(names) == 0 {
		panic("scale: NewCircular with no categories")
	}

	return Circular[T]{feature: feature, lo: lo, names: append([]string(nil), names...)}
}

// Feature returns the feature name used in error messages.
func (c Circular[T]) Feature() string { return c.feature }

// Size returns the number of categories.
func (c Circular[T]) Size() int { return len(c.names) }

// Lo returns the smallest value.
func (c Circular[T]) Lo() T { return c.lo }

// Hi returns the largest value.
func (c Circular[T]) Hi() T { return c.lo + T(len(c.names)-1) }

// Contains reports whether v is a category of the domain.
func (c Circular[T]) Contains(v T) bool { return v >= c.lo && v <= c.Hi() }

// Check returns nil when v is in the domain.
func (c Circular[T]) Check(v T) error {
	if c.Contains(v) {
		return nil
	}

	return errs.Newf(errs.KindInvalidFeatureValue, "%s %d outside [%d, %d]", c.feature, int(v), int(c.lo), int(c.Hi()))
}

// Advance returns the category k steps after v, wrapping around.
// Negative k moves backwards.
func (c Circular[T]) Advance(v T, k int) T {
	n := len(c.names)
	off := (int(v-c.lo) + k%n) % n
	if off < 0 {
		off += n
	}

	return c.lo + T(off)
}

// Retreat returns the category k steps before v, wrapping around.
func (c Circular[T]) Retreat(v T, k int) T { return c.Advance(v, -(k % len(c.names))) }

// Name returns the display name of v, or "<feature>(N)" when v is outside
// the domain.
func (c Circular[T]) Name(v T) string {
	if !c.Contains(v) {
		return fmt.Sprintf("%s(%d)", c.feature, int(v))
	}

	return c.names[v-c.lo]
}

// Parse returns the category with the given display name. Matching ignores
// case and treats '-' and '_' as spaces.
func (c Circular[T]) Parse(name string) (T, error) {
	key := normalizeName(name)
	for i, n := range c.names {
		if normalizeName(n) == key {
			return c.lo + T(i), nil
		}
	}

	return c.lo, errs.Newf(errs.KindInvalidFeatureValue, "unknown %s %q", c.feature, name)
}

// Values returns every category in order.
func (c Circular[T]) Values() []T {
	out := make([]T, len(c.names))
	for i := range out {
		out[i] = c.lo + T(i)
	}

	return out
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}
