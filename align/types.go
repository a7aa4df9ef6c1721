// SPDX-License-Identifier: MIT
// Package: phonetics/align
//
// types.go - options, memory modes, path coordinates and sentinel errors.

package align

import "github.com/katalvlaran/phonetics/errs"

// MemoryMode controls how the DP table is stored.
type MemoryMode int

const (
	// FullMatrix keeps all (n+1)x(m+1) cells and supports path recovery.
	FullMatrix MemoryMode = iota
	// TwoRows keeps the current and previous rows only. No path recovery.
	TwoRows
)

func (m MemoryMode) String() string {
	if m == TwoRows {
		return "two-rows"
	}

	return "full-matrix"
}

// Options configures an alignment.
type Options struct {
	// Window is the Sakoe-Chiba band half-width; -1 means unconstrained.
	Window int
	// SlopePenalty is added to each insertion or deletion step.
	SlopePenalty float64
	// ReturnPath requests the warping path. Requires FullMatrix.
	ReturnPath bool
	// MemoryMode selects the DP storage.
	MemoryMode MemoryMode
	// ToneWeight scales the tone difference added by Syllables.
	ToneWeight float64
}

// DefaultOptions returns an unconstrained full-matrix alignment with no slope
// penalty, no path, and tone weighted 1.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		MemoryMode: FullMatrix,
		ToneWeight: 1,
	}
}

// Coord pairs index I of the first sequence with index J of the second.
type Coord struct {
	I, J int
}

var (
	// ErrEmptyInput indicates that one or both inputs are empty.
	ErrEmptyInput = errs.New(errs.KindValue, "align: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, a negative or NaN
	// penalty or weight, an unknown memory mode) or a nil input.
	ErrBadInput = errs.New(errs.KindValue, "align: invalid options or input")

	// ErrPathNeedsMatrix indicates that ReturnPath was requested without FullMatrix.
	ErrPathNeedsMatrix = errs.New(errs.KindValue, "align: ReturnPath requires MemoryMode=FullMatrix")
)
