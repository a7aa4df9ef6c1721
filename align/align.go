// SPDX-License-Identifier: MIT
// Package: phonetics/align
//
// align.go - Dynamic Time Warping over phone sequences.
//
// Algorithm (full matrix):
//  1. D[0][0] = 0, D[i][0] = D[0][j] = +Inf.
//  2. D[i][j] = cost(i-1, j-1) + min(D[i-1][j]+penalty, D[i][j-1]+penalty, D[i-1][j-1]),
//     or +Inf outside the window.
//  3. distance = D[n][m]; the path is recovered by walking back from (n, m)
//     to the cheapest predecessor of each cell.
//
// TwoRows keeps rows i-1 and i only and cannot recover the path.

package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/syllable"
)

// Phones aligns two phone sequences. With the default options the result is
// the minimal total PhoneDistance over all monotone pairings.
func Phones(a, b []phone.Phone, opts *Options) (float64, []Coord, error) {
	for _, seq := range [][]phone.Phone{a, b} {
		for i, p := range seq {
			if p == nil {
				return 0, nil, fmt.Errorf("%w: nil phone at %d", ErrBadInput, i)
			}
		}
	}

	return warp(len(a), len(b), func(i, j int) float64 { return PhoneDistance(a[i], b[j]) }, opts)
}

// Syllables aligns the phones of two syllables and adds the weighted tone
// difference.
func Syllables(a, b *syllable.Syllable, opts *Options) (float64, []Coord, error) {
	if a == nil || b == nil {
		return 0, nil, fmt.Errorf("%w: nil syllable", ErrBadInput)
	}
	o := resolve(opts)
	dist, path, err := Phones(a.Phones(), b.Phones(), &o)
	if err != nil {
		return 0, nil, err
	}

	return dist + o.ToneWeight*ToneDistance(a.Tone(), b.Tone()), path, nil
}

// Sequences aligns two syllable sequences, using Syllables with the same
// options (path disabled) as the local cost.
func Sequences(a, b syllable.Sequence, opts *Options) (float64, []Coord, error) {
	o := resolve(opts)
	inner := o
	inner.ReturnPath, inner.MemoryMode, inner.Window = false, TwoRows, -1

	var cellErr error
	cost := func(i, j int) float64 {
		d, _, err := Syllables(a[i], b[j], &inner)
		if err != nil && cellErr == nil {
			cellErr = err
		}

		return d
	}
	dist, path, err := warp(len(a), len(b), cost, &o)
	if err != nil {
		return 0, nil, err
	}
	if cellErr != nil {
		return 0, nil, cellErr
	}

	return dist, path, nil
}

func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

func validate(o Options) error {
	switch {
	case o.Window < -1:
		return fmt.Errorf("%w: window %d", ErrBadInput, o.Window)
	case math.IsNaN(o.SlopePenalty) || o.SlopePenalty < 0:
		return fmt.Errorf("%w: slope penalty %g", ErrBadInput, o.SlopePenalty)
	case math.IsNaN(o.ToneWeight) || o.ToneWeight < 0:
		return fmt.Errorf("%w: tone weight %g", ErrBadInput, o.ToneWeight)
	case o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows:
		return fmt.Errorf("%w: memory mode %d", ErrBadInput, int(o.MemoryMode))
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return ErrPathNeedsMatrix
	}

	return nil
}

// warp runs DTW over an n x m cost grid.
func warp(n, m int, cost func(i, j int) float64, opts *Options) (float64, []Coord, error) {
	o := resolve(opts)
	if err := validate(o); err != nil {
		return 0, nil, err
	}
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	inf := math.Inf(1)
	rows := n + 1
	if o.MemoryMode == TwoRows {
		rows = 2
	}
	dp := make([][]float64, rows)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	row := func(i int) []float64 {
		if o.MemoryMode == TwoRows {
			return dp[i%2]
		}

		return dp[i]
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window >= 0 && abs(i-j) > o.Window {
				curr[j] = inf
				continue
			}
			curr[j] = cost(i-1, j-1) + min(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
	}
	distance := row(n)[m]

	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(dp, n, m, o.SlopePenalty), nil
}

// backtrack walks from (n, m) to (1, 1), stepping to the cheapest
// predecessor and preferring the diagonal on ties.
func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
