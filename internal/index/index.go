// Package index resolves Python-style signed indices against a length.
//
// Element indices accept -n..n-1; insertion positions accept -(n+1)..n, where
// -1 is the position after the last element.
package index

import "github.com/katalvlaran/phonetics/errs"

// Resolve maps an element index i into [0, n).
func Resolve(i, n int) (int, error) {
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return 0, errs.Newf(errs.KindIndexOutOfRange, "index %d with length %d", i, n)
	}

	return j, nil
}

// ResolveInsert maps an insertion position into [0, n].
func ResolveInsert(pos, n int) (int, error) {
	j := pos
	if j < 0 {
		j += n + 1
	}
	if j < 0 || j > n {
		return 0, errs.Newf(errs.KindIndexOutOfRange, "insert position %d with length %d", pos, n)
	}

	return j, nil
}
