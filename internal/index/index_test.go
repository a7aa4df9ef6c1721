package index_test

import (
	"testing"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/internal/index"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		i, n, want int
		ok         bool
	}{
		{0, 3, 0, true},
		{2, 3, 2, true},
		{-1, 3, 2, true},
		{-3, 3, 0, true},
		{3, 3, 0, false},
		{-4, 3, 0, false},
		{0, 0, 0, false},
	}
	for _, tc := range cases {
		got, err := index.Resolve(tc.i, tc.n)
		if !tc.ok {
			assert.ErrorIs(t, err, errs.ErrIndexOutOfRange, "Resolve(%d, %d)", tc.i, tc.n)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "Resolve(%d, %d)", tc.i, tc.n)
	}
}

func TestResolveInsert(t *testing.T) {
	cases := []struct {
		pos, n, want int
		ok           bool
	}{
		{0, 0, 0, true},
		{-1, 0, 0, true},
		{3, 3, 3, true},
		{-1, 3, 3, true},
		{-4, 3, 0, true},
		{4, 3, 0, false},
		{-5, 3, 0, false},
	}
	for _, tc := range cases {
		got, err := index.ResolveInsert(tc.pos, tc.n)
		if !tc.ok {
			assert.ErrorIs(t, err, errs.ErrIndexOutOfRange, "ResolveInsert(%d, %d)", tc.pos, tc.n)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "ResolveInsert(%d, %d)", tc.pos, tc.n)
	}
}
