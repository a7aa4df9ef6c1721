package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Hierarchy(t *testing.T) {
	leaves := []errs.Kind{
		errs.KindIndexOutOfRange,
		errs.KindInvalidFeatureValue,
		errs.KindImpossibleArticulation,
		errs.KindDecodingFailed,
		errs.KindEncodingFailed,
	}
	for _, k := range leaves {
		assert.True(t, k.IsA(errs.KindValue), "%s must be a value error", k)
		assert.True(t, k.IsA(errs.KindGeneric), "%s must be a generic error", k)
		assert.Equal(t, errs.KindValue, k.Parent())
	}
	assert.True(t, errs.KindValue.IsA(errs.KindGeneric))
	assert.False(t, errs.KindValue.IsA(errs.KindDecodingFailed))
	assert.False(t, errs.KindGeneric.IsA(errs.KindValue))
	assert.False(t, errs.KindDecodingFailed.IsA(errs.KindEncodingFailed))
}

func TestError_IsMatchesAncestors(t *testing.T) {
	err := errs.New(errs.KindImpossibleArticulation, "glottal stops are voiceless")

	assert.ErrorIs(t, err, errs.ErrImpossibleArticulation)
	assert.ErrorIs(t, err, errs.ErrValue)
	assert.ErrorIs(t, err, errs.ErrGeneric)
	assert.NotErrorIs(t, err, errs.ErrDecodingFailed)
	assert.NotErrorIs(t, err, errs.ErrIndexOutOfRange)

	// A message-bearing error is not a sentinel.
	other := errs.New(errs.KindImpossibleArticulation, "x")
	assert.False(t, errors.Is(err, other))
}

func TestError_WrapChain(t *testing.T) {
	cause := errs.New(errs.KindImpossibleArticulation, "nasal-place: no pharyngeal nasals")
	err := errs.Wrap(errs.KindDecodingFailed, cause, `"ŋ̠̠"`)

	assert.ErrorIs(t, err, errs.ErrDecodingFailed)
	assert.ErrorIs(t, err, errs.ErrImpossibleArticulation, "cause stays reachable")
	assert.Equal(t, `decoding failed: "ŋ̠̠": impossible articulation: nasal-place: no pharyngeal nasals`, err.Error())

	outer := fmt.Errorf("cli: %w", err)
	assert.Equal(t, errs.KindDecodingFailed, errs.KindOf(outer))
}

func TestError_Messages(t *testing.T) {
	assert.Equal(t, "value error", errs.ErrValue.Error())
	assert.Equal(t, "index out of range: index 3 with length 3",
		errs.Newf(errs.KindIndexOutOfRange, "index %d with length %d", 3, 3).Error())
	assert.Equal(t, "Kind(42)", errs.Kind(42).String())
}

func TestKindOf_Foreign(t *testing.T) {
	assert.Equal(t, errs.KindGeneric, errs.KindOf(errors.New("plain")))
	assert.Equal(t, errs.KindGeneric, errs.KindOf(nil))
}

func TestConvert(t *testing.T) {
	err := errs.New(errs.KindImpossibleArticulation, "voiced phonation paired with voiceless VOT")

	generic, ok := errs.Convert(err, errs.KindGeneric)
	require.True(t, ok)
	assert.Equal(t, errs.KindGeneric, generic.Kind)
	assert.Equal(t, err.Message, generic.Message)
	assert.ErrorIs(t, generic, errs.ErrImpossibleArticulation, "original stays in the chain")

	same, ok := errs.Convert(err, errs.KindImpossibleArticulation)
	require.True(t, ok)
	assert.Same(t, err, same)

	_, ok = errs.Convert(err, errs.KindDecodingFailed)
	assert.False(t, ok, "sibling kinds do not convert")

	_, ok = errs.Convert(errors.New("plain"), errs.KindGeneric)
	assert.False(t, ok)
}
