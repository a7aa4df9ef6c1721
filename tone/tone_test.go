package tone_test

import (
	"testing"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTone(t *testing.T, a, b, c tone.Pitch) tone.Tone {
	t.Helper()
	tn, err := tone.New(a, b, c)
	require.NoError(t, err)
	return tn
}

func TestTone_ZeroValueIsMidLevel(t *testing.T) {
	var tn tone.Tone
	assert.Equal(t, [3]tone.Pitch{0, 0, 0}, tn.Pitches())
	assert.True(t, tn.IsZero())
	assert.True(t, tn.IsLevel())
	assert.Equal(t, "{0,0,0}", tn.String())
}

func TestNew_RejectsOutOfRangePitch(t *testing.T) {
	_, err := tone.New(0, 3, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = tone.FromSlice([]tone.Pitch{0, 0})
	assert.ErrorIs(t, err, errs.ErrValue)
	assert.NotErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = tone.FromSlice([]tone.Pitch{0, 0, 0, 0})
	assert.ErrorIs(t, err, errs.ErrValue)

	lvl, err := tone.Level(tone.High)
	require.NoError(t, err)
	assert.Equal(t, mustTone(t, 1, 1, 1), lvl)
}

func TestTone_IncrementCarries(t *testing.T) {
	tn := mustTone(t, 2, 2, 1)
	assert.Equal(t, mustTone(t, 2, 2, 2), tn.Next())

	tn = mustTone(t, -2, -2, 2)
	assert.Equal(t, mustTone(t, -2, -1, -2), tn.Next(), "last slot carries into the middle")

	tn = mustTone(t, 2, 2, 2)
	assert.Equal(t, mustTone(t, -2, -2, -2), tn.Next(), "full wrap")

	tn = mustTone(t, -2, -2, -2)
	assert.Equal(t, mustTone(t, 2, 2, 2), tn.Prev())
}

func TestTone_FullCycle(t *testing.T) {
	for i := 0; i < tone.States; i++ {
		tn, err := tone.FromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, i, tn.Index())
		assert.Equal(t, tn, tn.Advance(tone.States), "125 steps is identity")
		assert.Equal(t, tn, tn.Next().Prev())
		assert.Equal(t, tn.Advance(7), tn.Retreat(tone.States-7))
	}

	_, err := tone.FromIndex(tone.States)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = tone.FromIndex(-1)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestTone_AtAndSet(t *testing.T) {
	tn := mustTone(t, -2, 0, 2)

	p, err := tn.At(-1)
	require.NoError(t, err)
	assert.Equal(t, tone.ExtraHigh, p)

	p, err = tn.At(-3)
	require.NoError(t, err)
	assert.Equal(t, tone.ExtraLow, p)

	_, err = tn.At(3)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = tn.At(-4)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	require.NoError(t, tn.Set(-2, tone.High))
	assert.Equal(t, tone.High, tn.Middle())
	assert.ErrorIs(t, tn.Set(1, 5), errs.ErrInvalidFeatureValue)
	assert.ErrorIs(t, tn.Set(5, 0), errs.ErrIndexOutOfRange)
	assert.Equal(t, mustTone(t, -2, 1, 2), tn, "failed sets leave the tone alone")
}

func TestTone_Iteration(t *testing.T) {
	tn := mustTone(t, -1, 0, 2)

	var fwd, bwd []tone.Pitch
	for _, p := range tn.All() {
		fwd = append(fwd, p)
	}
	for i, p := range tn.Backward() {
		assert.Equal(t, tn.Pitches()[i], p)
		bwd = append(bwd, p)
	}
	assert.Equal(t, []tone.Pitch{-1, 0, 2}, fwd)
	assert.Equal(t, []tone.Pitch{2, 0, -1}, bwd)

	for range tn.All() {
		break
	}
	assert.Equal(t, 3, tn.Len())
}

func TestPitch_Names(t *testing.T) {
	assert.Equal(t, "extra high", tone.ExtraHigh.String())
	assert.Equal(t, "mid", tone.MidPitch.String())
	assert.Equal(t, "pitch(3)", tone.Pitch(3).String())
}
