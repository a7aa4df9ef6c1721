package phone_test

import (
	"testing"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/phone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchwa_Defaults(t *testing.T) {
	v := phone.Schwa()

	assert.Equal(t, phone.VowelKind, v.Kind())
	assert.Equal(t, phone.Mid, v.Height())
	assert.Equal(t, phone.Central, v.Backness())
	assert.Equal(t, phone.Unrounded, v.Roundedness())
	assert.Equal(t, phone.Modal, v.Phonation())
	assert.Equal(t, phone.Oral, v.Nasalization())
	assert.Equal(t, 1.0, v.Length())
	assert.False(t, v.IsRColored())
	assert.False(t, v.IsNasal())
	assert.False(t, v.IsRounded())
	assert.NoError(t, phone.Validate(v.Features()))
}

func TestNewVowel_Options(t *testing.T) {
	v, err := phone.NewVowel(phone.Close, phone.Back, phone.Exolabial,
		phone.WithPhonation(phone.Breathy),
		phone.WithNasalization(phone.Nasalized),
		phone.WithLength(2),
		phone.WithRColor(),
	)
	require.NoError(t, err)
	assert.Equal(t, phone.Breathy, v.Phonation())
	assert.True(t, v.IsNasal())
	assert.True(t, v.IsRounded())
	assert.True(t, v.IsRColored())
	assert.Equal(t, 2.0, v.Length())
}

func TestNewVowel_Rejects(t *testing.T) {
	_, err := phone.NewVowel(7, phone.Front, phone.Unrounded)
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = phone.NewVowel(phone.Close, -0.5, phone.Unrounded)
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = phone.NewVowel(phone.Close, phone.Front, phone.Roundedness(5))
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = phone.NewVowel(phone.Mid, phone.Central, phone.Unrounded, phone.WithPhonation(phone.GlottalClosure))
	assert.ErrorIs(t, err, errs.ErrImpossibleArticulation)

	_, err = phone.NewVowel(phone.Mid, phone.Central, phone.Unrounded, phone.WithLength(0))
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = phone.NewVowel(phone.Mid, phone.Central, phone.Unrounded, phone.WithMechanism(phone.Click))
	assert.ErrorIs(t, err, errs.ErrValue)
	assert.NotErrorIs(t, err, errs.ErrInvalidFeatureValue)
}

func TestVowel_RaiseAtTopFails(t *testing.T) {
	v, err := phone.NewVowel(phone.Close, phone.Front, phone.Unrounded)
	require.NoError(t, err)

	err = v.Raise(1)
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)
	assert.Equal(t, phone.Close, v.Height(), "rejected raise leaves height")

	require.NoError(t, v.Lower(1.5))
	assert.Equal(t, 4.5, v.Height())
	require.NoError(t, v.Raise(0.5))
	assert.Equal(t, 5.0, v.Height())

	assert.ErrorIs(t, v.Lower(5.5), errs.ErrInvalidFeatureValue)
	assert.Equal(t, 5.0, v.Height())
}

func TestVowel_MoveBackAtBackFails(t *testing.T) {
	v, err := phone.NewVowel(phone.Close, phone.Back, phone.Exolabial)
	require.NoError(t, err)

	assert.ErrorIs(t, v.MoveBack(1), errs.ErrInvalidFeatureValue)
	assert.Equal(t, phone.Back, v.Backness())

	require.NoError(t, v.MoveForward(4))
	assert.Equal(t, phone.Front, v.Backness())
	assert.ErrorIs(t, v.MoveForward(1), errs.ErrInvalidFeatureValue)

	assert.ErrorIs(t, v.SetBackness(4.01), errs.ErrInvalidFeatureValue)
	assert.ErrorIs(t, v.SetHeight(-1), errs.ErrInvalidFeatureValue)
}

func TestVowel_Length(t *testing.T) {
	v := phone.Schwa()

	require.NoError(t, v.SetLength(2))
	require.NoError(t, v.HalveLength())
	assert.Equal(t, 1.0, v.Length())

	require.NoError(t, v.DoubleLength())
	assert.Equal(t, 2.0, v.Length())

	require.NoError(t, v.Lengthen(0.5))
	require.NoError(t, v.Shorten(2))
	assert.InDelta(t, 0.5, v.Length(), 1e-12)

	assert.ErrorIs(t, v.Shorten(0.5), errs.ErrInvalidFeatureValue, "length must stay positive")
	assert.ErrorIs(t, v.SetLength(-1), errs.ErrInvalidFeatureValue)
	assert.InDelta(t, 0.5, v.Length(), 1e-12)
}

func TestVowel_PhonationCannotCloseGlottis(t *testing.T) {
	v := phone.Schwa()

	err := v.SetPhonation(phone.GlottalClosure)
	assert.ErrorIs(t, err, errs.ErrImpossibleArticulation)
	assert.Equal(t, phone.Modal, v.Phonation())

	// creaky (5) -> glottal closure (6) is rejected, faucalized reached via a jump
	require.NoError(t, v.SetPhonation(phone.Creaky))
	assert.ErrorIs(t, v.AdvancePhonation(1), errs.ErrImpossibleArticulation)
	require.NoError(t, v.AdvancePhonation(2))
	assert.Equal(t, phone.Faucalized, v.Phonation())

	require.NoError(t, v.SetPhonation(phone.Strident))
	require.NoError(t, v.AdvancePhonation(1))
	assert.Equal(t, phone.Voiceless, v.Phonation(), "phonation wraps")
	require.NoError(t, v.RetreatPhonation(1))
	assert.Equal(t, phone.Strident, v.Phonation())
}

func TestVowel_RoundednessAndRColor(t *testing.T) {
	v := phone.Schwa()

	require.NoError(t, v.AdvanceRoundedness(1))
	assert.Equal(t, phone.Exolabial, v.Roundedness())
	require.NoError(t, v.AdvanceRoundedness(2))
	assert.Equal(t, phone.Unrounded, v.Roundedness())
	require.NoError(t, v.RetreatRoundedness(1))
	assert.Equal(t, phone.Endolabial, v.Roundedness())
	assert.ErrorIs(t, v.SetRoundedness(3), errs.ErrInvalidFeatureValue)

	v.RColor()
	assert.True(t, v.IsRColored())
	v.DeRColor()
	assert.False(t, v.IsRColored())
}

func TestVowel_NasalizationWraps(t *testing.T) {
	v := phone.Schwa()

	require.NoError(t, v.AdvanceNasalization(2))
	assert.Equal(t, phone.StronglyNasalized, v.Nasalization())
	require.NoError(t, v.AdvanceNasalization(1))
	assert.Equal(t, phone.Oral, v.Nasalization())
	require.NoError(t, v.RetreatNasalization(1))
	assert.Equal(t, phone.StronglyNasalized, v.Nasalization())
	assert.ErrorIs(t, v.SetNasalization(-1), errs.ErrInvalidFeatureValue)
}

func TestVowel_CloneAndEqual(t *testing.T) {
	a := phone.Schwa()
	b := a.CloneVowel()
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Raise(1))
	assert.False(t, a.Equal(b))
	assert.Equal(t, phone.Mid, a.Height(), "clone is independent")
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(phone.DefaultConsonant()))
}

func TestVowel_Description(t *testing.T) {
	i, err := phone.NewVowel(phone.Close, phone.Front, phone.Unrounded)
	require.NoError(t, err)
	assert.Equal(t, "close front unrounded vowel", i.Description())

	v, err := phone.NewVowel(phone.Mid, phone.Central, phone.Unrounded,
		phone.WithPhonation(phone.Breathy), phone.WithNasalization(phone.Nasalized),
		phone.WithRColor(), phone.WithLength(1.5))
	require.NoError(t, err)
	assert.Equal(t, "breathy nasal mid central unrounded r-colored vowel, length 1.5", v.Description())

	require.NoError(t, v.SetHeight(3.5))
	assert.Contains(t, v.Description(), "3.50 central")
}
