package syllable_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/syllable"
	"github.com/katalvlaran/phonetics/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consonant(t *testing.T, m phone.Manner, p phone.Place) *phone.Consonant {
	t.Helper()
	c, err := phone.NewConsonant(m, p, phone.Voiceless, phone.NotAspirated)
	require.NoError(t, err)
	return c
}

func vowel(t *testing.T, h, b float64) *phone.Vowel {
	t.Helper()
	v, err := phone.NewVowel(h, b, phone.Unrounded)
	require.NoError(t, err)
	return v
}

// cat: [k a t]
func cat(t *testing.T) *syllable.Syllable {
	t.Helper()
	s, err := syllable.New(
		[]phone.Phone{consonant(t, phone.Stop, phone.Velar)},
		[]phone.Phone{vowel(t, phone.Open, phone.Front)},
		[]phone.Phone{consonant(t, phone.Stop, phone.ApicalAlveolar)},
		tone.Tone{},
	)
	require.NoError(t, err)
	return s
}

func TestNew_EmptyNucleus(t *testing.T) {
	_, err := syllable.New([]phone.Phone{phone.DefaultConsonant()}, nil, nil, tone.Tone{})
	assert.ErrorIs(t, err, errs.ErrImpossibleArticulation)

	_, err = syllable.New(nil, []phone.Phone{nil}, nil, tone.Tone{})
	assert.ErrorIs(t, err, errs.ErrValue)
}

func TestDefault(t *testing.T) {
	s := syllable.Default()
	require.Equal(t, 1, s.Len())
	p, err := s.At(0)
	require.NoError(t, err)
	assert.True(t, p.Equal(phone.Schwa()))
	assert.True(t, s.Tone().IsZero())
}

func TestSyllable_OwnsItsPhones(t *testing.T) {
	v := vowel(t, phone.Open, phone.Front)
	s, err := syllable.New(nil, []phone.Phone{v}, nil, tone.Tone{})
	require.NoError(t, err)

	require.NoError(t, v.Raise(1))
	got, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, phone.Open, got.Features().Height, "caller mutation does not leak in")

	gv, err := phone.AsVowel(got)
	require.NoError(t, err)
	require.NoError(t, gv.Raise(2))
	again, _ := s.At(0)
	assert.Equal(t, phone.Open, again.Features().Height, "returned copies do not leak out")

	for _, ph := range s.Nucleus() {
		pv, _ := phone.AsVowel(ph)
		require.NoError(t, pv.Raise(1))
	}
	assert.Equal(t, phone.Open, s.Vowels()[0].Height())
}

func TestSyllable_FlattenedAccess(t *testing.T) {
	s := cat(t)

	require.Equal(t, 3, s.Len())
	last, err := s.At(-1)
	require.NoError(t, err)
	assert.Equal(t, phone.ApicalAlveolar, last.Features().Place)

	_, err = s.At(3)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	_, err = s.At(-4)
	assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)

	part, err := s.PartOf(1)
	require.NoError(t, err)
	assert.Equal(t, syllable.Nucleus, part)
	part, err = s.PartOf(-1)
	require.NoError(t, err)
	assert.Equal(t, syllable.Coda, part)

	var kinds []phone.Kind
	for _, p := range s.All() {
		kinds = append(kinds, p.Kind())
	}
	assert.Equal(t, []phone.Kind{phone.ConsonantKind, phone.VowelKind, phone.ConsonantKind}, kinds)

	var idx []int
	for i := range s.Backward() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{2, 1, 0}, idx)

	assert.Len(t, s.Vowels(), 1)
	assert.Len(t, s.Consonants(), 2)
	assert.Len(t, s.Phones(), 3)
}

func TestSyllable_InsertPositions(t *testing.T) {
	s := cat(t)
	s1 := consonant(t, phone.SibilantFricative, phone.ApicalAlveolar)
	p1 := consonant(t, phone.Stop, phone.Bilabial)

	require.NoError(t, s.InsertOnset(s1, 0))  // s k
	require.NoError(t, s.InsertOnset(p1, -1)) // s k p
	require.Equal(t, 3, s.PartLen(syllable.Onset))

	onset := s.Onset()
	assert.True(t, onset[0].Equal(s1))
	assert.True(t, onset[2].Equal(p1))

	require.NoError(t, s.InsertCoda(s1, -2)) // s before t
	assert.True(t, s.Coda()[0].Equal(s1))

	assert.ErrorIs(t, s.InsertOnset(p1, 5), errs.ErrIndexOutOfRange)
	assert.ErrorIs(t, s.InsertOnset(nil, 0), errs.ErrValue)
	assert.ErrorIs(t, s.Insert(syllable.Part(7), p1, 0), errs.ErrValue)
	assert.Equal(t, 3, s.PartLen(syllable.Onset))
}

func TestSyllable_RemoveLastNucleusFails(t *testing.T) {
	s := cat(t)
	before := s.Clone()

	err := s.RemoveNucleus(0)
	assert.ErrorIs(t, err, errs.ErrImpossibleArticulation)
	assert.True(t, s.Equal(before), "failed removal leaves the syllable unchanged")

	require.NoError(t, s.InsertNucleus(vowel(t, phone.Close, phone.Front), -1))
	require.NoError(t, s.RemoveNucleus(0))
	assert.Equal(t, phone.Close, s.Nucleus()[0].Features().Height)

	require.NoError(t, s.RemoveOnset(-1))
	require.NoError(t, s.RemoveCoda(0))
	assert.ErrorIs(t, s.RemoveCoda(0), errs.ErrIndexOutOfRange)
	assert.Equal(t, 1, s.Len())
}

func TestSyllable_UpdateIsTransactional(t *testing.T) {
	s := cat(t)
	before := s.Clone()
	boom := errors.New("boom")

	err := s.Update(func(i int, p phone.Phone) error {
		if c, ok := p.(*phone.Consonant); ok {
			if err := c.SetPlace(phone.Uvular); err != nil {
				return err
			}
		}
		if i == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.True(t, s.Equal(before))

	var kept phone.Phone
	require.NoError(t, s.Update(func(_ int, p phone.Phone) error {
		if c, ok := p.(*phone.Consonant); ok {
			kept = c
			return c.SetPlace(phone.Uvular)
		}
		return nil
	}))
	for _, c := range s.Consonants() {
		assert.Equal(t, phone.Uvular, c.Place())
	}

	kc, _ := phone.AsConsonant(kept)
	require.NoError(t, kc.SetPlace(phone.Bilabial))
	assert.Equal(t, phone.Uvular, s.Consonants()[1].Place(), "working copies are not retained")
}

func TestSyllable_EqualAndTone(t *testing.T) {
	a, b := cat(t), cat(t)
	assert.True(t, a.Equal(b))

	rising, err := tone.New(tone.Low, tone.MidPitch, tone.High)
	require.NoError(t, err)
	b.SetTone(rising)
	assert.False(t, a.Equal(b))
	assert.Equal(t, rising, b.Tone())

	var nilS *syllable.Syllable
	assert.False(t, a.Equal(nilS))
	assert.True(t, nilS.Equal(nil))
}

func TestSequence(t *testing.T) {
	q := syllable.Sequence{cat(t), syllable.Default()}
	c := q.Clone()

	assert.True(t, q.Equal(c))
	assert.Len(t, q, 2)
	assert.Equal(t, 4, q.PhoneCount())
	require.NoError(t, c[1].InsertOnset(phone.DefaultConsonant(), 0))
	assert.False(t, q.Equal(c))
}
