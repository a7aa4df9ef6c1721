package phone_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/phone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFeatures_NormalizesForeignFields(t *testing.T) {
	p, err := phone.FromFeatures(phone.Features{
		Kind:      phone.VowelKind,
		Phonation: phone.Modal,
		Length:    1,
		Height:    phone.Mid,
		Backness:  phone.Central,
		Manner:    phone.Stop,
		Place:     phone.Velar,
	})
	require.NoError(t, err)
	assert.True(t, p.Equal(phone.Schwa()), "consonant fields are dropped from vowels")

	_, err = phone.FromFeatures(phone.Features{Kind: phone.Kind(7), Length: 1})
	assert.ErrorIs(t, err, errs.ErrInvalidFeatureValue)

	_, err = phone.FromFeatures(phone.DefaultConsonant().Features())
	assert.NoError(t, err)
}

func TestValidate_OrderIsDomainsThenRules(t *testing.T) {
	f := phone.DefaultConsonant().Features()
	f.Phonation = phone.Modal // violates voiced-phonation-vot
	f.Length = 0              // violates the length domain

	assert.ErrorIs(t, phone.Validate(f), errs.ErrInvalidFeatureValue)

	f.Length = 1
	assert.ErrorIs(t, phone.Validate(f), errs.ErrImpossibleArticulation)
	assert.False(t, phone.IsValid(f))
}

func TestRules_FirstViolationReported(t *testing.T) {
	// A modal glottal stop with aspiration breaks voiced-phonation-vot before glottal-stop.
	f := phone.Features{
		Kind: phone.ConsonantKind, Phonation: phone.Modal, Length: 1,
		Manner: phone.Stop, Place: phone.Glottal, Secondary: phone.Glottal, VOT: phone.NotAspirated,
	}
	err := phone.Validate(f)
	require.ErrorIs(t, err, errs.ErrImpossibleArticulation)
	assert.Contains(t, err.Error(), "voiced-phonation-vot")

	names := make([]string, 0)
	for _, r := range phone.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"vowel-phonation", "voiced-phonation-vot", "voiceless-phonation-vot", "glottal-stop",
		"nasal-place", "lateral-place", "sibilant-place", "trill-place", "stop-place",
		"affricate-release", "affricate-release-place",
	}, names)
}

func TestValidate_Affricates(t *testing.T) {
	ts := phone.Features{
		Kind: phone.ConsonantKind, Phonation: phone.Voiceless, Length: 1,
		Manner: phone.Stop, Place: phone.ApicalAlveolar, Secondary: phone.ApicalAlveolar, VOT: phone.NotAspirated,
		Affricate: true, ReleaseManner: phone.SibilantFricative, ReleasePlace: phone.ApicalAlveolar,
	}
	require.NoError(t, phone.Validate(ts))

	cases := []struct {
		name string
		edit func(*phone.Features)
		rule string
	}{
		{"nasal released", func(f *phone.Features) { f.Manner = phone.Nasal; f.Phonation = phone.Modal; f.VOT = phone.CompletelyVoiced }, "affricate-release"},
		{"approximant release", func(f *phone.Features) { f.ReleaseManner = phone.Approximant }, "affricate-release"},
		{"click", func(f *phone.Features) { f.Mechanism = phone.Click }, "affricate-release"},
		{"velar sibilant release", func(f *phone.Features) { f.ReleasePlace = phone.Velar }, "affricate-release-place"},
		{"glottal lateral release", func(f *phone.Features) {
			f.ReleaseManner, f.ReleasePlace = phone.LateralFricative, phone.Glottal
		}, "affricate-release-place"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ts
			tc.edit(&f)
			err := phone.Validate(f)
			require.ErrorIs(t, err, errs.ErrImpossibleArticulation)
			assert.Contains(t, err.Error(), tc.rule+":")
		})
	}

	f := ts
	f.ReleasePlace = phone.Place(40)
	assert.ErrorIs(t, phone.Validate(f), errs.ErrInvalidFeatureValue)

	f = ts
	f.Mechanism = phone.Ejective
	assert.NoError(t, phone.Validate(f))
}

func TestFromFeatures_DropsReleaseWithoutAffricate(t *testing.T) {
	f := phone.DefaultConsonant().Features()
	f.ReleaseManner, f.ReleasePlace = phone.SibilantFricative, phone.Velar
	p, err := phone.FromFeatures(f)
	require.NoError(t, err)
	assert.True(t, p.Equal(phone.DefaultConsonant()))
}

func TestRule_AppliesByKind(t *testing.T) {
	vowelRule := phone.Rules()[0]
	c := phone.DefaultConsonant().Features()
	c.Phonation = phone.GlottalClosure
	assert.False(t, vowelRule.Applies(c))
	assert.True(t, vowelRule.Holds(c))
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "glottal closure", phone.GlottalClosure.String())
	assert.Equal(t, "strongly nasal", phone.StronglyNasalized.String())
	assert.Equal(t, "endolabial", phone.Endolabial.String())
	assert.Equal(t, "non-sibilant fricative", phone.NonSibilantFricative.String())
	assert.Equal(t, "apical palato-alveolar", phone.ApicalPalatoAlveolar.String())
	assert.Equal(t, "moderately aspirated", phone.ModeratelyAspirated.String())
	assert.Equal(t, "implosive", phone.Implosive.String())
	assert.Equal(t, "place(30)", phone.Place(30).String())
	assert.Equal(t, "near-close", phone.HeightName(phone.NearClose))
	assert.Equal(t, "near-back", phone.BacknessName(phone.NearBack))
	assert.Equal(t, "2.50", phone.BacknessName(2.5))

	assert.Equal(t, 10, phone.PhonationScale.Size())
	assert.Equal(t, 10, phone.MannerScale.Size())
	assert.Equal(t, 25, phone.PlaceScale.Size())
	assert.Equal(t, 7, phone.VOTScale.Size())
	assert.Equal(t, 4, phone.MechanismScale.Size())
}

func TestFeatures_JSONUsesNames(t *testing.T) {
	raw, err := json.Marshal(phone.DefaultConsonant().Features())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"manner":"stop"`)
	assert.Contains(t, string(raw), `"place":"apical alveolar"`)
	assert.Contains(t, string(raw), `"vot":"moderately aspirated"`)

	var f phone.Features
	require.NoError(t, json.Unmarshal(raw, &f))
	assert.Equal(t, phone.DefaultConsonant().Features(), f)

	var m phone.Manner
	assert.ErrorIs(t, m.UnmarshalText([]byte("hum")), errs.ErrInvalidFeatureValue)
}
