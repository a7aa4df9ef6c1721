// SPDX-License-Identifier: MIT
// Package: phonetics/align
//
// distance.go - local costs: phone-to-phone and tone-to-tone.

package align

import (
	"math"

	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/tone"
)

// KindMismatchCost is the distance between any vowel and any consonant.
// It is above most same-kind distances, so vowels pair with vowels whenever
// the sequences allow it.
const KindMismatchCost = 4.0

// PhoneDistance is a weighted feature difference between two phones. It is
// symmetric, zero exactly for equal feature tuples, and KindMismatchCost for
// a vowel against a consonant.
func PhoneDistance(a, b phone.Phone) float64 {
	fa, fb := a.Features(), b.Features()
	if fa.Kind != fb.Kind {
		return KindMismatchCost
	}

	d := phonationDistance(fa.Phonation, fb.Phonation) +
		0.25*math.Abs(float64(fa.Nasalization-fb.Nasalization)) +
		0.25*math.Abs(fa.Length-fb.Length)

	if fa.Kind == phone.VowelKind {
		d += math.Abs(fa.Height-fb.Height)/3 + math.Abs(fa.Backness-fb.Backness)/2
		if fa.Roundedness != fb.Roundedness {
			d += 0.5
		}
		if fa.RColored != fb.RColored {
			d += 0.5
		}

		return d
	}

	if fa.Manner != fb.Manner {
		d++
	}
	d += math.Abs(float64(fa.Place-fb.Place)) / float64(phone.PlaceScale.Size()-1)
	switch {
	case fa.HasSecondary() != fb.HasSecondary():
		d += 0.5
	case fa.HasSecondary() && fa.Secondary != fb.Secondary:
		d += 0.25
	}
	switch {
	case fa.Affricate != fb.Affricate:
		d += 0.5
	case fa.Affricate && (fa.ReleaseManner != fb.ReleaseManner || fa.ReleasePlace != fb.ReleasePlace):
		d += 0.25
	}
	d += math.Abs(float64(fa.VOT-fb.VOT)) / float64(phone.VOTScale.Size()-1)
	if fa.Mechanism != fb.Mechanism {
		d++
	}

	return d
}

func phonationDistance(a, b phone.Phonation) float64 {
	switch {
	case a == b:
		return 0
	case a.IsVoiced() != b.IsVoiced():
		return 1
	default:
		return 0.5
	}
}

// ToneDistance is the mean absolute pitch difference per slot, scaled to
// [0, 1].
func ToneDistance(a, b tone.Tone) float64 {
	pa, pb := a.Pitches(), b.Pitches()
	sum := 0
	for i := range pa {
		sum += abs(int(pa[i] - pb[i]))
	}

	return float64(sum) / float64(tone.Slots*(tone.ExtraHigh-tone.ExtraLow))
}
