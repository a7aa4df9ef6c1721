// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// encode.go - Syllable to text.
//
// Contract:
//   - Output decodes back to equal phones and tone (round trip on features,
//     not on text: alternative spellings are never emitted).
//   - Each phone is spelled as base letter, its place diacritics, an optional
//     tie bar with a second letter, then the remaining marks in a fixed order.
//     The second letter is an affricate's fricative release or, failing a
//     secondary mark, the secondary place.
//   - Phones with no spelling in the notation fail with EncodingFailed.

package transcription

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/syllable"
)

// spelled is a letter plus the diacritics it needs.
type spelled struct {
	letter string
	marks  markSet
}

func (t *table) encode(s *syllable.Syllable) (string, error) {
	var b strings.Builder
	for i, p := range s.All() {
		part, err := s.PartOf(i)
		if err != nil {
			return "", err
		}
		if err := t.encodePhone(&b, p, part == syllable.Nucleus); err != nil {
			return "", fmt.Errorf("phone %d (%s): %w", i+1, p.Description(), err)
		}
	}
	if tn := s.Tone(); !tn.IsZero() {
		for _, p := range tn.Pitches() {
			b.WriteString(t.pitches[p+2])
		}
	}

	return b.String(), nil
}

func (t *table) encodePhone(b *strings.Builder, p phone.Phone, inNucleus bool) error {
	f := p.Features()
	var (
		base  spelled
		tied  *spelled
		marks markSet
		err   error
	)
	if f.Kind == phone.VowelKind {
		base, marks, err = t.vowelSpelling(f, inNucleus)
	} else {
		base, tied, marks, err = t.consonantSpelling(f, inNucleus)
	}
	if err != nil {
		return err
	}
	lm, err := lengthMarks(f.Length)
	if err != nil {
		return err
	}
	if f.Nasalization != phone.Oral {
		m := markStronglyNasalized
		if f.Nasalization == phone.Nasalized {
			m = markNasalized
		}
		marks = marks.with(m)
	}

	b.WriteString(base.letter)
	if err := t.writeMarks(b, base.marks); err != nil {
		return err
	}
	if tied != nil {
		b.WriteString(t.tie)
		b.WriteString(tied.letter)
		if err := t.writeMarks(b, tied.marks); err != nil {
			return err
		}
	}
	if err := t.writeMarks(b, marks); err != nil {
		return err
	}
	for range lm.longs {
		b.WriteString(t.marks[markLong])
	}
	for range lm.halfLongs {
		b.WriteString(t.marks[markHalfLong])
	}
	if lm.extraShort {
		b.WriteString(t.marks[markExtraShort])
	}

	return nil
}

func (t *table) writeMarks(b *strings.Builder, ms markSet) error {
	for m := range ms.each() {
		s, err := t.spell(m)
		if err != nil {
			return err
		}
		b.WriteString(s)
	}

	return nil
}

type lengthSpelling struct {
	longs, halfLongs int
	extraShort       bool
}

// lengthMarks spells 0.5 as extra-short and 1 + k/2 (up to the encodable
// maximum) as long and half-long marks.
func lengthMarks(l float64) (lengthSpelling, error) {
	if l == 0.5 {
		return lengthSpelling{extraShort: true}, nil
	}
	k := (l - 1) * 2
	if k < 0 || k != math.Trunc(k) || l > maxEncodedLength {
		return lengthSpelling{}, fmt.Errorf("length %g has no spelling", l)
	}
	n := int(k)

	return lengthSpelling{longs: n / 2, halfLongs: n % 2}, nil
}

func (t *table) vowelSpelling(f phone.Features, inNucleus bool) (spelled, markSet, error) {
	if f.Height != math.Trunc(f.Height) || f.Backness != math.Trunc(f.Backness) {
		return spelled{}, 0, fmt.Errorf("vowel at height %g, backness %g is off the chart grid", f.Height, f.Backness)
	}

	var (
		best     *vowelSymbol
		bestCost = math.Inf(1)
	)
	for _, v := range t.vowels {
		dh, db := f.Height-v.height, f.Backness-v.backness
		if math.Abs(dh) > 1 || math.Abs(db) > 1 {
			continue
		}
		cost := math.Abs(dh) + math.Abs(db)
		if letterRoundedness(v) != f.Roundedness {
			cost++
		}
		if cost < bestCost {
			best, bestCost = v, cost
		}
	}
	if best == nil {
		return spelled{}, 0, fmt.Errorf("no %s vowel letter near height %g, backness %g", t.notation, f.Height, f.Backness)
	}

	base := spelled{letter: best.spell.canonical(t.notation)}
	switch db := f.Backness - best.backness; {
	case db > 0:
		base.marks = base.marks.with(markRetracted)
	case db < 0:
		base.marks = base.marks.with(markAdvanced)
	}

	var marks markSet
	switch dh := f.Height - best.height; {
	case dh > 0:
		marks = marks.with(markRaised)
	case dh < 0:
		marks = marks.with(markLowered)
	}
	if letterRoundedness(best) != f.Roundedness {
		m, ok := t.byRound[f.Roundedness]
		if !ok {
			return spelled{}, 0, fmt.Errorf("%s has no %s mark", t.notation, f.Roundedness)
		}
		marks = marks.with(m)
	}
	if f.Phonation != phone.Modal {
		m, ok := t.byPhonate[f.Phonation]
		if !ok {
			return spelled{}, 0, fmt.Errorf("%s has no %s mark", t.notation, f.Phonation)
		}
		marks = marks.with(m)
	}
	if f.RColored {
		marks = marks.with(markRhotic)
	}
	if !inNucleus {
		marks = marks.with(markNonSyllabic)
	}

	return base, marks, nil
}

func letterRoundedness(v *vowelSymbol) phone.Roundedness {
	if v.rounded {
		return phone.Exolabial
	}

	return phone.Unrounded
}

func (t *table) consonantSpelling(f phone.Features, inNucleus bool) (spelled, *spelled, markSet, error) {
	voiced := f.Phonation.IsVoiced()

	var (
		base   spelled
		letter *consonantSymbol
		tied   *spelled
	)
	if f.HasSecondary() && !f.Affricate {
		if c := pickVoicing(t.letters[letterKey{f.Mechanism, f.Manner, f.Place, f.Secondary}], voiced); c != nil {
			letter = c
			base.letter = c.spell.canonical(t.notation)
		}
	}

	var marks markSet
	if letter == nil {
		c, placeMarks, other, ok := t.findLetter(f.Mechanism, f.Manner, f.Place, voiced, true)
		if !ok {
			return base, nil, 0, fmt.Errorf("no %s spelling for a %s %s %s", t.notation, f.Mechanism, f.Place, f.Manner)
		}
		letter = c
		base = spelled{letter: c.spell.canonical(t.notation), marks: placeMarks}
		marks = other

		if f.Affricate {
			r, releaseMarks, _, ok := t.findLetter(phone.PulmonicEgressive, f.ReleaseManner, f.ReleasePlace, voiced, false)
			if !ok {
				return base, nil, 0, fmt.Errorf("no %s spelling for a %s %s release", t.notation, f.ReleasePlace, f.ReleaseManner)
			}
			tied = &spelled{letter: r.spell.canonical(t.notation), marks: releaseMarks}
		}
		if f.HasSecondary() {
			m, ok := t.bySecond[f.Secondary]
			switch {
			case ok:
				marks = marks.with(m)
			case f.Affricate:
				return base, nil, 0, fmt.Errorf("no %s spelling for an affricate with %s secondary articulation", t.notation, f.Secondary)
			default:
				tied = t.tiedLetter(f.Manner, f.Secondary, voiced)
				if tied == nil {
					return base, nil, 0, fmt.Errorf("no %s spelling for %s secondary articulation", t.notation, f.Secondary)
				}
			}
		}
	}

	switch {
	case f.Phonation == phone.Voiceless && letter.voiced:
		marks = marks.with(markVoiceless)
	case f.Phonation == phone.Modal && !letter.voiced:
		marks = marks.with(markVoiced)
	case f.Phonation != phone.Voiceless && f.Phonation != phone.Modal:
		m, ok := t.byPhonate[f.Phonation]
		if !ok {
			return base, nil, 0, fmt.Errorf("%s has no %s mark", t.notation, f.Phonation)
		}
		marks = marks.with(m)
	}

	defaultVOT := phone.NotAspirated
	if voiced {
		defaultVOT = phone.CompletelyVoiced
	}
	if f.VOT != defaultVOT {
		m, ok := t.byVOT[f.VOT]
		if !ok {
			return base, nil, 0, fmt.Errorf("%s has no %s mark", t.notation, f.VOT)
		}
		marks = marks.with(m)
	}
	if inNucleus {
		marks = marks.with(markSyllabic)
	}

	return base, tied, marks, nil
}

// findLetter searches for a base letter and diacritics spelling the given
// mechanism, manner and place, preferring fewer diacritics. Place marks are
// returned apart from the others because they bind to the letter.
func (t *table) findLetter(mech phone.Mechanism, manner phone.Manner, place phone.Place, voiced, shifts bool) (*consonantSymbol, markSet, markSet, bool) {
	type via struct {
		mech  phone.Mechanism
		marks markSet
	}
	mechs := []via{{mech, 0}}
	if m, ok := t.byMech[mech]; ok && mech != phone.PulmonicEgressive {
		mechs = append(mechs, via{phone.PulmonicEgressive, newMarkSet(m)})
	}

	type byManner struct {
		manner phone.Manner
		marks  markSet
	}
	manners := []byManner{{manner, 0}}
	if shifts {
		for _, sh := range mannerShifts {
			if sh.to == manner {
				manners = append(manners, byManner{sh.from, newMarkSet(sh.mark)})
			}
		}
	}

	places := append([]placeRoute{{anchor: place}}, placeRoutes[place]...)

	for _, mc := range mechs {
		for _, mn := range manners {
			for _, pl := range places {
				cands := t.letters[letterKey{mc.mech, mn.manner, pl.anchor, pl.anchor}]
				if c := pickVoicing(cands, voiced); c != nil {
					return c, pl.marks, mc.marks.union(mn.marks), true
				}
			}
		}
	}

	return nil, 0, 0, false
}

// tiedLetter spells a secondary place as a second letter, trying the primary
// manner first. A stop is never tied to a fricative: that spells an affricate.
func (t *table) tiedLetter(manner phone.Manner, place phone.Place, voiced bool) *spelled {
	for _, mn := range append([]phone.Manner{manner}, tiedMannerPreference...) {
		if manner == phone.Stop && mn.IsFricative() {
			continue
		}
		c, placeMarks, _, ok := t.findLetter(phone.PulmonicEgressive, mn, place, voiced, false)
		if ok {
			return &spelled{letter: c.spell.canonical(t.notation), marks: placeMarks}
		}
	}

	return nil
}

func pickVoicing(cands []*consonantSymbol, voiced bool) *consonantSymbol {
	if len(cands) == 0 {
		return nil
	}
	for _, c := range cands {
		if c.voiced == voiced {
			return c
		}
	}

	return cands[0]
}
