// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// decode.go - text to Syllable.
//
// Pipeline:
//   1. trim, strip one [ ] pair, refuse other delimiters;
//   2. NFD-normalize and scan longest-match tokens;
//   3. peel a leading or trailing run of tone marks;
//   4. group letters, their diacritics and tie bars into segments;
//   5. turn each segment into a validated phone;
//   6. split the phones into onset, nucleus and coda by syllabicity.
//
// Errors returned here are plain causes; Codec wraps them as DecodingFailed.

package transcription

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/syllable"
	"github.com/katalvlaran/phonetics/tone"
)

// segment is one base letter, optionally tied to a second letter, with its
// diacritics.
type segment struct {
	first  token
	second *token

	// Place diacritics bind to the letter they follow; the rest apply to the
	// whole segment.
	firstPlace  markSet
	secondPlace markSet
	marks       markSet

	longs, halfLongs int
}

func (t *table) decode(text string) (*syllable.Syllable, error) {
	body, err := t.unbracket(text)
	if err != nil {
		return nil, err
	}
	toks, err := t.scan(norm.NFD.String(body))
	if err != nil {
		return nil, err
	}
	toks, tn, err := splitTone(toks)
	if err != nil {
		return nil, err
	}
	segs, err := t.group(toks)
	if err != nil {
		return nil, err
	}

	phones := make([]phone.Phone, len(segs))
	syllabic := make([]bool, len(segs))
	for i := range segs {
		f, syl, err := t.features(&segs[i])
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		p, err := phone.FromFeatures(f)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		phones[i], syllabic[i] = p, syl
	}

	return split(phones, syllabic, tn)
}

func (t *table) unbracket(text string) (string, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", errors.New("empty transcription")
	}
	if len(s) >= 2 && strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
		if s == "" {
			return "", errors.New("empty transcription")
		}

		return s, nil
	}
	for _, b := range rejectedBrackets[t.notation] {
		if len(s) > len(b.open)+len(b.close) && strings.HasPrefix(s, b.open) && strings.HasSuffix(s, b.close) {
			return "", fmt.Errorf("%s %s delimiters are not phonetic brackets", b.open, b.close)
		}
	}

	return s, nil
}

func (t *table) scan(s string) ([]token, error) {
	toks := make([]token, 0, len(s))
	for i := 0; i < len(s); {
		tok, width, ok := t.scanner.LongestPrefix(s[i:])
		if !ok {
			cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)

			return nil, fmt.Errorf("unknown symbol %q at byte %d", norm.NFC.String(cluster), i)
		}
		toks = append(toks, tok)
		i += width
	}

	return toks, nil
}

// splitTone removes the tone marks, which must form a single run at either
// end, and interprets them.
func splitTone(toks []token) ([]token, tone.Tone, error) {
	lead := 0
	for lead < len(toks) && toks[lead].kind == tokenTone {
		lead++
	}
	trail := len(toks)
	for trail > lead && toks[trail-1].kind == tokenTone {
		trail--
	}
	if lead > 0 && trail < len(toks) {
		return nil, tone.Tone{}, errors.New("tone marks on both sides of the syllable")
	}
	var pitches []tone.Pitch
	for _, tok := range append(toks[:lead:lead], toks[trail:]...) {
		pitches = append(pitches, tok.pitch)
	}
	rest := toks[lead:trail]
	for _, tok := range rest {
		if tok.kind == tokenTone {
			return nil, tone.Tone{}, errors.New("tone mark inside the syllable")
		}
	}

	tn, err := toneOf(pitches)

	return rest, tn, err
}

// toneOf reads one to three tone letters. A single letter is level; two
// letters are a contour whose middle is their truncated mean.
func toneOf(ps []tone.Pitch) (tone.Tone, error) {
	switch len(ps) {
	case 0:
		return tone.Tone{}, nil
	case 1:
		return tone.Level(ps[0])
	case 2:
		return tone.New(ps[0], (ps[0]+ps[1])/2, ps[1])
	case 3:
		return tone.New(ps[0], ps[1], ps[2])
	}

	return tone.Tone{}, fmt.Errorf("%d tone marks, at most %d allowed", len(ps), tone.Slots)
}

func (t *table) group(toks []token) ([]segment, error) {
	var (
		segs []segment
		cur  *segment
		tied bool
	)
	for _, tok := range toks {
		switch tok.kind {
		case tokenConsonant, tokenVowel:
			if tied {
				cur.second = &tok
				tied = false

				continue
			}
			segs = append(segs, segment{first: tok})
			cur = &segs[len(segs)-1]
		case tokenTie:
			if cur == nil || cur.second != nil || tied {
				return nil, errors.New("tie bar must join exactly two symbols")
			}
			tied = true
		case tokenMark:
			if cur == nil || tied {
				return nil, fmt.Errorf("%s mark has no base symbol", tok.mark)
			}
			if err := cur.addMark(tok.mark); err != nil {
				return nil, err
			}
		}
	}
	if tied {
		return nil, errors.New("tie bar must join exactly two symbols")
	}
	if len(segs) == 0 {
		return nil, errors.New("no phone symbols")
	}

	return segs, nil
}

func (s *segment) addMark(m mark) error {
	switch m {
	case markLong:
		s.longs++
		return nil
	case markHalfLong:
		s.halfLongs++
		return nil
	}
	target := &s.marks
	if m.class() == classPlace {
		target = &s.firstPlace
		if s.second != nil {
			target = &s.secondPlace
		}
	}
	if target.has(m) {
		return fmt.Errorf("repeated %s mark", m)
	}
	*target = target.with(m)

	return nil
}

// only returns the single mark of class c in set, if any.
func only(set markSet, c markClass) (mark, bool, error) {
	sub := set.ofClass(c)
	switch sub.len() {
	case 0:
		return 0, false, nil
	case 1:
		return sub.first(), true, nil
	}

	return 0, false, fmt.Errorf("conflicting %s marks", sub)
}

// features assembles the phone of s and reports whether it is syllabic.
func (t *table) features(s *segment) (phone.Features, bool, error) {
	length, err := s.length()
	if err != nil {
		return phone.Features{}, false, err
	}
	f := phone.Features{Length: length}
	if m, ok, err := only(s.marks, classNasal); err != nil {
		return f, false, err
	} else if ok {
		f.Nasalization = markSymbols[m].nasalization
	}
	phonation, err := phonationOf(s.marks)
	if err != nil {
		return f, false, err
	}

	if s.first.kind == tokenVowel {
		err = t.vowelFeatures(s, &f, phonation)
	} else {
		err = t.consonantFeatures(s, &f, phonation)
	}
	if err != nil {
		return f, false, err
	}

	syllabic := f.Kind == phone.VowelKind
	m, ok, err := only(s.marks, classSyllabicity)
	if err != nil {
		return f, false, err
	}
	if ok {
		syllabic = m == markSyllabic
	}

	return f, syllabic, nil
}

func (s *segment) length() (float64, error) {
	if s.marks.has(markExtraShort) {
		if s.longs+s.halfLongs > 0 {
			return 0, errors.New("extra-short mark combined with length marks")
		}

		return 0.5, nil
	}

	return 1 + float64(s.longs) + 0.5*float64(s.halfLongs), nil
}

// phonationOf reads the voicing and voice-quality marks. It returns -1 when
// none is present so the caller can fall back to the letter's voicing.
func phonationOf(marks markSet) (phone.Phonation, error) {
	sub := marks.ofClass(classVoicing).union(marks.ofClass(classQuality))
	switch sub.len() {
	case 0:
		return -1, nil
	case 1:
		return markSymbols[sub.first()].phonation, nil
	}

	return 0, fmt.Errorf("conflicting %s marks", sub)
}

func (t *table) vowelFeatures(s *segment, f *phone.Features, phonation phone.Phonation) error {
	v := s.first.vowel
	if s.second != nil {
		return errors.New("tie bar on a vowel")
	}
	for _, c := range []markClass{classMechanism, classSecondary, classVOT} {
		if sub := s.marks.ofClass(c); !sub.empty() {
			return fmt.Errorf("%s mark on a vowel", sub.first())
		}
	}
	if extra := s.firstPlace.without(markAdvanced).without(markRetracted); !extra.empty() {
		return fmt.Errorf("%s mark on a vowel", extra.first())
	}

	f.Kind = phone.VowelKind
	f.Height, f.Backness = v.height, v.backness
	switch {
	case s.marks.has(markRaised) && s.marks.has(markLowered):
		return errors.New("vowel both raised and lowered")
	case s.marks.has(markRaised):
		f.Height++
	case s.marks.has(markLowered):
		f.Height--
	}
	switch {
	case s.firstPlace.has(markAdvanced) && s.firstPlace.has(markRetracted):
		return errors.New("vowel both advanced and retracted")
	case s.firstPlace.has(markRetracted):
		f.Backness++
	case s.firstPlace.has(markAdvanced):
		f.Backness--
	}

	f.Roundedness = phone.Unrounded
	if v.rounded {
		f.Roundedness = phone.Exolabial
	}
	m, ok, err := only(s.marks, classRounding)
	if err != nil {
		return err
	}
	if ok {
		f.Roundedness = markSymbols[m].roundedness
	}

	if v.rhotic && s.marks.has(markRhotic) {
		return errors.New("repeated rhotic mark")
	}
	f.RColored = v.rhotic || s.marks.has(markRhotic)

	f.Phonation = phone.Modal
	if phonation >= 0 {
		f.Phonation = phonation
	}

	return nil
}

func (t *table) consonantFeatures(s *segment, f *phone.Features, phonation phone.Phonation) error {
	c := s.first.consonant
	f.Kind = phone.ConsonantKind

	if bad := s.marks.ofClass(classRounding).union(s.marks.ofClass(classRhotic)); !bad.empty() {
		return fmt.Errorf("%s mark on a consonant", bad.first())
	}

	place, ok := resolvePlace(c.place, s.firstPlace)
	if !ok {
		return fmt.Errorf("%s marks do not apply to %s place", s.firstPlace, c.place)
	}
	f.Place = place

	f.Manner = c.manner
	m, ok, err := only(s.marks, classManner)
	if err != nil {
		return err
	}
	if ok {
		manner, shifted := shiftManner(c.manner, m)
		if !shifted {
			return fmt.Errorf("%s mark does not apply to a %s", m, c.manner)
		}
		f.Manner = manner
	}

	f.Mechanism = c.mechanism
	m, ok, err = only(s.marks, classMechanism)
	if err != nil {
		return err
	}
	if ok {
		if c.mechanism != phone.PulmonicEgressive {
			return fmt.Errorf("%s mark on a %s symbol", m, c.mechanism)
		}
		f.Mechanism = markSymbols[m].mechanism
	}

	if err := t.secondaryOf(s, f); err != nil {
		return err
	}

	switch {
	case phonation >= 0:
		f.Phonation = phonation
	case c.voiced:
		f.Phonation = phone.Modal
	default:
		f.Phonation = phone.Voiceless
	}

	f.VOT = phone.NotAspirated
	if f.Phonation.IsVoiced() {
		f.VOT = phone.CompletelyVoiced
	}
	m, ok, err = only(s.marks, classVOT)
	if err != nil {
		return err
	}
	if ok {
		f.VOT = markSymbols[m].vot
	}

	return nil
}

func (t *table) secondaryOf(s *segment, f *phone.Features) error {
	c := s.first.consonant
	f.Secondary = f.Place

	m, marked, err := only(s.marks, classSecondary)
	if err != nil {
		return err
	}
	if c.secondary != c.place {
		if marked || s.second != nil {
			return errors.New("secondary articulation on a doubly articulated symbol")
		}
		f.Secondary = c.secondary

		return nil
	}

	var (
		tied      *consonantSymbol
		tiedPlace phone.Place
	)
	if s.second != nil {
		tied, tiedPlace, err = tiedSymbol(s)
		if err != nil {
			return err
		}
		// A stop tied to a fricative is an affricate, not a double articulation.
		if f.Manner == phone.Stop && c.mechanism == phone.PulmonicEgressive && tied.manner.IsFricative() {
			f.Affricate, f.ReleaseManner, f.ReleasePlace = true, tied.manner, tiedPlace
			tied = nil
		}
	}

	switch {
	case marked && tied != nil:
		return errors.New("secondary articulation given twice")
	case marked:
		f.Secondary = markSymbols[m].place
	case tied != nil:
		f.Secondary = tiedPlace
	default:
		return nil
	}
	if f.Secondary == f.Place {
		return fmt.Errorf("secondary articulation at the primary place %s", f.Place)
	}

	return nil
}

// tiedSymbol returns the letter after the tie bar and its place.
func tiedSymbol(s *segment) (*consonantSymbol, phone.Place, error) {
	if s.second.kind != tokenConsonant {
		return nil, 0, errors.New("tie bar on a vowel")
	}
	sc := s.second.consonant
	if sc.secondary != sc.place || sc.mechanism != phone.PulmonicEgressive {
		return nil, 0, errors.New("tied symbol must be a simple pulmonic consonant")
	}
	place, ok := resolvePlace(sc.place, s.secondPlace)
	if !ok {
		return nil, 0, fmt.Errorf("%s marks do not apply to %s place", s.secondPlace, sc.place)
	}

	return sc, place, nil
}

func shiftManner(from phone.Manner, m mark) (phone.Manner, bool) {
	for _, sh := range mannerShifts {
		if sh.from == from && sh.mark == m {
			return sh.to, true
		}
	}

	return from, false
}

// split assigns phones to onset, nucleus and coda. The nucleus is the one
// maximal run of syllabic phones.
func split(phones []phone.Phone, syllabic []bool, tn tone.Tone) (*syllable.Syllable, error) {
	start := -1
	for i, s := range syllabic {
		if s {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, errors.New("no syllabic phone")
	}
	end := start
	for end < len(phones) && syllabic[end] {
		end++
	}
	for i := end; i < len(phones); i++ {
		if syllabic[i] {
			return nil, fmt.Errorf("syllabic phone %d after the nucleus", i+1)
		}
	}

	return syllable.New(phones[:start], phones[start:end], phones[end:], tn)
}
