// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// tables.go - per-notation lookup tables derived from symbols_spec.go.
//
// Contract:
//   - Tables are built once at package init and never mutated, so codecs
//     share them without locking.
//   - Scanner keys are NFD-normalized; decode normalizes its input the same
//     way before scanning.
//   - A spelling collision inside one notation panics at init.

package transcription

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/tone"
)

var markNames = [numMarks]string{
	markDental:            "dental",
	markApical:            "apical",
	markLaminal:           "laminal",
	markLinguolabial:      "linguolabial",
	markBridge:            "bridge",
	markAdvanced:          "advanced",
	markRetracted:         "retracted",
	markRaised:            "raised",
	markLowered:           "lowered",
	markMoreRounded:       "more rounded",
	markLessRounded:       "less rounded",
	markVoiceless:         "voiceless",
	markVoiced:            "voiced",
	markBreathy:           "breathy",
	markSlack:             "slack",
	markStiff:             "stiff",
	markCreaky:            "creaky",
	markFaucalized:        "faucalized",
	markSyllabic:          "syllabic",
	markNonSyllabic:       "non-syllabic",
	markNasalized:         "nasalized",
	markStronglyNasalized: "strongly nasalized",
	markExtraShort:        "extra-short",
	markCompressed:        "compressed",
	markGlottalClosure:    "glottal closure",
	markHarsh:             "harsh",
	markStrident:          "strident",
	markEjective:          "ejective",
	markImplosive:         "implosive",
	markClick:             "click",
	markLabialized:        "labialized",
	markPalatalized:       "palatalized",
	markVelarized:         "velarized",
	markUvularized:        "uvularized",
	markPharyngealized:    "pharyngealized",
	markUnaspirated:       "unaspirated",
	markWeaklyAspirated:   "weakly aspirated",
	markAspirated:         "aspirated",
	markStronglyAspirated: "strongly aspirated",
	markModeratelyVoiced:  "moderately voiced",
	markWeaklyVoiced:      "weakly voiced",
	markRhotic:            "rhotic",
	markLong:              "long",
	markHalfLong:          "half-long",
}

func (m mark) String() string { return markNames[m] }

func (m mark) class() markClass { return markSymbols[m].class }

// markSet is a bit set of marks.
type markSet uint64

func newMarkSet(ms ...mark) markSet {
	var s markSet
	for _, m := range ms {
		s = s.with(m)
	}

	return s
}

func (s markSet) has(m mark) bool         { return s&(1<<m) != 0 }
func (s markSet) with(m mark) markSet     { return s | 1<<m }
func (s markSet) without(m mark) markSet  { return s &^ (1 << m) }
func (s markSet) union(o markSet) markSet { return s | o }
func (s markSet) empty() bool             { return s == 0 }
func (s markSet) len() int                { return bits.OnesCount64(uint64(s)) }
func (s markSet) first() mark             { return mark(bits.TrailingZeros64(uint64(s))) }

func (s markSet) ofClass(c markClass) markSet {
	var out markSet
	for m := range s.each() {
		if m.class() == c {
			out = out.with(m)
		}
	}

	return out
}

// each yields members in output order.
func (s markSet) each() iter.Seq[mark] {
	return func(yield func(mark) bool) {
		for rest := s; rest != 0; rest &= rest - 1 {
			if !yield(mark(bits.TrailingZeros64(uint64(rest)))) {
				return
			}
		}
	}
}

func (s markSet) String() string {
	names := make([]string, 0, s.len())
	for m := range s.each() {
		names = append(names, m.String())
	}

	return strings.Join(names, "+")
}

type tokenKind int

const (
	tokenConsonant tokenKind = iota
	tokenVowel
	tokenMark
	tokenTone
	tokenTie
)

// token is one scanned symbol.
type token struct {
	kind      tokenKind
	consonant *consonantSymbol
	vowel     *vowelSymbol
	mark      mark
	pitch     tone.Pitch
}

type letterKey struct {
	mechanism phone.Mechanism
	manner    phone.Manner
	place     phone.Place
	secondary phone.Place
}

// table is everything one notation needs to decode and encode.
type table struct {
	notation Notation
	scanner  trie[token]

	letters   map[letterKey][]*consonantSymbol
	vowels    []*vowelSymbol
	marks     [numMarks]string
	pitches   [5]string
	tie       string
	byPhonate map[phone.Phonation]mark
	byVOT     map[phone.VOT]mark
	bySecond  map[phone.Place]mark
	byMech    map[phone.Mechanism]mark
	byRound   map[phone.Roundedness]mark
}

type placeKey struct {
	anchor phone.Place
	marks  markSet
}

var (
	tables       = buildTables()
	placeByRoute = buildPlaceRoutes()
)

func buildTables() [numNotations]*table {
	var out [numNotations]*table
	for _, n := range Notations() {
		out[n] = buildTable(n)
	}

	return out
}

func buildTable(n Notation) *table {
	t := &table{
		notation:  n,
		letters:   make(map[letterKey][]*consonantSymbol),
		byPhonate: make(map[phone.Phonation]mark),
		byVOT:     make(map[phone.VOT]mark),
		bySecond:  make(map[phone.Place]mark),
		byMech:    make(map[phone.Mechanism]mark),
		byRound:   make(map[phone.Roundedness]mark),
	}

	for i := range consonantSymbols {
		c := &consonantSymbols[i]
		t.add(c.spell, token{kind: tokenConsonant, consonant: c})
		if c.spell.canonical(n) != "" {
			k := letterKey{c.mechanism, c.manner, c.place, c.secondary}
			t.letters[k] = append(t.letters[k], c)
		}
	}
	for i := range vowelSymbols {
		v := &vowelSymbols[i]
		t.add(v.spell, token{kind: tokenVowel, vowel: v})
		if !v.rhotic && v.spell.canonical(n) != "" {
			t.vowels = append(t.vowels, v)
		}
	}
	for m := range numMarks {
		ms := markSymbols[m]
		t.add(ms.spell, token{kind: tokenMark, mark: m})
		t.marks[m] = ms.spell.canonical(n)
		if t.marks[m] == "" {
			continue
		}
		switch ms.class {
		case classVoicing, classQuality:
			t.byPhonate[ms.phonation] = m
		case classVOT:
			t.byVOT[ms.vot] = m
		case classSecondary:
			t.bySecond[ms.place] = m
		case classMechanism:
			t.byMech[ms.mechanism] = m
		case classRounding:
			t.byRound[ms.roundedness] = m
		}
	}
	for i, s := range toneSymbols {
		p := tone.Pitch(i - 2)
		t.add(s, token{kind: tokenTone, pitch: p})
		t.pitches[i] = s.canonical(n)
	}
	t.add(tieSymbol, token{kind: tokenTie})
	t.tie = tieSymbol.canonical(n)

	return t
}

func (t *table) add(s spelling, tok token) {
	for _, alt := range s[t.notation] {
		key := norm.NFD.String(alt)
		err := t.scanner.Set(key, func(ptr *token, existed bool) error {
			if existed {
				return fmt.Errorf("transcription: %s symbol %q defined twice", t.notation, alt)
			}
			*ptr = tok

			return nil
		})
		if err != nil {
			panic(err)
		}
	}
}

func buildPlaceRoutes() map[placeKey]phone.Place {
	out := make(map[placeKey]phone.Place)
	for place, routes := range placeRoutes {
		for _, r := range routes {
			k := placeKey{r.anchor, r.marks}
			if prev, ok := out[k]; ok && prev != place {
				panic(fmt.Sprintf("transcription: %s with %s spells both %s and %s", r.anchor, r.marks, prev, place))
			}
			out[k] = place
		}
	}

	return out
}

// resolvePlace applies place diacritics to the place of a base symbol.
func resolvePlace(anchor phone.Place, marks markSet) (phone.Place, bool) {
	if marks.empty() {
		return anchor, true
	}
	p, ok := placeByRoute[placeKey{anchor, marks}]

	return p, ok
}

// spell returns the canonical spelling of m, or an error when the notation
// has none.
func (t *table) spell(m mark) (string, error) {
	if s := t.marks[m]; s != "" {
		return s, nil
	}

	return "", fmt.Errorf("%s has no %s mark", t.notation, m)
}
