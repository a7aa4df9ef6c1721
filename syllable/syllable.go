// SPDX-License-Identifier: MIT
// Package: phonetics/syllable
//
// syllable.go - construction, positional edits and flattened views.

package syllable

import (
	"iter"
	"slices"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/internal/index"
	"github.com/katalvlaran/phonetics/phone"
	"github.com/katalvlaran/phonetics/tone"
)

// Part names a constituent of the syllable.
type Part int

const (
	Onset Part = iota
	Nucleus
	Coda
)

func (p Part) String() string {
	switch p {
	case Onset:
		return "onset"
	case Nucleus:
		return "nucleus"
	default:
		return "coda"
	}
}

// Syllable is a sequence of phones with a non-empty nucleus and a tone.
// The zero value has no nucleus and is not a valid syllable: build one with
// New or Default. Encoders reject it.
type Syllable struct {
	parts [3][]phone.Phone
	tone  tone.Tone
}

// New builds a syllable from copies of the given phones.
func New(onset, nucleus, coda []phone.Phone, t tone.Tone) (*Syllable, error) {
	if len(nucleus) == 0 {
		return nil, errs.New(errs.KindImpossibleArticulation, "syllable nucleus is empty")
	}
	s := &Syllable{tone: t}
	for part, phones := range [3][]phone.Phone{onset, nucleus, coda} {
		cp, err := cloneAll(phones)
		if err != nil {
			return nil, err
		}
		s.parts[part] = cp
	}

	return s, nil
}

// Default returns a lone schwa with the mid level tone.
func Default() *Syllable {
	return &Syllable{parts: [3][]phone.Phone{nil, {phone.Schwa()}, nil}}
}

// Tone returns the syllable's tone.
func (s *Syllable) Tone() tone.Tone { return s.tone }

// SetTone replaces the tone.
func (s *Syllable) SetTone(t tone.Tone) { s.tone = t }

// Onset returns copies of the onset phones.
func (s *Syllable) Onset() []phone.Phone { return mustClone(s.parts[Onset]) }

// Nucleus returns copies of the nucleus phones.
func (s *Syllable) Nucleus() []phone.Phone { return mustClone(s.parts[Nucleus]) }

// Coda returns copies of the coda phones.
func (s *Syllable) Coda() []phone.Phone { return mustClone(s.parts[Coda]) }

// PartLen returns the number of phones in one constituent.
func (s *Syllable) PartLen(p Part) int { return len(s.parts[p]) }

// Len returns the number of phones in the syllable.
func (s *Syllable) Len() int {
	return len(s.parts[Onset]) + len(s.parts[Nucleus]) + len(s.parts[Coda])
}

// Phones returns copies of all phones: onset, then nucleus, then coda.
func (s *Syllable) Phones() []phone.Phone {
	out := make([]phone.Phone, 0, s.Len())
	for _, p := range s.all() {
		out = append(out, p.Clone())
	}

	return out
}

// At returns a copy of the phone at flattened index i.
func (s *Syllable) At(i int) (phone.Phone, error) {
	j, err := index.Resolve(i, s.Len())
	if err != nil {
		return nil, err
	}

	return s.all()[j].Clone(), nil
}

// PartOf reports which constituent holds flattened index i.
func (s *Syllable) PartOf(i int) (Part, error) {
	j, err := index.Resolve(i, s.Len())
	if err != nil {
		return 0, err
	}
	for part := Onset; part < Coda; part++ {
		if j < len(s.parts[part]) {
			return part, nil
		}
		j -= len(s.parts[part])
	}

	return Coda, nil
}

// All iterates copies of the phones front to back.
func (s *Syllable) All() iter.Seq2[int, phone.Phone] {
	return func(yield func(int, phone.Phone) bool) {
		for i, p := range s.all() {
			if !yield(i, p.Clone()) {
				return
			}
		}
	}
}

// Backward iterates copies of the phones back to front.
func (s *Syllable) Backward() iter.Seq2[int, phone.Phone] {
	return func(yield func(int, phone.Phone) bool) {
		flat := s.all()
		for i := len(flat) - 1; i >= 0; i-- {
			if !yield(i, flat[i].Clone()) {
				return
			}
		}
	}
}

// Vowels returns copies of the vowels in order.
func (s *Syllable) Vowels() []*phone.Vowel {
	var out []*phone.Vowel
	for _, p := range s.all() {
		if v, ok := p.(*phone.Vowel); ok {
			out = append(out, v.CloneVowel())
		}
	}

	return out
}

// Consonants returns copies of the consonants in order.
func (s *Syllable) Consonants() []*phone.Consonant {
	var out []*phone.Consonant
	for _, p := range s.all() {
		if c, ok := p.(*phone.Consonant); ok {
			out = append(out, c.CloneConsonant())
		}
	}

	return out
}

// Insert stores a copy of p at position pos of the given constituent.
func (s *Syllable) Insert(part Part, p phone.Phone, pos int) error {
	if err := checkPart(part); err != nil {
		return err
	}
	if p == nil {
		return errs.New(errs.KindValue, "nil phone")
	}
	j, err := index.ResolveInsert(pos, len(s.parts[part]))
	if err != nil {
		return err
	}
	s.parts[part] = slices.Insert(s.parts[part], j, p.Clone())

	return nil
}

// Remove deletes the phone at index i of the given constituent.
func (s *Syllable) Remove(part Part, i int) error {
	if err := checkPart(part); err != nil {
		return err
	}
	j, err := index.Resolve(i, len(s.parts[part]))
	if err != nil {
		return err
	}
	if part == Nucleus && len(s.parts[part]) == 1 {
		return errs.New(errs.KindImpossibleArticulation, "cannot remove the last nucleus phone")
	}
	s.parts[part] = slices.Delete(s.parts[part], j, j+1)

	return nil
}

func (s *Syllable) InsertOnset(p phone.Phone, pos int) error   { return s.Insert(Onset, p, pos) }
func (s *Syllable) InsertNucleus(p phone.Phone, pos int) error { return s.Insert(Nucleus, p, pos) }
func (s *Syllable) InsertCoda(p phone.Phone, pos int) error    { return s.Insert(Coda, p, pos) }
func (s *Syllable) RemoveOnset(i int) error                    { return s.Remove(Onset, i) }
func (s *Syllable) RemoveNucleus(i int) error                  { return s.Remove(Nucleus, i) }
func (s *Syllable) RemoveCoda(i int) error                     { return s.Remove(Coda, i) }

// Update calls fn on a working copy of every phone, in order. Phones are
// mutable through their concrete types. If fn fails for any phone the
// syllable keeps its previous phones and the error is returned.
func (s *Syllable) Update(fn func(i int, p phone.Phone) error) error {
	var next [3][]phone.Phone
	i := 0
	for part := range s.parts {
		next[part] = mustClone(s.parts[part])
		for _, p := range next[part] {
			if err := fn(i, p); err != nil {
				return err
			}
			i++
		}
	}
	for part := range next {
		s.parts[part] = mustClone(next[part])
	}

	return nil
}

// Equal reports equal phones in equal positions and equal tones.
func (s *Syllable) Equal(o *Syllable) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.tone != o.tone {
		return false
	}
	for part := range s.parts {
		if !slices.EqualFunc(s.parts[part], o.parts[part], func(a, b phone.Phone) bool { return a.Equal(b) }) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
func (s *Syllable) Clone() *Syllable {
	c := &Syllable{tone: s.tone}
	for part := range s.parts {
		c.parts[part] = mustClone(s.parts[part])
	}

	return c
}

func (s *Syllable) all() []phone.Phone {
	return slices.Concat(s.parts[Onset], s.parts[Nucleus], s.parts[Coda])
}

func checkPart(p Part) error {
	if p < Onset || p > Coda {
		return errs.Newf(errs.KindValue, "unknown syllable part %d", int(p))
	}

	return nil
}

func cloneAll(in []phone.Phone) ([]phone.Phone, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]phone.Phone, len(in))
	for i, p := range in {
		if p == nil {
			return nil, errs.Newf(errs.KindValue, "nil phone at %d", i)
		}
		out[i] = p.Clone()
	}

	return out, nil
}

func mustClone(in []phone.Phone) []phone.Phone {
	out, _ := cloneAll(in)

	return out
}
