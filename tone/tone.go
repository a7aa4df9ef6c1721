// SPDX-License-Identifier: MIT
// Package: phonetics/tone
//
// tone.go - pitch levels, contours and odometer order.
//
// Contract:
//   - Slot indices accept -3..2; anything else is KindIndexOutOfRange.
//   - Pitches outside -2..2 are KindInvalidFeatureValue.
//   - Next/Prev/Advance/Retreat never fail: the order wraps at 125.

package tone

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/phonetics/errs"
	"github.com/katalvlaran/phonetics/internal/index"
	"github.com/katalvlaran/phonetics/scale"
)

// Pitch is one pitch level.
type Pitch int

const (
	ExtraLow  Pitch = -2
	Low       Pitch = -1
	MidPitch  Pitch = 0
	High      Pitch = 1
	ExtraHigh Pitch = 2
)

// Slots is the number of pitches in a tone.
const Slots = 3

// States is the number of distinct tones.
const States = 125

// PitchScale is the domain of a single pitch.
var PitchScale = scale.NewCircular[Pitch]("pitch", ExtraLow, "extra low", "low", "mid", "high", "extra high")

func (p Pitch) String() string { return PitchScale.Name(p) }

// Tone is a start-middle-end pitch contour.
type Tone struct {
	p [Slots]Pitch
}

// New returns the tone {start, middle, end}.
func New(start, middle, end Pitch) (Tone, error) {
	var t Tone
	for i, p := range [Slots]Pitch{start, middle, end} {
		if err := PitchScale.Check(p); err != nil {
			return Tone{}, err
		}
		t.p[i] = p
	}

	return t, nil
}

// Level returns the flat tone {p, p, p}.
func Level(p Pitch) (Tone, error) { return New(p, p, p) }

// FromSlice builds a tone from exactly three pitches.
func FromSlice(ps []Pitch) (Tone, error) {
	if len(ps) != Slots {
		return Tone{}, errs.Newf(errs.KindValue, "tone needs %d pitches, got %d", Slots, len(ps))
	}

	return New(ps[0], ps[1], ps[2])
}

// FromIndex returns the tone at position i of the odometer order.
func FromIndex(i int) (Tone, error) {
	if i < 0 || i >= States {
		return Tone{}, errs.Newf(errs.KindIndexOutOfRange, "tone index %d outside [0, %d)", i, States)
	}
	var t Tone
	n := PitchScale.Size()
	for slot := Slots - 1; slot >= 0; slot-- {
		t.p[slot] = ExtraLow + Pitch(i%n)
		i /= n
	}

	return t, nil
}

// At returns the pitch in slot i; negative i counts from the end.
func (t Tone) At(i int) (Pitch, error) {
	j, err := index.Resolve(i, Slots)
	if err != nil {
		return 0, err
	}

	return t.p[j], nil
}

// Set replaces the pitch in slot i.
func (t *Tone) Set(i int, p Pitch) error {
	j, err := index.Resolve(i, Slots)
	if err != nil {
		return err
	}
	if err := PitchScale.Check(p); err != nil {
		return err
	}
	t.p[j] = p

	return nil
}

// Len is always Slots.
func (t Tone) Len() int { return Slots }

// Pitches returns the three pitches.
func (t Tone) Pitches() [Slots]Pitch { return t.p }

// Start, Middle and End name the slots.
func (t Tone) Start() Pitch  { return t.p[0] }
func (t Tone) Middle() Pitch { return t.p[1] }
func (t Tone) End() Pitch    { return t.p[2] }

// All iterates slots front to back.
func (t Tone) All() iter.Seq2[int, Pitch] {
	return func(yield func(int, Pitch) bool) {
		for i, p := range t.p {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Backward iterates slots back to front.
func (t Tone) Backward() iter.Seq2[int, Pitch] {
	return func(yield func(int, Pitch) bool) {
		for i := Slots - 1; i >= 0; i-- {
			if !yield(i, t.p[i]) {
				return
			}
		}
	}
}

// Index returns the odometer position, 0 for {-2,-2,-2} and 124 for {2,2,2}.
func (t Tone) Index() int {
	n := PitchScale.Size()
	idx := 0
	for _, p := range t.p {
		idx = idx*n + int(p-ExtraLow)
	}

	return idx
}

// Advance returns the tone k steps later in odometer order, wrapping.
func (t Tone) Advance(k int) Tone {
	i := (t.Index() + k%States) % States
	if i < 0 {
		i += States
	}
	next, _ := FromIndex(i)

	return next
}

// Retreat returns the tone k steps earlier in odometer order.
func (t Tone) Retreat(k int) Tone { return t.Advance(-(k % States)) }

// Next is Advance(1).
func (t Tone) Next() Tone { return t.Advance(1) }

// Prev is Retreat(1).
func (t Tone) Prev() Tone { return t.Retreat(1) }

// IsLevel reports a flat contour.
func (t Tone) IsLevel() bool { return t.p[0] == t.p[1] && t.p[1] == t.p[2] }

// IsZero reports the mid level tone, which transcriptions leave unmarked.
func (t Tone) IsZero() bool { return t == Tone{} }

// String renders the contour as "{start,middle,end}".
func (t Tone) String() string {
	parts := make([]string, Slots)
	for i, p := range t.p {
		parts[i] = fmt.Sprint(int(p))
	}

	return "{" + strings.Join(parts, ",") + "}"
}
