// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// vowel.go - vowels: height, backness, roundedness and rhotacization.

package phone

import "github.com/katalvlaran/phonetics/errs"

// Vowel is a syllabic phone without a consonantal constriction.
type Vowel struct {
	attributes
}

var _ Phone = (*Vowel)(nil)

// NewVowel builds a modal, oral, plain-length vowel at the given point of the
// vowel space. Options adjust the remaining features.
func NewVowel(height, backness float64, r Roundedness, opts ...Option) (*Vowel, error) {
	f := Features{
		Kind:        VowelKind,
		Phonation:   Modal,
		Length:      1,
		Height:      height,
		Backness:    backness,
		Roundedness: r,
	}
	if err := applyOptions(&f, opts); err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, err
	}

	return &Vowel{attributes{f: f}}, nil
}

// Schwa returns the default vowel [ə].
func Schwa() *Vowel {
	return &Vowel{attributes{f: Features{
		Kind:      VowelKind,
		Phonation: Modal,
		Length:    1,
		Height:    Mid,
		Backness:  Central,
	}}}
}

// Height returns the tongue height, 0 (open) to 6 (close).
func (v *Vowel) Height() float64 { return v.f.Height }

// SetHeight replaces the height.
func (v *Vowel) SetHeight(h float64) error {
	return v.commit(func(f *Features) error {
		if err := HeightScale.Check(h); err != nil {
			return err
		}
		f.Height = h
		return nil
	})
}

// Raise moves the tongue up by d.
func (v *Vowel) Raise(d float64) error {
	h, err := HeightScale.Advance(v.f.Height, d)
	if err != nil {
		return err
	}

	return v.SetHeight(h)
}

// Lower moves the tongue down by d.
func (v *Vowel) Lower(d float64) error {
	h, err := HeightScale.Retreat(v.f.Height, d)
	if err != nil {
		return err
	}

	return v.SetHeight(h)
}

// Backness returns the tongue position, 0 (front) to 4 (back).
func (v *Vowel) Backness() float64 { return v.f.Backness }

// SetBackness replaces the backness.
func (v *Vowel) SetBackness(b float64) error {
	return v.commit(func(f *Features) error {
		if err := BacknessScale.Check(b); err != nil {
			return err
		}
		f.Backness = b
		return nil
	})
}

// MoveBack retracts the tongue by d.
func (v *Vowel) MoveBack(d float64) error {
	b, err := BacknessScale.Advance(v.f.Backness, d)
	if err != nil {
		return err
	}

	return v.SetBackness(b)
}

// MoveForward advances the tongue by d.
func (v *Vowel) MoveForward(d float64) error {
	b, err := BacknessScale.Retreat(v.f.Backness, d)
	if err != nil {
		return err
	}

	return v.SetBackness(b)
}

// Roundedness returns the lip posture.
func (v *Vowel) Roundedness() Roundedness { return v.f.Roundedness }

// IsRounded reports any lip rounding.
func (v *Vowel) IsRounded() bool { return v.f.Roundedness != Unrounded }

// SetRoundedness replaces the lip posture.
func (v *Vowel) SetRoundedness(r Roundedness) error {
	return v.commit(func(f *Features) error {
		if err := RoundednessScale.Check(r); err != nil {
			return err
		}
		f.Roundedness = r
		return nil
	})
}

// AdvanceRoundedness moves k steps forward through the roundedness scale.
func (v *Vowel) AdvanceRoundedness(k int) error {
	return v.SetRoundedness(RoundednessScale.Advance(v.f.Roundedness, k))
}

// RetreatRoundedness moves k steps backward through the roundedness scale.
func (v *Vowel) RetreatRoundedness(k int) error {
	return v.SetRoundedness(RoundednessScale.Retreat(v.f.Roundedness, k))
}

// IsRColored reports rhotacization.
func (v *Vowel) IsRColored() bool { return v.f.RColored }

// RColor rhotacizes the vowel.
func (v *Vowel) RColor() { v.f.RColored = true }

// DeRColor removes rhotacization.
func (v *Vowel) DeRColor() { v.f.RColored = false }

// Clone returns an independent copy.
func (v *Vowel) Clone() Phone { return v.CloneVowel() }

// CloneVowel is Clone with the concrete type.
func (v *Vowel) CloneVowel() *Vowel {
	c := *v

	return &c
}

// Equal reports feature-wise equality with other.
func (v *Vowel) Equal(other Phone) bool {
	return other != nil && other.Features() == v.f
}

// AsVowel returns p as a *Vowel.
func AsVowel(p Phone) (*Vowel, error) {
	v, ok := p.(*Vowel)
	if !ok || v == nil {
		return nil, errs.New(errs.KindValue, "phone is not a vowel")
	}

	return v, nil
}
