// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// attributes.go - state and mutators shared by vowels and consonants.
//
// Contract:
//   - All writes go through commit: copy, edit, Validate, assign.
//   - Edit functions report domain errors themselves so the caller sees
//     KindInvalidFeatureValue before any rule is consulted.

package phone

// attributes embeds into Vowel and Consonant and owns the feature tuple.
type attributes struct {
	f Features
}

// commit applies edit to a copy of the tuple and keeps the result only when
// it validates.
func (a *attributes) commit(edit func(*Features) error) error {
	next := a.f
	if err := edit(&next); err != nil {
		return err
	}
	if err := Validate(next); err != nil {
		return err
	}
	a.f = next

	return nil
}

// Features returns a copy of the feature tuple.
func (a *attributes) Features() Features { return a.f }

// Kind reports whether the phone is a vowel or a consonant.
func (a *attributes) Kind() Kind { return a.f.Kind }

// Phonation returns the glottal state.
func (a *attributes) Phonation() Phonation { return a.f.Phonation }

// SetPhonation replaces the phonation.
func (a *attributes) SetPhonation(p Phonation) error {
	return a.commit(func(f *Features) error {
		if err := PhonationScale.Check(p); err != nil {
			return err
		}
		f.Phonation = p
		return nil
	})
}

// AdvancePhonation moves k steps forward through the phonation scale.
func (a *attributes) AdvancePhonation(k int) error {
	return a.SetPhonation(PhonationScale.Advance(a.f.Phonation, k))
}

// RetreatPhonation moves k steps backward through the phonation scale.
func (a *attributes) RetreatPhonation(k int) error {
	return a.SetPhonation(PhonationScale.Retreat(a.f.Phonation, k))
}

// Nasalization returns the degree of nasalization.
func (a *attributes) Nasalization() Nasalization { return a.f.Nasalization }

// IsNasal reports any velic opening.
func (a *attributes) IsNasal() bool { return a.f.Nasalization != Oral }

// SetNasalization replaces the nasalization.
func (a *attributes) SetNasalization(n Nasalization) error {
	return a.commit(func(f *Features) error {
		if err := NasalizationScale.Check(n); err != nil {
			return err
		}
		f.Nasalization = n
		return nil
	})
}

// AdvanceNasalization moves k steps forward, wrapping to oral.
func (a *attributes) AdvanceNasalization(k int) error {
	return a.SetNasalization(NasalizationScale.Advance(a.f.Nasalization, k))
}

// RetreatNasalization moves k steps backward.
func (a *attributes) RetreatNasalization(k int) error {
	return a.SetNasalization(NasalizationScale.Retreat(a.f.Nasalization, k))
}

// Length returns the relative duration; 1 is a plain short phone.
func (a *attributes) Length() float64 { return a.f.Length }

// SetLength replaces the length.
func (a *attributes) SetLength(l float64) error {
	return a.commit(func(f *Features) error {
		if err := LengthScale.Check(l); err != nil {
			return err
		}
		f.Length = l
		return nil
	})
}

// Lengthen adds d to the length.
func (a *attributes) Lengthen(d float64) error {
	return a.setLengthFrom(LengthScale.Advance(a.f.Length, d))
}

// Shorten subtracts d from the length.
func (a *attributes) Shorten(d float64) error {
	return a.setLengthFrom(LengthScale.Retreat(a.f.Length, d))
}

// DoubleLength multiplies the length by two.
func (a *attributes) DoubleLength() error {
	return a.setLengthFrom(LengthScale.Scale(a.f.Length, 2))
}

// HalveLength divides the length by two.
func (a *attributes) HalveLength() error {
	return a.setLengthFrom(LengthScale.Scale(a.f.Length, 0.5))
}

func (a *attributes) setLengthFrom(l float64, err error) error {
	if err != nil {
		return err
	}

	return a.SetLength(l)
}
