// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// options.go - functional options for NewVowel and NewConsonant.
//
// Contract:
//   - Options only edit the candidate tuple; the constructor validates once
//     after all options ran.
//   - An option that does not apply to the phone kind being built makes the
//     constructor fail with KindValue.

package phone

import "github.com/katalvlaran/phonetics/errs"

// Option customizes a phone under construction.
type Option struct {
	name       string
	vowels     bool
	consonants bool
	apply      func(*Features)
}

func (o Option) check(k Kind) error {
	if (k == VowelKind && o.vowels) || (k == ConsonantKind && o.consonants) {
		return nil
	}

	return errs.Newf(errs.KindValue, "%s does not apply to %ss", o.name, k)
}

func applyOptions(f *Features, opts []Option) error {
	for _, o := range opts {
		if err := o.check(f.Kind); err != nil {
			return err
		}
		o.apply(f)
	}

	return nil
}

// WithPhonation sets a vowel's phonation (default modal). Consonants take
// phonation as a constructor argument.
func WithPhonation(p Phonation) Option {
	return Option{name: "WithPhonation", vowels: true, apply: func(f *Features) { f.Phonation = p }}
}

// WithNasalization sets the nasalization (default oral).
func WithNasalization(n Nasalization) Option {
	return Option{name: "WithNasalization", vowels: true, consonants: true,
		apply: func(f *Features) { f.Nasalization = n }}
}

// WithLength sets the relative length (default 1).
func WithLength(l float64) Option {
	return Option{name: "WithLength", vowels: true, consonants: true,
		apply: func(f *Features) { f.Length = l }}
}

// WithRColor makes a vowel rhotacized.
func WithRColor() Option {
	return Option{name: "WithRColor", vowels: true, apply: func(f *Features) { f.RColored = true }}
}

// WithMechanism sets a consonant's airstream mechanism (default pulmonic egressive).
func WithMechanism(m Mechanism) Option {
	return Option{name: "WithMechanism", consonants: true, apply: func(f *Features) { f.Mechanism = m }}
}

// WithRelease makes a stop an affricate released as a fricative of manner m
// at place p.
func WithRelease(m Manner, p Place) Option {
	return Option{name: "WithRelease", consonants: true,
		apply: func(f *Features) { f.Affricate, f.ReleaseManner, f.ReleasePlace = true, m, p }}
}

// WithSecondaryArticulation adds a secondary place of articulation.
func WithSecondaryArticulation(p Place) Option {
	return Option{name: "WithSecondaryArticulation", consonants: true,
		apply: func(f *Features) { f.Secondary = p }}
}
