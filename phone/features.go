// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// features.go - the flat feature tuple and the Phone interface.

package phone

import "github.com/katalvlaran/phonetics/errs"

// Kind tells vowels and consonants apart.
type Kind int

const (
	VowelKind Kind = iota
	ConsonantKind
)

func (k Kind) String() string {
	if k == VowelKind {
		return "vowel"
	}

	return "consonant"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "vowel":
		*k = VowelKind
	case "consonant":
		*k = ConsonantKind
	default:
		return errs.Newf(errs.KindInvalidFeatureValue, "unknown phone kind %q", string(b))
	}

	return nil
}

// Features is the complete feature tuple of one phone. Fields that do not
// apply to Kind are zero. Two phones are equal exactly when their tuples are.
type Features struct {
	Kind         Kind         `json:"kind" yaml:"kind"`
	Phonation    Phonation    `json:"phonation" yaml:"phonation"`
	Nasalization Nasalization `json:"nasalization" yaml:"nasalization"`
	Length       float64      `json:"length" yaml:"length"`

	// Vowels.
	Height      float64     `json:"height,omitempty" yaml:"height,omitempty"`
	Backness    float64     `json:"backness,omitempty" yaml:"backness,omitempty"`
	Roundedness Roundedness `json:"roundedness,omitempty" yaml:"roundedness,omitempty"`
	RColored    bool        `json:"r_colored,omitempty" yaml:"r_colored,omitempty"`

	// Consonants. Secondary equals Place when there is no secondary articulation.
	Manner    Manner    `json:"manner,omitempty" yaml:"manner,omitempty"`
	Place     Place     `json:"place,omitempty" yaml:"place,omitempty"`
	Secondary Place     `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	VOT       VOT       `json:"vot,omitempty" yaml:"vot,omitempty"`
	Mechanism Mechanism `json:"mechanism,omitempty" yaml:"mechanism,omitempty"`

	// Affricates: a stop released into a fricative of ReleaseManner made at
	// ReleasePlace. Both release fields are zero unless Affricate is set.
	Affricate     bool   `json:"affricate,omitempty" yaml:"affricate,omitempty"`
	ReleaseManner Manner `json:"release_manner,omitempty" yaml:"release_manner,omitempty"`
	ReleasePlace  Place  `json:"release_place,omitempty" yaml:"release_place,omitempty"`
}

// HasSecondary reports whether a consonant tuple carries a secondary articulation.
func (f Features) HasSecondary() bool {
	return f.Kind == ConsonantKind && f.Secondary != f.Place
}

// normalized zeroes the fields that do not belong to f.Kind.
func (f Features) normalized() Features {
	switch f.Kind {
	case VowelKind:
		f.Manner, f.Place, f.Secondary, f.VOT, f.Mechanism = 0, 0, 0, 0, 0
		f.Affricate, f.ReleaseManner, f.ReleasePlace = false, 0, 0
	case ConsonantKind:
		f.Height, f.Backness, f.Roundedness, f.RColored = 0, 0, 0, false
		if !f.Affricate {
			f.ReleaseManner, f.ReleasePlace = 0, 0
		}
	}

	return f
}

// Phone is a vowel or a consonant.
type Phone interface {
	Kind() Kind
	Features() Features
	Phonation() Phonation
	Nasalization() Nasalization
	IsNasal() bool
	Length() float64
	Description() string
	Clone() Phone
	Equal(other Phone) bool
}

// FromFeatures builds the phone described by f after validating it.
func FromFeatures(f Features) (Phone, error) {
	f = f.normalized()
	if err := Validate(f); err != nil {
		return nil, err
	}
	if f.Kind == VowelKind {
		return &Vowel{attributes{f: f}}, nil
	}

	return &Consonant{attributes{f: f}}, nil
}
