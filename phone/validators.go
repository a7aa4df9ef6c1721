// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// validators.go - the articulation rule bank.
//
// Purpose:
//   - Hold every "is this articulable?" predicate in one ordered table.
//   - Keep mutators free of ad hoc guards: they call Validate and nothing else.
//
// Determinism:
//   - Domains are checked first (KindInvalidFeatureValue), then rules in table
//     order; the first violated rule is the one reported
//     (KindImpossibleArticulation, message "<rule>: <message>").
//   - Predicates are pure and allocate nothing.

package phone

import (
	"github.com/katalvlaran/phonetics/errs"
)

// Rule is one articulability constraint.
type Rule struct {
	Name       string
	Message    string
	Vowels     bool // applies to vowels
	Consonants bool // applies to consonants
	holds      func(Features) bool
}

// Applies reports whether the rule constrains tuples of f's kind.
func (r Rule) Applies(f Features) bool {
	if f.Kind == VowelKind {
		return r.Vowels
	}

	return r.Consonants
}

// Holds reports whether f satisfies the rule. Rules that do not apply hold.
func (r Rule) Holds(f Features) bool {
	return !r.Applies(f) || r.holds(f)
}

var rules = []Rule{
	{
		Name:    "vowel-phonation",
		Message: "vowels cannot be produced with a closed glottis",
		Vowels:  true,
		holds:   func(f Features) bool { return f.Phonation != GlottalClosure },
	},
	{
		Name:       "voiced-phonation-vot",
		Message:    "voiced phonation paired with voiceless voice onset time",
		Consonants: true,
		holds:      func(f Features) bool { return !f.Phonation.IsVoiced() || f.VOT.IsVoiced() },
	},
	{
		Name:       "voiceless-phonation-vot",
		Message:    "voiceless phonation paired with voiced voice onset time",
		Consonants: true,
		holds:      func(f Features) bool { return f.Phonation.IsVoiced() || !f.VOT.IsVoiced() },
	},
	{
		Name:       "glottal-stop",
		Message:    "the only articulable glottal stop is voiceless",
		Consonants: true,
		holds: func(f Features) bool {
			return f.Manner != Stop || f.Place != Glottal || f.Phonation == Voiceless
		},
	},
	{
		Name:       "nasal-place",
		Message:    "nasals need a closure in front of the velic port",
		Consonants: true,
		holds:      func(f Features) bool { return f.Manner != Nasal || f.Place < Pharyngeal },
	},
	{
		Name:       "lateral-place",
		Message:    "lateral airflow needs a lingual articulation",
		Consonants: true,
		holds: func(f Features) bool {
			return !f.Manner.IsLateral() || (f.Place >= ApicalLinguolabial && f.Place <= Uvular)
		},
	},
	{
		Name:       "sibilant-place",
		Message:    "sibilants need a coronal articulation",
		Consonants: true,
		holds: func(f Features) bool {
			return f.Manner != SibilantFricative || (f.Place >= Interdental && f.Place <= AlveoloPalatal)
		},
	},
	{
		Name:       "trill-place",
		Message:    "velar and glottal trills are impossible",
		Consonants: true,
		holds:      func(f Features) bool { return f.Manner != Trill || (f.Place != Velar && f.Place != Glottal) },
	},
	{
		Name:       "stop-place",
		Message:    "the pharynx cannot form a complete closure",
		Consonants: true,
		holds:      func(f Features) bool { return f.Manner != Stop || f.Place != Pharyngeal },
	},
	{
		Name:       "affricate-release",
		Message:    "only a pulmonic or ejective stop can be released into a fricative",
		Consonants: true,
		holds: func(f Features) bool {
			return !f.Affricate || (f.Manner == Stop && f.ReleaseManner.IsFricative() &&
				(f.Mechanism == PulmonicEgressive || f.Mechanism == Ejective))
		},
	},
	{
		Name:       "affricate-release-place",
		Message:    "the release has no articulation at that place",
		Consonants: true,
		holds: func(f Features) bool {
			if !f.Affricate {
				return true
			}
			switch f.ReleaseManner {
			case SibilantFricative:
				return f.ReleasePlace >= Interdental && f.ReleasePlace <= AlveoloPalatal
			case LateralFricative:
				return f.ReleasePlace >= ApicalLinguolabial && f.ReleasePlace <= Uvular
			}
			return true
		},
	},
}

// Rules returns a copy of the rule bank in evaluation order.
func Rules() []Rule {
	return append([]Rule(nil), rules...)
}

// CheckDomains verifies that every feature of f lies in its scale.
func CheckDomains(f Features) error {
	if f.Kind != VowelKind && f.Kind != ConsonantKind {
		return errs.Newf(errs.KindInvalidFeatureValue, "phone kind %d", int(f.Kind))
	}
	checks := []error{
		PhonationScale.Check(f.Phonation),
		NasalizationScale.Check(f.Nasalization),
		LengthScale.Check(f.Length),
	}
	if f.Kind == VowelKind {
		checks = append(checks,
			HeightScale.Check(f.Height),
			BacknessScale.Check(f.Backness),
			RoundednessScale.Check(f.Roundedness),
		)
	} else {
		checks = append(checks,
			MannerScale.Check(f.Manner),
			PlaceScale.Check(f.Place),
			PlaceScale.Check(f.Secondary),
			VOTScale.Check(f.VOT),
			MechanismScale.Check(f.Mechanism),
		)
		if f.Affricate {
			checks = append(checks, MannerScale.Check(f.ReleaseManner), PlaceScale.Check(f.ReleasePlace))
		}
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks domains and then every applicable rule.
func Validate(f Features) error {
	if err := CheckDomains(f); err != nil {
		return err
	}
	for _, r := range rules {
		if !r.Holds(f) {
			return errs.Newf(errs.KindImpossibleArticulation, "%s: %s", r.Name, r.Message)
		}
	}

	return nil
}

// IsValid reports whether f describes an articulable phone.
func IsValid(f Features) bool { return Validate(f) == nil }
