// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// description.go - readable phrases for phones.

package phone

import (
	"fmt"
	"strings"
)

// Description renders the vowel as a phrase, e.g.
// "close front unrounded vowel" or "breathy nasal mid central unrounded r-colored vowel, length 1.5".
func (v *Vowel) Description() string {
	f := v.f
	parts := make([]string, 0, 8)
	if f.Phonation != Modal {
		parts = append(parts, f.Phonation.String())
	}
	if f.Nasalization != Oral {
		parts = append(parts, f.Nasalization.String())
	}
	parts = append(parts, HeightName(f.Height), BacknessName(f.Backness), f.Roundedness.String())
	if f.RColored {
		parts = append(parts, "r-colored")
	}
	parts = append(parts, "vowel")

	return withLength(strings.Join(parts, " "), f.Length)
}

// Description renders the consonant as a phrase, e.g.
// "voiceless moderately aspirated apical alveolar stop".
func (c *Consonant) Description() string {
	f := c.f
	parts := make([]string, 0, 8)
	parts = append(parts, f.Phonation.String())
	if f.VOT != CompletelyVoiced && f.VOT != NotAspirated {
		parts = append(parts, f.VOT.String())
	}
	if f.Nasalization != Oral {
		parts = append(parts, f.Nasalization.String())
	}
	parts = append(parts, f.Place.String())
	if f.Mechanism != PulmonicEgressive {
		parts = append(parts, f.Mechanism.String())
	}
	if f.Affricate {
		parts = append(parts, affricateName(f.ReleaseManner))
	} else {
		parts = append(parts, f.Manner.String())
	}
	s := strings.Join(parts, " ")
	if f.Affricate && f.ReleasePlace != f.Place {
		s += " with " + f.ReleasePlace.String() + " release"
	}
	if f.HasSecondary() {
		s += " with " + f.Secondary.String() + " secondary articulation"
	}

	return withLength(s, f.Length)
}

// affricateName names an affricate after its release, e.g. "sibilant affricate".
func affricateName(release Manner) string {
	return strings.TrimSuffix(release.String(), "fricative") + "affricate"
}

func withLength(s string, l float64) string {
	if l == 1 {
		return s
	}

	return fmt.Sprintf("%s, length %g", s, l)
}
