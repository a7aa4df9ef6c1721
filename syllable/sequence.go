// SPDX-License-Identifier: MIT
// Package: phonetics/syllable
//
// sequence.go - ordered runs of syllables.

package syllable

import "slices"

// Sequence is an ordered run of syllables, such as a word or an utterance.
type Sequence []*Syllable

// Clone deep-copies every syllable.
func (q Sequence) Clone() Sequence {
	out := make(Sequence, len(q))
	for i, s := range q {
		out[i] = s.Clone()
	}

	return out
}

// Equal compares syllables pairwise.
func (q Sequence) Equal(o Sequence) bool {
	return slices.EqualFunc(q, o, func(a, b *Syllable) bool { return a.Equal(b) })
}

// PhoneCount returns the total number of phones across all syllables.
func (q Sequence) PhoneCount() int {
	n := 0
	for _, s := range q {
		n += s.Len()
	}

	return n
}
