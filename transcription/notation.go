// SPDX-License-Identifier: MIT
// Package: phonetics/transcription
//
// notation.go - the supported notations.

package transcription

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/phonetics/errs"
)

// Notation selects a transcription alphabet.
type Notation int

const (
	// IPA is the Unicode International Phonetic Alphabet.
	IPA Notation = iota
	// Kirshenbaum is the ASCII IPA encoding used on Usenet, with <tag> modifiers.
	Kirshenbaum
	// XSAMPA is the Extended Speech Assessment Methods Phonetic Alphabet.
	XSAMPA

	numNotations = 3
)

// DefaultNotation is used when no notation is configured.
const DefaultNotation = XSAMPA

var notationNames = [numNotations]string{"ipa", "kirshenbaum", "x-sampa"}

func (n Notation) String() string {
	if !n.valid() {
		return fmt.Sprintf("notation(%d)", int(n))
	}

	return notationNames[n]
}

func (n Notation) valid() bool { return n >= 0 && n < numNotations }

// Notations lists every notation in declaration order.
func Notations() []Notation { return []Notation{IPA, Kirshenbaum, XSAMPA} }

// ParseNotation accepts the canonical names and common aliases
// ("unicode", "kirschenbaum", "xsampa").
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ipa", "unicode":
		return IPA, nil
	case "kirshenbaum", "kirschenbaum":
		return Kirshenbaum, nil
	case "x-sampa", "xsampa":
		return XSAMPA, nil
	}

	return 0, errs.Newf(errs.KindValue, "unknown notation %q", s)
}

func (n Notation) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *Notation) UnmarshalText(b []byte) error {
	v, err := ParseNotation(string(b))
	if err != nil {
		return err
	}
	*n = v

	return nil
}
