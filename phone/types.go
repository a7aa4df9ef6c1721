// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// types.go - feature enumerations and their scales.
//
// Orders are part of the contract: Advance/Retreat walk them and
// transcription tables index by them.

package phone

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phonetics/scale"
)

// Phonation is the state of the glottis during the sound.
type Phonation int

const (
	Voiceless Phonation = iota
	Breathy
	Slack
	Modal
	Stiff
	Creaky
	GlottalClosure
	Faucalized
	Harsh
	Strident
)

// Nasalization is the degree of velic opening.
type Nasalization int

const (
	Oral Nasalization = iota
	Nasalized
	StronglyNasalized
)

// Roundedness is the lip posture of a vowel.
type Roundedness int

const (
	Unrounded Roundedness = iota
	Exolabial
	Endolabial
)

// Manner is the consonant's degree and kind of constriction.
type Manner int

const (
	LateralFlap Manner = iota
	LateralApproximant
	LateralFricative
	Trill
	Flap
	Approximant
	NonSibilantFricative
	SibilantFricative
	Stop
	Nasal
)

// Place is the location of a consonant's constriction, front to back.
type Place int

const (
	Bilabial Place = iota
	Labiodental
	Dentolabial
	Bidental
	ApicalLinguolabial
	LaminalLinguolabial
	ApicalLowerLip
	LaminalLowerLip
	Interdental
	ApicalDental
	LaminalDental
	ApicalAlveolar
	LaminalAlveolar
	ApicalPalatoAlveolar
	LaminalPalatoAlveolar
	ApicalRetroflex
	LaminalRetroflex
	SubapicalRetroflex
	AlveoloPalatal
	Palatal
	Velar
	Uvular
	Pharyngeal
	Epiglottal
	Glottal
)

// VOT is the voice onset time, from fully voiced to strongly aspirated.
type VOT int

const (
	CompletelyVoiced VOT = iota
	ModeratelyVoiced
	WeaklyVoiced
	NotAspirated
	WeaklyAspirated
	ModeratelyAspirated
	StronglyAspirated
)

// Mechanism is the airstream mechanism of a consonant.
type Mechanism int

const (
	PulmonicEgressive Mechanism = iota
	Ejective
	Click
	Implosive
)

// Named points of the vowel height scale.
const (
	Open      = 0.0
	NearOpen  = 1.0
	OpenMid   = 2.0
	Mid       = 3.0
	CloseMid  = 4.0
	NearClose = 5.0
	Close     = 6.0
)

// Named points of the vowel backness scale.
const (
	Front     = 0.0
	NearFront = 1.0
	Central   = 2.0
	NearBack  = 3.0
	Back      = 4.0
)

// Feature domains.
var (
	PhonationScale = scale.NewCircular[Phonation]("phonation", 0,
		"voiceless", "breathy", "slack", "modal", "stiff",
		"creaky", "glottal closure", "faucalized", "harsh", "strident")
	NasalizationScale = scale.NewCircular[Nasalization]("nasalization", 0,
		"oral", "nasal", "strongly nasal")
	RoundednessScale = scale.NewCircular[Roundedness]("roundedness", 0,
		"unrounded", "exolabial", "endolabial")
	MannerScale = scale.NewCircular[Manner]("manner", 0,
		"lateral flap", "lateral approximant", "lateral fricative", "trill", "flap",
		"approximant", "non-sibilant fricative", "sibilant fricative", "stop", "nasal")
	PlaceScale = scale.NewCircular[Place]("place", 0,
		"bilabial", "labiodental", "dentolabial", "bidental",
		"apical linguolabial", "laminal linguolabial", "apical lower lip", "laminal lower lip",
		"interdental", "apical dental", "laminal dental", "apical alveolar", "laminal alveolar",
		"apical palato-alveolar", "laminal palato-alveolar",
		"apical retroflex", "laminal retroflex", "subapical retroflex",
		"alveolo-palatal", "palatal", "velar", "uvular", "pharyngeal", "epiglottal", "glottal")
	VOTScale = scale.NewCircular[VOT]("voice onset time", 0,
		"completely voiced", "moderately voiced", "weakly voiced", "not aspirated",
		"weakly aspirated", "moderately aspirated", "strongly aspirated")
	MechanismScale = scale.NewCircular[Mechanism]("mechanism", 0,
		"pulmonic egressive", "ejective", "click", "implosive")

	HeightScale   = scale.NewContinuous("height", Open, Close)
	BacknessScale = scale.NewContinuous("backness", Front, Back)
	LengthScale   = scale.NewContinuous("length", 0, math.Inf(1)).OpenBelow()
)

var (
	heightNames   = [...]string{"open", "near-open", "open-mid", "mid", "close-mid", "near-close", "close"}
	backnessNames = [...]string{"front", "near-front", "central", "near-back", "back"}
)

func (p Phonation) String() string    { return PhonationScale.Name(p) }
func (n Nasalization) String() string { return NasalizationScale.Name(n) }
func (r Roundedness) String() string  { return RoundednessScale.Name(r) }
func (m Manner) String() string       { return MannerScale.Name(m) }
func (p Place) String() string        { return PlaceScale.Name(p) }
func (v VOT) String() string          { return VOTScale.Name(v) }
func (m Mechanism) String() string    { return MechanismScale.Name(m) }

// IsVoiced reports whether the vocal folds vibrate.
func (p Phonation) IsVoiced() bool { return p != Voiceless }

// IsVoiced reports whether voicing starts before the release.
func (v VOT) IsVoiced() bool { return v <= WeaklyVoiced }

// IsLateral reports whether air escapes along the sides of the tongue.
func (m Manner) IsLateral() bool { return m <= LateralFricative }

// IsFricative reports whether m is one of the three fricative manners.
func (m Manner) IsFricative() bool {
	return m == LateralFricative || m == NonSibilantFricative || m == SibilantFricative
}

// HeightName names a vowel height; off-grid values print numerically.
func HeightName(h float64) string { return gridName(h, heightNames[:]) }

// BacknessName names a vowel backness; off-grid values print numerically.
func BacknessName(b float64) string { return gridName(b, backnessNames[:]) }

func gridName(v float64, names []string) string {
	if v == math.Trunc(v) && v >= 0 && int(v) < len(names) {
		return names[int(v)]
	}

	return fmt.Sprintf("%.2f", v)
}

func (p Phonation) MarshalText() ([]byte, error)    { return []byte(p.String()), nil }
func (n Nasalization) MarshalText() ([]byte, error) { return []byte(n.String()), nil }
func (r Roundedness) MarshalText() ([]byte, error)  { return []byte(r.String()), nil }
func (m Manner) MarshalText() ([]byte, error)       { return []byte(m.String()), nil }
func (p Place) MarshalText() ([]byte, error)        { return []byte(p.String()), nil }
func (v VOT) MarshalText() ([]byte, error)          { return []byte(v.String()), nil }
func (m Mechanism) MarshalText() ([]byte, error)    { return []byte(m.String()), nil }

func (p *Phonation) UnmarshalText(b []byte) (err error) {
	*p, err = PhonationScale.Parse(string(b))
	return err
}

func (n *Nasalization) UnmarshalText(b []byte) (err error) {
	*n, err = NasalizationScale.Parse(string(b))
	return err
}

func (r *Roundedness) UnmarshalText(b []byte) (err error) {
	*r, err = RoundednessScale.Parse(string(b))
	return err
}

func (m *Manner) UnmarshalText(b []byte) (err error) {
	*m, err = MannerScale.Parse(string(b))
	return err
}

func (p *Place) UnmarshalText(b []byte) (err error) {
	*p, err = PlaceScale.Parse(string(b))
	return err
}

func (v *VOT) UnmarshalText(b []byte) (err error) {
	*v, err = VOTScale.Parse(string(b))
	return err
}

func (m *Mechanism) UnmarshalText(b []byte) (err error) {
	*m, err = MechanismScale.Parse(string(b))
	return err
}
