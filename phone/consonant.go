// SPDX-License-Identifier: MIT
// Package: phonetics/phone
//
// consonant.go - consonants: manner, places, voice onset time, airstream.

package phone

import "github.com/katalvlaran/phonetics/errs"

// Consonant is a phone with a constriction in the vocal tract.
type Consonant struct {
	attributes
}

var _ Phone = (*Consonant)(nil)

// NewConsonant builds an oral, pulmonic, plain-length consonant without a
// secondary articulation. Options adjust the remaining features.
func NewConsonant(m Manner, p Place, ph Phonation, vot VOT, opts ...Option) (*Consonant, error) {
	f := Features{
		Kind:      ConsonantKind,
		Phonation: ph,
		Length:    1,
		Manner:    m,
		Place:     p,
		Secondary: p,
		VOT:       vot,
	}
	if err := applyOptions(&f, opts); err != nil {
		return nil, err
	}
	if err := Validate(f); err != nil {
		return nil, err
	}

	return &Consonant{attributes{f: f}}, nil
}

// DefaultConsonant returns [tʰ]: a voiceless, moderately aspirated apical
// alveolar stop.
func DefaultConsonant() *Consonant {
	return &Consonant{attributes{f: Features{
		Kind:      ConsonantKind,
		Phonation: Voiceless,
		Length:    1,
		Manner:    Stop,
		Place:     ApicalAlveolar,
		Secondary: ApicalAlveolar,
		VOT:       ModeratelyAspirated,
	}}}
}

// Manner returns the manner of articulation.
func (c *Consonant) Manner() Manner { return c.f.Manner }

// SetManner replaces the manner.
func (c *Consonant) SetManner(m Manner) error {
	return c.commit(func(f *Features) error {
		if err := MannerScale.Check(m); err != nil {
			return err
		}
		f.Manner = m
		return nil
	})
}

// AdvanceManner moves k steps forward through the manner scale.
func (c *Consonant) AdvanceManner(k int) error {
	return c.SetManner(MannerScale.Advance(c.f.Manner, k))
}

// RetreatManner moves k steps backward through the manner scale.
func (c *Consonant) RetreatManner(k int) error {
	return c.SetManner(MannerScale.Retreat(c.f.Manner, k))
}

// Place returns the primary place of articulation.
func (c *Consonant) Place() Place { return c.f.Place }

// SetPlace replaces the primary place. A consonant without a secondary
// articulation keeps having none.
func (c *Consonant) SetPlace(p Place) error {
	return c.commit(func(f *Features) error {
		if err := PlaceScale.Check(p); err != nil {
			return err
		}
		if !f.HasSecondary() {
			f.Secondary = p
		}
		f.Place = p
		return nil
	})
}

// AdvancePlace moves k steps backward in the mouth, wrapping to bilabial.
func (c *Consonant) AdvancePlace(k int) error {
	return c.SetPlace(PlaceScale.Advance(c.f.Place, k))
}

// RetreatPlace moves k steps forward in the mouth.
func (c *Consonant) RetreatPlace(k int) error {
	return c.SetPlace(PlaceScale.Retreat(c.f.Place, k))
}

// SecondaryArticulation returns the secondary place; it equals Place when
// there is none.
func (c *Consonant) SecondaryArticulation() Place { return c.f.Secondary }

// HasSecondaryArticulation reports a secondary place distinct from the primary.
func (c *Consonant) HasSecondaryArticulation() bool { return c.f.HasSecondary() }

// SetSecondaryArticulation replaces the secondary place. Setting it to the
// primary place removes it.
func (c *Consonant) SetSecondaryArticulation(p Place) error {
	return c.commit(func(f *Features) error {
		if err := PlaceScale.Check(p); err != nil {
			return err
		}
		f.Secondary = p
		return nil
	})
}

// AdvanceSecondaryArticulation moves the secondary place k steps back.
func (c *Consonant) AdvanceSecondaryArticulation(k int) error {
	return c.SetSecondaryArticulation(PlaceScale.Advance(c.f.Secondary, k))
}

// RetreatSecondaryArticulation moves the secondary place k steps forward.
func (c *Consonant) RetreatSecondaryArticulation(k int) error {
	return c.SetSecondaryArticulation(PlaceScale.Retreat(c.f.Secondary, k))
}

// RemoveSecondaryArticulation drops the secondary place.
func (c *Consonant) RemoveSecondaryArticulation() { c.f.Secondary = c.f.Place }

// IsAffricate reports whether the consonant is a stop with a fricative release.
func (c *Consonant) IsAffricate() bool { return c.f.Affricate }

// Release returns the manner and place of an affricate's fricative release.
// ok is false for other consonants.
func (c *Consonant) Release() (m Manner, p Place, ok bool) {
	return c.f.ReleaseManner, c.f.ReleasePlace, c.f.Affricate
}

// SetRelease turns a stop into an affricate released as a fricative of
// manner m at place p, or replaces the release of an affricate.
func (c *Consonant) SetRelease(m Manner, p Place) error {
	return c.commit(func(f *Features) error {
		if err := MannerScale.Check(m); err != nil {
			return err
		}
		if err := PlaceScale.Check(p); err != nil {
			return err
		}
		f.Affricate, f.ReleaseManner, f.ReleasePlace = true, m, p
		return nil
	})
}

// RemoveRelease turns an affricate back into a plain stop.
func (c *Consonant) RemoveRelease() {
	c.f.Affricate, c.f.ReleaseManner, c.f.ReleasePlace = false, 0, 0
}

// VOT returns the voice onset time.
func (c *Consonant) VOT() VOT { return c.f.VOT }

// SetVOT replaces the voice onset time.
func (c *Consonant) SetVOT(v VOT) error {
	return c.commit(func(f *Features) error {
		if err := VOTScale.Check(v); err != nil {
			return err
		}
		f.VOT = v
		return nil
	})
}

// AdvanceVOT moves k steps towards aspiration, wrapping to fully voiced.
func (c *Consonant) AdvanceVOT(k int) error { return c.SetVOT(VOTScale.Advance(c.f.VOT, k)) }

// RetreatVOT moves k steps towards voicing.
func (c *Consonant) RetreatVOT(k int) error { return c.SetVOT(VOTScale.Retreat(c.f.VOT, k)) }

// SetVoicing replaces phonation and voice onset time in one step, which is
// the only way to cross between voiced and voiceless.
func (c *Consonant) SetVoicing(p Phonation, v VOT) error {
	return c.commit(func(f *Features) error {
		if err := PhonationScale.Check(p); err != nil {
			return err
		}
		if err := VOTScale.Check(v); err != nil {
			return err
		}
		f.Phonation, f.VOT = p, v
		return nil
	})
}

// Mechanism returns the airstream mechanism.
func (c *Consonant) Mechanism() Mechanism { return c.f.Mechanism }

// SetMechanism replaces the airstream mechanism.
func (c *Consonant) SetMechanism(m Mechanism) error {
	return c.commit(func(f *Features) error {
		if err := MechanismScale.Check(m); err != nil {
			return err
		}
		f.Mechanism = m
		return nil
	})
}

// AdvanceMechanism moves k steps through the mechanism scale. The step
// cannot fail: an affricate that lands on a click or implosive airstream
// loses its release instead.
func (c *Consonant) AdvanceMechanism(k int) {
	c.moveMechanism(MechanismScale.Advance(c.f.Mechanism, k))
}

// RetreatMechanism moves k steps back through the mechanism scale, with the
// same release rule as AdvanceMechanism.
func (c *Consonant) RetreatMechanism(k int) {
	c.moveMechanism(MechanismScale.Retreat(c.f.Mechanism, k))
}

func (c *Consonant) moveMechanism(m Mechanism) {
	c.f.Mechanism = m
	if m != PulmonicEgressive && m != Ejective {
		c.RemoveRelease()
	}
}

// Clone returns an independent copy.
func (c *Consonant) Clone() Phone { return c.CloneConsonant() }

// CloneConsonant is Clone with the concrete type.
func (c *Consonant) CloneConsonant() *Consonant {
	cp := *c

	return &cp
}

// Equal reports feature-wise equality with other.
func (c *Consonant) Equal(other Phone) bool {
	return other != nil && other.Features() == c.f
}

// AsConsonant returns p as a *Consonant.
func AsConsonant(p Phone) (*Consonant, error) {
	c, ok := p.(*Consonant)
	if !ok || c == nil {
		return nil, errs.New(errs.KindValue, "phone is not a consonant")
	}

	return c, nil
}
