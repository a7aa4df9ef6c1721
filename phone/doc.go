// Package phone models speech sounds as validated feature records.
//
// A phone is either a *Vowel or a *Consonant; both satisfy the Phone
// interface and carry a single Features tuple. Every mutation follows
// copy-validate-commit: the new tuple is built on a copy, checked against
// the feature domains (KindInvalidFeatureValue) and then against the
// articulation rule bank (KindImpossibleArticulation), and only written back
// when both pass. A rejected call never changes the phone.
//
// Categorical features (phonation, nasalization, roundedness, manner, place,
// voice onset time, airstream mechanism) are cyclic: Advance and Retreat wrap
// around their domain. Continuous features (height, backness, length) are
// bounded intervals and never wrap.
//
// Quick start:
//
//	v, err := phone.NewVowel(phone.Close, phone.Front, phone.Unrounded) // [i]
//	c, err := phone.NewConsonant(phone.Stop, phone.Velar, phone.Voiceless, phone.ModeratelyAspirated)
//	err = c.SetPlace(phone.Glottal) // ok: voiceless glottal stop
//	err = c.SetVoicing(phone.Modal, phone.CompletelyVoiced)
//	// errors.Is(err, errs.ErrImpossibleArticulation) == true, c unchanged
package phone
