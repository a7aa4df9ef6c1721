// Package phonetics is a feature model of speech sounds and a codec for
// three phonetic notations.
//
// What is in the module?
//
//	Phones are not symbols here. A vowel is a point on a height x backness
//	grid with roundedness, phonation, nasalization, r-color and length; a
//	consonant is a manner, place, optional secondary place, voice onset time,
//	airstream mechanism, phonation, nasalization and length. Every edit is
//	checked against articulatory rules, so a phone value is always
//	pronounceable. Symbols only appear at the edges, in the transcription
//	codec.
//
// Subpackages:
//
//	errs/          - error kinds (Value, IndexOutOfRange, InvalidFeatureValue, ...)
//	scale/         - circular and continuous feature domains
//	phone/         - Vowel, Consonant, Features, the articulation validator
//	tone/          - three-pitch contour tones, 125 states
//	syllable/      - onset/nucleus/coda syllables and sequences
//	transcription/ - IPA, Kirshenbaum and X-SAMPA decode/encode
//	align/         - dynamic time warping over phones and syllables
//	cmd/phonetics  - command line front end (convert, describe, compare)
//
// Quick example:
//
//	s, err := transcription.Decode("[kʰaŋ˥˩]", transcription.IPA)
//	if err != nil {
//		return err
//	}
//	x, _ := transcription.Encode(s, transcription.XSAMPA) // "[k_haN_T_M_B]"
//
//	go get github.com/katalvlaran/phonetics
package phonetics
