// Package transcription converts syllables to and from three phonetic
// notations: the Unicode IPA, the ASCII Kirshenbaum scheme and X-SAMPA.
//
// A Codec is bound to one notation:
//
//	c, _ := transcription.NewCodec(transcription.IPA)
//	s, err := c.Decode("[kʰa˥˩]")
//	out, err := c.Encode(s) // "[kʰa˥˧˩]"
//
// Decoding scans the NFD-normalized text for the longest known symbol at
// each position, groups each base letter with its diacritics, and builds
// validated phones from the result. The nucleus is the run of syllabic
// phones: vowels unless marked non-syllabic, consonants only when marked
// syllabic. Phones before it form the onset and phones after it the coda.
//
// A tie bar joins two letters into one phone. A stop tied to a fricative is
// an affricate ([t͡s], [t͡ʃ], [p͡f]); any other pair is doubly articulated,
// the second letter giving the secondary place ([k͡p]).
//
// Tone is written as one to three tone letters at either end of the
// syllable. One letter is a level tone, three give start, middle and end,
// and two give a contour whose middle is the truncated mean.
//
// Encoding chooses the shortest canonical spelling: a dedicated letter when
// one exists, otherwise a nearby letter plus diacritics for place, manner or
// airstream. Vowels off the letter grid get raising, lowering, advancing or
// retracting marks. Output round-trips through Decode to equal phones and
// tone; it is not guaranteed to reproduce the input text.
//
// Errors:
//
//   - errs.ErrDecodingFailed - unknown symbols, misplaced marks, no nucleus,
//     or features that form an impossible articulation.
//   - errs.ErrEncodingFailed - a phone the notation cannot spell.
//   - errs.ErrValue          - unknown notation names, nil or zero syllables.
//
// Tables are built at init and shared read-only, so codecs are safe for
// concurrent use.
package transcription
