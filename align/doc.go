// Package align measures how far apart two pronunciations are by Dynamic
// Time Warping over their phones.
//
// Two transcriptions of the same word rarely line up phone for phone: one
// speaker inserts a glide, another drops a coda. DTW finds the cheapest
// monotone pairing of the two phone sequences and reports its total cost
// and, on request, the pairing itself.
//
// Local cost is PhoneDistance, a weighted feature difference:
//
//   - vowels compare height, backness, rounding, r-coloring, phonation,
//     nasalization and length;
//   - consonants compare manner, place, secondary articulation, affricate
//     release, phonation, voice onset time, airstream, nasalization and length;
//   - a vowel against a consonant costs KindMismatchCost.
//
// Syllables adds ToneWeight times ToneDistance to the phone alignment.
//
// Usage:
//
//	opts := align.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := align.Syllables(a, b, &opts)
//
// Options:
//
//   - Window       Sakoe-Chiba band |i-j| <= Window; -1 disables it.
//   - SlopePenalty added to every insertion or deletion step.
//   - ReturnPath   also return the warping path (needs FullMatrix).
//   - MemoryMode   FullMatrix keeps the whole table, TwoRows keeps two rows.
//   - ToneWeight   weight of the tone difference in Syllables.
//
// Complexity: O(N*M) time; O(N*M) memory with FullMatrix, O(M) with TwoRows.
package align
