// Package tone models a syllable's pitch contour as three pitch levels:
// start, middle and end.
//
// Each level is one of five pitches from ExtraLow (-2) to ExtraHigh (2).
// Tones are small values: copy them freely. The 125 tones are totally
// ordered like an odometer over the three slots, last slot fastest, so that
// Next walks {-2,-2,-2}, {-2,-2,-1}, …, {2,2,2} and then wraps to the start.
// The zero value is the mid level tone {0,0,0}.
package tone
