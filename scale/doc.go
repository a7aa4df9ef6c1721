// Package scale provides the two value domains every phonetic feature lives on.
//
// Circular is a finite, ordered list of named categories whose successor and
// predecessor wrap around (…, stop, nasal, lateral flap, …). Domains may start
// at any integer, which lets tone pitches use -2..2 with the same machinery.
//
// Continuous is a real interval with open or closed ends. Every write is range
// checked and rejected values never reach the caller's state.
//
// Both types are immutable descriptions of a domain, not holders of a value:
// the phone and tone packages keep the values and consult the scale on every
// mutation.
package scale
