// Package syllable groups phones into onset, nucleus and coda under one tone.
//
// A Syllable owns its phones: every phone handed in is cloned, every phone
// handed out is a clone, so callers can never reach the stored state. The
// nucleus is never empty; any operation that would empty it fails with
// errs.KindImpossibleArticulation and leaves the syllable untouched.
//
// Indices follow the usual signed convention: element indices accept
// -n..n-1, insertion positions accept -(n+1)..n where -1 appends.
package syllable
