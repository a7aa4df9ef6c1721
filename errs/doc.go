// Package errs defines the error taxonomy shared by every phonetics package.
//
// Kinds form a two-level hierarchy:
//
//	Generic
//	└── Value
//	    ├── IndexOutOfRange
//	    ├── InvalidFeatureValue
//	    ├── ImpossibleArticulation
//	    ├── DecodingFailed
//	    └── EncodingFailed
//
// Every error returned by the library is an *Error carrying its Kind and an
// optional message. Callers branch with errors.Is against the package
// sentinels; a sentinel of a more generic kind matches all its descendants:
//
//	if errors.Is(err, errs.ErrValue) { ... }                 // any value error
//	if errors.Is(err, errs.ErrImpossibleArticulation) { ... } // exact class
//
// Narrowing one kind into a more generic one is explicit, through Convert.
package errs
