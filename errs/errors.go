// SPDX-License-Identifier: MIT
// Package: phonetics/errs
//
// errors.go - kinds, the *Error carrier, sentinels and constructors.
//
// Contract:
//   - Every message is prefixed with the kind name ("impossible articulation: ...")
//     so logs stay greppable.
//   - Sentinels carry no message; errors.Is(err, ErrX) matches any *Error whose
//     kind is X or a descendant of X.
//   - Wrapped causes stay reachable through errors.Unwrap / errors.As.

package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error inside the phonetics taxonomy.
type Kind int

const (
	// KindGeneric is the root of the hierarchy.
	KindGeneric Kind = iota
	// KindValue covers every error caused by a bad input value.
	KindValue
	// KindIndexOutOfRange reports an index outside a sequence.
	KindIndexOutOfRange
	// KindInvalidFeatureValue reports a feature value outside its scale.
	KindInvalidFeatureValue
	// KindImpossibleArticulation reports a feature tuple no vocal tract can produce.
	KindImpossibleArticulation
	// KindDecodingFailed reports a transcription that could not be parsed.
	KindDecodingFailed
	// KindEncodingFailed reports a syllable a notation cannot spell.
	KindEncodingFailed
)

var kindNames = [...]string{
	KindGeneric:                "phonetics error",
	KindValue:                  "value error",
	KindIndexOutOfRange:        "index out of range",
	KindInvalidFeatureValue:    "invalid feature value",
	KindImpossibleArticulation: "impossible articulation",
	KindDecodingFailed:         "decoding failed",
	KindEncodingFailed:         "encoding failed",
}

// String returns the human-readable name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Parent returns the direct ancestor of k. The root is its own parent.
func (k Kind) Parent() Kind {
	switch k {
	case KindGeneric, KindValue:
		return KindGeneric
	default:
		return KindValue
	}
}

// IsA reports whether k equals ancestor or descends from it.
func (k Kind) IsA(ancestor Kind) bool {
	for {
		if k == ancestor {
			return true
		}
		if k == KindGeneric {
			return false
		}
		k = k.Parent()
	}
}

// Error is the single concrete error type of the library.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return e.Kind.String()
	case e.Message == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels by kind: a bare *Error target (no message, no cause)
// matches e when e's kind is the target kind or one of its descendants.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" || t.Err != nil {
		return false
	}

	return e.Kind.IsA(t.Kind)
}

// Sentinels for errors.Is. Never return them directly; use New / Wrap.
var (
	ErrGeneric                = &Error{Kind: KindGeneric}
	ErrValue                  = &Error{Kind: KindValue}
	ErrIndexOutOfRange        = &Error{Kind: KindIndexOutOfRange}
	ErrInvalidFeatureValue    = &Error{Kind: KindInvalidFeatureValue}
	ErrImpossibleArticulation = &Error{Kind: KindImpossibleArticulation}
	ErrDecodingFailed         = &Error{Kind: KindDecodingFailed}
	ErrEncodingFailed         = &Error{Kind: KindEncodingFailed}
)

// New returns an error of the given kind with a message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Newf is New with fmt formatting.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind with a message and a cause.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Errors from
// outside the taxonomy, including nil, report KindGeneric.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindGeneric
}

// Convert narrows err into the more generic kind `to`, keeping the message
// and the original error as cause. It fails when err is not an *Error or its
// kind does not descend from `to`.
func Convert(err error, to Kind) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) || !e.Kind.IsA(to) {
		return nil, false
	}
	if e.Kind == to {
		return e, true
	}

	return &Error{Kind: to, Message: e.Message, Err: e}, true
}
