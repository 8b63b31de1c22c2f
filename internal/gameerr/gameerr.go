// Package gameerr defines the failure kinds a hangman session can hit.
//
// Every failure is an *Error tagged with exactly one Kind. Callers branch on
// the kind with Is, and on the underlying cause with the errors package.
package gameerr

import (
	"errors"
	"fmt"
)

// Kind identifies which failure site produced an error.
type Kind int

const (
	// DictionaryUnavailable means the word list could not be opened.
	DictionaryUnavailable Kind = iota + 1
	// MalformedDictionary means the count line is unparseable or not positive.
	MalformedDictionary
	// DictionaryReadFailure means reading the word list failed part way.
	DictionaryReadFailure
	// InputFailure means the console could not be read.
	InputFailure
	// OutputFailure means the console could not be written.
	OutputFailure
)

func (k Kind) String() string {
	switch k {
	case DictionaryUnavailable:
		return "DictionaryUnavailable"
	case MalformedDictionary:
		return "MalformedDictionary"
	case DictionaryReadFailure:
		return "DictionaryReadFailure"
	case InputFailure:
		return "InputFailure"
	case OutputFailure:
		return "OutputFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a failure tagged with its Kind.
type Error struct {
	Kind Kind
	Op   string // what was being attempted, e.g. "open words.txt"
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s { op: %q, cause: %v }", e.Kind, e.Op, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s { op: %q }", e.Kind, e.Op)
	case e.Err != nil:
		return fmt.Sprintf("%s { cause: %v }", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an *Error of the given kind.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
