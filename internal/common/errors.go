// Package common defines the error kinds shared by the client and server
// layers. Every remote-call boundary classifies its failure into one of the
// kinds below before propagating it; callers match them with errors.Is or
// KindOf.
package common

import (
	"errors"
)

// Kind is the closed set of failure classes surfaced to callers.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: malformed input rejected before any remote call.
	KindValidation
	// KindConflict: the provider already holds the resource (duplicate account).
	KindConflict
	// KindNotFound: the provider has no such resource.
	KindNotFound
	// KindTranslatableRemote: any other remote failure; Message is user-facing.
	KindTranslatableRemote
	// KindConfiguration: provider credentials are missing.
	KindConfiguration
)

var (
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrTranslatableRemote = errors.New("remote error")
	ErrConfiguration      = errors.New("configuration error")
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindTranslatableRemote:
		return "remote"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindConflict:
		return ErrConflict
	case KindNotFound:
		return ErrNotFound
	case KindTranslatableRemote:
		return ErrTranslatableRemote
	case KindConfiguration:
		return ErrConfiguration
	default:
		return nil
	}
}

// Error is a classified failure. Message is the text shown to the user; Err
// keeps the underlying cause for logging and is never shown.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, common.ErrConflict) match any *Error of that kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && s == target
}

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

func Validation(msg string) *Error {
	return newError(KindValidation, msg, nil)
}

func Conflict(msg string, cause error) *Error {
	return newError(KindConflict, msg, cause)
}

func NotFound(msg string, cause error) *Error {
	return newError(KindNotFound, msg, cause)
}

// Remote wraps cause with a user-facing message that replaces its text.
func Remote(msg string, cause error) *Error {
	return newError(KindTranslatableRemote, msg, cause)
}

func Configuration(msg string) *Error {
	return newError(KindConfiguration, msg, nil)
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
