// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

// Package errors provides the error kinds raised while converting between
// Electrum wallet files and output descriptors. It is imported as errors and
// takes over the role of the standard library errors package.
//
// Every conversion is all-or-nothing: an error of any kind aborts the call
// that raised it. Callers match kinds with Is:
//
//	if errors.Is(err, errors.InsufficientSigners) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error describes a failed conversion step.
type Error struct {
	Op   Op
	Kind Kind
	Err  error
}

// Op names the operation in which an error was raised.
type Op string

// Kind describes the class of error.
type Kind int

// Error kinds.
const (
	Other                  Kind = iota // Unclassified error -- does not appear in error strings
	MalformedDocument                  // Wallet file could not be read or is structurally invalid
	UnrecognizedField                  // Wallet file field is neither recognized nor ignorable
	UnrecognizedWalletType             // wallet_type is neither "standard" nor "<m>of<n>"
	UnrecognizedDescriptor             // Descriptor text matches no supported template
	InsufficientSigners                // Multisig descriptor with fewer than two keys
	InvalidExtendedKey                 // Key string is neither a valid private nor public key
	MalformedBase58                    // Base58check checksum or length failure
	UnknownVersion                     // Version bytes absent from the version tables
	UnknownScriptKind                  // Script kind absent from the version tables
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "unclassified error"
	case MalformedDocument:
		return "malformed wallet file"
	case UnrecognizedField:
		return "unrecognized field"
	case UnrecognizedWalletType:
		return "unrecognized wallet type"
	case UnrecognizedDescriptor:
		return "unrecognized descriptor"
	case InsufficientSigners:
		return "insufficient signers"
	case InvalidExtendedKey:
		return "invalid extended key"
	case MalformedBase58:
		return "malformed base58check encoding"
	case UnknownVersion:
		return "unknown version bytes"
	case UnknownScriptKind:
		return "unknown script kind"
	default:
		return "unknown error kind"
	}
}

// Error implements the error interface so that a Kind can be used as the
// target of Is.
func (k Kind) Error() string {
	return k.String()
}

// New creates a simple error from a string. New is identical to "errors".New
// from the standard library.
func New(text string) error {
	return errors.New(text)
}

// Errorf creates a simple error from a format string and arguments. Errorf is
// identical to "fmt".Errorf from the standard library.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// E creates an *Error from one or more arguments.
//
// Each argument type is inspected when constructing the error. If multiple
// args of similar type are passed, the final arg is recorded. The following
// types are recognized:
//
//	errors.Op
//	    The operation which was invoked.
//	errors.Kind
//	    The class of error.
//	string
//	    Description of the error condition, usually quoting the offending
//	    text or field name.
//	error
//	    The underlying error. If the error is an *Error and no Kind was
//	    given, its Kind is promoted to the new error.
//
// Panics if no arguments are passed.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("errors.E: no args")
	}

	var e Error
	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg
		case Kind:
			e.Kind = arg
		case string:
			e.Err = New(arg)
		case error:
			e.Err = arg
		}
	}

	var prev *Error
	if e.Kind == Other && errors.As(e.Err, &prev) {
		e.Kind = prev.Kind
		if e.Op == "" || e.Op == prev.Op {
			e.Op = prev.Op
			e.Err = prev.Err
		}
	}

	return &e
}

func (e *Error) Error() string {
	var parts []string
	if e.Op != "" {
		parts = append(parts, string(e.Op))
	}
	if e.Kind != Other {
		parts = append(parts, e.Kind.String())
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k != Other && k == e.Kind
}

// Is reports whether any error in err's chain matches target. It is
// "errors".Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target. It is
// "errors".As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
