// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package errors

import (
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestErrorString(t *testing.T) {
	is := is.New(t)

	err := E(Op("descriptor.RecognizeMultiSig"), InsufficientSigners, "1 signer in \"wsh(sortedmulti(1,xpub/0/*))\"")
	is.Equal(err.Error(), "descriptor.RecognizeMultiSig: insufficient signers: 1 signer in \"wsh(sortedmulti(1,xpub/0/*))\"")

	err = E(UnrecognizedField, "foo")
	is.Equal(err.Error(), "unrecognized field: foo")
}

func TestKindMatching(t *testing.T) {
	is := is.New(t)

	err := E(Op("xkey.Decode"), MalformedBase58, "bad checksum")
	is.True(Is(err, MalformedBase58))
	is.True(!Is(err, InvalidExtendedKey))

	wrapped := fmt.Errorf("keystore x2/: %w", err)
	is.True(Is(wrapped, MalformedBase58))

	// Other never matches, it is the absence of a kind.
	is.True(!Is(E("plain"), Other))
}

func TestKindPromotion(t *testing.T) {
	is := is.New(t)

	inner := E(Op("xkey.Encode"), UnknownVersion, "version 01020304")
	outer := E(Op("xkey.Encode"), inner)

	var e *Error
	is.True(As(outer, &e))
	is.Equal(e.Kind, UnknownVersion)
	is.Equal(outer.Error(), "xkey.Encode: unknown version bytes: version 01020304")

	// A different op keeps the nested error but still carries its kind.
	outer = E(Op("Keystore.Key"), inner)
	is.True(Is(outer, UnknownVersion))
}

func TestKindStrings(t *testing.T) {
	is := is.New(t)

	for k := Other; k <= UnknownScriptKind; k++ {
		is.True(k.String() != "unknown error kind")
	}
	is.Equal(Kind(99).String(), "unknown error kind")
}
