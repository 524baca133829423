// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package descriptor

import (
	"testing"

	"github.com/AminaBank/electrum2descriptors/xkey"
	"github.com/matryer/is"
)

// TestChecksum_Vectors checks known checksums.
func TestChecksum_Vectors(t *testing.T) {
	tests := map[string]string{
		"raw(deadbeef)":          "89f8spxm",
		"pkh(" + xpub1 + "/0/*)": "xgqkr0nt",
	}

	for desc, want := range tests {
		t.Run(want, func(t *testing.T) {
			is := is.New(t)

			got, err := Checksum(desc)
			is.NoErr(err)
			is.Equal(got, want)
		})
	}
}

// TestAppendChecksum_RoundTrip appends a checksum and recognizes the result.
func TestAppendChecksum_RoundTrip(t *testing.T) {
	is := is.New(t)

	receive, _, err := RenderSingleSig(xkey.Wpkh, Key{Fingerprint: "d34db33f", Path: "/84h/0h/0h", XKey: xpub1})
	is.NoErr(err)

	withSum, err := AppendChecksum(receive)
	is.NoErr(err)
	is.Equal(len(withSum), len(receive)+1+checksumLen)

	got, err := RecognizeSingleSig(withSum)
	is.NoErr(err)
	is.Equal(got.Key.Path, "/84h/0h/0h")
}

// TestChecksum_InvalidCharacter rejects characters outside the charset.
func TestChecksum_InvalidCharacter(t *testing.T) {
	is := is.New(t)

	_, err := Checksum("wpkh(é)")
	is.True(err != nil)
}
