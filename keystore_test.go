// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"testing"

	"github.com/AminaBank/electrum2descriptors/descriptor"
	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/AminaBank/electrum2descriptors/xkey"
	"github.com/matryer/is"
)

func strPtr(s string) *string { return &s }

func TestNewKeystore(t *testing.T) {
	is := is.New(t)

	ks, err := NewKeystore(xkey.Wpkh, xpub1)
	is.NoErr(err)
	is.Equal(ks, &Keystore{Type: "bip32", Xpub: zpub1})

	ks, err = NewKeystore(xkey.Wpkh, xprv1)
	is.NoErr(err)
	is.Equal(ks, &Keystore{Type: "bip32", Xprv: strPtr(zprv1), Xpub: zpub1})
}

// TestNewKeystore_Errors covers keys hdkeychain rejects and keys whose
// version has no tagged form.
func TestNewKeystore_Errors(t *testing.T) {
	is := is.New(t)

	_, err := NewKeystore(xkey.Wpkh, "xpub-not-a-key")
	is.True(errors.Is(err, errors.InvalidExtendedKey))

	_, err = NewKeystore(xkey.Wpkh, zpub1)
	is.True(errors.Is(err, errors.UnknownVersion))

	_, err = NewKeystore(xkey.ScriptKind(42), xpub1)
	is.True(errors.Is(err, errors.UnknownScriptKind))
}

// TestKeystore_Key prefers the private key over the public one.
func TestKeystore_Key(t *testing.T) {
	tests := []struct {
		name    string
		ks      Keystore
		private bool
		text    string
	}{
		{"public only", Keystore{Xpub: zpub1}, false, xpub1},
		{"private", Keystore{Xprv: strPtr(zprv1), Xpub: zpub1}, true, xprv1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)

			k, err := tt.ks.Key()
			is.NoErr(err)
			is.Equal(k.IsPrivate(), tt.private)
			is.Equal(k.DescriptorText(), tt.text)
			is.Equal(k.Kind(), xkey.Wpkh)
		})
	}
}

// TestKeystore_KeyErrors never falls back to a watch-only key when the
// private key is unusable.
func TestKeystore_KeyErrors(t *testing.T) {
	zpub2, err := xkey.Encode(xpub2, xkey.Wpkh)
	if err != nil {
		t.Fatal(err)
	}

	tests := map[string]Keystore{
		"nothing decodes":         {Xprv: strPtr("broken"), Xpub: "broken"},
		"empty":                   {},
		"private as xpub":         {Xpub: zprv1},
		"broken private":          {Xprv: strPtr("zprvJUNK"), Xpub: zpub1},
		"private given as public": {Xprv: strPtr(zpub1), Xpub: zpub1},
		"broken public":           {Xprv: strPtr(zprv1), Xpub: "zpub-broken"},
		"mismatched kinds":        {Xprv: strPtr(zprv1), Xpub: Zpub1},
		"different keys":          {Xprv: strPtr(zprv1), Xpub: zpub2},
	}

	for name, ks := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			_, err := ks.Key()
			is.True(errors.Is(err, errors.InvalidExtendedKey))
		})
	}
}

// TestKeystore_DescriptorKey checks the origin mapping in both directions.
func TestKeystore_DescriptorKey(t *testing.T) {
	is := is.New(t)

	key := descriptor.Key{Fingerprint: "d34db33f", Path: "/84'/0'/0'", XKey: xpub1}
	ks, err := newKeystoreFromDescriptor(xkey.Wpkh, key)
	is.NoErr(err)
	is.Equal(*ks.Derivation, "m/84'/0'/0'")
	is.Equal(*ks.RootFingerprint, "d34db33f")

	kind, got, err := ks.DescriptorKey()
	is.NoErr(err)
	is.Equal(kind, xkey.Wpkh)
	is.Equal(got, key)

	// A master key origin has an empty path.
	ks = &Keystore{Xpub: zpub1, Derivation: strPtr("m"), RootFingerprint: strPtr("d34db33f")}
	_, got, err = ks.DescriptorKey()
	is.NoErr(err)
	is.Equal(got.String(), "[d34db33f]"+xpub1)

	// A derivation without a fingerprint is not an origin.
	ks = &Keystore{Xpub: zpub1, Derivation: strPtr("m/84'/0'/0'")}
	_, got, err = ks.DescriptorKey()
	is.NoErr(err)
	is.Equal(got, descriptor.Key{XKey: xpub1})
}
