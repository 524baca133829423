// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"fmt"
	"strings"

	"github.com/AminaBank/electrum2descriptors/descriptor"
	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/AminaBank/electrum2descriptors/xkey"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// DefaultKeystoreType is the keystore type written when none is given.
const DefaultKeystoreType = "bip32"

// Keystore is one signer's key material as stored in the wallet file, under
// "keystore" for standard wallets and "x1/", "x2/", ... for multisig ones.
// Keys are stored in their tagged form.
type Keystore struct {
	Type string
	// Xprv is nil for watch-only keystores.
	Xprv *string
	Xpub string
	// Derivation and RootFingerprint are the key origin, for example
	// "m/84'/0'/0'" and "d34db33f". Both are optional.
	Derivation      *string
	RootFingerprint *string
}

// NewKeystore builds a keystore for a standard extended key. A private key
// is stored together with its derived public key; a public key leaves Xprv
// nil.
func NewKeystore(kind xkey.ScriptKind, raw string) (*Keystore, error) {
	const op errors.Op = "NewKeystore"

	key, err := hdkeychain.NewKeyFromString(raw)
	if err != nil {
		return nil, errors.E(op, errors.InvalidExtendedKey, fmt.Sprintf("%q: %v", raw, err))
	}

	ks := &Keystore{Type: DefaultKeystoreType}
	if key.IsPrivate() {
		xprv, err := xkey.EncodeKey(key, kind)
		if err != nil {
			return nil, err
		}
		ks.Xprv = &xprv

		key, err = key.Neuter()
		if err != nil {
			return nil, errors.E(op, errors.InvalidExtendedKey, fmt.Errorf("%q: %w", raw, err))
		}
	}

	ks.Xpub, err = xkey.EncodeKey(key, kind)
	if err != nil {
		return nil, err
	}
	return ks, nil
}

// newKeystoreFromDescriptor builds a keystore from a descriptor key
// expression, keeping its origin.
func newKeystoreFromDescriptor(kind xkey.ScriptKind, key descriptor.Key) (*Keystore, error) {
	ks, err := NewKeystore(kind, key.XKey)
	if err != nil {
		return nil, err
	}
	if key.HasOrigin() {
		fingerprint := key.Fingerprint
		derivation := "m" + key.Path
		ks.RootFingerprint = &fingerprint
		ks.Derivation = &derivation
	}
	return ks, nil
}

// Key returns the keystore's key handle, preferring the private key. When
// xprv is set it must decode and hold the private half of xpub.
func (ks *Keystore) Key() (xkey.Key, error) {
	const op errors.Op = "Keystore.Key"

	pub, err := xkey.ParsePublic(ks.Xpub)
	if err != nil {
		return nil, errors.E(op, errors.InvalidExtendedKey, err)
	}
	if ks.Xprv == nil {
		return pub, nil
	}

	prv, err := xkey.ParsePrivate(*ks.Xprv)
	if err != nil {
		return nil, errors.E(op, errors.InvalidExtendedKey, err)
	}
	if prv.Kind() != pub.Kind() {
		return nil, errors.E(op, errors.InvalidExtendedKey,
			fmt.Sprintf("xprv is tagged %s but xpub is tagged %s", prv.Kind(), pub.Kind()))
	}

	derived, err := prv.Public()
	if err != nil {
		return nil, err
	}
	if derived.DescriptorText() != pub.DescriptorText() {
		return nil, errors.E(op, errors.InvalidExtendedKey, "xpub is not the public key of xprv")
	}
	return prv, nil
}

// DescriptorKey returns the key expression to write in a descriptor: the
// handle's standard key with the keystore's origin, if any.
func (ks *Keystore) DescriptorKey() (xkey.ScriptKind, descriptor.Key, error) {
	k, err := ks.Key()
	if err != nil {
		return 0, descriptor.Key{}, err
	}

	dk := descriptor.Key{XKey: k.DescriptorText()}
	if ks.RootFingerprint != nil && *ks.RootFingerprint != "" {
		dk.Fingerprint = *ks.RootFingerprint
		if ks.Derivation != nil {
			dk.Path = strings.TrimPrefix(*ks.Derivation, "m")
		}
	}
	return k.Kind(), dk, nil
}
