// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package xkey

import (
	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Key is a decoded tagged extended key. It is either a *PrivateKey or a
// *PublicKey; both expose the same capabilities.
type Key interface {
	// Kind returns the script kind recorded by the tagged version.
	Kind() ScriptKind
	// DescriptorText returns the key with its standard version, as written
	// in output descriptors.
	DescriptorText() string
	// TaggedText returns the key with its tagged version, as stored in the
	// wallet file.
	TaggedText() string
	// IsPrivate reports whether the key holds a private scalar.
	IsPrivate() bool

	sealed()
}

type handle struct {
	kind ScriptKind
	// ext carries the standard version.
	ext    *hdkeychain.ExtendedKey
	tagged string
}

func (h *handle) Kind() ScriptKind       { return h.kind }
func (h *handle) DescriptorText() string { return h.ext.String() }
func (h *handle) TaggedText() string     { return h.tagged }
func (h *handle) sealed()                {}

// PrivateKey is a tagged extended private key.
type PrivateKey struct{ handle }

// IsPrivate always returns true.
func (*PrivateKey) IsPrivate() bool { return true }

// Public returns the public half of k, tagged with the same script kind.
func (k *PrivateKey) Public() (*PublicKey, error) {
	const op errors.Op = "xkey.PrivateKey.Public"

	pub, err := k.ext.Neuter()
	if err != nil {
		return nil, errors.E(op, errors.InvalidExtendedKey, err)
	}
	tagged, err := encode(op, pub, k.kind)
	if err != nil {
		return nil, err
	}
	return &PublicKey{handle{kind: k.kind, ext: pub, tagged: tagged}}, nil
}

// PublicKey is a tagged extended public key.
type PublicKey struct{ handle }

// IsPrivate always returns false.
func (*PublicKey) IsPrivate() bool { return false }

// Parse decodes a tagged key into its handle variant.
func Parse(tagged string) (Key, error) {
	const op errors.Op = "xkey.Parse"

	key, row, err := decodeTagged(op, tagged)
	if err != nil {
		return nil, err
	}

	h := handle{kind: row.kind, ext: key, tagged: tagged}
	if row.private {
		return &PrivateKey{h}, nil
	}
	return &PublicKey{h}, nil
}

// ParsePrivate is Parse restricted to private keys.
func ParsePrivate(tagged string) (*PrivateKey, error) {
	k, err := Parse(tagged)
	if err != nil {
		return nil, err
	}
	prv, ok := k.(*PrivateKey)
	if !ok {
		return nil, errors.E(errors.Op("xkey.ParsePrivate"), errors.InvalidExtendedKey, "not a private key: "+tagged)
	}
	return prv, nil
}

// ParsePublic is Parse restricted to public keys.
func ParsePublic(tagged string) (*PublicKey, error) {
	k, err := Parse(tagged)
	if err != nil {
		return nil, err
	}
	pub, ok := k.(*PublicKey)
	if !ok {
		return nil, errors.E(errors.Op("xkey.ParsePublic"), errors.InvalidExtendedKey, "not a public key: "+tagged)
	}
	return pub, nil
}
