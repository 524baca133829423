// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

// Package xkey re-encodes BIP32 extended keys between the standard version
// bytes used in output descriptors (xpub, xprv, tpub, tprv) and the tagged
// version bytes Electrum writes to its wallet files (ypub, zpub, Ypub, Zpub
// and friends), where the version also records the output-script kind.
//
// Serialization is left to hdkeychain; only the 4-byte version changes.
// Depth, parent fingerprint, child number, chain code and key bytes are
// carried over untouched.
package xkey

import (
	"fmt"

	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// parse decodes a base58check extended key of any version.
func parse(op errors.Op, text string) (*hdkeychain.ExtendedKey, error) {
	key, err := hdkeychain.NewKeyFromString(text)
	if err != nil {
		kind := errors.InvalidExtendedKey
		if errors.Is(err, hdkeychain.ErrInvalidKeyLen) || errors.Is(err, hdkeychain.ErrBadChecksum) {
			kind = errors.MalformedBase58
		}
		return nil, errors.E(op, kind, fmt.Errorf("%q: %w", text, err))
	}
	return key, nil
}

func version(key *hdkeychain.ExtendedKey) (v [4]byte) {
	copy(v[:], key.Version())
	return v
}

// lookup finds the table row of key's version and checks that the key data
// agrees with the privacy the version claims.
func lookup(op errors.Op, key *hdkeychain.ExtendedKey, table map[[4]byte]versionKey, form string) (versionKey, error) {
	v := version(key)
	row, ok := table[v]
	if !ok {
		return versionKey{}, errors.E(op, errors.UnknownVersion,
			fmt.Sprintf("version %x is not a %s version", v[:], form))
	}
	if row.private != key.IsPrivate() {
		return versionKey{}, errors.E(op, errors.InvalidExtendedKey,
			fmt.Sprintf("key data does not match version %x", v[:]))
	}
	return row, nil
}

func withVersion(op errors.Op, key *hdkeychain.ExtendedKey, v [4]byte) (*hdkeychain.ExtendedKey, error) {
	k, err := key.CloneWithVersion(v[:])
	if err != nil {
		return nil, errors.E(op, errors.InvalidExtendedKey, err)
	}
	return k, nil
}

// Encode re-encodes a standard extended key (xpub, xprv, tpub, tprv) with
// the tagged version for kind. The network and key privacy are taken from
// the standard version.
func Encode(raw string, kind ScriptKind) (string, error) {
	const op errors.Op = "xkey.Encode"

	key, err := parse(op, raw)
	if err != nil {
		return "", err
	}
	return encode(op, key, kind)
}

// EncodeKey is Encode for a key hdkeychain has already decoded.
func EncodeKey(key *hdkeychain.ExtendedKey, kind ScriptKind) (string, error) {
	return encode("xkey.EncodeKey", key, kind)
}

func encode(op errors.Op, key *hdkeychain.ExtendedKey, kind ScriptKind) (string, error) {
	if !knownKind(kind) {
		return "", errors.E(op, errors.UnknownScriptKind, kind.String())
	}

	row, err := lookup(op, key, standardByVersion, "standard BIP32")
	if err != nil {
		return "", err
	}

	tagged, ok := taggedVersion(row.net, kind, row.private)
	if !ok {
		return "", errors.E(op, errors.UnknownScriptKind,
			fmt.Sprintf("no %s version for %s", row.net, kind))
	}

	k, err := withVersion(op, key, tagged)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

// Decode reverses Encode: it looks the tagged version up, replaces it with
// the standard version of the same network and privacy and returns the
// script kind the tag recorded.
func Decode(tagged string) (string, ScriptKind, error) {
	const op errors.Op = "xkey.Decode"

	key, row, err := decodeTagged(op, tagged)
	if err != nil {
		return "", 0, err
	}
	return key.String(), row.kind, nil
}

// decodeTagged parses a tagged key and returns it under its standard
// version.
func decodeTagged(op errors.Op, tagged string) (*hdkeychain.ExtendedKey, versionKey, error) {
	key, err := parse(op, tagged)
	if err != nil {
		return nil, versionKey{}, err
	}

	row, err := lookup(op, key, taggedByVersion, "tagged")
	if err != nil {
		return nil, versionKey{}, err
	}

	std, _ := standardVersion(row.net, row.private)
	key, err = withVersion(op, key, std)
	if err != nil {
		return nil, versionKey{}, err
	}
	return key, row, nil
}

// DerivePublic returns the standard public key of a standard private key.
// Depth, parent fingerprint, child number and chain code are kept, so no
// child derivation takes place.
func DerivePublic(raw string) (string, error) {
	const op errors.Op = "xkey.DerivePublic"

	key, err := parse(op, raw)
	if err != nil {
		return "", err
	}
	row, err := lookup(op, key, standardByVersion, "standard BIP32")
	if err != nil {
		return "", err
	}
	if !row.private {
		return "", errors.E(op, errors.InvalidExtendedKey, fmt.Sprintf("%q is not a private key", raw))
	}

	pub, err := key.Neuter()
	if err != nil {
		return "", errors.E(op, errors.InvalidExtendedKey, err)
	}
	return pub.String(), nil
}
