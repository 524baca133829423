// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

// Package descriptor recognizes and renders the subset of output descriptors
// that map onto Electrum wallets: single-key descriptors and sortedmulti
// descriptors over extended keys on the receive (/0/*) and change (/1/*)
// branches.
//
// In descriptor text the script kind is encoded by nesting, for example
// sh(wpkh(...)); Electrum encodes it once per key in the version bytes. The
// templates below are the translation table between the two.
package descriptor

import (
	"regexp"
	"strings"

	"github.com/AminaBank/electrum2descriptors/xkey"
)

// Address branches of a BIP44-style account.
const (
	ReceiveBranch = 0
	ChangeBranch  = 1
)

// Key is one key expression: an extended key with an optional origin.
type Key struct {
	// Fingerprint is the 8 hex digit master key fingerprint of the origin,
	// empty when the key has no origin.
	Fingerprint string
	// Path is the origin derivation path with a leading slash, for example
	// "/84'/0'/0'". Empty for an origin without steps.
	Path string
	// XKey is the standard extended key (xpub, xprv, tpub, tprv).
	XKey string
}

// HasOrigin reports whether the key carries a [fingerprint/path] prefix.
func (k Key) HasOrigin() bool {
	return k.Fingerprint != ""
}

func (k Key) String() string {
	if !k.HasOrigin() {
		return k.XKey
	}
	return "[" + k.Fingerprint + k.Path + "]" + k.XKey
}

// SingleSig is a recognized single-key descriptor.
type SingleSig struct {
	Kind xkey.ScriptKind
	Key  Key
}

// MultiSig is a recognized sortedmulti descriptor. Keys are in the order they
// appear in the text.
type MultiSig struct {
	Kind      xkey.ScriptKind
	Threshold int
	Keys      []Key
}

// singleSigWrappers maps each kind to the script functions wrapped around
// the key, outermost first.
var singleSigWrappers = map[xkey.ScriptKind][]string{
	xkey.Pkh:    {"pkh"},
	xkey.Wpkh:   {"wpkh"},
	xkey.ShWpkh: {"sh", "wpkh"},
	xkey.Wsh:    {"wsh"},
	xkey.ShWsh:  {"sh", "wsh"},
}

// multiSigWrappers maps each kind to the script functions wrapped around
// sortedmulti. Legacy P2SH multisig is tagged like single-key legacy.
var multiSigWrappers = map[xkey.ScriptKind][]string{
	xkey.Pkh:   {"sh"},
	xkey.Wsh:   {"wsh"},
	xkey.ShWsh: {"sh", "wsh"},
}

const sortedMulti = "sortedmulti"

var (
	keyExprRe   = regexp.MustCompile(`^(?:\[([0-9a-fA-F]{8})((?:/[0-9]+['hH]?)*)\])?([tx]p(?:ub|rv)[1-9A-HJ-NP-Za-km-z]+)/([01])/\*$`)
	thresholdRe = regexp.MustCompile(`^[0-9]+$`)
)

// IsMultiSig reports whether text looks like a sortedmulti descriptor.
func IsMultiSig(text string) bool {
	return strings.Contains(text, sortedMulti)
}
