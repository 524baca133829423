// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package xkey

import "fmt"

// ScriptKind is the output-script family an extended key is meant for.
type ScriptKind int

// Script kinds. The multisig wallets reuse these: a legacy P2SH multisig is
// tagged Pkh, the script-hash variants keep Wsh and ShWsh.
const (
	Pkh    ScriptKind = iota + 1 // P2PKH
	Wpkh                         // P2WPKH
	ShWpkh                       // P2SH-P2WPKH
	Wsh                          // P2WSH
	ShWsh                        // P2SH-P2WSH
)

// ScriptKinds lists every supported kind.
var ScriptKinds = []ScriptKind{Pkh, Wpkh, ShWpkh, Wsh, ShWsh}

func (k ScriptKind) String() string {
	switch k {
	case Pkh:
		return "pkh"
	case Wpkh:
		return "wpkh"
	case ShWpkh:
		return "sh(wpkh)"
	case Wsh:
		return "wsh"
	case ShWsh:
		return "sh(wsh)"
	default:
		return fmt.Sprintf("ScriptKind(%d)", int(k))
	}
}

// Network selects the standard BIP32 version pair a key is serialized with.
type Network int

// Networks. Regtest and signet share the testnet versions.
const (
	MainNet Network = iota + 1
	TestNet
)

func (n Network) String() string {
	switch n {
	case MainNet:
		return "mainnet"
	case TestNet:
		return "testnet"
	default:
		return fmt.Sprintf("Network(%d)", int(n))
	}
}
