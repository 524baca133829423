// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package xkey

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// versionKey identifies one row of the version tables.
type versionKey struct {
	net     Network
	kind    ScriptKind
	private bool
}

// taggedVersions is the single source of truth for the tagged form. Every
// (network, kind, private) triple has its own version; Pkh reuses the
// standard BIP32 versions, which is why legacy keys look unchanged.
var taggedVersions = map[versionKey][4]byte{
	{MainNet, Pkh, true}:     {0x04, 0x88, 0xad, 0xe4}, // xprv
	{MainNet, Pkh, false}:    {0x04, 0x88, 0xb2, 0x1e}, // xpub
	{MainNet, ShWpkh, true}:  {0x04, 0x9d, 0x78, 0x78}, // yprv
	{MainNet, ShWpkh, false}: {0x04, 0x9d, 0x7c, 0xb2}, // ypub
	{MainNet, ShWsh, true}:   {0x02, 0x95, 0xb0, 0x05}, // Yprv
	{MainNet, ShWsh, false}:  {0x02, 0x95, 0xb4, 0x3f}, // Ypub
	{MainNet, Wpkh, true}:    {0x04, 0xb2, 0x43, 0x0c}, // zprv
	{MainNet, Wpkh, false}:   {0x04, 0xb2, 0x47, 0x46}, // zpub
	{MainNet, Wsh, true}:     {0x02, 0xaa, 0x7a, 0x99}, // Zprv
	{MainNet, Wsh, false}:    {0x02, 0xaa, 0x7e, 0xd3}, // Zpub

	{TestNet, Pkh, true}:     {0x04, 0x35, 0x83, 0x94}, // tprv
	{TestNet, Pkh, false}:    {0x04, 0x35, 0x87, 0xcf}, // tpub
	{TestNet, ShWpkh, true}:  {0x04, 0x4a, 0x4e, 0x28}, // uprv
	{TestNet, ShWpkh, false}: {0x04, 0x4a, 0x52, 0x62}, // upub
	{TestNet, ShWsh, true}:   {0x02, 0x42, 0x85, 0xb5}, // Uprv
	{TestNet, ShWsh, false}:  {0x02, 0x42, 0x89, 0xef}, // Upub
	{TestNet, Wpkh, true}:    {0x04, 0x5f, 0x18, 0xbc}, // vprv
	{TestNet, Wpkh, false}:   {0x04, 0x5f, 0x1c, 0xf6}, // vpub
	{TestNet, Wsh, true}:     {0x02, 0x57, 0x50, 0x48}, // Vprv
	{TestNet, Wsh, false}:    {0x02, 0x57, 0x54, 0x83}, // Vpub
}

// standardVersions holds the two BIP32 versions of each network. The kind
// field of the key is unused.
var standardVersions = map[versionKey][4]byte{
	{net: MainNet, private: true}:  chaincfg.MainNetParams.HDPrivateKeyID,
	{net: MainNet, private: false}: chaincfg.MainNetParams.HDPublicKeyID,
	{net: TestNet, private: true}:  chaincfg.TestNet3Params.HDPrivateKeyID,
	{net: TestNet, private: false}: chaincfg.TestNet3Params.HDPublicKeyID,
}

var (
	taggedByVersion   = reverse(taggedVersions)
	standardByVersion = reverse(standardVersions)
)

func reverse(table map[versionKey][4]byte) map[[4]byte]versionKey {
	m := make(map[[4]byte]versionKey, len(table))
	for k, v := range table {
		m[v] = k
	}
	return m
}

func taggedVersion(net Network, kind ScriptKind, private bool) ([4]byte, bool) {
	v, ok := taggedVersions[versionKey{net: net, kind: kind, private: private}]
	return v, ok
}

func standardVersion(net Network, private bool) ([4]byte, bool) {
	v, ok := standardVersions[versionKey{net: net, private: private}]
	return v, ok
}

// knownKind reports whether kind has rows in the tagged table.
func knownKind(kind ScriptKind) bool {
	_, ok := taggedVersions[versionKey{net: MainNet, kind: kind}]
	return ok
}
