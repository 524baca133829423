// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/matryer/is"
)

const standardDocument = `{
    "addresses": {
        "change": [],
        "receiving": []
    },
    "wallet_type": "standard",
    "keystore": {
        "type": "bip32",
        "xprv": null,
        "xpub": "` + zpub1 + `"
    }
}
`

const multisigDocument = `{
    "addresses": {
        "change": [
            "bc1qchange"
        ],
        "receiving": [
            "bc1qreceive0",
            "bc1qreceive1"
        ]
    },
    "wallet_type": "2of2",
    "x1/": {
        "type": "bip32",
        "xprv": "` + Zprv1 + `",
        "xpub": "` + Zpub1 + `",
        "derivation": "m/48'/0'/0'/2'",
        "root_fingerprint": "d34db33f"
    },
    "x2/": {
        "type": "bip32",
        "xprv": null,
        "xpub": "` + Zpub2 + `"
    }
}
`

// TestWrite_Standard checks the exact layout of a written standard wallet.
func TestWrite_Standard(t *testing.T) {
	is := is.New(t)

	w, err := FromDescriptor("wpkh(" + xpub1 + "/0/*)")
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(w.Write(&buf))
	is.Equal(buf.String(), standardDocument)
}

// TestDocument_Identity reads and writes documents made only of recognized
// fields and expects the same text back.
func TestDocument_Identity(t *testing.T) {
	tests := map[string]string{
		"standard": standardDocument,
		"multisig": multisigDocument,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			w, err := ReadWalletFile(strings.NewReader(doc))
			is.NoErr(err)

			var buf bytes.Buffer
			is.NoErr(w.Write(&buf))
			is.Equal(buf.String(), doc)
		})
	}
}

// TestReadWalletFile_Multisig checks the parsed model of a multisig wallet.
func TestReadWalletFile_Multisig(t *testing.T) {
	is := is.New(t)

	w, err := ReadWalletFile(strings.NewReader(multisigDocument))
	is.NoErr(err)
	is.Equal(w.WalletType, Multisig(2, 2))
	is.Equal(w.Addresses.Change, []string{"bc1qchange"})
	is.Equal(w.Addresses.Receiving, []string{"bc1qreceive0", "bc1qreceive1"})
	is.Equal(len(w.Keystores), 2)
	is.Equal(*w.Keystores[0].Xprv, Zprv1)
	is.Equal(*w.Keystores[0].Derivation, "m/48'/0'/0'/2'")
	is.True(w.Keystores[1].Xprv == nil)
	is.True(w.Keystores[1].RootFingerprint == nil)

	receive, _, err := w.ToDescriptors()
	is.NoErr(err)
	is.Equal(receive, "wsh(sortedmulti(2,[d34db33f/48'/0'/0'/2']"+xprv1+"/0/*,"+xpub2+"/0/*))")
}

// TestReadWalletFile_ElectrumSections reads a wallet carrying the sections
// Electrum writes alongside the keystore.
func TestReadWalletFile_ElectrumSections(t *testing.T) {
	is := is.New(t)

	doc := `{
    "addr_history": {"bc1q": [["txid", 1]]},
    "addresses": {"change": [], "receiving": ["bc1q"], "extra": {"x": 1}},
    "channels": null,
    "db_metadata": {"creation_timestamp": 1, "first_electrum_version_used": "4.5.5"},
    "fiat_value": {},
    "frozen_addresses": [],
    "invoices": {},
    "keystore": {
        "derivation": "m/84'/0'/0'",
        "pw_hash_version": 1,
        "root_fingerprint": "d34db33f",
        "type": "bip32",
        "xprv": "` + zprv1 + `",
        "xpub": "` + zpub1 + `"
    },
    "labels": {"bc1q": "coffee"},
    "lightning_privkey2": "xprv",
    "qt-console-history": ["help()"],
    "seed_type": "segwit",
    "seed_version": 59,
    "spent_outpoints": {},
    "stored_height": 840000,
    "transactions": {},
    "tx_fees": {},
    "txi": {},
    "txo": {},
    "use_change": true,
    "use_encryption": false,
    "verified_tx3": {},
    "wallet_type": "standard",
    "winpos-qt": [100, 100, 840, 400]
}`

	w, err := ReadWalletFile(strings.NewReader(doc))
	is.NoErr(err)
	is.Equal(w.WalletType, Standard)
	is.Equal(w.Addresses.Receiving, []string{"bc1q"})
	is.Equal(len(w.Keystores), 1)

	receive, chg, err := w.ToDescriptors()
	is.NoErr(err)
	is.Equal(receive, "wpkh([d34db33f/84'/0'/0']"+xprv1+"/0/*)")
	is.Equal(chg, "wpkh([d34db33f/84'/0'/0']"+xprv1+"/1/*)")
}

// TestReadWalletFile_KeystoreOrder keeps keystores in document order and
// renames them on write.
func TestReadWalletFile_KeystoreOrder(t *testing.T) {
	is := is.New(t)

	doc := `{
    "x2/": {"type": "bip32", "xprv": null, "xpub": "` + Zpub2 + `"},
    "wallet_type": "1of2",
    "x1/": {"type": "bip32", "xprv": null, "xpub": "` + Zpub1 + `"}
}`

	w, err := ReadWalletFile(strings.NewReader(doc))
	is.NoErr(err)
	is.Equal(w.Keystores[0].Xpub, Zpub2)
	is.Equal(w.Keystores[1].Xpub, Zpub1)

	var buf bytes.Buffer
	is.NoErr(w.Write(&buf))
	out := buf.String()
	is.True(strings.Index(out, `"x1/"`) < strings.Index(out, Zpub1))
	is.True(strings.Index(out, `"addresses"`) < strings.Index(out, `"wallet_type"`))
	is.True(strings.Index(out, `"wallet_type"`) < strings.Index(out, `"x1/"`))
	is.True(strings.Index(out, Zpub2) < strings.Index(out, `"x2/"`))
}

// TestReadWalletFile_KeystoreDefaults fills in the type and skips unknown
// keystore fields.
func TestReadWalletFile_KeystoreDefaults(t *testing.T) {
	is := is.New(t)

	doc := `{"wallet_type": "standard", "keystore": {"xpub": "` + zpub1 + `", "label": "hw", "ckcc_xpub": null}}`
	w, err := ReadWalletFile(strings.NewReader(doc))
	is.NoErr(err)
	is.Equal(w.Keystores[0], &Keystore{Type: DefaultKeystoreType, Xpub: zpub1})
	is.Equal(w.Addresses, newAddresses())
}

// TestReadWalletFile_Errors covers rejected documents.
func TestReadWalletFile_Errors(t *testing.T) {
	keystore := `"keystore": {"type": "bip32", "xprv": null, "xpub": "` + zpub1 + `"}`
	tests := []struct {
		name string
		doc  string
		want errors.Kind
	}{
		{"unknown field", `{"wallet_type": "standard", ` + keystore + `, "bogus": 1}`, errors.UnrecognizedField},
		{"numbered without slash", `{"wallet_type": "standard", "x1": {}}`, errors.UnrecognizedField},
		{"unknown wallet type", `{"wallet_type": "imported", ` + keystore + `}`, errors.UnrecognizedWalletType},
		{"zero quorum", `{"wallet_type": "0of2", ` + keystore + `}`, errors.UnrecognizedWalletType},
		{"ignored field shape", `{"wallet_type": "standard", ` + keystore + `, "labels": []}`, errors.MalformedDocument},
		{"wallet type shape", `{"wallet_type": 1, ` + keystore + `}`, errors.MalformedDocument},
		{"keystore shape", `{"wallet_type": "standard", "keystore": "xpub"}`, errors.MalformedDocument},
		{"missing xpub", `{"wallet_type": "standard", "keystore": {"type": "bip32"}}`, errors.MalformedDocument},
		{"missing keystore", `{"wallet_type": "standard"}`, errors.MalformedDocument},
		{"too few cosigners", `{"wallet_type": "2of3", "x1/": {"xpub": "` + Zpub1 + `"}}`, errors.MalformedDocument},
		{"not an object", `["keystore"]`, errors.MalformedDocument},
		{"empty", ``, errors.MalformedDocument},
		{"truncated", `{"wallet_type": "standard", ` + keystore, errors.MalformedDocument},
		{"trailing data", `{"wallet_type": "standard", ` + keystore + `} {}`, errors.MalformedDocument},
		{"address shape", `{"addresses": {"change": "bc1q"}, "wallet_type": "standard", ` + keystore + `}`, errors.MalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)

			_, err := ReadWalletFile(strings.NewReader(tt.doc))
			is.True(errors.Is(err, tt.want))
		})
	}
}

// TestWrite_Inconsistent refuses to write a wallet whose keystores do not
// match its type.
func TestWrite_Inconsistent(t *testing.T) {
	is := is.New(t)

	w := &WalletFile{WalletType: Multisig(1, 2)}
	var buf bytes.Buffer
	err := w.Write(&buf)
	is.True(errors.Is(err, errors.MalformedDocument))
	is.Equal(buf.Len(), 0)
}

// TestToDescriptors_CorruptPrivateKey fails instead of printing a watch-only
// descriptor when the stored xprv is unusable.
func TestToDescriptors_CorruptPrivateKey(t *testing.T) {
	is := is.New(t)

	doc := `{"wallet_type": "standard", "keystore": {"xprv": "zprvJUNK", "xpub": "` + zpub1 + `"}}`
	w, err := ReadWalletFile(strings.NewReader(doc))
	is.NoErr(err)

	receive, _, err := w.ToDescriptors()
	is.True(errors.Is(err, errors.InvalidExtendedKey))
	is.Equal(receive, "")
}
