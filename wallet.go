// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

// Package electrum2descriptors converts Electrum wallet files to output
// descriptors and back.
//
// A wallet file is the JSON document Electrum stores for each wallet. Only
// the parts needed to describe the wallet's scripts are modelled: the
// wallet type, the keystores and an (always empty when written) address
// list. Other Electrum sections are accepted on input and dropped.
//
// Descriptors are produced in pairs, one for the receive branch (/0/*) and
// one for the change branch (/1/*). Conversion from a descriptor accepts
// the receive branch only.
package electrum2descriptors

import (
	"fmt"

	"github.com/AminaBank/electrum2descriptors/descriptor"
	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/AminaBank/electrum2descriptors/xkey"
)

// Addresses is the address cache of a wallet file. Electrum fills it in on
// its next sync.
type Addresses struct {
	Change    []string
	Receiving []string
}

// WalletFile is the subset of an Electrum wallet file that determines its
// descriptors.
type WalletFile struct {
	Addresses  Addresses
	WalletType WalletType
	// Keystores holds one entry for Standard wallets and n entries, in
	// cosigner order, for m-of-n wallets.
	Keystores []*Keystore
}

func newAddresses() Addresses {
	return Addresses{Change: []string{}, Receiving: []string{}}
}

// FromDescriptor builds a wallet file from a receive branch descriptor.
func FromDescriptor(text string) (*WalletFile, error) {
	if descriptor.IsMultiSig(text) {
		return fromMultiSig(text)
	}
	return fromSingleSig(text)
}

func fromSingleSig(text string) (*WalletFile, error) {
	d, err := descriptor.RecognizeSingleSig(text)
	if err != nil {
		return nil, err
	}

	ks, err := newKeystoreFromDescriptor(d.Kind, d.Key)
	if err != nil {
		return nil, err
	}

	return &WalletFile{
		Addresses:  newAddresses(),
		WalletType: Standard,
		Keystores:  []*Keystore{ks},
	}, nil
}

func fromMultiSig(text string) (*WalletFile, error) {
	d, err := descriptor.RecognizeMultiSig(text)
	if err != nil {
		return nil, err
	}

	keystores := make([]*Keystore, 0, len(d.Keys))
	for _, key := range d.Keys {
		ks, err := newKeystoreFromDescriptor(d.Kind, key)
		if err != nil {
			return nil, err
		}
		keystores = append(keystores, ks)
	}

	return &WalletFile{
		Addresses:  newAddresses(),
		WalletType: Multisig(d.Threshold, len(d.Keys)),
		Keystores:  keystores,
	}, nil
}

// ToDescriptors returns the receive and change descriptors of the wallet.
func (w *WalletFile) ToDescriptors() (receive, change string, err error) {
	const op errors.Op = "WalletFile.ToDescriptors"

	if err := w.validate(op); err != nil {
		return "", "", err
	}

	if !w.WalletType.IsMultisig() {
		kind, key, err := w.Keystores[0].DescriptorKey()
		if err != nil {
			return "", "", err
		}
		return descriptor.RenderSingleSig(kind, key)
	}

	var kind xkey.ScriptKind
	keys := make([]descriptor.Key, 0, len(w.Keystores))
	for i, ks := range w.Keystores {
		k, key, err := ks.DescriptorKey()
		if err != nil {
			return "", "", err
		}
		if i == 0 {
			kind = k
		} else if k != kind {
			return "", "", errors.E(op, errors.MalformedDocument,
				fmt.Sprintf("cosigner %d is %s but cosigner 1 is %s", i+1, k, kind))
		}
		keys = append(keys, key)
	}
	return descriptor.RenderMultiSig(kind, w.WalletType.Threshold(), keys)
}

// validate checks the keystore count against the wallet type.
func (w *WalletFile) validate(op errors.Op) error {
	want := w.WalletType.Total()
	if len(w.Keystores) != want {
		return errors.E(op, errors.MalformedDocument,
			fmt.Sprintf("wallet type %s needs %d keystore(s), found %d", w.WalletType, want, len(w.Keystores)))
	}
	for i, ks := range w.Keystores {
		if ks == nil {
			return errors.E(op, errors.MalformedDocument, fmt.Sprintf("keystore %d is missing", i+1))
		}
	}
	return nil
}
