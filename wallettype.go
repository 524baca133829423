// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/AminaBank/electrum2descriptors/errors"
)

// WalletType is the quorum policy of a wallet: Standard (one key) or an
// m-of-n multisig. The zero value is Standard.
type WalletType struct {
	multisig  bool
	threshold int
	total     int
}

// Standard is the single-key wallet type.
var Standard = WalletType{}

// Multisig returns the threshold-of-total wallet type.
func Multisig(threshold, total int) WalletType {
	return WalletType{multisig: true, threshold: threshold, total: total}
}

// IsMultisig reports whether t is an m-of-n wallet type.
func (t WalletType) IsMultisig() bool {
	return t.multisig
}

// Threshold returns m of an m-of-n wallet type, 1 for Standard.
func (t WalletType) Threshold() int {
	if !t.multisig {
		return 1
	}
	return t.threshold
}

// Total returns n of an m-of-n wallet type, 1 for Standard.
func (t WalletType) Total() int {
	if !t.multisig {
		return 1
	}
	return t.total
}

var multisigTypeRe = regexp.MustCompile(`^([0-9]+)of([0-9]+)$`)

// ParseWalletType parses Electrum's wallet_type value: "standard" or
// "<m>of<n>".
func ParseWalletType(text string) (WalletType, error) {
	const op errors.Op = "ParseWalletType"

	if text == "standard" {
		return Standard, nil
	}

	m := multisigTypeRe.FindStringSubmatch(text)
	if m == nil {
		return WalletType{}, errors.E(op, errors.UnrecognizedWalletType, fmt.Sprintf("%q", text))
	}
	threshold, err := strconv.Atoi(m[1])
	if err != nil {
		return WalletType{}, errors.E(op, errors.UnrecognizedWalletType, fmt.Sprintf("%q: %v", text, err))
	}
	total, err := strconv.Atoi(m[2])
	if err != nil {
		return WalletType{}, errors.E(op, errors.UnrecognizedWalletType, fmt.Sprintf("%q: %v", text, err))
	}
	if threshold < 1 || total < 1 {
		return WalletType{}, errors.E(op, errors.UnrecognizedWalletType, fmt.Sprintf("%q: counts must be positive", text))
	}

	return Multisig(threshold, total), nil
}

// String renders t the way Electrum stores it. Numbers are written in
// canonical decimal form.
func (t WalletType) String() string {
	if !t.multisig {
		return "standard"
	}
	return fmt.Sprintf("%dof%d", t.threshold, t.total)
}
