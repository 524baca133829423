// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"regexp"

	jsoniter "github.com/json-iterator/go"
)

type fieldClass int

const (
	unrecognizedField fieldClass = iota
	addressesField
	walletTypeField
	keystoreField
	ignoredField
)

// field is the outcome of classifying a top-level wallet file field.
type field struct {
	class fieldClass
	// shape is the JSON type expected for ignored fields.
	shape jsoniter.ValueType
}

var cosignerFieldRe = regexp.MustCompile(`^x[0-9]+/$`)

// ignoredFields lists the Electrum sections this package reads past, with
// the JSON type each one must have. null is also accepted for all of them.
var ignoredFields = map[string]jsoniter.ValueType{
	"addr_history":             jsoniter.ObjectValue,
	"channel_backups":          jsoniter.ObjectValue,
	"channels":                 jsoniter.ObjectValue,
	"db_metadata":              jsoniter.ObjectValue,
	"fiat_value":               jsoniter.ObjectValue,
	"frozen_addresses":         jsoniter.ArrayValue,
	"frozen_coins":             jsoniter.ObjectValue,
	"imported_channel_backups": jsoniter.ObjectValue,
	"invoices":                 jsoniter.ObjectValue,
	"labels":                   jsoniter.ObjectValue,
	"lightning_payments":       jsoniter.ObjectValue,
	"lightning_preimages":      jsoniter.ObjectValue,
	"lightning_privkey2":       jsoniter.StringValue,
	"lightning_xprv":           jsoniter.StringValue,
	"onchain_channel_backups":  jsoniter.ObjectValue,
	"payment_requests":         jsoniter.ObjectValue,
	"prevouts_by_scripthash":   jsoniter.ObjectValue,
	"qt-console-history":       jsoniter.ArrayValue,
	"seed_type":                jsoniter.StringValue,
	"seed_version":             jsoniter.NumberValue,
	"spent_outpoints":          jsoniter.ObjectValue,
	"stored_height":            jsoniter.NumberValue,
	"submarine_swaps":          jsoniter.ObjectValue,
	"transactions":             jsoniter.ObjectValue,
	"tx_fees":                  jsoniter.ObjectValue,
	"txi":                      jsoniter.ObjectValue,
	"txo":                      jsoniter.ObjectValue,
	"use_change":               jsoniter.BoolValue,
	"use_encryption":           jsoniter.BoolValue,
	"verified_tx3":             jsoniter.ObjectValue,
	"winpos-qt":                jsoniter.ArrayValue,
}

// classifyField maps a top-level field name to its role.
func classifyField(name string) field {
	switch name {
	case "addresses":
		return field{class: addressesField}
	case "wallet_type":
		return field{class: walletTypeField}
	case "keystore":
		return field{class: keystoreField}
	}
	if cosignerFieldRe.MatchString(name) {
		return field{class: keystoreField}
	}
	if shape, ok := ignoredFields[name]; ok {
		return field{class: ignoredField, shape: shape}
	}
	return field{class: unrecognizedField}
}
