// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"fmt"
	"io"

	"github.com/AminaBank/electrum2descriptors/errors"
	jsoniter "github.com/json-iterator/go"
)

const bufSize = 4096

// jsonConfig matches Electrum's own json.dumps(indent=4) layout.
var jsonConfig = jsoniter.Config{
	IndentionStep: 4,
	EscapeHTML:    false,
}.Froze()

// ReadWalletFile parses an Electrum wallet file. Keystores are collected in
// the order their fields appear. Known Electrum sections outside the wallet's
// descriptors are checked for shape and skipped; any other field fails with
// UnrecognizedField.
func ReadWalletFile(r io.Reader) (*WalletFile, error) {
	const op errors.Op = "ReadWalletFile"

	iter := jsoniter.Parse(jsonConfig, r, bufSize)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.E(op, errors.MalformedDocument, "wallet file is not a JSON object")
	}

	w := &WalletFile{Addresses: newAddresses(), WalletType: Standard}
	var err error
	ok := iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		err = w.readField(op, iter, name)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	if !ok || (iter.Error != nil && iter.Error != io.EOF) {
		return nil, errors.E(op, errors.MalformedDocument, iterError(iter))
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error != io.EOF {
		return nil, errors.E(op, errors.MalformedDocument, "trailing data after wallet object")
	}

	if err := w.validate(op); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WalletFile) readField(op errors.Op, iter *jsoniter.Iterator, name string) error {
	f := classifyField(name)
	switch f.class {
	case addressesField:
		addrs, err := readAddresses(op, iter)
		if err != nil {
			return err
		}
		w.Addresses = addrs

	case walletTypeField:
		text, err := readString(op, iter, name)
		if err != nil {
			return err
		}
		w.WalletType, err = ParseWalletType(text)
		if err != nil {
			return err
		}

	case keystoreField:
		ks, err := readKeystore(op, iter, name)
		if err != nil {
			return err
		}
		w.Keystores = append(w.Keystores, ks)

	case ignoredField:
		next := iter.WhatIsNext()
		if next != f.shape && next != jsoniter.NilValue {
			return errors.E(op, errors.MalformedDocument,
				fmt.Sprintf("field %q: expected %s, found %s", name, shapeName(f.shape), shapeName(next)))
		}
		iter.Skip()

	default:
		return errors.E(op, errors.UnrecognizedField, fmt.Sprintf("%q", name))
	}

	if iter.Error != nil && iter.Error != io.EOF {
		return errors.E(op, errors.MalformedDocument, fmt.Sprintf("field %q: %s", name, iterError(iter)))
	}
	return nil
}

func readAddresses(op errors.Op, iter *jsoniter.Iterator) (Addresses, error) {
	addrs := newAddresses()
	if iter.ReadNil() {
		return addrs, nil
	}
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return addrs, errors.E(op, errors.MalformedDocument,
			fmt.Sprintf(`field "addresses": expected object, found %s`, shapeName(next)))
	}

	var err error
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		switch name {
		case "change":
			addrs.Change, err = readStrings(op, iter, "addresses."+name)
		case "receiving":
			addrs.Receiving, err = readStrings(op, iter, "addresses."+name)
		default:
			iter.Skip()
		}
		return err == nil
	})
	return addrs, err
}

func readKeystore(op errors.Op, iter *jsoniter.Iterator, field string) (*Keystore, error) {
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return nil, errors.E(op, errors.MalformedDocument,
			fmt.Sprintf("field %q: expected object, found %s", field, shapeName(next)))
	}

	ks := &Keystore{Type: DefaultKeystoreType}
	var (
		hasXpub bool
		err     error
	)
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		path := field + "." + name
		switch name {
		case "type":
			ks.Type, err = readString(op, iter, path)
		case "xprv":
			ks.Xprv, err = readOptionalString(op, iter, path)
		case "xpub":
			ks.Xpub, err = readString(op, iter, path)
			hasXpub = true
		case "derivation":
			ks.Derivation, err = readOptionalString(op, iter, path)
		case "root_fingerprint":
			ks.RootFingerprint, err = readOptionalString(op, iter, path)
		default:
			iter.Skip()
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	if !hasXpub {
		return nil, errors.E(op, errors.MalformedDocument, fmt.Sprintf("field %q: missing xpub", field))
	}
	return ks, nil
}

func readString(op errors.Op, iter *jsoniter.Iterator, field string) (string, error) {
	if next := iter.WhatIsNext(); next != jsoniter.StringValue {
		return "", errors.E(op, errors.MalformedDocument,
			fmt.Sprintf("field %q: expected string, found %s", field, shapeName(next)))
	}
	return iter.ReadString(), nil
}

func readOptionalString(op errors.Op, iter *jsoniter.Iterator, field string) (*string, error) {
	if iter.ReadNil() {
		return nil, nil
	}
	s, err := readString(op, iter, field)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func readStrings(op errors.Op, iter *jsoniter.Iterator, field string) ([]string, error) {
	if next := iter.WhatIsNext(); next != jsoniter.ArrayValue {
		return nil, errors.E(op, errors.MalformedDocument,
			fmt.Sprintf("field %q: expected array, found %s", field, shapeName(next)))
	}

	out := []string{}
	var err error
	iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
		var s string
		s, err = readString(op, iter, field)
		out = append(out, s)
		return err == nil
	})
	return out, err
}

// Write serializes w as an Electrum wallet file: addresses, wallet_type and
// then the keystores, named "keystore" for Standard wallets and "x1/",
// "x2/", ... for multisig ones.
func (w *WalletFile) Write(out io.Writer) error {
	const op errors.Op = "WalletFile.Write"

	if err := w.validate(op); err != nil {
		return err
	}

	stream := jsoniter.NewStream(jsonConfig, out, bufSize)
	stream.WriteObjectStart()

	stream.WriteObjectField("addresses")
	stream.WriteObjectStart()
	stream.WriteObjectField("change")
	writeStrings(stream, w.Addresses.Change)
	stream.WriteMore()
	stream.WriteObjectField("receiving")
	writeStrings(stream, w.Addresses.Receiving)
	stream.WriteObjectEnd()

	stream.WriteMore()
	stream.WriteObjectField("wallet_type")
	stream.WriteString(w.WalletType.String())

	for i, ks := range w.Keystores {
		stream.WriteMore()
		stream.WriteObjectField(keystoreFieldName(w.WalletType, i))
		writeKeystore(stream, ks)
	}

	stream.WriteObjectEnd()
	stream.WriteRaw("\n")

	if stream.Error != nil {
		return fmt.Errorf("failed to encode wallet file: %w", stream.Error)
	}
	if err := stream.Flush(); err != nil {
		return fmt.Errorf("failed to write wallet file: %w", err)
	}
	return nil
}

func keystoreFieldName(t WalletType, i int) string {
	if !t.IsMultisig() {
		return "keystore"
	}
	return fmt.Sprintf("x%d/", i+1)
}

func writeKeystore(stream *jsoniter.Stream, ks *Keystore) {
	stream.WriteObjectStart()
	stream.WriteObjectField("type")
	stream.WriteString(ks.Type)
	stream.WriteMore()
	stream.WriteObjectField("xprv")
	if ks.Xprv != nil {
		stream.WriteString(*ks.Xprv)
	} else {
		stream.WriteNil()
	}
	stream.WriteMore()
	stream.WriteObjectField("xpub")
	stream.WriteString(ks.Xpub)
	if ks.Derivation != nil {
		stream.WriteMore()
		stream.WriteObjectField("derivation")
		stream.WriteString(*ks.Derivation)
	}
	if ks.RootFingerprint != nil {
		stream.WriteMore()
		stream.WriteObjectField("root_fingerprint")
		stream.WriteString(*ks.RootFingerprint)
	}
	stream.WriteObjectEnd()
}

func writeStrings(stream *jsoniter.Stream, values []string) {
	if len(values) == 0 {
		stream.WriteEmptyArray()
		return
	}
	stream.WriteArrayStart()
	for i, v := range values {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(v)
	}
	stream.WriteArrayEnd()
}

func shapeName(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "invalid JSON"
	}
}

func iterError(iter *jsoniter.Iterator) string {
	if iter.Error == nil || iter.Error == io.EOF {
		return "unexpected end of document"
	}
	return iter.Error.Error()
}
