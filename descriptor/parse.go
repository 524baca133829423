// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AminaBank/electrum2descriptors/errors"
	"github.com/AminaBank/electrum2descriptors/xkey"
)

// RecognizeSingleSig matches text against pkh(K/0/*), wpkh(K/0/*),
// sh(wpkh(K/0/*)), wsh(K/0/*) and sh(wsh(K/0/*)), where K is a standard
// extended key with an optional origin. A trailing #checksum is verified and
// dropped.
func RecognizeSingleSig(text string) (SingleSig, error) {
	const op errors.Op = "descriptor.RecognizeSingleSig"

	body, err := stripChecksum(op, text)
	if err != nil {
		return SingleSig{}, err
	}

	for _, kind := range xkey.ScriptKinds {
		inner, ok := unwrap(body, singleSigWrappers[kind])
		if !ok {
			continue
		}
		key, err := parseKey(op, inner, text)
		if err != nil {
			return SingleSig{}, err
		}
		return SingleSig{Kind: kind, Key: key}, nil
	}

	return SingleSig{}, errors.E(op, errors.UnrecognizedDescriptor,
		fmt.Sprintf("%q matches no single-key template", text))
}

// RecognizeMultiSig matches text against sh(sortedmulti(...)),
// wsh(sortedmulti(...)) and sh(wsh(sortedmulti(...))). The keys are returned
// in text order. Fewer than two keys fail with InsufficientSigners; a
// threshold outside 1..n fails with UnrecognizedDescriptor.
func RecognizeMultiSig(text string) (MultiSig, error) {
	const op errors.Op = "descriptor.RecognizeMultiSig"

	body, err := stripChecksum(op, text)
	if err != nil {
		return MultiSig{}, err
	}

	for _, kind := range []xkey.ScriptKind{xkey.Pkh, xkey.Wsh, xkey.ShWsh} {
		wrappers := append(append([]string(nil), multiSigWrappers[kind]...), sortedMulti)
		inner, ok := unwrap(body, wrappers)
		if !ok {
			continue
		}

		args := strings.Split(inner, ",")
		if !thresholdRe.MatchString(args[0]) {
			return MultiSig{}, errors.E(op, errors.UnrecognizedDescriptor,
				fmt.Sprintf("threshold %q of %q is not a number", args[0], text))
		}
		threshold, err := strconv.Atoi(args[0])
		if err != nil {
			return MultiSig{}, errors.E(op, errors.UnrecognizedDescriptor,
				fmt.Sprintf("threshold %q of %q: %v", args[0], text, err))
		}

		keys := make([]Key, 0, len(args)-1)
		for _, arg := range args[1:] {
			key, err := parseKey(op, arg, text)
			if err != nil {
				return MultiSig{}, err
			}
			keys = append(keys, key)
		}
		if len(keys) < 2 {
			return MultiSig{}, errors.E(op, errors.InsufficientSigners,
				fmt.Sprintf("%q has %d signer(s), a multisig needs at least two", text, len(keys)))
		}
		if err := checkThreshold(op, threshold, len(keys)); err != nil {
			return MultiSig{}, err
		}

		return MultiSig{Kind: kind, Threshold: threshold, Keys: keys}, nil
	}

	return MultiSig{}, errors.E(op, errors.UnrecognizedDescriptor,
		fmt.Sprintf("%q matches no sortedmulti template", text))
}

// unwrap peels the script functions off text, outermost first, requiring
// each opening parenthesis to be closed at the very end.
func unwrap(text string, wrappers []string) (string, bool) {
	for _, w := range wrappers {
		if !strings.HasPrefix(text, w+"(") || !strings.HasSuffix(text, ")") {
			return "", false
		}
		text = text[len(w)+1 : len(text)-1]
	}
	return text, true
}

// parseKey parses one key expression on the receive branch.
func parseKey(op errors.Op, expr, text string) (Key, error) {
	m := keyExprRe.FindStringSubmatch(expr)
	if m == nil {
		return Key{}, errors.E(op, errors.UnrecognizedDescriptor,
			fmt.Sprintf("%q in %q is not an extended key on /0/*", expr, text))
	}
	if m[4] != "0" {
		return Key{}, errors.E(op, errors.UnrecognizedDescriptor,
			fmt.Sprintf("%q in %q: only the receive branch /0/* is accepted", expr, text))
	}
	return Key{Fingerprint: m[1], Path: m[2], XKey: m[3]}, nil
}

func checkThreshold(op errors.Op, threshold, n int) error {
	if threshold < 1 || threshold > n {
		return errors.E(op, errors.UnrecognizedDescriptor,
			fmt.Sprintf("threshold %d is outside 1..%d", threshold, n))
	}
	return nil
}

// stripChecksum removes surrounding space and a trailing #checksum, which
// must match the descriptor.
func stripChecksum(op errors.Op, text string) (string, error) {
	text = strings.TrimSpace(text)
	i := strings.LastIndexByte(text, '#')
	if i < 0 {
		return text, nil
	}

	body, sum := text[:i], text[i+1:]
	expected, err := Checksum(body)
	if err != nil {
		return "", errors.E(op, errors.UnrecognizedDescriptor, err.Error())
	}
	if sum != expected {
		return "", errors.E(op, errors.UnrecognizedDescriptor,
			fmt.Sprintf("%q has checksum %q, expected %q", text, sum, expected))
	}
	return body, nil
}
