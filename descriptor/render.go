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

// RenderSingleSig renders the receive and change descriptors of a single-key
// wallet.
func RenderSingleSig(kind xkey.ScriptKind, key Key) (receive, change string, err error) {
	const op errors.Op = "descriptor.RenderSingleSig"

	wrappers, ok := singleSigWrappers[kind]
	if !ok {
		return "", "", errors.E(op, errors.UnknownScriptKind, kind.String())
	}

	render := func(branch int) string {
		return wrap(keyPath(key, branch), wrappers)
	}
	return render(ReceiveBranch), render(ChangeBranch), nil
}

// RenderMultiSig renders the receive and change sortedmulti descriptors of a
// multisig wallet. Keys are written in the given order.
func RenderMultiSig(kind xkey.ScriptKind, threshold int, keys []Key) (receive, change string, err error) {
	const op errors.Op = "descriptor.RenderMultiSig"

	wrappers, ok := multiSigWrappers[kind]
	if !ok {
		return "", "", errors.E(op, errors.UnknownScriptKind,
			fmt.Sprintf("%s has no sortedmulti form", kind))
	}
	if len(keys) < 2 {
		return "", "", errors.E(op, errors.InsufficientSigners,
			fmt.Sprintf("%d signer(s), a multisig needs at least two", len(keys)))
	}
	if err := checkThreshold(op, threshold, len(keys)); err != nil {
		return "", "", err
	}

	render := func(branch int) string {
		args := make([]string, 0, len(keys)+1)
		args = append(args, strconv.Itoa(threshold))
		for _, k := range keys {
			args = append(args, keyPath(k, branch))
		}
		inner := wrap(strings.Join(args, ","), []string{sortedMulti})
		return wrap(inner, wrappers)
	}
	return render(ReceiveBranch), render(ChangeBranch), nil
}

func keyPath(key Key, branch int) string {
	return key.String() + "/" + strconv.Itoa(branch) + "/*"
}

// wrap nests inner in the script functions, outermost first, closing exactly
// as many parentheses as it opens.
func wrap(inner string, wrappers []string) string {
	var b strings.Builder
	for _, w := range wrappers {
		b.WriteString(w)
		b.WriteByte('(')
	}
	b.WriteString(inner)
	b.WriteString(strings.Repeat(")", len(wrappers)))
	return b.String()
}
