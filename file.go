// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package electrum2descriptors

import (
	"fmt"
	"os"
)

// FromFile reads and parses the wallet file at path.
func FromFile(path string) (*WalletFile, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return ReadWalletFile(f)
}

// ToFile writes w to path, replacing any existing file. The file is created
// readable by its owner only since it may hold private keys.
func (w *WalletFile) ToFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create wallet file: %w", err)
	}

	if err := w.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close wallet file: %w", err)
	}
	return nil
}
