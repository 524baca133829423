// Copyright (c) 2025-2026 AminaBank
// See LICENSE for licensing information

package descriptor

import (
	"fmt"
	"strings"
)

// BIP380 descriptor checksum character sets.
const (
	inputCharset    = "0123456789()[],'/*abcdefgh@:$%{}IJKLMNOPQRSTUVWXYZ&+-.;<=>?!^_|~ijklmnopqrstuvwxyzABCDEFGH`#\"\\ "
	checksumCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	checksumLen     = 8
)

func polymod(c uint64, val int) uint64 {
	c0 := c >> 35
	c = ((c & 0x7ffffffff) << 5) ^ uint64(val)
	if c0&1 != 0 {
		c ^= 0xf5dee51989
	}
	if c0&2 != 0 {
		c ^= 0xa9fdca3312
	}
	if c0&4 != 0 {
		c ^= 0x1bab10e32d
	}
	if c0&8 != 0 {
		c ^= 0x3706b1677a
	}
	if c0&16 != 0 {
		c ^= 0x644d626ffd
	}
	return c
}

// Checksum computes the 8 character BIP380 checksum of a descriptor without
// its "#" suffix.
func Checksum(desc string) (string, error) {
	c := uint64(1)
	cls, clsCount := 0, 0
	for i, ch := range desc {
		pos := strings.IndexRune(inputCharset, ch)
		if pos < 0 {
			return "", fmt.Errorf("invalid descriptor character %q at offset %d", ch, i)
		}
		c = polymod(c, pos&31)
		cls = cls*3 + pos>>5
		clsCount++
		if clsCount == 3 {
			c = polymod(c, cls)
			cls, clsCount = 0, 0
		}
	}
	if clsCount > 0 {
		c = polymod(c, cls)
	}
	for i := 0; i < checksumLen; i++ {
		c = polymod(c, 0)
	}
	c ^= 1

	var b strings.Builder
	for i := 0; i < checksumLen; i++ {
		b.WriteByte(checksumCharset[(c>>(5*(checksumLen-1-i)))&31])
	}
	return b.String(), nil
}

// AppendChecksum returns desc followed by "#" and its checksum.
func AppendChecksum(desc string) (string, error) {
	sum, err := Checksum(desc)
	if err != nil {
		return "", err
	}
	return desc + "#" + sum, nil
}
