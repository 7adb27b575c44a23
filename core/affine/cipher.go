// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package affine

import (
	"fmt"
	"strings"
)

// AlphabetSize is the modulus of the cipher.
const AlphabetSize = 26

// Encrypt maps every ASCII letter at position x to (a·x + b) mod 26,
// keeping its case. Other characters are copied verbatim.
//
// Encrypt does not reject a non-coprime a; the result is then not
// decryptable. Validate keys with ValidateKey before encrypting user input.
func Encrypt(text string, a, b int) string {
	a, b = mod(a, AlphabetSize), mod(b, AlphabetSize)
	return strings.Map(func(r rune) rune {
		base, ok := letterBase(r)
		if !ok {
			return r
		}
		x := int(r - base)
		return base + rune((a*x+b)%AlphabetSize)
	}, text)
}

// Decrypt inverts Encrypt. It fails with ErrNonCoprimeKey when a has no
// inverse mod 26, in which case no output is produced.
func Decrypt(text string, a, b int) (string, error) {
	aInv, ok := ModInverse(a, AlphabetSize)
	if !ok {
		return "", fmt.Errorf("cannot decrypt with a=%d: %w", a, ErrNonCoprimeKey)
	}
	b = mod(b, AlphabetSize)
	return strings.Map(func(r rune) rune {
		base, ok := letterBase(r)
		if !ok {
			return r
		}
		y := int(r - base)
		return base + rune(mod(aInv*(y-b), AlphabetSize))
	}, text), nil
}

// letterBase returns 'A' or 'a' for ASCII letters.
func letterBase(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return 'A', true
	case r >= 'a' && r <= 'z':
		return 'a', true
	}
	return 0, false
}
