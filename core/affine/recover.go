// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package affine

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// KeySpaceSize is the number of distinct valid keys: 12 multipliers times
// 26 shifts.
const KeySpaceSize = 12 * AlphabetSize

// RecoverKeys runs a known-plaintext search over the whole key space and
// returns every valid key under which plain encrypts to cipher, ordered by
// (A, B). An empty result means no key matches.
//
// Plain and cipher must have the same rune length and plain must contain at
// least one letter; otherwise every key (or none) would trivially match.
func RecoverKeys(ctx context.Context, plain, cipher string) ([]Key, error) {
	if utf8.RuneCountInString(plain) != utf8.RuneCountInString(cipher) {
		return nil, fmt.Errorf("%d vs %d runes: %w",
			utf8.RuneCountInString(plain), utf8.RuneCountInString(cipher), ErrLengthMismatch)
	}
	if !hasLetter(plain) {
		return nil, ErrNoLetters
	}

	var found []Key
	for _, a := range ValidMultipliers() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for b := 0; b < AlphabetSize; b++ {
			if Encrypt(plain, a, b) == cipher {
				found = append(found, Key{A: a, B: b})
			}
		}
	}
	return found, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if _, ok := letterBase(r); ok {
			return true
		}
	}
	return false
}
