// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package affine

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is an affine key (a, b).
type Key struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// ValidMultipliers returns every a in [1, 26) that is coprime with 26.
func ValidMultipliers() []int {
	out := make([]int, 0, 12)
	for a := 1; a < AlphabetSize; a++ {
		if GCD(a, AlphabetSize) == 1 {
			out = append(out, a)
		}
	}
	return out
}

// ValidateKey applies the interactive key policy: a must be coprime with 26
// and b must lie in [0, 26). The coprimality check runs first.
func ValidateKey(a, b int) error {
	if GCD(a, AlphabetSize) != 1 {
		return fmt.Errorf("a=%d: %w", a, ErrNonCoprimeKey)
	}
	if b < 0 || b >= AlphabetSize {
		return fmt.Errorf("b=%d: %w", b, ErrOutOfRangeB)
	}
	return nil
}

// ParseKey parses the decimal string forms of a and b. Surrounding
// whitespace is ignored. Range policy is not applied.
func ParseKey(a, b string) (Key, error) {
	av, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return Key{}, fmt.Errorf("a=%q: %w", a, ErrInvalidKeyFormat)
	}
	bv, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return Key{}, fmt.Errorf("b=%q: %w", b, ErrInvalidKeyFormat)
	}
	return Key{A: av, B: bv}, nil
}

// Normalize reduces both components into [0, 26).
func Normalize(k Key) Key {
	return Key{A: mod(k.A, AlphabetSize), B: mod(k.B, AlphabetSize)}
}

// Validate is ValidateKey for k.
func (k Key) Validate() error { return ValidateKey(k.A, k.B) }

// Inverse returns the inverse of k.A mod 26.
func (k Key) Inverse() (int, error) {
	inv, ok := ModInverse(k.A, AlphabetSize)
	if !ok {
		return 0, fmt.Errorf("a=%d: %w", k.A, ErrNonCoprimeKey)
	}
	return inv, nil
}

func (k Key) Encrypt(text string) string { return Encrypt(text, k.A, k.B) }

func (k Key) Decrypt(text string) (string, error) { return Decrypt(text, k.A, k.B) }

func (k Key) String() string { return fmt.Sprintf("(a=%d, b=%d)", k.A, k.B) }
