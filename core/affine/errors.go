// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package affine

import "errors"

var (
	// ErrInvalidKeyFormat is returned when a key component is not an integer.
	ErrInvalidKeyFormat = errors.New("key must be an integer")

	// ErrNonCoprimeKey is returned when a shares a factor with 26 and so has
	// no modular inverse. Decryption is impossible with such a key.
	ErrNonCoprimeKey = errors.New("a is not coprime with 26")

	// ErrOutOfRangeB is returned when b falls outside [0, 26).
	ErrOutOfRangeB = errors.New("b must be between 0 and 25")

	// ErrLengthMismatch is returned by RecoverKeys when plaintext and
	// ciphertext differ in length.
	ErrLengthMismatch = errors.New("plaintext and ciphertext lengths differ")

	// ErrNoLetters is returned by RecoverKeys when the plaintext has no
	// letters to constrain the key.
	ErrNoLetters = errors.New("plaintext contains no letters")
)
