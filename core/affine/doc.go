// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package affine implements the affine substitution cipher over the 26-letter
// Latin alphabet.
//
// Every letter at zero-based position x is mapped to (a·x + b) mod 26 in the
// same case. Anything that is not an ASCII letter is copied through
// unchanged. Decryption needs the modular inverse of a, which only exists
// when gcd(a, 26) == 1.
//
// # Quick Start
//
//	import "github.com/payveri/affine/core/affine"
//
//	ct := affine.Encrypt("HELLO", 5, 8) // "RCLLA"
//	pt, err := affine.Decrypt(ct, 5, 8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Keys
//
// Callers accepting keys from users should go through ParseKey and
// ValidateKey (or Key.Validate), which report ErrInvalidKeyFormat,
// ErrNonCoprimeKey and ErrOutOfRangeB. The functions in this package are
// pure and hold no state, so they are safe for concurrent use.
package affine
