// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/payveri/affine/core/affine"
	"github.com/payveri/affine/internal/i18n"
	"github.com/payveri/affine/util/slicest"
)

// Error codes reported by the HTTP API.
const (
	CodeInvalidKeyFormat = "invalid_key_format"
	CodeNonCoprimeKey    = "non_coprime_key"
	CodeOutOfRangeB      = "out_of_range_b"
	CodeLengthMismatch   = "length_mismatch"
	CodeNoLetters        = "no_letters"
	CodeBadRequest       = "bad_request"
)

// ResolveKey parses the textual key inputs and applies the key policy.
// With strictB false, b is reduced mod 26 instead of being rejected.
// The returned key is valid whenever err is nil.
func ResolveKey(a, b string, strictB bool) (affine.Key, error) {
	k, err := affine.ParseKey(a, b)
	if err != nil {
		return k, err
	}
	return CheckKey(k, strictB)
}

// CheckKey applies the key policy to an already parsed key.
func CheckKey(k affine.Key, strictB bool) (affine.Key, error) {
	if !strictB {
		k.B = affine.Normalize(k).B
	}
	if err := k.Validate(); err != nil {
		return k, err
	}
	return k, nil
}

// Message returns a localized, user-facing description of err. k is the
// key that was being validated and is used to fill in the offending value.
func Message(err error, k affine.Key) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, affine.ErrInvalidKeyFormat):
		return i18n.T("error.key_format")
	case errors.Is(err, affine.ErrNonCoprimeKey):
		return i18n.T("error.non_coprime", k.A, JoinInts(affine.ValidMultipliers()))
	case errors.Is(err, affine.ErrOutOfRangeB):
		return i18n.T("error.out_of_range_b")
	case errors.Is(err, affine.ErrNoLetters):
		return i18n.T("error.no_letters")
	case errors.Is(err, affine.ErrLengthMismatch):
		return i18n.T("error.length_mismatch")
	}
	return i18n.T("error.generic", err)
}

// Code maps err to one of the Code* constants.
func Code(err error) string {
	switch {
	case errors.Is(err, affine.ErrInvalidKeyFormat):
		return CodeInvalidKeyFormat
	case errors.Is(err, affine.ErrNonCoprimeKey):
		return CodeNonCoprimeKey
	case errors.Is(err, affine.ErrOutOfRangeB):
		return CodeOutOfRangeB
	case errors.Is(err, affine.ErrLengthMismatch):
		return CodeLengthMismatch
	case errors.Is(err, affine.ErrNoLetters):
		return CodeNoLetters
	}
	return CodeBadRequest
}

// JoinInts renders xs as "1,3,5".
func JoinInts(xs []int) string {
	return strings.Join(slicest.Map(xs, strconv.Itoa), ",")
}
