// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package affine

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidMultipliers(t *testing.T) {
	want := []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}
	if got := ValidMultipliers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ValidMultipliers() = %v, want %v", got, want)
	}
}

func TestValidateKey(t *testing.T) {
	cases := []struct {
		name string
		a, b int
		want error
	}{
		{"ok", 5, 8, nil},
		{"b zero", 1, 0, nil},
		{"b max", 25, 25, nil},
		{"a even", 2, 3, ErrNonCoprimeKey},
		{"a thirteen", 13, 3, ErrNonCoprimeKey},
		{"a zero", 0, 3, ErrNonCoprimeKey},
		{"b negative", 5, -1, ErrOutOfRangeB},
		{"b too big", 5, 26, ErrOutOfRangeB},
		{"a checked first", 4, 99, ErrNonCoprimeKey},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateKey(c.a, c.b)
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey(" 5 ", "8\n")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if k != (Key{A: 5, B: 8}) {
		t.Fatalf("ParseKey = %+v", k)
	}

	for _, in := range [][2]string{{"x", "1"}, {"5", ""}, {"5.0", "1"}, {"", ""}} {
		if _, err := ParseKey(in[0], in[1]); !errors.Is(err, ErrInvalidKeyFormat) {
			t.Errorf("ParseKey(%q, %q) err = %v, want ErrInvalidKeyFormat", in[0], in[1], err)
		}
	}
}

func TestKeyMethods(t *testing.T) {
	k := Key{A: 5, B: 8}
	if err := k.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	inv, err := k.Inverse()
	if err != nil || inv != 21 {
		t.Fatalf("Inverse = %d, %v", inv, err)
	}
	ct := k.Encrypt("HELLO")
	pt, err := k.Decrypt(ct)
	if err != nil || pt != "HELLO" {
		t.Fatalf("Decrypt = %q, %v", pt, err)
	}
	if k.String() != "(a=5, b=8)" {
		t.Fatalf("String = %q", k.String())
	}
	if _, err := (Key{A: 2}).Inverse(); !errors.Is(err, ErrNonCoprimeKey) {
		t.Fatalf("Inverse of a=2 err = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(Key{A: 31, B: -1}); got != (Key{A: 5, B: 25}) {
		t.Fatalf("Normalize = %+v", got)
	}
}
