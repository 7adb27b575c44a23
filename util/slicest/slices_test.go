// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 3, 5}, strconv.Itoa)
	if len(got) != 3 || got[0] != "1" || got[2] != "5" {
		t.Fatalf("unexpected result %v", got)
	}
	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMapX_StopsOnError(t *testing.T) {
	_, err := MapX([]string{"1", "x", "3"}, strconv.Atoi)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError, got %T", err)
	}
}

func TestToMap(t *testing.T) {
	m := ToMap([]int{2, 3}, func(x int) (int, int) { return x, x * x })
	if len(m) != 2 || m[2] != 4 || m[3] != 9 {
		t.Fatalf("unexpected map %v", m)
	}
}

func TestFilter(t *testing.T) {
	odd := Filter([]int{1, 2, 3, 4, 5}, func(x int) bool { return x%2 == 1 })
	if len(odd) != 3 || odd[1] != 3 {
		t.Fatalf("unexpected result %v", odd)
	}
}
