// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	if av["en"] != "English" {
		t.Fatalf("unexpected display name for en: %q", av["en"])
	}
	if av["id"] != "Bahasa Indonesia" {
		t.Fatalf("unexpected display name for id: %q", av["id"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("status.ready"); got != "Ready" {
		t.Fatalf("expected 'Ready', got %q", got)
	}

	got := T("status.key_valid", 5, 8)
	if got != "Key OK ✅ (a=5, b=8)" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("id")
	if GetLang() != "id" {
		t.Fatalf("expected lang 'id', got %q", GetLang())
	}
	if got := T("status.cleared"); got != "Dibersihkan 🧹" {
		t.Fatalf("expected Indonesian translation, got %q", got)
	}
	Init("en")
}

func TestT_MissingIDAndFallback(t *testing.T) {
	Init("fr")
	if got := T("status.ready"); got != "Ready" {
		t.Fatalf("expected English fallback for unknown language, got %q", got)
	}
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
	Init("en")
}

func TestNext(t *testing.T) {
	Init("en")
	if got := Next("en"); got != "id" {
		t.Fatalf("Next(en) = %q", got)
	}
	if got := Next("id"); got != "en" {
		t.Fatalf("Next(id) = %q", got)
	}
	if got := Next("xx"); got != "en" {
		t.Fatalf("Next(xx) = %q", got)
	}
}
