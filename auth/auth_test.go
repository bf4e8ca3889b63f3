// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateAdminKey_Deterministic(t *testing.T) {
	key1 := GenerateAdminKey("question-123", "salt")
	key2 := GenerateAdminKey("question-123", "salt")

	if key1 != key2 {
		t.Error("same question and salt should produce the same key")
	}
	if key1 == "" {
		t.Error("expected non-empty admin key")
	}
	if strings.ContainsAny(key1, "=+/") {
		t.Errorf("expected URL-safe key without padding, got %q", key1)
	}
}

func TestGenerateAdminKey_VariesByInput(t *testing.T) {
	base := GenerateAdminKey("question-123", "salt")

	if GenerateAdminKey("question-456", "salt") == base {
		t.Error("different questions should produce different keys")
	}
	if GenerateAdminKey("question-123", "other-salt") == base {
		t.Error("different salts should produce different keys")
	}
}

func TestValidateAdminKey(t *testing.T) {
	key := GenerateAdminKey("question-123", "salt")

	if err := ValidateAdminKey("question-123", key, "salt"); err != nil {
		t.Errorf("expected valid key to pass, got %v", err)
	}

	err := ValidateAdminKey("question-123", "bogus", "salt")
	if !errors.Is(err, ErrInvalidAdminKey) {
		t.Errorf("expected ErrInvalidAdminKey, got %v", err)
	}

	err = ValidateAdminKey("question-456", key, "salt")
	if !errors.Is(err, ErrInvalidAdminKey) {
		t.Errorf("expected key for another question to fail, got %v", err)
	}
}
