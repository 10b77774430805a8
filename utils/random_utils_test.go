package utils

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestGenerateUniqueString(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := GenerateUniqueString()
		if err != nil {
			t.Fatalf("GenerateUniqueString failed: %v", err)
		}
		if len(s) != 32 {
			t.Fatalf("length = %d, want 32", len(s))
		}
		if _, err := hex.DecodeString(s); err != nil {
			t.Fatalf("not a hex string: %q", s)
		}
		if seen[s] {
			t.Fatalf("duplicate unique string generated: %q", s)
		}
		seen[s] = true
	}
}

func TestGenerateRandomName(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := GenerateRandomName()
		parts := strings.Split(name, "-")
		if len(parts) != 3 {
			t.Fatalf("name = %q, want three dash-separated words", name)
		}
		for _, part := range parts {
			if part == "" || part != strings.ToLower(part) {
				t.Fatalf("name segment %q should be non-empty lowercase", part)
			}
		}
	}
}
