// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"12 bytes", 12, 24},
		{"16 bytes", 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "admin", "password123", false},
		{"wrong password", "admin", "password124", true},
		{"wrong username", "root", "password123", true},
		{"both wrong", "root", "hunter2", true},
		{"empty", "", "", true},
		{"case sensitive", "Admin", "password123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCredentials(tt.username, tt.password, "admin", "password123")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("CheckCredentials() error = %v, want %v", err, ErrInvalidCredentials)
			}
		})
	}
}

func TestGenerateSessionToken(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	token, err := GenerateSessionToken("admin", "salt", now)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if parts := strings.Split(token, "."); len(parts) != 4 {
		t.Errorf("token has %d parts, want 4", len(parts))
	}

	// Should be URL-safe (no padding)
	if strings.Contains(token, "=") {
		t.Error("GenerateSessionToken() contains padding characters")
	}

	// Nonce makes every token unique
	other, _ := GenerateSessionToken("admin", "salt", now)
	if token == other {
		t.Error("GenerateSessionToken() produced duplicate tokens")
	}
}

func TestValidateSessionToken(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	salt := "test-salt"
	valid, err := GenerateSessionToken("admin", salt, now)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(valid, ".")
	tampered := "cm9vdA." + strings.Join(parts[1:], ".") // user "root"

	tests := []struct {
		name    string
		token   string
		salt    string
		now     time.Time
		want    string
		wantErr error
	}{
		{"valid", valid, salt, now, "admin", nil},
		{"valid before expiry", valid, salt, now.Add(SessionTTL - time.Second), "admin", nil},
		{"expired", valid, salt, now.Add(SessionTTL), "", ErrExpiredToken},
		{"wrong salt", valid, "other-salt", now, "", ErrInvalidSignature},
		{"tampered user", tampered, salt, now, "", ErrInvalidSignature},
		{"malformed", "not-a-token", salt, now, "", ErrInvalidToken},
		{"empty", "", salt, now, "", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSessionToken(tt.token, tt.salt, tt.now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateSessionToken() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateSessionToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
