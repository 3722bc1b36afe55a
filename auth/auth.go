// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SessionTTL is how long a session token stays valid.
const SessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token format")
	ErrInvalidSignature   = errors.New("invalid token signature")
	ErrExpiredToken       = errors.New("token expired")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CheckCredentials compares a login attempt against the configured
// username and password. Both comparisons always run so timing does not
// reveal which field was wrong.
func CheckCredentials(username, password, wantUsername, wantPassword string) error {
	userOK := hmac.Equal(digest(username), digest(wantUsername))
	passOK := hmac.Equal(digest(password), digest(wantPassword))
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// digest hashes s so comparisons run over equal-length inputs.
func digest(s string) []byte {
	sum := sha256.Sum256([]byte(s))
	return sum[:]
}

// sign creates an HMAC signature for payload.
// Deterministic and verifiable with the same salt.
func sign(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// GenerateSessionToken issues a signed token for username that expires
// SessionTTL after now. Format: user.nonce.expiry.signature, where user
// is URL-safe base64.
func GenerateSessionToken(username, salt string, now time.Time) (string, error) {
	nonce, err := GenerateID(12)
	if err != nil {
		return "", err
	}
	user := strings.TrimRight(base64.URLEncoding.EncodeToString([]byte(username)), "=")
	expiry := strconv.FormatInt(now.Add(SessionTTL).Unix(), 10)

	payload := user + "." + nonce + "." + expiry
	return payload + "." + sign(payload, salt), nil
}

// ValidateSessionToken checks the token's signature and expiry and
// returns the username it was issued for.
func ValidateSessionToken(token, salt string, now time.Time) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return "", ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ".")
	if !hmac.Equal([]byte(parts[3]), []byte(sign(payload, salt))) {
		return "", ErrInvalidSignature
	}

	expiry, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if now.Unix() >= expiry {
		return "", ErrExpiredToken
	}

	user, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidToken
	}
	return string(user), nil
}
