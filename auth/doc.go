// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the login check and session tokens for the
recruiter UI.

# Credentials

There is a single configured account (admin / password123 unless
overridden). CheckCredentials compares both fields in constant time:

	if err := auth.CheckCredentials(req.Username, req.Password, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		// 401
	}

# Session Tokens

Tokens are HMAC-SHA256 signed with the session salt:

	token, err := auth.GenerateSessionToken("admin", salt, time.Now())
	username, err := auth.ValidateSessionToken(token, salt, time.Now())

Format is user.nonce.expiry.signature, URL-safe base64 without padding.
Nothing is stored server side; a token is valid until SessionTTL (24h)
elapses or the salt changes.

Validation errors:

  - ErrInvalidToken: wrong shape or undecodable fields
  - ErrInvalidSignature: signed with a different salt or tampered
  - ErrExpiredToken: past its expiry

Mock resource endpoints do not require a token. Only the session
endpoint checks one.

# ID Generation

Random hex IDs, used for token nonces:

	id, err := auth.GenerateID(12)  // 24 hex characters
*/
package auth
