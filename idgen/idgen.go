// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// VoterIDBytes is the size of a voter ID before hex encoding (64 bits)
const VoterIDBytes = 8

// Reader is the entropy source. Tests may swap it.
var Reader io.Reader = rand.Reader

// GenerateID creates a random lowercase hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateVoterID returns a fresh 16-character voter ID.
// Uniqueness is not checked; a collision fails the insert.
func GenerateVoterID() (string, error) {
	return GenerateID(VoterIDBytes)
}
