// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen generates random identifiers.

# Voter IDs

Every accepted vote gets a service-generated ID:

	id, err := idgen.GenerateVoterID()
	// id = "9f86d081884c7d65"

IDs are 64 random bits from crypto/rand, rendered as 16 lowercase hex
characters. They identify a vote row, not a person.
*/
package idgen
