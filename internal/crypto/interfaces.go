// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing used by the backend stub to store
// user credentials.
package crypto

// PasswordHasher derives and checks salted password hashes.
//
// The encoded form is self-describing so the parameters a hash was produced
// with can change without invalidating stored hashes:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
type PasswordHasher interface {
	// Hash derives a hash of password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encoded. A malformed encoded
	// value yields [ErrMalformedHash].
	Verify(password, encoded string) (bool, error)
}
