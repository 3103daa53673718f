// Package service defines interfaces for stateless domain collaborators that
// infrastructure implements: hashing, tokens, events and randomness.
package service

// PasswordHasher hashes login passwords. Users created without a password
// never reach it.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
