// Package service declares the stateless domain services that use cases depend on.
// Implementations live under internal/infra.
package service

// MaxPasswordBytes is the longest password a PasswordHasher accepts; bcrypt
// rejects anything beyond it.
const MaxPasswordBytes = 72

// PasswordHasher turns account passwords into stored hashes and checks logins against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
