package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns a password into a one-way, salted representation and
// checks candidates against it. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A hash that is not in
	// the implementation's format never matches.
	Verify(hash, password string) bool

	// IsHash reports whether s is in the implementation's hash format.
	IsHash(s string) bool
}
