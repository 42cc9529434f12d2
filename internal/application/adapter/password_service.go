// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password with bcrypt.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password against a stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the account policy
	// (length, case mix, digit, special character).
	ValidatePasswordStrength(password string) error
}
