package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of the password. bcrypt salts per
// call, so two digests of the same password differ.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password produced digest. A malformed
// digest verifies false rather than erroring.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
