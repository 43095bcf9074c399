package services

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest. The salt is random, so two
// hashes of the same plaintext differ while both verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored digest. A malformed
// digest counts as a mismatch, never an error.
func CheckPassword(plain, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
