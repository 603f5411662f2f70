package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; changing it only affects hashes created afterwards.
const bcryptCost = 10

// HashPassword returns a salted one-way hash of the plaintext. Callers must
// not log the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// bcrypt's own comparison is used; never compare hashes with ==.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
