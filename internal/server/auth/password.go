package auth

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. 10 keeps a single hash around 50-100ms
// on current hardware, expensive enough to resist offline brute force.
const hashCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
// bcrypt embeds a random salt, so hashing the same password twice yields
// different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. It returns false on mismatch and on malformed hash input; it never
// panics.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
