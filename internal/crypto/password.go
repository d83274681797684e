// Package crypto wraps password hashing so handlers never touch bcrypt
// directly.
package crypto

import "golang.org/x/crypto/bcrypt"

const hashCost = 10

type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: hashCost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether plaintext matches the stored hash.
func (h *Hasher) Compare(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
