package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomSlug returns a short random hex slug for a new shop URL.
// 5 random bytes → 10 hex chars; collisions are caught by the unique index.
func RandomSlug() string {
	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	return hex.EncodeToString(b)
}
