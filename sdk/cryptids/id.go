// Package cryptids generates short random identifiers from crypto/rand.
package cryptids

import (
	"crypto/rand"
	"fmt"
)

var (
	IDAlphabet = "bcdfghjklmnpqrstvwxyZBCDFGHJKLMNPQRSTVWXYZ0123456789"
	IDLength   = 18
)

// GenerateID creates a random string using the default alphabet and length.
func GenerateID() (string, error) {
	return generateID(IDAlphabet, IDLength)
}

// generateID creates a random string ID with the given alphabet and length,
// masking random bytes so the distribution over the alphabet stays uniform.
func generateID(alphabet string, size int) (string, error) {
	if len(alphabet) < 2 {
		return "", fmt.Errorf("alphabet must contain at least 2 characters")
	}
	if size < 1 {
		return "", fmt.Errorf("size must be at least 1")
	}

	mask := 1
	for mask < len(alphabet) {
		mask = (mask << 1) | 1
	}

	step := int(float64(size) * 1.6)
	if step < size {
		step = size
	}

	id := make([]byte, size)
	buf := make([]byte, step)

	idx := 0
	for idx < size {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}

		for i := 0; i < len(buf) && idx < size; i++ {
			alphabetIndex := int(buf[i]) & mask
			if alphabetIndex >= len(alphabet) {
				continue
			}
			id[idx] = alphabet[alphabetIndex]
			idx++
		}
	}

	return string(id), nil
}
