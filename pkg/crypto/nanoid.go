package crypto

import (
	"crypto/rand"
	"math"
)

const (
	nanoidAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	nanoidSize     = 22 // 22 * 6 = 132 bits of entropy (uuid is 128 bits)
)

// NanoIDGenerator produces URL-safe random ids over a fixed 64-character
// alphabet.
type NanoIDGenerator struct {
	mask int
}

func getMask(alphabetLen int) int {
	for i := 1; i <= 8; i++ {
		mask := (2 << uint(i)) - 1
		if mask > alphabetLen-1 {
			return mask
		}
	}
	return 255
}

func NewNanoID() *NanoIDGenerator {
	return &NanoIDGenerator{mask: getMask(len(nanoidAlphabet))}
}

func (n *NanoIDGenerator) Generate(length ...int) (string, error) {
	size := nanoidSize
	if len(length) > 0 && length[0] > 0 {
		size = length[0]
	}

	alphabetLen := len(nanoidAlphabet)
	step := int(math.Ceil(1.6 * float64(n.mask*size) / float64(alphabetLen)))

	id := make([]byte, size)
	buffer := make([]byte, step)

	for position := 0; position < size; {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}

		// Map random bytes to alphabet characters, rejecting indexes
		// outside the alphabet to keep the distribution uniform
		for i := 0; i < step && position < size; i++ {
			index := buffer[i] & byte(n.mask)
			if int(index) < alphabetLen {
				id[position] = nanoidAlphabet[index]
				position++
			}
		}
	}

	return string(id), nil
}
