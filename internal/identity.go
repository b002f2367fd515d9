package internal

import (
	"fmt"
	"math/rand"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	accessCodeLength   = 6
)

// Word sets for anonymous display names. Cosmetic only.
var (
	anonAdjectives = [8]string{
		"Hungry", "Cozy", "Spicy", "Mellow", "Crispy", "Salty", "Sweet", "Toasty",
	}
	anonNouns = [8]string{
		"Fork", "Spoon", "Pepper", "Olive", "Mango", "Truffle", "Basil", "Nacho",
	}
)

// GenerateAccessCode returns a 6-character uppercase alphanumeric code.
// Codes are human-shareable hints, not identity keys: no uniqueness is
// enforced and callers must not treat them as unguessable tokens.
func GenerateAccessCode() string {
	return gonanoid.MustGenerate(accessCodeAlphabet, accessCodeLength)
}

// GenerateAnonymousName returns a display name like "SpicyOlive42".
// Collisions are possible and acceptable.
func GenerateAnonymousName() string {
	adjective := anonAdjectives[rand.Intn(len(anonAdjectives))]
	noun := anonNouns[rand.Intn(len(anonNouns))]
	number := rand.Intn(99) + 1
	return fmt.Sprintf("%s%s%d", adjective, noun, number)
}
