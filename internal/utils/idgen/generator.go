package idgen

import (
	"crypto/rand"
	"fmt"
	"time"
)

const charset = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomSuffix returns length cryptographically random characters from 0-9a-z.
func RandomSuffix(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encoded := make([]byte, length)
	for i := range bytes {
		encoded[i] = charset[int(bytes[i])%len(charset)]
	}
	return string(encoded), nil
}

// ParticipantIdentity builds a default participant identity of the form
// prefix-<unix millis>-<random>. The timestamp keeps identities ordered in
// logs and the random tail keeps same-millisecond callers apart.
func ParticipantIdentity(prefix string, now time.Time) (string, error) {
	suffix, err := RandomSuffix(6)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix), nil
}
