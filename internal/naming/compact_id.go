package naming

import (
	"crypto/rand"
	"fmt"
	mathrand "math/rand"
	"strconv"
	"time"
)

// NewCompactID returns a time-ordered compact ID (12 chars, base36).
// Format: 7-char timestamp (base36) + 5-char random (base36), lowercase only.
// 7 base36 chars cover timestamps until year ~4454 with second-level ordering.
// The random tail prefers crypto/rand and falls back to a pseudo-random
// source, so the function never fails.
func NewCompactID() string {
	timestamp := time.Now().UTC().Unix()
	if timestamp < 0 {
		timestamp = 0
	}
	timestamp %= 78364164096 // 36^7
	timeStr := fmt.Sprintf("%07s", strconv.FormatInt(timestamp, 36))

	var randomInt uint64
	randomBytes := make([]byte, 3) // 3 bytes of entropy cover 5 base36 chars
	if _, err := rand.Read(randomBytes); err == nil {
		for _, b := range randomBytes {
			randomInt = randomInt*256 + uint64(b)
		}
	} else {
		randomInt = mathrand.Uint64()
	}
	randomInt %= 36 * 36 * 36 * 36 * 36
	randomStr := fmt.Sprintf("%05s", strconv.FormatUint(randomInt, 36))

	return timeStr + randomStr
}
