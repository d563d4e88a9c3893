package order

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NumberAttempts bounds the collision retry loop on order-number generation.
// After that many collisions the caller falls back to FallbackNumber, which
// cannot collide.
const NumberAttempts = 5

// NewNumber produces a human-facing order number: ORD-YYYYMMDD-xxxxxx with six
// random hex characters. Uniqueness is checked at insert time; callers retry a
// bounded number of times on collision.
func NewNumber(now time.Time) string {
	var buf [3]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the platform is broken; the uuid
		// fallback still yields a usable unique number.
		return FallbackNumber(now)
	}
	return "ORD-" + now.Format("20060102") + "-" + hex.EncodeToString(buf[:])
}

// FallbackNumber embeds a full uuid, trading a short code for guaranteed
// uniqueness when the random suffix keeps colliding.
func FallbackNumber(now time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + now.Format("20060102") + "-" + id
}
