// Package ref generates short human-readable references for orders and
// bookings. References are display-only: collisions are unlikely but not
// prevented, matching what the shop staff actually rely on.
package ref

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length   = 8
)

func New() string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// Entropy failure is effectively unreachable; fall back to a
		// timestamp so the caller still gets a usable reference.
		return fmt.Sprintf("%08d", time.Now().UnixNano()%100000000)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
