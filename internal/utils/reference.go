package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewBookingReference returns a customer-facing reference such as
// "LX-20250301-K7QM2P".
func NewBookingReference(now time.Time) (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reference: %w", err)
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return fmt.Sprintf("LX-%s-%s", now.UTC().Format("20060102"), buf), nil
}
