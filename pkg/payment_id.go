package pkg

import "math/rand"

const (
	paymentIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	paymentIDLength   = 16
)

// NewPaymentID returns a 16-character identifier over A-Z0-9 (~82 bits).
//
// Collisions are astronomically unlikely; the repository's duplicate check
// exists as a backstop, not as a correctness requirement.
func NewPaymentID() string {
	b := make([]byte, paymentIDLength)
	for i := range b {
		b[i] = paymentIDAlphabet[rand.Intn(len(paymentIDAlphabet))]
	}
	return string(b)
}
