// Package orderid generates short human-friendly order codes.
package orderid

import "math/rand"

// Alphabet excludes 0/O and 1/I so codes survive being read over the phone or
// scribbled on a kitchen ticket.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const DefaultLength = 6

// New returns a random order code of the given length. Non-positive lengths
// fall back to DefaultLength.
func New(length int) string {
	if length <= 0 {
		length = DefaultLength
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(b)
}
