package domain

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID builds the time+random composite identifier the stored
// collections already use, e.g. "booking_1717171717171_k3j9x0q2z".
func NewID(prefix string) string {
	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), b.String())
}
