package util

import (
	"math/rand/v2"
	"time"
)

const transactionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TransactionID builds an identifier in the form YYYYMMDD_HHMMSS_XXXXX,
// where the suffix is 5 random uppercase alphanumerics. Uniqueness is
// probabilistic: a collision needs two writes in the same second plus a
// matching suffix.
func TransactionID(t time.Time) string {
	var suffix [5]byte
	for i := range suffix {
		suffix[i] = transactionIDAlphabet[rand.IntN(len(transactionIDAlphabet))]
	}

	return t.Format("20060102_150405") + "_" + string(suffix[:])
}
