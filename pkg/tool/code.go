package tool

import (
	"crypto/rand"
	"math/big"
)

const (
	referralCodeLen     = 8
	referralCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GenerateReferralCode returns a short share code. Ambiguous characters
// (0/O, 1/I) are excluded from the charset. Uniqueness is enforced at
// persistence time; callers retry on collision.
func GenerateReferralCode() string {
	buf := make([]byte, referralCodeLen)
	max := big.NewInt(int64(len(referralCodeCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		buf[i] = referralCodeCharset[n.Int64()]
	}
	return string(buf)
}
