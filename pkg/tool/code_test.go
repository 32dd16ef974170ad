package tool

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateReferralCode_Shape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := GenerateReferralCode()
		require.Len(t, code, referralCodeLen)
		for _, r := range code {
			require.True(t, strings.ContainsRune(referralCodeCharset, r), "unexpected char %q in %s", r, code)
		}
		seen[code] = true
	}
	// 200 draws from a 32^8 space should never collide
	require.Len(t, seen, 200)
}

func TestHebrewYear(t *testing.T) {
	at := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 5786, HebrewYear(at))
}
