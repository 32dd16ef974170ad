package dream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrDreamNotFound)
	require.True(t, errors.Is(wrapped, ErrDreamNotFound))
	require.False(t, errors.Is(wrapped, ErrReportNotFound))
}

func TestSentinelErrors_Messages(t *testing.T) {
	require.Equal(t, "Dream not found", ErrDreamNotFound.Error())
	require.Equal(t, "Report not found", ErrReportNotFound.Error())
	require.Equal(t, "Blessing code not found", ErrReferralNotFound.Error())
}
