package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeApproximateRequestSize(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/submit-dream", strings.NewReader("abcd"))
	req.Header.Set("X-Request-ID", "123")

	size := computeApproximateRequestSize(req)
	expected := len("/submit-dream") + len(http.MethodPost) + len(req.Proto) +
		len("X-Request-Id") + len("123") + len(req.Host) + 4
	require.Equal(t, expected, size)
}

func TestComputeApproximateRequestSize_UnknownContentLength(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.ContentLength = -1

	base := computeApproximateRequestSize(req)
	require.Equal(t, len("/health")+len(http.MethodGet)+len(req.Proto)+len(req.Host), base)
}

func TestMillisecondsSince(t *testing.T) {
	start := time.Now().Add(-250 * time.Millisecond)
	ms := MillisecondsSince(start)
	require.GreaterOrEqual(t, ms, 250.0)
	require.Less(t, ms, 10000.0)
}
