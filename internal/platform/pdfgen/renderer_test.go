package pdfgen

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dreamdecode/backend/pkg/types"
)

var renderAt = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func sampleReport() *types.DreamReport {
	return &types.DreamReport{
		Interpretations: []types.Interpretation{
			{Title: "The Revelation", Meaning: "The river speaks of cleansing."},
			{Title: "The Warning/Confirmation", Meaning: "Guard the door of your house."},
			{Title: "The Action Step", Meaning: "Wait seven days."},
		},
		Scripture: types.Scripture{
			Reference: "Genesis 41:25",
			Text:      "The dream of Pharaoh is one.",
			Context:   "As with Pharaoh, the repeated image carries one message.",
		},
		Prayer: "Lord, grant understanding of the waters.",
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := &Renderer{}
	out, err := r.Render("Deborah", sampleReport(), renderAt)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output should be a PDF document")
	require.Greater(t, len(out), 1000)
}

func TestRender_Deterministic(t *testing.T) {
	r := &Renderer{}
	a, err := r.Render("Deborah", sampleReport(), renderAt)
	require.NoError(t, err)
	b, err := r.Render("Deborah", sampleReport(), renderAt)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRender_YearComesFromTimestamp(t *testing.T) {
	r := &Renderer{}
	a, err := r.Render("Deborah", sampleReport(), renderAt)
	require.NoError(t, err)
	b, err := r.Render("Deborah", sampleReport(), renderAt.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestRender_NilReport(t *testing.T) {
	r := &Renderer{}
	_, err := r.Render("Deborah", nil, renderAt)
	require.Error(t, err)
}
