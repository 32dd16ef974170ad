package openai

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/dreamdecode/backend/internal/models"
)

func TestTeaserPrompt_FallbacksForMissingHints(t *testing.T) {
	d := &models.Dream{DreamText: "a ladder reaching heaven"}
	p := teaserPrompt(d)
	require.Contains(t, p, "a ladder reaching heaven")
	require.Contains(t, p, "Emotion: unknown")
	require.Contains(t, p, "Colors: none mentioned")
}

func TestReportUserPrompt_IncludesAllHints(t *testing.T) {
	d := &models.Dream{
		Name:      "Miriam",
		DreamText: "a river of gold",
		Emotion:   lo.ToPtr("awe"),
		Colors:    lo.ToPtr("gold"),
		Symbols:   lo.ToPtr("river"),
	}
	p := reportUserPrompt(d)
	require.Contains(t, p, "Interpret this dream for Miriam")
	require.Contains(t, p, "Emotion: awe")
	require.Contains(t, p, "Colors: gold")
	require.Contains(t, p, "Symbols: river")
}
