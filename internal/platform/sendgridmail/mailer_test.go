package sendgridmail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamdecode/backend/pkg/types"
)

func TestReportHTML(t *testing.T) {
	report := &types.DreamReport{
		Interpretations: []types.Interpretation{
			{Title: "The Revelation", Meaning: "A season opens."},
			{Title: "The Action Step", Meaning: "Cross the water."},
		},
		Scripture: types.Scripture{Reference: "Daniel 2:28", Text: "There is a God in heaven.", Context: "Mystery revealed."},
		Prayer:    "Give light to the path.",
	}
	html := reportHTML("Esther", report, "ABCD2345")
	require.Contains(t, html, "Dear Esther,")
	require.Contains(t, html, "<h3>The Revelation</h3>")
	require.Contains(t, html, "Daniel 2:28")
	require.Contains(t, html, "Personalized Prayer")
	require.Contains(t, html, "ABCD2345")
	require.Contains(t, html, "50% off")
}

func TestReportHTML_OmitsEmptySections(t *testing.T) {
	html := reportHTML("Esther", &types.DreamReport{}, "ABCD2345")
	require.NotContains(t, html, "Scriptural Foundation")
	require.NotContains(t, html, "Personalized Prayer")
}

func TestReferrerNoticeHTML(t *testing.T) {
	html := referrerNoticeHTML("Ruth", "Boaz")
	require.Contains(t, html, "Dear Ruth,")
	require.Contains(t, html, "<strong>Boaz</strong>")
	require.Contains(t, html, "Proverbs 11:25")
}
