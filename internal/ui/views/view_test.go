package views

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"matchscout/internal/domain"
)

func manyMatches(n int) []domain.MatchRecord {
	out := make([]domain.MatchRecord, n)
	for i := range out {
		out[i] = domain.MatchRecord{
			ID:          fmt.Sprintf("rec-%d", i),
			FounderName: fmt.Sprintf("Founder %d", i),
			Role:        "CEO",
			Company:     "Acme",
			Location:    "Berlin",
		}
	}
	return out
}

func TestRecordListWindowedToAvailableHeight(t *testing.T) {
	r := NewRenderer(false)

	state := ViewState{
		Width:           80,
		Height:          30,
		ListHeight:      6,
		Matches:         manyMatches(10),
		ExpandedRecords: map[string]bool{},
	}

	out := r.renderRecordList(state)
	lines := strings.Split(out, "\n")

	// Six list lines plus the continuation marker
	require.LessOrEqual(t, len(lines), 7)
	require.Contains(t, out, "...")
}

func TestRecordListKeepsSelectionVisible(t *testing.T) {
	r := NewRenderer(false)

	state := ViewState{
		Width:           80,
		Height:          30,
		ListHeight:      6,
		Matches:         manyMatches(10),
		SelectedIndex:   9,
		ExpandedRecords: map[string]bool{},
	}

	out := r.renderRecordList(state)

	require.Contains(t, out, "Founder 9", "selected card scrolled into view")
	require.NotContains(t, out, "Founder 0")
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	s := strings.Repeat("é", 10)

	out := truncate(s, 7)

	require.True(t, utf8.ValidString(out))
	require.Equal(t, strings.Repeat("é", 4)+"...", out)
}
