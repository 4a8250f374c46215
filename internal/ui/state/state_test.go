package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"matchscout/internal/domain"
)

func matches(ids ...string) []domain.MatchRecord {
	out := make([]domain.MatchRecord, len(ids))
	for i, id := range ids {
		out[i] = domain.MatchRecord{ID: id}
	}
	return out
}

func TestToggleDisclosureIsIdempotentInPairs(t *testing.T) {
	s := NewAppState()
	s.SetMatches(matches("abc123"))

	require.False(t, s.IsExpanded("abc123"))

	s.ToggleDisclosure("abc123")
	require.True(t, s.IsExpanded("abc123"))

	s.ToggleDisclosure("abc123")
	require.False(t, s.IsExpanded("abc123"))
}

func TestToggleDisclosureAffectsOnlyOneRecord(t *testing.T) {
	s := NewAppState()
	s.SetMatches(matches("a", "b", "c"))

	s.ToggleDisclosure("b")

	require.False(t, s.IsExpanded("a"))
	require.True(t, s.IsExpanded("b"))
	require.False(t, s.IsExpanded("c"))
}

func TestSetMatchesResetsDisclosureState(t *testing.T) {
	s := NewAppState()
	s.SetMatches(matches("abc123", "def456"))
	s.ToggleDisclosure("abc123")
	s.SelectedIndex = 1

	// A new search replaces the result set wholesale; every new view
	// starts collapsed even when an ID happens to repeat
	s.SetMatches(matches("abc123", "xyz789"))

	require.False(t, s.IsExpanded("abc123"))
	require.False(t, s.IsExpanded("xyz789"))
	require.Zero(t, s.SelectedIndex)
}

func TestSelectedRecord(t *testing.T) {
	s := NewAppState()
	require.Nil(t, s.SelectedRecord())

	s.SetMatches(matches("a", "b"))
	require.Equal(t, "a", s.SelectedRecord().ID)

	s.MoveSelection(1)
	require.Equal(t, "b", s.SelectedRecord().ID)
}

func TestMoveSelectionClamps(t *testing.T) {
	s := NewAppState()
	s.SetMatches(matches("a", "b", "c"))

	s.MoveSelection(-10)
	require.Zero(t, s.SelectedIndex)

	s.MoveSelection(10)
	require.Equal(t, 2, s.SelectedIndex)

	s.SetMatches(nil)
	s.MoveSelection(1)
	require.Zero(t, s.SelectedIndex)
}
