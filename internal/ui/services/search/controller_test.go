package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"matchscout/internal/domain"
)

func record(id, name string) domain.MatchRecord {
	return domain.MatchRecord{ID: id, FounderName: name}
}

func TestBeginRejectsEmptyQuery(t *testing.T) {
	c := NewController(nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		c.SetQuery(q)
		seq, ok := c.Begin()

		require.False(t, ok, "query %q should not issue a request", q)
		require.Zero(t, seq)
		require.Equal(t, domain.PhaseError, c.Phase())
		require.Contains(t, c.ErrMessage(), "empty query")
		require.True(t, c.HasSearched())
		require.Empty(t, c.Matches())
	}
}

func TestBeginTransitionsToLoading(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("seed-stage robotics founder")

	seq, ok := c.Begin()

	require.True(t, ok)
	require.Equal(t, uint64(1), seq)
	require.Equal(t, domain.PhaseLoading, c.Phase())
	require.True(t, c.HasSearched())
	require.Empty(t, c.Matches())
	require.Equal(t, "seed-stage robotics founder", c.LastQuery())
}

func TestApplySuccess(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("seed-stage robotics founder")
	seq, ok := c.Begin()
	require.True(t, ok)

	applied := c.Apply(seq, []domain.MatchRecord{record("abc123", "Jane Doe")}, nil)

	require.True(t, applied)
	require.Equal(t, domain.PhaseSuccess, c.Phase())
	require.Len(t, c.Matches(), 1)
	require.Equal(t, "Jane Doe", c.Matches()[0].FounderName)
	require.Empty(t, c.ErrMessage())
}

func TestApplyEmptyResultIsSuccess(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("nobody at all")
	seq, _ := c.Begin()

	applied := c.Apply(seq, []domain.MatchRecord{}, nil)

	require.True(t, applied)
	require.Equal(t, domain.PhaseSuccess, c.Phase())
	require.Empty(t, c.Matches())
	require.Contains(t, c.Status(), `No matches for "nobody at all"`)
}

func TestApplyError(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("founder")
	seq, _ := c.Begin()

	applied := c.Apply(seq, nil, errors.New("matching service error: status 500: internal error"))

	require.True(t, applied)
	require.Equal(t, domain.PhaseError, c.Phase())
	require.Contains(t, c.ErrMessage(), "500")
	require.Contains(t, c.ErrMessage(), "internal error")
	require.Empty(t, c.Matches())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	c := NewController(nil)

	c.SetQuery("first query")
	seqA, _ := c.Begin()

	c.SetQuery("second query")
	seqB, _ := c.Begin()
	require.Greater(t, seqB, seqA)

	// B's response arrives first and is applied
	require.True(t, c.Apply(seqB, []domain.MatchRecord{record("b1", "B")}, nil))

	// A's response arrives late; applying it must be a no-op
	require.False(t, c.Apply(seqA, []domain.MatchRecord{record("a1", "A"), record("a2", "A2")}, nil))

	require.Equal(t, domain.PhaseSuccess, c.Phase())
	require.Len(t, c.Matches(), 1)
	require.Equal(t, "b1", c.Matches()[0].ID)
}

func TestStaleErrorDoesNotOverwriteNewerSuccess(t *testing.T) {
	c := NewController(nil)

	c.SetQuery("first")
	seqA, _ := c.Begin()
	c.SetQuery("second")
	seqB, _ := c.Begin()

	require.True(t, c.Apply(seqB, []domain.MatchRecord{record("b1", "B")}, nil))
	require.False(t, c.Apply(seqA, nil, errors.New("timeout")))

	require.Equal(t, domain.PhaseSuccess, c.Phase())
	require.Empty(t, c.ErrMessage())
}

func TestChangeQueryRejectedWhileLoading(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("query")
	_, ok := c.Begin()
	require.True(t, ok)

	require.False(t, c.ChangeQuery("edited mid-flight"))
	require.Equal(t, "query", c.Query())

	seq := uint64(1)
	c.Apply(seq, nil, nil)
	require.True(t, c.ChangeQuery("edited after"))
	require.Equal(t, "edited after", c.Query())
}

func TestErrorClearedBySubsequentSuccessfulSubmit(t *testing.T) {
	c := NewController(nil)

	c.SetQuery("   ")
	c.Begin()
	require.Equal(t, domain.PhaseError, c.Phase())

	c.SetQuery("real query")
	seq, ok := c.Begin()
	require.True(t, ok)
	require.Empty(t, c.ErrMessage())

	c.Apply(seq, []domain.MatchRecord{record("x", "X")}, nil)
	require.Equal(t, domain.PhaseSuccess, c.Phase())
}

func TestHasSearchedIsMonotonic(t *testing.T) {
	c := NewController(nil)
	require.False(t, c.HasSearched())

	c.SetQuery(" ")
	c.Begin()
	require.True(t, c.HasSearched())

	c.SetQuery("q")
	seq, _ := c.Begin()
	c.Apply(seq, nil, nil)
	require.True(t, c.HasSearched())
}

func TestDeriveStatusPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{
			name: "error wins over loading",
			state: State{
				ErrMessage:  "boom",
				Phase:       domain.PhaseLoading,
				HasSearched: true,
				LastQuery:   "q",
			},
			want: "Error: boom",
		},
		{
			name: "loading wins over stale empty result",
			state: State{
				Phase:       domain.PhaseLoading,
				HasSearched: true,
				LastQuery:   "robots",
			},
			want: `Searching for "robots"...`,
		},
		{
			name: "empty result after search",
			state: State{
				Phase:       domain.PhaseSuccess,
				HasSearched: true,
				LastQuery:   "robots",
			},
			want: `No matches for "robots"`,
		},
		{
			name:  "initial prompt before any search",
			state: State{Phase: domain.PhaseIdle},
			want:  "Enter a query describing your ideal match, or pick a quick query",
		},
		{
			name: "nothing when results are shown",
			state: State{
				Phase:       domain.PhaseSuccess,
				HasSearched: true,
				LastQuery:   "q",
				Matches:     []domain.MatchRecord{record("a", "A")},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DeriveStatus(tt.state))
		})
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("q")
	seq, _ := c.Begin()
	c.Apply(seq, []domain.MatchRecord{record("a", "A")}, nil)

	snap := c.Snapshot()
	snap.Matches[0].FounderName = "mutated"

	require.Equal(t, "A", c.Matches()[0].FounderName)
	require.Equal(t, domain.PhaseSuccess, snap.Phase)
	require.Equal(t, "", snap.StatusMessage)
}
