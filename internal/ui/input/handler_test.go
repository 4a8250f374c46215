package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"matchscout/internal/domain"
	"matchscout/internal/ui/input/types"
	"matchscout/internal/ui/services/search"
	"matchscout/internal/ui/state"
)

func newContext(t *testing.T, loading bool) *ModelContext {
	t.Helper()

	appState := state.NewAppState()
	appState.SetMatches([]domain.MatchRecord{{ID: "a"}, {ID: "b"}})

	ctrl := search.NewController(nil)
	if loading {
		ctrl.SetQuery("in flight")
		_, ok := ctrl.Begin()
		require.True(t, ok)
	}

	return &ModelContext{
		State:        appState,
		Controller:   ctrl,
		QuickQueries: []string{"fintech founder", "healthtech engineer"},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeNavigation(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	actions, _ := h.HandleKey(key("j"), ctx)
	require.Len(t, actions, 1)
	require.Equal(t, types.NavigateAction{Direction: "down"}, actions[0])

	actions, _ = h.HandleKey(key("k"), ctx)
	require.Equal(t, types.NavigateAction{Direction: "up"}, actions[0])
}

func TestNormalModeToggleDisclosure(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	actions, _ := h.HandleKey(key("z"), ctx)
	require.Len(t, actions, 1)
	require.IsType(t, types.ToggleDisclosureAction{}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	require.IsType(t, types.ToggleDisclosureAction{}, actions[0])
}

func TestSlashEntersQueryMode(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	h.HandleKey(key("/"), ctx)
	require.Equal(t, types.ModeQuery, h.CurrentMode())
	require.NotNil(t, h.TextInput())
}

func TestSlashIgnoredWhileLoading(t *testing.T) {
	h := New()
	ctx := newContext(t, true)

	h.HandleKey(key("/"), ctx)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestQueryModeSubmitReturnsToNormal(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	h.HandleKey(key("/"), ctx)
	h.HandleKey(key("robots"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)

	var submitted *types.SubmitQueryAction
	for _, a := range actions {
		if s, ok := a.(types.SubmitQueryAction); ok {
			submitted = &s
		}
	}
	require.NotNil(t, submitted)
	require.Equal(t, "robots", submitted.Text)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestQueryModeEscCancels(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	h.HandleKey(key("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	var cancelled bool
	for _, a := range actions {
		if _, ok := a.(types.CancelTextAction); ok {
			cancelled = true
		}
	}
	require.True(t, cancelled)
	require.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestQueryModePrefillsCurrentQuery(t *testing.T) {
	h := New()
	ctx := newContext(t, false)
	ctx.Controller.SetQuery("previous query")

	h.HandleKey(key("/"), ctx)

	require.Equal(t, "previous query", h.TextInput().Value())
}

func TestQuickQueryKeys(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	actions, _ := h.HandleKey(key("2"), ctx)
	require.Len(t, actions, 1)
	require.Equal(t, types.QuickQueryAction{Index: 1}, actions[0])

	// Only two quick queries are configured
	actions, _ = h.HandleKey(key("5"), ctx)
	require.Empty(t, actions)
}

func TestQuitKeys(t *testing.T) {
	h := New()
	ctx := newContext(t, false)

	actions, _ := h.HandleKey(key("q"), ctx)
	require.Equal(t, types.QuitAction{}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	require.Equal(t, types.QuitAction{Force: true}, actions[0])
}
