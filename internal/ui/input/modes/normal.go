package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"matchscout/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter toggles the selected record's details
		if ctx.SelectedRecordID() != "" {
			return []types.Action{types.ToggleDisclosureAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case " ", "z":
		if ctx.SelectedRecordID() != "" {
			return []types.Action{types.ToggleDisclosureAction{}}, true
		}
		return nil, false

	case "o":
		// Open the selected record in the pager
		if ctx.SelectedRecordID() != "" {
			return []types.Action{types.OpenDetailsAction{}}, true
		}
		return nil, false

	case "/", "s":
		// Query editing is locked out while a request is in flight
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if ctx.IsLoading() {
			return nil, true
		}
		idx := int(msg.String()[0] - '1')
		if idx < ctx.QuickQueryCount() {
			return []types.Action{types.QuickQueryAction{Index: idx}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
