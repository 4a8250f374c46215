package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"matchscout/internal/config"
	"matchscout/internal/ui/services/search"
	"matchscout/internal/ui/state"
	"matchscout/internal/ui/views"
)

// InputMode mirrors the input handler's mode for rendering purposes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeQuery
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state      *state.AppState
	controller *search.Controller
	config     *config.Config
	width      int
	height     int
	inputMode  InputMode
	textInput  textinput.Model
	showHelp   bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, ctrl *search.Controller, cfg *config.Config, ti textinput.Model) *ViewModel {
	return &ViewModel{
		state:      appState,
		controller: ctrl,
		config:     cfg,
		textInput:  ti,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputMode = mode
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(ti textinput.Model) {
	vm.textInput = ti
}

// SetShowHelp toggles the help overlay
func (vm *ViewModel) SetShowHelp(show bool) {
	vm.showHelp = show
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	modeName := "normal"
	if vm.inputMode == InputModeQuery {
		modeName = "query"
	}

	return views.ViewState{
		Width:           vm.width,
		Height:          vm.height,
		ListHeight:      vm.state.ViewportHeight,
		Matches:         vm.state.Matches,
		ExpandedRecords: vm.state.ExpandedRecords,
		SelectedIndex:   vm.state.SelectedIndex,
		Phase:           vm.controller.Phase(),
		HasSearched:     vm.controller.HasSearched(),
		LastQuery:       vm.controller.LastQuery(),
		StatusMessage:   vm.controller.Status(),
		TextInput:       vm.textInput.Value(),
		InputMode:       modeName,
		Query:           vm.controller.Query(),
		ShowHelp:        vm.showHelp,
		QuickQueries:    vm.config.QuickQueries,
	}
}
