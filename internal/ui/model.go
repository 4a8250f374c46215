package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"matchscout/internal/config"
	"matchscout/internal/eventbus"
	"matchscout/internal/matchsvc"
	"matchscout/internal/ui/input"
	inputtypes "matchscout/internal/ui/input/types"
	"matchscout/internal/ui/services/search"
	"matchscout/internal/ui/state"
	"matchscout/internal/ui/viewmodels"
	"matchscout/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	state      *state.AppState   // presentation state around the result list
	controller *search.Controller // request lifecycle owner
	client     *matchsvc.Client

	// UI-specific state not in AppState
	width    int
	height   int
	showHelp bool

	// Handlers
	inputHandler *input.Handler        // input handling
	viewModel    *viewmodels.ViewModel // view model for rendering
	renderer     *views.Renderer       // view renderer
	details      *DetailsOps           // details pager handler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, bus eventbus.EventBus, client *matchsvc.Client) *Model {
	appState := state.NewAppState()
	controller := search.NewController(bus)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		controller:   controller,
		client:       client,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowProvenance),
		details:      NewDetailsOps(),
	}

	// Create view model with a placeholder text input (actual one is in input handler)
	placeholderTextInput := textinput.New()
	m.viewModel = viewmodels.NewViewModel(appState, controller, cfg, placeholderTextInput)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.details != nil {
		m.details.SetProgram(p)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.ViewportHeight = msg.Height - 10
		if m.state.ViewportHeight < 5 {
			m.state.ViewportHeight = 5
		}

	case tickMsg:
		// Keep the spinner animating while a request is outstanding
		if m.controller.IsLoading() {
			return m, m.tick()
		}

	case searchResultMsg:
		// Stale responses are rejected inside Apply
		if m.controller.Apply(msg.seq, msg.matches, msg.err) {
			m.state.SetMatches(m.controller.Matches())
		}

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Details pager failed for record %s: %v", msg.recordID, msg.err)
		}

	case EventMsg:
		log.Printf("UI received event: %s", msg.Event.Type())

	case tea.KeyMsg:
		// Help popup swallows keys until dismissed
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State:        m.state,
			Controller:   m.controller,
			QuickQueries: m.config.QuickQueries,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleDisclosureAction:
		if rec := m.state.SelectedRecord(); rec != nil {
			m.state.ToggleDisclosure(rec.ID)
		}

	case inputtypes.OpenDetailsAction:
		return m.openDetails()

	case inputtypes.UpdateTextAction:
		m.controller.ChangeQuery(a.Text)

	case inputtypes.SubmitQueryAction:
		// The submitted text is authoritative; ChangeQuery would
		// silently drop it if a request were still in flight and the
		// new request would resend the stale query
		m.controller.SetQuery(a.Text)
		return m.submitSearch()

	case inputtypes.QuickQueryAction:
		if a.Index >= 0 && a.Index < len(m.config.QuickQueries) {
			m.controller.SetQuery(m.config.QuickQueries[a.Index])
			return m.submitSearch()
		}

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// navigate moves the selection within the result list
func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.MoveSelection(-1)
	case "down":
		m.state.MoveSelection(1)
	case "pageup":
		m.state.MoveSelection(-5)
	case "pagedown":
		m.state.MoveSelection(5)
	case "home":
		m.state.MoveSelection(-len(m.state.Matches))
	case "end":
		m.state.MoveSelection(len(m.state.Matches))
	}
}

// submitSearch validates the query and issues at most one request.
// The result set is always cleared on submit; the returned command
// carries the request generation so a stale response can be discarded.
func (m *Model) submitSearch() tea.Cmd {
	seq, ok := m.controller.Begin()
	m.state.SetMatches(nil)
	if !ok {
		return nil
	}

	query := m.controller.LastQuery()
	client := m.client
	timeout := m.config.Timeout()

	request := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		matches, err := client.Search(ctx, query)
		return searchResultMsg{seq: seq, matches: matches, err: err}
	}

	return tea.Batch(m.tick(), request)
}

// openDetails shows the selected record's full details in the pager
func (m *Model) openDetails() tea.Cmd {
	rec := m.state.SelectedRecord()
	if rec == nil {
		return nil
	}

	content := views.NewRecordRenderer(views.NewStyles(), m.config.UISettings.ShowProvenance).FullText(rec)
	recordID := rec.ID
	details := m.details

	return func() tea.Msg {
		err := details.ShowInPager(content)
		return pagerMsg{recordID: recordID, err: err}
	}
}

// tick schedules the next spinner frame
func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetShowHelp(m.showHelp)

	if m.inputHandler.CurrentMode() == inputtypes.ModeQuery {
		m.viewModel.SetInputMode(viewmodels.InputModeQuery)
	} else {
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	state := m.viewModel.BuildViewState()
	return m.renderer.Render(state)
}
