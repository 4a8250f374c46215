package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitQueryAction struct {
	Text string
}

func (a SubmitQueryAction) Type() string { return "submit_query" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Record actions
type ToggleDisclosureAction struct{}

func (a ToggleDisclosureAction) Type() string { return "toggle_disclosure" }

type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

// QuickQueryAction fills the query from the configured quick queries
// and submits it immediately
type QuickQueryAction struct {
	Index int
}

func (a QuickQueryAction) Type() string { return "quick_query" }

// Misc actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
