package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"matchscout/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	ListHeight      int // lines available for the record list
	Matches         []domain.MatchRecord
	ExpandedRecords map[string]bool
	SelectedIndex   int
	Phase           domain.SearchPhase
	HasSearched     bool
	LastQuery       string
	StatusMessage   string
	TextInput       string
	InputMode       string
	Query           string
	ShowHelp        bool
	QuickQueries    []string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	recordRender *RecordRenderer
	windowStart  int // first visible line of the record list
}

// NewRenderer creates a new renderer
func NewRenderer(showProvenance bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		recordRender: NewRecordRenderer(styles, showProvenance),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderQueryLine(state))
	content.WriteString("\n")

	// Single status line, strict precedence already applied upstream
	if state.StatusMessage != "" {
		content.WriteString(r.renderStatus(state))
		content.WriteString("\n")
	}

	if state.Phase == domain.PhaseSuccess && len(state.Matches) > 0 {
		content.WriteString(r.renderResultsHeader(state))
		content.WriteString("\n")
		content.WriteString(r.renderRecordList(state))
	}

	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	main := content.String()

	if state.ShowHelp {
		return r.renderHelpOverlay(state)
	}

	return main
}

// renderTitleLine renders the logo with a right-aligned loading spinner
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("matchscout")

	if state.Phase != domain.PhaseLoading {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	right := r.styles.Dim.Render(fmt.Sprintf("%s Searching", spinner[frame]))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderQueryLine renders the query input, or the last submitted query
// when not editing
func (r *Renderer) renderQueryLine(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")

	if state.InputMode == "query" {
		return prompt + r.styles.QueryText.Render(state.TextInput) + "█"
	}

	text := state.Query
	if text == "" {
		text = r.styles.Dim.Render("press / to enter a query")
		return prompt + text
	}
	return prompt + r.styles.QueryText.Render(text)
}

// renderStatus styles the status line according to the phase behind it
func (r *Renderer) renderStatus(state ViewState) string {
	msg := state.StatusMessage
	switch {
	case state.Phase == domain.PhaseError:
		return r.styles.StatusError.Render(msg)
	case state.Phase == domain.PhaseLoading:
		return r.styles.StatusLoading.Render(msg)
	case state.HasSearched && len(state.Matches) == 0:
		return r.styles.StatusWarning.Render(msg)
	default:
		return r.styles.Status.Render(msg)
	}
}

// renderResultsHeader renders the success banner above the cards
func (r *Renderer) renderResultsHeader(state ViewState) string {
	n := len(state.Matches)
	plural := "es"
	if n == 1 {
		plural = ""
	}
	banner := r.styles.StatusSuccess.Render(fmt.Sprintf("Found %d match%s for %q", n, plural, state.LastQuery))

	width := state.Width
	if width <= 0 {
		width = 80
	}
	divider := r.styles.Divider.Render(strings.Repeat("─", min(width-4, 76)))
	return banner + "\n" + divider
}

// renderRecordList renders the card list, windowed so the selected card
// stays visible
func (r *Renderer) renderRecordList(state ViewState) string {
	var lines []string
	selStart, selEnd := 0, 0

	for i := range state.Matches {
		rec := &state.Matches[i]
		isSelected := i == state.SelectedIndex
		isExpanded := state.ExpandedRecords[rec.ID]

		cardLines := r.recordRender.RenderRecord(rec, isSelected, isExpanded, state.Width)
		if isSelected {
			selStart = len(lines)
			selEnd = selStart + len(cardLines) - 1
		}
		lines = append(lines, cardLines...)
	}

	height := state.ListHeight
	if height < 5 {
		height = 5
	}
	if len(lines) <= height {
		r.windowStart = 0
		return strings.Join(lines, "\n")
	}

	// Keep the selected card inside the window, preserving scroll
	// position between frames where possible
	if selStart < r.windowStart {
		r.windowStart = selStart
	}
	if selEnd >= r.windowStart+height {
		r.windowStart = selEnd - height + 1
	}
	if r.windowStart < 0 {
		r.windowStart = 0
	}
	if r.windowStart > len(lines)-height {
		r.windowStart = len(lines) - height
	}

	visible := lines[r.windowStart : r.windowStart+height]
	out := strings.Join(visible, "\n")

	if r.windowStart+height < len(lines) {
		out += "\n" + r.styles.Dim.Render("  ...")
	}
	return out
}

// renderFooter renders the key hints line
func (r *Renderer) renderFooter(state ViewState) string {
	if state.InputMode == "query" {
		return r.styles.Help.Render("enter: search • esc: cancel")
	}
	hints := "/: query • enter/z: toggle details • o: open in pager • j/k: move • ?: help • q: quit"
	if len(state.QuickQueries) > 0 {
		hints = fmt.Sprintf("1-%d: quick query • %s", len(state.QuickQueries), hints)
	}
	return r.styles.Help.Render(hints)
}

// renderHelpOverlay renders the help popup centered on screen
func (r *Renderer) renderHelpOverlay(state ViewState) string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("matchscout help"))
	help.WriteString("\n\n")

	help.WriteString(r.styles.Section.Render("Searching"))
	help.WriteString("\n")
	help.WriteString("  /, s       edit the query\n")
	help.WriteString("  enter      submit (while editing)\n")
	for i, q := range state.QuickQueries {
		help.WriteString(fmt.Sprintf("  %d          %s\n", i+1, truncate(q, 50)))
	}
	help.WriteString("\n")

	help.WriteString(r.styles.Section.Render("Results"))
	help.WriteString("\n")
	help.WriteString("  j/k, ↑/↓   move between records\n")
	help.WriteString("  enter, z   expand/collapse details\n")
	help.WriteString("  o          open record in pager\n")
	help.WriteString("  g/G        first/last record\n")
	help.WriteString("\n")

	help.WriteString(r.styles.Section.Render("Other"))
	help.WriteString("\n")
	help.WriteString("  ?          toggle this help\n")
	help.WriteString("  q          quit")

	box := r.styles.HelpBox.Render(help.String())

	width := state.Width
	height := state.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// truncate cuts s to at most n runes, never splitting a multibyte rune
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
