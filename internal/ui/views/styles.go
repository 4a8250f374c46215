package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	Prompt        lipgloss.Style
	QueryText     lipgloss.Style
	Name          lipgloss.Style
	Role          lipgloss.Style
	Company       lipgloss.Style
	Location      lipgloss.Style
	MatchReason   lipgloss.Style
	Section       lipgloss.Style
	Detail        lipgloss.Style
	Notes         lipgloss.Style
	Link          lipgloss.Style
	SelectionBg   lipgloss.Style
	Help          lipgloss.Style
	HelpBox       lipgloss.Style
	Divider       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1).
			MarginBottom(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		QueryText:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Name:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Role:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")), // blue
		Company:       lipgloss.NewStyle().Bold(true),
		Location:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		MatchReason:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Section:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Detail:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Notes:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Help:          lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
