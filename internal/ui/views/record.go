package views

import (
	"fmt"
	"strings"

	"matchscout/internal/domain"
)

// RecordRenderer handles rendering of match record cards
type RecordRenderer struct {
	styles         *Styles
	showProvenance bool
}

// NewRecordRenderer creates a new record renderer
func NewRecordRenderer(styles *Styles, showProvenance bool) *RecordRenderer {
	return &RecordRenderer{
		styles:         styles,
		showProvenance: showProvenance,
	}
}

// RenderRecord renders one match card. Collapsed cards show the header
// and match reason; expanded cards add the full details.
func (r *RecordRenderer) RenderRecord(rec *domain.MatchRecord, isSelected, isExpanded bool, width int) []string {
	if rec == nil {
		return nil
	}

	marker := "▸"
	if isExpanded {
		marker = "▾"
	}

	cursor := "  "
	if isSelected {
		cursor = r.styles.Prompt.Render("> ")
	}

	header := fmt.Sprintf("%s%s %s %s %s",
		cursor,
		marker,
		r.styles.Name.Render(rec.FounderName),
		r.styles.Dim.Render("–"),
		r.styles.Role.Render(rec.Role),
	)

	lines := []string{
		header,
		fmt.Sprintf("    %s %s %s",
			r.styles.Company.Render(rec.Company),
			r.styles.Dim.Render("•"),
			r.styles.Location.Render(rec.Location),
		),
	}

	if rec.MatchExplanation != "" {
		for _, l := range wrapIndented("Match reason: ", rec.MatchExplanation, width) {
			lines = append(lines, "    "+r.styles.MatchReason.Render(l))
		}
	}

	if isExpanded {
		lines = append(lines, r.renderDetails(rec, width)...)
	}

	lines = append(lines, "")
	return lines
}

// renderDetails renders the expanded detail section of a card
func (r *RecordRenderer) renderDetails(rec *domain.MatchRecord, width int) []string {
	d := rec.FullDetails
	var lines []string

	addField := func(label, value string) {
		if value == "" {
			return
		}
		lines = append(lines, fmt.Sprintf("    %s %s",
			r.styles.Section.Render(label+":"),
			r.styles.Detail.Render(value),
		))
	}

	addField("Idea", d.Idea)
	addField("About", d.About)
	addField("Stage", d.Stage)
	addField("Keywords", d.Keywords)

	if r.showProvenance && rec.Provenance.MatchedOnFields != "" {
		lines = append(lines, fmt.Sprintf("    %s %s",
			r.styles.Section.Render("Matched on:"),
			r.styles.Dim.Render(rec.Provenance.MatchedOnFields),
		))
	}

	if d.LinkedIn != "" {
		lines = append(lines, fmt.Sprintf("    %s %s",
			r.styles.Section.Render("LinkedIn:"),
			r.styles.Link.Render(d.LinkedIn),
		))
	}

	// Notes are optional; absent notes suppress the line entirely
	if d.Notes != "" {
		lines = append(lines, fmt.Sprintf("    %s %s",
			r.styles.Section.Render("Notes:"),
			r.styles.Notes.Render(d.Notes),
		))
	}

	return lines
}

// FullText returns the plain-text rendering of a record for the pager
func (r *RecordRenderer) FullText(rec *domain.MatchRecord) string {
	var b strings.Builder
	d := rec.FullDetails

	fmt.Fprintf(&b, "%s – %s\n", rec.FounderName, rec.Role)
	fmt.Fprintf(&b, "%s • %s\n\n", rec.Company, rec.Location)

	if rec.MatchExplanation != "" {
		fmt.Fprintf(&b, "Match reason\n  %s\n\n", rec.MatchExplanation)
	}
	if d.Idea != "" {
		fmt.Fprintf(&b, "Idea\n  %s\n\n", d.Idea)
	}
	if d.About != "" {
		fmt.Fprintf(&b, "About\n  %s\n\n", d.About)
	}
	if d.Stage != "" {
		fmt.Fprintf(&b, "Stage:    %s\n", d.Stage)
	}
	if d.Keywords != "" {
		fmt.Fprintf(&b, "Keywords: %s\n", d.Keywords)
	}
	if rec.Provenance.MatchedOnFields != "" {
		fmt.Fprintf(&b, "Matched on: %s\n", rec.Provenance.MatchedOnFields)
	}
	if d.LinkedIn != "" {
		fmt.Fprintf(&b, "LinkedIn: %s\n", d.LinkedIn)
	}
	if d.Notes != "" {
		fmt.Fprintf(&b, "\nNotes\n  %s\n", d.Notes)
	}

	return b.String()
}

// wrapIndented wraps label+text onto continuation lines so a card never
// exceeds the terminal width. Continuation lines align under the text.
func wrapIndented(label, text string, width int) []string {
	avail := width - 8
	if avail <= 20 || len(label)+len(text) <= avail {
		return []string{label + text}
	}

	indent := strings.Repeat(" ", len(label))
	var lines []string
	cur := label
	onLabel := true
	for _, w := range strings.Fields(text) {
		if !onLabel && len(cur)+len(w)+1 > avail {
			lines = append(lines, cur)
			cur = indent + w
			continue
		}
		if onLabel {
			cur += w
			onLabel = false
		} else {
			cur += " " + w
		}
	}
	lines = append(lines, cur)
	return lines
}
