package state

import (
	"matchscout/internal/domain"
)

// AppState contains the presentation state around the result list
type AppState struct {
	// Result data
	Matches []domain.MatchRecord // current result set, service order

	// Disclosure state, keyed by record ID so reordering cannot
	// cross-contaminate flags between records
	ExpandedRecords map[string]bool

	// Selection state
	SelectedIndex int // currently selected record

	// UI state
	ViewportHeight int // available height for the record list
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Matches:         make([]domain.MatchRecord, 0),
		ExpandedRecords: make(map[string]bool),
		ViewportHeight:  20, // Default
	}
}

// SetMatches replaces the result set wholesale. All disclosure state is
// discarded: the views for the previous records no longer exist, so every
// new record starts collapsed.
func (s *AppState) SetMatches(matches []domain.MatchRecord) {
	s.Matches = matches
	s.ExpandedRecords = make(map[string]bool)
	s.SelectedIndex = 0
}

// ToggleDisclosure flips the expanded flag of one record. Two toggles
// return the record to its original state; no other record is affected.
func (s *AppState) ToggleDisclosure(recordID string) {
	if s.ExpandedRecords[recordID] {
		delete(s.ExpandedRecords, recordID)
	} else {
		s.ExpandedRecords[recordID] = true
	}
}

// IsExpanded reports whether a record is currently expanded
func (s *AppState) IsExpanded(recordID string) bool {
	return s.ExpandedRecords[recordID]
}

// SelectedRecord returns the currently selected record, nil when the
// result set is empty
func (s *AppState) SelectedRecord() *domain.MatchRecord {
	if len(s.Matches) == 0 {
		return nil
	}
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Matches) {
		return nil
	}
	return &s.Matches[s.SelectedIndex]
}

// MoveSelection moves the selection by delta, clamped to the result set
func (s *AppState) MoveSelection(delta int) {
	if len(s.Matches) == 0 {
		s.SelectedIndex = 0
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Matches) {
		s.SelectedIndex = len(s.Matches) - 1
	}
}
