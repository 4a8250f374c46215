package search

import "matchscout/internal/domain"

// State holds the request lifecycle state owned by the controller
type State struct {
	Query       string               // current editable query text
	LastQuery   string               // query of the most recent submit
	Phase       domain.SearchPhase   // single active lifecycle phase
	HasSearched bool                 // true once any submit has occurred, never resets
	Matches     []domain.MatchRecord // current result set, service order
	ErrMessage  string               // user-visible error, empty when none
}

// Snapshot is a read-only projection handed to the view layer
type Snapshot struct {
	Query         string
	Phase         domain.SearchPhase
	StatusMessage string
	Matches       []domain.MatchRecord
}
