package ui

import (
	"time"

	"matchscout/internal/domain"
	"matchscout/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the loading spinner
type tickMsg time.Time

// searchResultMsg carries the outcome of the request tagged with seq.
// The sequence number is compared against the latest issued one before
// the result is applied, so a slow response from a superseded request
// can never overwrite a newer state.
type searchResultMsg struct {
	seq     uint64
	matches []domain.MatchRecord
	err     error
}

// pagerMsg contains the result of running the details pager
type pagerMsg struct {
	recordID string
	err      error
}
