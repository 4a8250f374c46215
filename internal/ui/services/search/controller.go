package search

import (
	"fmt"
	"log"
	"strings"

	"matchscout/internal/domain"
	"matchscout/internal/eventbus"
)

// Controller mediates one search request at a time and derives a single
// unambiguous status message for the view layer.
type Controller struct {
	state State
	bus   eventbus.EventBus
	seq   uint64 // generation of the latest issued request
}

// NewController creates a new search controller
func NewController(bus eventbus.EventBus) *Controller {
	return &Controller{
		state: State{Phase: domain.PhaseIdle},
		bus:   bus,
	}
}

// ChangeQuery updates the query text. Edits are rejected while a request
// is loading so the submit path cannot fire twice from the same trigger;
// the sequence guard in Apply remains the authoritative protection.
func (c *Controller) ChangeQuery(text string) bool {
	if c.state.Phase == domain.PhaseLoading {
		return false
	}
	c.state.Query = text
	return true
}

// SetQuery replaces the query text unconditionally (quick queries)
func (c *Controller) SetQuery(text string) {
	c.state.Query = text
}

// Begin validates the current query and transitions into Loading.
// It returns the generation number the caller must tag the outbound
// request with, and false when no request should be issued.
func (c *Controller) Begin() (uint64, bool) {
	c.state.Phase = domain.PhaseValidating
	c.state.HasSearched = true
	c.state.LastQuery = c.state.Query
	c.state.Matches = nil

	if strings.TrimSpace(c.state.Query) == "" {
		c.state.Phase = domain.PhaseError
		c.state.ErrMessage = "empty query"
		if c.bus != nil {
			c.bus.Publish(eventbus.SearchRejectedEvent{Query: c.state.Query, Reason: "empty query"})
		}
		return 0, false
	}

	c.state.ErrMessage = ""
	c.state.Phase = domain.PhaseLoading
	c.seq++

	if c.bus != nil {
		c.bus.Publish(eventbus.SearchStartedEvent{Query: c.state.Query, Seq: c.seq})
	}

	return c.seq, true
}

// Apply applies the outcome of the request tagged with seq. Responses
// belonging to a superseded request are discarded so the most recent
// submit always wins regardless of arrival order. Returns false when
// the response was stale and nothing changed.
func (c *Controller) Apply(seq uint64, matches []domain.MatchRecord, err error) bool {
	if seq != c.seq {
		log.Printf("Discarding stale search response (seq %d, latest %d)", seq, c.seq)
		return false
	}

	if err != nil {
		c.state.Phase = domain.PhaseError
		c.state.ErrMessage = err.Error()
		c.state.Matches = nil
		if c.bus != nil {
			c.bus.Publish(eventbus.SearchFailedEvent{Query: c.state.LastQuery, Seq: seq, Message: c.state.ErrMessage})
		}
		return true
	}

	c.state.Phase = domain.PhaseSuccess
	c.state.ErrMessage = ""
	c.state.Matches = matches
	if c.bus != nil {
		c.bus.Publish(eventbus.SearchSucceededEvent{Query: c.state.LastQuery, Seq: seq, MatchCount: len(matches)})
	}
	return true
}

// Status derives the single status message from current state
func (c *Controller) Status() string {
	return DeriveStatus(c.state)
}

// DeriveStatus is a pure function of the lifecycle state. Strict
// precedence, first match wins: error, loading, empty result after a
// search, never searched, nothing. An error always beats a stale
// loading flag; loading always beats a stale empty-result message.
func DeriveStatus(s State) string {
	switch {
	case s.ErrMessage != "":
		return fmt.Sprintf("Error: %s", s.ErrMessage)
	case s.Phase == domain.PhaseLoading:
		return fmt.Sprintf("Searching for %q...", s.LastQuery)
	case s.HasSearched && len(s.Matches) == 0:
		return fmt.Sprintf("No matches for %q", s.LastQuery)
	case !s.HasSearched:
		return "Enter a query describing your ideal match, or pick a quick query"
	default:
		return ""
	}
}

// Snapshot returns a read-only projection for the view layer
func (c *Controller) Snapshot() Snapshot {
	matches := make([]domain.MatchRecord, len(c.state.Matches))
	copy(matches, c.state.Matches)
	return Snapshot{
		Query:         c.state.Query,
		Phase:         c.state.Phase,
		StatusMessage: c.Status(),
		Matches:       matches,
	}
}

// Query returns the current query text
func (c *Controller) Query() string { return c.state.Query }

// LastQuery returns the query of the most recent submit
func (c *Controller) LastQuery() string { return c.state.LastQuery }

// Phase returns the current lifecycle phase
func (c *Controller) Phase() domain.SearchPhase { return c.state.Phase }

// IsLoading reports whether a request is outstanding
func (c *Controller) IsLoading() bool { return c.state.Phase == domain.PhaseLoading }

// HasSearched reports whether any submit has occurred
func (c *Controller) HasSearched() bool { return c.state.HasSearched }

// Matches returns the current result set in service order
func (c *Controller) Matches() []domain.MatchRecord { return c.state.Matches }

// ErrMessage returns the current error message, empty when none
func (c *Controller) ErrMessage() string { return c.state.ErrMessage }
