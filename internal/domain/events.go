package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchRejected  EventType = "SearchRejected"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a search request goes out
type SearchStartedEvent struct {
	Query string
	Seq   uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSucceededEvent is emitted when a search response is applied
type SearchSucceededEvent struct {
	Query      string
	Seq        uint64
	MatchCount int
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when a search request fails
type SearchFailedEvent struct {
	Query   string
	Seq     uint64
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchRejectedEvent is emitted when a submit is refused before any
// request is issued (empty or whitespace-only query)
type SearchRejectedEvent struct {
	Query  string
	Reason string
}

func (e SearchRejectedEvent) Type() EventType { return EventSearchRejected }

// ErrorEvent is emitted when an error occurs outside the search lifecycle
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	Endpoint     string
	QuickQueries []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
