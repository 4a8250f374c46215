package domain

// MatchRecord represents one ranked candidate returned by the matching service
type MatchRecord struct {
	ID               string      `json:"id"`
	FounderName      string      `json:"founder_name"`
	Role             string      `json:"role"`
	Company          string      `json:"company"`
	Location         string      `json:"location"`
	MatchExplanation string      `json:"match_explanation"`
	Provenance       Provenance  `json:"provenance"`
	FullDetails      FullDetails `json:"full_details"`
}

// Provenance describes which profile fields drove the match
type Provenance struct {
	MatchedOnFields string `json:"matched_on_fields"`
}

// FullDetails holds the extended profile shown when a record is expanded
type FullDetails struct {
	Idea     string `json:"idea"`
	About    string `json:"about"`
	Stage    string `json:"stage"`
	Keywords string `json:"keywords"`
	LinkedIn string `json:"linked_in"`
	Notes    string `json:"notes,omitempty"`
}

// SearchResponse is the wire shape of a successful service reply.
// A missing matches field means an empty result set, not an error.
type SearchResponse struct {
	Matches []MatchRecord `json:"matches"`
}

// SearchPhase represents the single active state of the request lifecycle
type SearchPhase int

const (
	PhaseIdle SearchPhase = iota
	PhaseValidating
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// String returns a human-readable phase name
func (p SearchPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}
