package input

import (
	"matchscout/internal/ui/services/search"
	"matchscout/internal/ui/state"
)

// ModelContext adapts the model's state to the input context interface
type ModelContext struct {
	State        *state.AppState
	Controller   *search.Controller
	QuickQueries []string
}

func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

func (c *ModelContext) TotalItems() int {
	return len(c.State.Matches)
}

func (c *ModelContext) SelectedRecordID() string {
	if rec := c.State.SelectedRecord(); rec != nil {
		return rec.ID
	}
	return ""
}

func (c *ModelContext) IsLoading() bool {
	return c.Controller.IsLoading()
}

func (c *ModelContext) QuickQueryCount() int {
	return len(c.QuickQueries)
}

func (c *ModelContext) Query() string {
	return c.Controller.Query()
}
