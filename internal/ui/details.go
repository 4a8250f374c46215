package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// DetailsOps shows a record's full details in the ov pager
type DetailsOps struct {
	program *tea.Program
}

// NewDetailsOps creates a new details pager handler
func NewDetailsOps() *DetailsOps {
	return &DetailsOps{}
}

// SetProgram sets the program reference for terminal management
func (d *DetailsOps) SetProgram(p *tea.Program) {
	d.program = p
}

// ShowInPager releases the terminal, runs ov over the content and
// restores the terminal afterwards
func (d *DetailsOps) ShowInPager(content string) error {
	if d.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := d.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = d.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't write pager content on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
