package setup

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TargetDirStep asks where the daily journal files should go. Empty
// keeps the default ("journal" under the runtime directory).
type TargetDirStep struct {
	input textinput.Model
	ready bool
}

func NewTargetDirStep() Step {
	return &TargetDirStep{}
}

func (s *TargetDirStep) Init() tea.Cmd {
	s.input = textinput.New()
	s.input.Focus()
	s.input.CharLimit = 255
	s.input.Width = 40
	s.input.Placeholder = "Optional - press Enter for the default"
	s.ready = true
	return textinput.Blink
}

func (s *TargetDirStep) Update(msg tea.Msg, state *SetupState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if v := s.input.Value(); v != "" {
				state.EnvVars["BEEDIARY_TARGET_DIR"] = v
			}
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TargetDirStep) View(state *SetupState) string {
	if !s.ready {
		return "Loading..."
	}
	return fmt.Sprintf("Where should journal files be written?\n\n%s\n\n(press enter to confirm)\n", s.input.View())
}
