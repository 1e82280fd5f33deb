package setup

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// APIKeyStep collects the Bee API key. Input is masked; the key never
// echoes to the terminal.
type APIKeyStep struct {
	input textinput.Model
	ready bool
}

func NewAPIKeyStep() Step {
	return &APIKeyStep{}
}

func (s *APIKeyStep) Init() tea.Cmd {
	s.input = textinput.New()
	s.input.Focus()
	s.input.CharLimit = 255
	s.input.Width = 40
	s.input.EchoMode = textinput.EchoPassword
	s.input.EchoCharacter = '•'
	s.input.Placeholder = "paste your Bee API key"
	s.ready = true
	return textinput.Blink
}

func (s *APIKeyStep) Update(msg tea.Msg, state *SetupState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			// The key must not be empty; stay on this step until it is
			if s.input.Value() == "" {
				return s, cmd
			}
			state.EnvVars["BEE_API_KEY"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *APIKeyStep) View(state *SetupState) string {
	if !s.ready {
		return "Loading..."
	}
	return fmt.Sprintf("Enter your Bee API Key:\n\n%s\n\n(press enter to confirm)\n", s.input.View())
}
