package setup

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TimezoneStep picks the reference timezone for grouping records into
// days. Conversations around local midnight land on different days
// depending on this, so it matters to people who travel.
type TimezoneStep struct {
	text  textinput.Model
	ready bool
	bad   string
}

func NewTimezoneStep() Step {
	return &TimezoneStep{}
}

func (s *TimezoneStep) Init() tea.Cmd {
	s.text = textinput.New()
	s.text.Focus()
	s.text.CharLimit = 64
	s.text.Width = 40
	s.text.Placeholder = "Local"
	s.ready = true
	return textinput.Blink
}

func (s *TimezoneStep) Update(msg tea.Msg, state *SetupState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.text, cmd = s.text.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			v := s.text.Value()
			if v == "" || v == "Local" {
				return nil, nil
			}
			if _, err := time.LoadLocation(v); err != nil {
				s.bad = v
				s.text.SetValue("")
				return s, cmd
			}
			state.EnvVars["BEEDIARY_TIMEZONE"] = v
			return nil, nil
		}
	}
	return s, cmd
}

func (s *TimezoneStep) View(state *SetupState) string {
	if !s.ready {
		return "Loading..."
	}
	hint := ""
	if s.bad != "" {
		hint = errorStyle.Render(fmt.Sprintf("Unknown timezone %q, try an IANA name like Europe/Warsaw", s.bad)) + "\n\n"
	}
	return fmt.Sprintf("%sWhich timezone are your days in? (IANA name, empty for host timezone)\n\n%s\n\n(press enter to confirm)\n", hint, s.text.View())
}
