package setup

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/beediary/internal/config"
	"github.com/sandevgo/beediary/pkg/env"
)

// envFile mirrors the variables the wizard collects; tags drive the
// .env serialization.
type envFile struct {
	APIKey    string `env:"BEE_API_KEY"`
	Endpoint  string `env:"BEE_API_ENDPOINT"`
	TargetDir string `env:"BEEDIARY_TARGET_DIR"`
	Timezone  string `env:"BEEDIARY_TIMEZONE"`
}

// SaveEnvStep writes the collected configuration to .env file
type SaveEnvStep struct {
	err      error
	saved    bool
	backedUp bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *SetupState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	path := config.GetRuntimePath()
	if err := os.MkdirAll(path, 0755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}

	// Re-running setup rotates the config; the previous file moves to
	// .env.bak instead of blocking the wizard.
	envPath := filepath.Join(path, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := os.Rename(envPath, envPath+".bak"); err != nil {
			s.err = fmt.Errorf("failed to back up existing .env: %w", err)
			return s, nil
		}
		s.backedUp = true
	}

	content, err := env.MarshalEnv(&envFile{
		APIKey:    state.EnvVars["BEE_API_KEY"],
		Endpoint:  state.EnvVars["BEE_API_ENDPOINT"],
		TargetDir: state.EnvVars["BEEDIARY_TARGET_DIR"],
		Timezone:  state.EnvVars["BEEDIARY_TIMEZONE"],
	})
	if err != nil {
		s.err = err
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil // Signal completion
}

func (s *SaveEnvStep) View(state *SetupState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		if s.backedUp {
			return "Configuration saved successfully! Previous config kept as .env.bak\n"
		}
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}
