package setup

type SetupState struct {
	EnvVars map[string]string
}

func NewSetupState() *SetupState {
	return &SetupState{
		EnvVars: make(map[string]string),
	}
}
