package characters

// persona used when answering in character mode
type Profile struct {
	Name          string   `json:"-" yaml:"-"`
	PersonaPrompt string   `json:"persona_prompt" yaml:"persona_prompt"`
	Traits        []string `json:"traits" yaml:"traits"`
	Summary       string   `json:"summary" yaml:"summary"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// ordered, read-only set of profiles keyed by name
type Table struct {
	profiles []Profile
	byName   map[string]int
	builtin  bool
}

// short label shown in character pickers
func (p Profile) Label() string {
	if p.Description != "" {
		return p.Description
	}

	return p.Summary
}
