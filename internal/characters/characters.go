package characters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/mahabharata/server/internal/logger"
	"gopkg.in/yaml.v3"
)

var ErrNoProfiles = errors.New("no character profiles defined")

// the seven profiles shipped with the server
func Builtin() *Table {
	t, _ := newTable(builtinProfiles)
	t.builtin = true

	return t
}

// reads profiles from a JSON or YAML file (chosen by extension), keeping file order
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoProfiles)
	}

	var profiles []Profile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		profiles, err = decodeYAML(data)
	default:
		profiles, err = decodeJSON(data)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return newTable(profiles)
}

// loads profiles from path, falling back to the built-in table when the file
// is missing, empty or invalid
func LoadOrDefault(path string) *Table {
	if path == "" {
		return Builtin()
	}

	t, err := Load(path)
	if err != nil {
		logger.Warn("could not load character profiles, using built-in profiles",
			"path", path,
			"error", err,
		)

		return Builtin()
	}

	logger.Info("loaded character profiles", "path", path, "count", t.Len())

	return t
}

// finds a profile by exact name, then case-insensitively
func (t *Table) Lookup(name string) (Profile, bool) {
	if t == nil || name == "" {
		return Profile{}, false
	}

	if i, ok := t.byName[name]; ok {
		return t.profiles[i], true
	}

	for _, p := range t.profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return Profile{}, false
}

// profiles in their original order
func (t *Table) Profiles() []Profile {
	if t == nil {
		return nil
	}

	out := make([]Profile, len(t.profiles))
	copy(out, t.profiles)

	return out
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.profiles)
}

// reports whether the table holds the built-in profiles
func (t *Table) IsBuiltin() bool {
	return t != nil && t.builtin
}

func newTable(profiles []Profile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	t := &Table{
		profiles: make([]Profile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}

	for _, p := range profiles {
		if p.Name == "" {
			return nil, errors.New("profile with empty name")
		}

		if p.PersonaPrompt == "" {
			return nil, fmt.Errorf("profile %q has no persona_prompt", p.Name)
		}

		if _, dup := t.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate profile %q", p.Name)
		}

		t.byName[p.Name] = len(t.profiles)
		t.profiles = append(t.profiles, p)
	}

	return t, nil
}

// decodes a {"Name": {...}, ...} object without losing key order
func decodeJSON(data []byte) ([]Profile, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object keyed by character name")
	}

	var profiles []Profile

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", keyTok)
		}

		var p Profile
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}

		p.Name = name
		profiles = append(profiles, p)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// decodes a YAML mapping keyed by character name, keeping key order
func decodeYAML(data []byte) ([]Profile, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("expected a YAML mapping keyed by character name")
	}

	mapping := root.Content[0]
	profiles := make([]Profile, 0, len(mapping.Content)/2)

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value

		var p Profile
		if err := mapping.Content[i+1].Decode(&p); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}

		p.Name = name
		profiles = append(profiles, p)
	}

	return profiles, nil
}
