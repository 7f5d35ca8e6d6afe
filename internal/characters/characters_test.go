package characters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestBuiltinProfiles(t *testing.T) {
	table := Builtin()

	require.Equal(t, 7, table.Len())
	assert.True(t, table.IsBuiltin())

	names := make([]string, 0, 7)
	for _, p := range table.Profiles() {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"Karna", "Krishna", "Arjuna", "Draupadi", "Bhishma", "Yudhishthira", "Duryodhana"}, names)

	karna, ok := table.Lookup("Karna")
	require.True(t, ok)
	assert.Equal(t, []string{"Generous", "Loyal", "Courageous", "Proud"}, karna.Traits)
	assert.Equal(t, "Generous warrior", karna.Label())
}

func TestLookup(t *testing.T) {
	table := Builtin()

	p, ok := table.Lookup("krishna")
	require.True(t, ok)
	assert.Equal(t, "Krishna", p.Name)

	_, ok = table.Lookup("Ravana")
	assert.False(t, ok)

	_, ok = table.Lookup("")
	assert.False(t, ok)

	var nilTable *Table
	_, ok = nilTable.Lookup("Karna")
	assert.False(t, ok)
}

func TestLoadJSONKeepsOrder(t *testing.T) {
	path := writeFile(t, "profiles.json", `{
		"Vidura": {"persona_prompt": "Respond as Vidura.", "traits": ["Wise", "Truthful"], "summary": "Vidura, the counsellor."},
		"Abhimanyu": {"persona_prompt": "Respond as Abhimanyu.", "traits": ["Brave"], "summary": "Abhimanyu, son of Arjuna."}
	}`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.False(t, table.IsBuiltin())

	profiles := table.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "Vidura", profiles[0].Name)
	assert.Equal(t, "Abhimanyu", profiles[1].Name)

	// without a description the summary is the label
	assert.Equal(t, "Vidura, the counsellor.", profiles[0].Label())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "profiles.yaml", `
Shakuni:
  persona_prompt: "Respond as Shakuni."
  traits: [Cunning, Vengeful]
  summary: "Shakuni, master of dice."
  description: "Master of dice"
Gandhari:
  persona_prompt: "Respond as Gandhari."
  traits: [Devoted]
  summary: "Gandhari, the blindfolded queen."
`)

	table, err := Load(path)
	require.NoError(t, err)

	profiles := table.Profiles()
	require.Len(t, profiles, 2)
	assert.Equal(t, "Shakuni", profiles[0].Name)
	assert.Equal(t, "Master of dice", profiles[0].Label())
	assert.Equal(t, []string{"Cunning", "Vengeful"}, profiles[0].Traits)
	assert.Equal(t, "Gandhari", profiles[1].Name)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"empty file", "p.json", "  \n"},
		{"invalid json", "p.json", `{"Karna": `},
		{"array", "p.json", `[]`},
		{"empty object", "p.json", `{}`},
		{"missing persona", "p.json", `{"Karna": {"traits": []}}`},
		{"yaml sequence", "p.yaml", "- Karna\n- Arjuna\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	assert.True(t, LoadOrDefault(missing).IsBuiltin())

	invalid := writeFile(t, "bad.json", "not json")
	assert.True(t, LoadOrDefault(invalid).IsBuiltin())

	assert.True(t, LoadOrDefault("").IsBuiltin())
}
