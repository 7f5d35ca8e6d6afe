package characters

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mahabharata/server/internal/characters"
)

func getCharacters(t *testing.T, table *characters.Table) []Character {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, table)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/characters", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list []Character
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	return list
}

func TestListHandler_Builtin(t *testing.T) {
	list := getCharacters(t, characters.Builtin())

	assert.Equal(t, []Character{
		{Name: "Karna", Description: "Generous warrior"},
		{Name: "Krishna", Description: "Divine guide"},
		{Name: "Arjuna", Description: "Skilled archer"},
		{Name: "Draupadi", Description: "Powerful queen"},
		{Name: "Bhishma", Description: "Grand patriarch"},
		{Name: "Yudhishthira", Description: "King of dharma"},
		{Name: "Duryodhana", Description: "Rival king"},
	}, list)
}

func TestListHandler_FromFileUsesSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	data := `{
		"Vidura": {"persona_prompt": "Respond as Vidura.", "traits": ["Wise"], "summary": "Vidura, the voice of dharma."},
		"Shakuni": {"persona_prompt": "Respond as Shakuni.", "traits": ["Cunning"], "summary": "Shakuni, master of dice."}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	table, err := characters.Load(path)
	require.NoError(t, err)

	list := getCharacters(t, table)

	assert.Equal(t, []Character{
		{Name: "Vidura", Description: "Vidura, the voice of dharma."},
		{Name: "Shakuni", Description: "Shakuni, master of dice."},
	}, list)
}
