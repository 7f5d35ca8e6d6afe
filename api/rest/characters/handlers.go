package characters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/internal/characters"
)

// ListHandler godoc
// @Summary List characters
// @Description Characters available for character mode, in profile order
// @Tags characters
// @Produce json
// @Success 200 {array} Character
// @Router /characters [get]
func ListHandler(table *characters.Table) gin.HandlerFunc {
	// the table never changes after startup
	list := toCharacters(table.Profiles())

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, list)
	}
}

func toCharacters(profiles []characters.Profile) []Character {
	out := make([]Character, len(profiles))

	for i, p := range profiles {
		out[i] = Character{
			Name:        p.Name,
			Description: p.Label(),
		}
	}

	return out
}
