package characters

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/internal/characters"
)

func RegisterRoutes(router gin.IRoutes, table *characters.Table) {
	router.GET("/characters", ListHandler(table))
}
