package chat

import (
	"github.com/gin-gonic/gin"
)

// registers chat routes; middleware runs before the handler (rate limiting)
func RegisterRoutes(router gin.IRoutes, chatter Chatter, middleware ...gin.HandlerFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(middleware)+1)
	handlers = append(handlers, middleware...)
	handlers = append(handlers, Handler(chatter))

	router.POST("/chat", handlers...)
}
