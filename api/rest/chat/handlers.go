package chat

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/internal/agent"
	"codeberg.org/mahabharata/server/internal/errors"
	"codeberg.org/mahabharata/server/internal/logger"
)

type Chatter interface {
	Chat(ctx context.Context, req agent.ChatRequest) agent.ChatResponse
}

// Handler godoc
// @Summary Chat about the Mahabharata
// @Description Answers a message grounded in retrieved passages, optionally in a character's voice
// @Tags chat
// @Accept json
// @Produce json
// @Param request body Request true "Chat request"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /chat [post]
func Handler(chatter Chatter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BindError(c, err)
			return
		}

		character := ""
		if req.Character != nil {
			character = *req.Character
		}

		ctx := c.Request.Context()

		logger.FromContext(ctx).Debug("chat request",
			"session_id", req.SessionID,
			"mode", req.Mode,
			"character", character,
		)

		resp := chatter.Chat(ctx, agent.ChatRequest{
			Message:   *req.Message,
			Mode:      req.Mode,
			Character: character,
			SessionID: req.SessionID,
		})

		c.JSON(http.StatusOK, resp)
	}
}
