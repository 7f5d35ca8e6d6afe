package chat

import "codeberg.org/mahabharata/server/internal/agent"

// Request represents the request body for a chat turn.
// message must be present but may be empty.
type Request struct {
	Message   *string `json:"message" binding:"required"`
	Mode      string  `json:"mode" binding:"required,oneof=ai character"`
	Character *string `json:"character"`
	SessionID string  `json:"session_id" binding:"required"`
}

// Response represents the answer to a chat turn
type Response = agent.ChatResponse
