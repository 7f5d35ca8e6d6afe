package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for chat requests; the server may try several providers
const chatRequestTimeout = 90 * time.Second

// manages HTTP requests to the chat REST API
type ChatClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a chat client for endpoint, or MAHABHARATA_API_ENDPOINT when empty
func NewChatClient(endpoint string) *ChatClient {
	if endpoint == "" {
		endpoint = os.Getenv("MAHABHARATA_API_ENDPOINT")
	}

	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &ChatClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

// sends one chat turn
func (c *ChatClient) Chat(ctx context.Context, message, character, sessionID string) (*ChatReply, error) {
	payload := chatRequest{
		Message:   message,
		Mode:      "ai",
		SessionID: sessionID,
	}

	if character != "" {
		payload.Mode = "character"
		payload.Character = &character
	}

	var reply ChatReply
	if err := c.do(ctx, http.MethodPost, "/chat", payload, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// lists the characters available for character mode
func (c *ChatClient) Characters(ctx context.Context) ([]Character, error) {
	var list []Character
	if err := c.do(ctx, http.MethodGet, "/characters", nil, &list); err != nil {
		return nil, err
	}

	return list, nil
}

func (c *ChatClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader

	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// handle error responses
	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that sends a chat turn
func (c *ChatClient) ChatCmd(message, character, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		reply, err := c.Chat(ctx, message, character, sessionID)
		if err != nil {
			return ChatErrorMsg{message: message, err: err}
		}

		return ChatResponseMsg{message: message, reply: *reply}
	}
}

// returns a tea.Cmd that fetches the character list; failures leave it empty
func (c *ChatClient) CharactersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		list, err := c.Characters(ctx)
		if err != nil {
			return CharactersLoadedMsg{}
		}

		return CharactersLoadedMsg{characters: list}
	}
}

// REST API request/response types

type chatRequest struct {
	Message   string  `json:"message"`
	Mode      string  `json:"mode"`
	Character *string `json:"character"`
	SessionID string  `json:"session_id"`
}

type ChatReply struct {
	Response        string   `json:"response"`
	Character       *string  `json:"character"`
	ConfidenceScore float32  `json:"confidenceScore"`
	Sources         []Source `json:"sources"`
}

type Source struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	IsWebSource bool   `json:"isWebSource"`
	URL         string `json:"url,omitempty"`
}

type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// one line summarising where an answer came from
func formatReplyMetadata(reply ChatReply) string {
	if len(reply.Sources) == 0 {
		return "no passages retrieved"
	}

	pages := make([]string, 0, len(reply.Sources))
	seen := make(map[string]bool, len(reply.Sources))

	for _, s := range reply.Sources {
		if seen[s.Source] {
			continue
		}

		seen[s.Source] = true
		pages = append(pages, s.Source)
	}

	return fmt.Sprintf("confidence: %.2f | sources: %s", reply.ConfidenceScore, strings.Join(pages, ", "))
}
