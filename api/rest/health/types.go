package health

import "context"

type Response struct {
	Status  string       `json:"status"`
	Service string       `json:"service"`
	Version string       `json:"version,omitempty"`
	Index   *IndexStatus `json:"index,omitempty"`
}

type IndexStatus struct {
	Available bool   `json:"available"`
	Entries   int    `json:"entries"`
	Error     string `json:"error,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Message string `json:"message"`
}

// anything that can report how many vectors it holds
type IndexCounter interface {
	Count(ctx context.Context) (int, error)
}
