package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/mahabharata/server/internal/logger"
	"golang.org/x/time/rate"
)

var (
	ErrNoProviders = errors.New("no generation provider configured")
	ErrEmptyOutput = errors.New("provider returned empty text")
)

type entry struct {
	provider Provider
	limiter  *rate.Limiter
}

// tries providers in order until one returns text
type Gateway struct {
	entries []entry
	cfg     GatewayConfig
}

func NewGateway(providers []Provider, cfg GatewayConfig) *Gateway {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	entries := make([]entry, 0, len(providers))
	for _, p := range providers {
		if p == nil {
			continue
		}

		e := entry{provider: p}
		if cfg.RateLimit > 0 {
			e.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
		}

		entries = append(entries, e)
	}

	return &Gateway{entries: entries, cfg: cfg}
}

// names of the configured providers in the order they are tried
func (g *Gateway) Providers() []string {
	names := make([]string, len(g.entries))
	for i, e := range g.entries {
		names[i] = e.provider.Name()
	}

	return names
}

// generates text for prompt. never fails: when no provider succeeds the
// returned string explains what went wrong.
func (g *Gateway) Generate(ctx context.Context, prompt string) string {
	res, err := g.Attempt(ctx, prompt)
	if err != nil {
		return diagnostic(res.Failures)
	}

	return res.Text
}

// tries each provider once, in order. the error is ErrNoProviders when none
// are configured, or a joined error of every failure.
func (g *Gateway) Attempt(ctx context.Context, prompt string) (Result, error) {
	var res Result

	if len(g.entries) == 0 {
		return res, ErrNoProviders
	}

	req := Request{
		System:      g.cfg.System,
		Prompt:      prompt,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	log := logger.FromContext(ctx)

	for _, e := range g.entries {
		text, err := g.call(ctx, e, req)
		if err == nil {
			res.Text = text
			res.Provider = e.provider.Name()

			return res, nil
		}

		log.Warn("generation provider failed",
			"provider", e.provider.Name(),
			"error", err,
		)

		res.Failures = append(res.Failures, Failure{Provider: e.provider.Name(), Err: err})
	}

	errs := make([]error, len(res.Failures))
	for i, f := range res.Failures {
		errs[i] = fmt.Errorf("%s: %w", f.Provider, f.Err)
	}

	return res, errors.Join(errs...)
}

// single attempt with rate limit, timeout and panic recovery
func (g *Gateway) call(ctx context.Context, e entry, req Request) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}
	}

	text, err = e.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyOutput
	}

	return text, nil
}
