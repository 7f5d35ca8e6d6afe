package llm

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultMaxTokens = 512
	defaultTimeout   = 30 * time.Second

	togetherBaseURL = "https://api.together.xyz/v1"

	noProvidersMessage = "No AI service is available. Please check your API configuration."
)

// system instruction sent to providers that accept one
func SystemPrompt(corpusTitle string) string {
	return fmt.Sprintf("You are an expert on the %s. Provide accurate, helpful responses based on the epic. "+
		"When responding as a character, stay true to their personality and perspective.", corpusTitle)
}

// user-facing text returned when every provider failed
func diagnostic(failures []Failure) string {
	if len(failures) == 0 {
		return noProvidersMessage
	}

	if len(failures) == 1 {
		f := failures[0]

		// together is the primary and keeps the unnamed wording
		if f.Provider == ProviderTogether {
			return fmt.Sprintf("I apologize, but I'm having trouble accessing the AI service. Error: %v", f.Err)
		}

		return fmt.Sprintf("I apologize, but I'm having trouble accessing the %s AI service. Error: %v",
			displayName(f.Provider), f.Err)
	}

	parts := make([]string, len(failures))
	for i, f := range failures {
		parts[i] = fmt.Sprintf("%s: %v", displayName(f.Provider), f.Err)
	}

	return "I apologize, but I'm having trouble accessing the AI services. Errors: " + strings.Join(parts, ", ")
}

func displayName(provider string) string {
	switch provider {
	case ProviderTogether:
		return "Together"
	case ProviderCohere:
		return "Cohere"
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return provider
	}
}
