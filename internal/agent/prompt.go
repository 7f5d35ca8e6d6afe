package agent

import (
	"fmt"
	"strings"

	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/chunker"
	"codeberg.org/mahabharata/server/internal/document"
)

// history entries included in a prompt
const historyWindow = 5

// assembles the generation prompt. sections appear in a fixed order and only
// when they have content: persona, chat history, retrieved context, the
// question and a closing instruction. same input, same output.
func BuildPrompt(in PromptInput, profiles *characters.Table, corpusTitle string) string {
	var parts []string

	profile, inCharacter := resolveCharacter(in, profiles)

	if inCharacter {
		parts = append(parts,
			"CHARACTER PERSONA: "+profile.PersonaPrompt,
			"CHARACTER TRAITS: "+strings.Join(profile.Traits, ", "),
			"You must respond in character, staying true to this persona throughout your response.",
			"",
		)
	}

	if len(in.History) > 0 {
		start := max(len(in.History)-historyWindow, 0)

		parts = append(parts, "CHAT HISTORY:")
		parts = append(parts, in.History[start:]...)
		parts = append(parts, "")
	}

	if len(in.Retrieved) > 0 {
		parts = append(parts, fmt.Sprintf("RELEVANT CONTEXT FROM %s:", strings.ToUpper(corpusTitle)))

		for i, chunk := range in.Retrieved {
			excerpt := chunk.Summary
			if excerpt == "" {
				excerpt = chunker.Summarize(chunk.Text)
			}

			parts = append(parts, fmt.Sprintf("%d. %s [Source: Page %s]", i+1, excerpt, document.PageLabel(chunk.PageNumber)))
		}

		parts = append(parts, "")
	}

	parts = append(parts, "USER QUESTION: "+in.Message, "")

	if inCharacter {
		parts = append(parts, fmt.Sprintf(
			"Please respond as %s based on the %s context provided above. Stay in character and provide insights from %s's perspective.",
			profile.Name, corpusTitle, profile.Name))
	} else {
		parts = append(parts, fmt.Sprintf(
			"Please provide a helpful and accurate response based on the %s context provided above. Include source references when possible.",
			corpusTitle))
	}

	return strings.Join(parts, "\n")
}

// character mode applies only when the name matches a known profile
func resolveCharacter(in PromptInput, profiles *characters.Table) (characters.Profile, bool) {
	if in.Mode != ModeCharacter {
		return characters.Profile{}, false
	}

	return profiles.Lookup(in.Character)
}
