package agent

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/retriever"
	"codeberg.org/mahabharata/server/internal/storage"
)

func TestBuildPrompt_QuestionOnly(t *testing.T) {
	got := BuildPrompt(PromptInput{Message: "Who is Vidura?", Mode: ModeAI}, characters.Builtin(), "Mahabharata")

	want := strings.Join([]string{
		"USER QUESTION: Who is Vidura?",
		"",
		"Please provide a helpful and accurate response based on the Mahabharata context provided above. Include source references when possible.",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestBuildPrompt_AllSections(t *testing.T) {
	in := PromptInput{
		Message:   "Why did you fight?",
		History:   []string{"User: hello", "Bot: greetings"},
		Mode:      ModeCharacter,
		Character: "Arjuna",
		Retrieved: []retriever.RetrievedChunk{
			{Metadata: storage.Metadata{Summary: "Arjuna lays down his bow...", PageNumber: 7}},
			{Metadata: storage.Metadata{Text: "Krishna speaks.", PageNumber: 0}},
		},
	}

	got := BuildPrompt(in, characters.Builtin(), "Mahabharata")

	want := strings.Join([]string{
		"CHARACTER PERSONA: Respond as Arjuna: skilled archer, devoted student, conflicted warrior.",
		"CHARACTER TRAITS: Skilled, Devoted, Conflicted, Noble",
		"You must respond in character, staying true to this persona throughout your response.",
		"",
		"CHAT HISTORY:",
		"User: hello",
		"Bot: greetings",
		"",
		"RELEVANT CONTEXT FROM MAHABHARATA:",
		"1. Arjuna lays down his bow... [Source: Page 7]",
		"2. Krishna speaks. [Source: Page Unknown]",
		"",
		"USER QUESTION: Why did you fight?",
		"",
		"Please respond as Arjuna based on the Mahabharata context provided above. Stay in character and provide insights from Arjuna's perspective.",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestBuildPrompt_HistoryWindow(t *testing.T) {
	var history []string
	for i := range 8 {
		history = append(history, fmt.Sprintf("User: message %d", i))
	}

	got := BuildPrompt(PromptInput{Message: "q", History: history}, characters.Builtin(), "Mahabharata")

	for i := range 3 {
		assert.NotContains(t, got, fmt.Sprintf("message %d\n", i))
	}

	assert.Contains(t, got, "CHAT HISTORY:\nUser: message 3\nUser: message 4\nUser: message 5\nUser: message 6\nUser: message 7\n\n")
}

func TestBuildPrompt_UnknownCharacterFallsBack(t *testing.T) {
	table := characters.Builtin()

	unknown := BuildPrompt(PromptInput{Message: "q", Mode: ModeCharacter, Character: "Ravana"}, table, "Mahabharata")
	plain := BuildPrompt(PromptInput{Message: "q", Mode: ModeAI}, table, "Mahabharata")

	assert.Equal(t, plain, unknown)
}

func TestBuildPrompt_TextFallbackTruncates(t *testing.T) {
	long := strings.Repeat("a", 250)

	got := BuildPrompt(PromptInput{
		Message:   "q",
		Retrieved: []retriever.RetrievedChunk{{Metadata: storage.Metadata{Text: long, PageNumber: 3}}},
	}, characters.Builtin(), "Mahabharata")

	assert.Contains(t, got, "1. "+strings.Repeat("a", 200)+"... [Source: Page 3]")
}

func TestBuildPrompt_CorpusTitle(t *testing.T) {
	got := BuildPrompt(PromptInput{
		Message:   "q",
		Retrieved: []retriever.RetrievedChunk{{Metadata: storage.Metadata{Summary: "s", PageNumber: 1}}},
	}, characters.Builtin(), "Ramayana")

	assert.Contains(t, got, "RELEVANT CONTEXT FROM RAMAYANA:")
	assert.Contains(t, got, "based on the Ramayana context provided above")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	in := PromptInput{
		Message:   "q",
		History:   []string{"User: a", "Bot: b"},
		Mode:      ModeCharacter,
		Character: "krishna",
		Retrieved: []retriever.RetrievedChunk{{Metadata: storage.Metadata{Summary: "s", PageNumber: 2}}},
	}

	first := BuildPrompt(in, characters.Builtin(), "Mahabharata")
	second := BuildPrompt(in, characters.Builtin(), "Mahabharata")

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Please respond as Krishna")
}
