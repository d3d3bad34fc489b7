package usecase

import (
	"fmt"
	"strings"

	"github.com/samueldharshi/reflectra/domain/entities"
)

const chatPersona = "You are a wise, empathetic AI reflection assistant. You help people with personal growth, self-reflection, and decision-making."

const chatInstructions = `Provide a thoughtful, empathetic response that:
1. Acknowledges their message and any relevant context
2. Offers practical, actionable advice
3. Encourages self-reflection and growth
4. Maintains a supportive, conversational tone
5. Keeps the response under 200 words

Respond as if you're having a caring conversation with someone who trusts you with their personal growth journey.`

const voicePersona = "You are a warm AI reflection assistant replying to a spoken message. Answer in two or three short sentences suitable for reading aloud, with one supportive, practical thought."

// BuildChatPrompt assembles the complete text-generation payload for the direct
// chat path: persona, optional reflection history, the quoted user message, and
// the fixed response-shaping instructions. Nothing downstream templates further.
func BuildChatPrompt(message string, history []entities.ReflectionSummary) string {
	var b strings.Builder
	b.WriteString(chatPersona)
	writeHistory(&b, history)
	fmt.Fprintf(&b, "\n\nUser's message: %q\n\n", message)
	b.WriteString(chatInstructions)
	return b.String()
}

// BuildVoicePrompt assembles the short-form payload for the voice flow. Same
// history format as the chat prompt, shorter instruction template.
func BuildVoicePrompt(transcript string, history []entities.ReflectionSummary) string {
	var b strings.Builder
	b.WriteString(voicePersona)
	writeHistory(&b, history)
	fmt.Fprintf(&b, "\n\nUser said: %q", transcript)
	return b.String()
}

func writeHistory(b *strings.Builder, history []entities.ReflectionSummary) {
	if len(history) == 0 {
		return
	}
	b.WriteString("\n\nUser's reflection history:\n")
	for i, reflection := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "Previous reflection: Values: %s, Goals: %s, Struggles: %s",
			joinOrNone(reflection.CoreValues),
			joinOrNone(reflection.LifeGoals),
			joinOrNone(reflection.CurrentStruggles))
	}
	b.WriteString("\n\nUse this context to provide personalized, relevant advice.")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

// VoiceWordLimit caps spoken replies so playback duration stays bounded.
const VoiceWordLimit = 30

// Truncate enforces a hard word cap, appending an ellipsis marker to the final
// word when it cuts. Inputs at or under the cap pass through unchanged, so the
// operation is idempotent under re-truncation.
func Truncate(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return text
	}
	return strings.Join(words[:limit], " ") + "..."
}
