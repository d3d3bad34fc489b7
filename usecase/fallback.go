package usecase

import "strings"

// FallbackProvider is the label reported whenever the canned responder answers
// in place of an external provider.
const FallbackProvider = "Fallback Assistant"

// fallbackGroup pairs the keywords that select a canned response with the
// response itself. Groups are evaluated in declaration order; the first group
// with any keyword contained in the lower-cased input wins.
type fallbackGroup struct {
	keywords []string
	response string
}

var fallbackGroups = []fallbackGroup{
	{
		keywords: []string{"value"},
		response: "Values are the compass that guides our decisions. What principles matter most to you in life? Understanding your core values can help you make choices that feel authentic and fulfilling.",
	},
	{
		keywords: []string{"goal"},
		response: "Goals give us direction and purpose. What dreams are you working toward? Sometimes breaking big goals into smaller, actionable steps makes them feel more achievable.",
	},
	{
		keywords: []string{"struggle", "difficult", "problem"},
		response: "Struggles are part of growth. What challenges are you facing right now? Remember, every obstacle is an opportunity to learn something new about yourself.",
	},
	{
		keywords: []string{"decision", "choose", "choice"},
		response: "Decisions can feel overwhelming. What choice are you trying to make? Sometimes it helps to consider which option aligns best with your values and long-term goals.",
	},
	{
		keywords: []string{"stress", "anxious", "worried"},
		response: "It's natural to feel stressed sometimes. What's weighing on your mind? Taking a step back and focusing on what you can control often helps bring clarity.",
	},
	{
		keywords: []string{"future", "plan"},
		response: "Planning for the future shows great self-awareness. What vision do you have for yourself? Remember, the future is built through the choices we make today.",
	},
	{
		keywords: []string{"relationship", "friend", "family"},
		response: "Relationships are such an important part of our lives. What's happening in your relationships that you'd like to explore? Sometimes understanding our own needs helps us connect better with others.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		response: "Hello! I'm here to help you reflect and explore your thoughts. What's been on your mind lately? Whether it's about decisions, goals, or just life in general, I'm here to listen and offer support.",
	},
}

const fallbackDefault = "I'm here to help you reflect and explore your thoughts. What's been on your mind lately? Feel free to share what you're thinking about - whether it's a decision you're facing, goals you're working toward, or anything else that's important to you."

// Fallback returns the canned supportive response for a message. It is pure and
// total: any input, including the empty string, yields non-empty text.
func Fallback(message string) string {
	input := strings.ToLower(message)
	for _, group := range fallbackGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(input, keyword) {
				return group.response
			}
		}
	}
	return fallbackDefault
}

// FallbackFirstSentence returns the opening sentence of the canned response,
// used by the voice flow where replies must stay short.
func FallbackFirstSentence(message string) string {
	response := Fallback(message)
	if idx := strings.Index(response, ". "); idx >= 0 {
		return response[:idx+1]
	}
	return response
}
