package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/bhasha-labs/bhasha/pkg/language"
	"github.com/bhasha-labs/bhasha/pkg/session"
)

// apologies prepended to an answer that came back in the wrong language.
// Defined for Hindi and Telugu only; other mismatches are logged and the
// answer is returned unchanged.
var apologies = map[language.Code]string{
	language.Hindi:  "मुझे खेद है, मैं अपना उत्तर हिंदी में देने में असमर्थ था। ",
	language.Telugu: "క్షమించండి, నేను తెలుగులో సమాధానం ఇవ్వలేకపోయాను. ",
}

func systemPrompt(langName string) string {
	return fmt.Sprintf(`You are a multilingual AI assistant capable of fluently communicating in multiple languages.
When users speak to you in a particular language, you MUST ALWAYS respond in that same language.
Currently, the user is communicating in %s.
YOUR RESPONSE MUST BE ENTIRELY IN %s.
Maintain a helpful, friendly, and professional tone in your responses.`, langName, langName)
}

func userPrompt(query string, history []session.Turn, langName string, now time.Time) string {
	return fmt.Sprintf(`User query: %s
Previous context: %s

Remember to respond ONLY in %s.
Current date: %s`, query, historyContext(history), langName, now.Format("January 02, 2006"))
}

// historyContext renders the last few turns for prompt context.
func historyContext(history []session.Turn) string {
	if len(history) == 0 {
		return "[]"
	}
	if len(history) > historyContextTurns {
		history = history[len(history)-historyContextTurns:]
	}

	var b strings.Builder
	for i, turn := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", turn.Role, turn.Content)
	}
	return b.String()
}
