package ai

import (
	"fmt"
	"strings"
)

const (
	summaryMaxTokens = 300
	reflectMaxTokens = 700
	chatMaxTokens    = 400
	probeMaxTokens   = 10

	// MaxReflectionEntries is how many of the newest entries a reflection reads
	MaxReflectionEntries = 5
	// MaxChatHistory is how many prior chat turns seed a mirror chat
	MaxChatHistory = 10
)

func summarizePrompt(text string) string {
	return fmt.Sprintf(`Summarize this user journal entry in 3–4 sentences and detect tone.

Entry:
%s

Return only the summary text with tone, no preamble.`, text)
}

func reflectPrompt(userName string, texts []string) string {
	entries := make([]string, len(texts))
	for i, t := range texts {
		entries[i] = fmt.Sprintf("Entry %d: %s", i+1, t)
	}

	return fmt.Sprintf(`Based on the past %d entries from %s, summarize recurring themes, tone, and personality traits of the user. Write a reflection as if you were their mirror self, compassionate and honest, 3–5 short paragraphs.

Entries:
%s`, len(texts), userName, strings.Join(entries, "\n\n"))
}

func chatSystemPrompt(userName string) string {
	return fmt.Sprintf("You are %s's mirror twin. Respond in their tone, reflecting their patterns. "+
		"Be supportive, insightful, and concise. Ask 1 thoughtful follow-up when helpful.", userName)
}

const probePrompt = "Say OK"

// chatMessages builds the conversation sent for a mirror chat: the newest
// MaxChatHistory turns followed by the incoming message. Unknown roles are
// treated as user turns and leading assistant turns are dropped so the
// conversation always opens with the user.
func chatMessages(message string, history []Message) []Message {
	if len(history) > MaxChatHistory {
		history = history[len(history)-MaxChatHistory:]
	}

	msgs := make([]Message, 0, len(history)+1)
	for _, turn := range history {
		role := Role(strings.ToLower(strings.TrimSpace(string(turn.Role))))
		if role != RoleAssistant {
			role = RoleUser
		}
		if len(msgs) == 0 && role == RoleAssistant {
			continue
		}
		msgs = append(msgs, Message{Role: role, Content: turn.Content})
	}
	return append(msgs, Message{Role: RoleUser, Content: message})
}
