package chat

import (
	"fmt"
	"strings"
)

// mockReply produces a deterministic canned answer keyed only on the last
// user message, used when no completion provider is configured or the
// provider is rate limited.
func mockReply(lastMessage string) string {
	lower := strings.ToLower(lastMessage)

	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"):
		return "Hello! I'm BrooBot, your friendly AI assistant. I'm here to help you with anything you need. What can I do for you today?"
	case strings.Contains(lower, "how are you"):
		return "I'm doing great, thank you for asking! As an AI assistant, I'm always ready and excited to help. How can I assist you today?"
	case strings.Contains(lower, "joke"):
		return "Sure! Here's one: Why did the AI go to therapy? Because it had too many deep learning issues!\n\nBut seriously, I'm here to help with real questions too. What else can I do for you?"
	case strings.Contains(lower, "code"), strings.Contains(lower, "program"):
		return "I can definitely help with coding! I'm experienced in many programming languages including JavaScript, Python, Java, C++, and more.\n\nWhat kind of code help do you need? I can:\n- Debug existing code\n- Explain programming concepts\n- Write new functions\n- Review code\n- Suggest best practices"
	case strings.Contains(lower, "write"), strings.Contains(lower, "essay"), strings.Contains(lower, "article"):
		return "I'd be happy to help with writing! I can assist with:\n- Blog posts and articles\n- Essays and research papers\n- Creative writing\n- Professional emails\n- Technical documentation\n\nWhat would you like to write about?"
	default:
		return fmt.Sprintf("I understand you're asking about: \"%s\"\n\n**[MOCK MODE]** This is a mock response because no completion provider is configured.\n\nTo enable real AI responses, set ANTHROPIC_API_KEY and restart the server.\n\nIn the meantime, try asking about:\n- Coding help\n- Writing assistance\n- General questions", lastMessage)
	}
}
