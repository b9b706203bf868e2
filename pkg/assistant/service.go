package assistant

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lifeos/lifeos/pkg/lifedata"
)

const (
	fallbackNoKeyInsights = "AI services unavailable. Please configure your API Key."
	fallbackInsightsError = "Sorry, I couldn't generate insights right now."
	fallbackNoKeyChat     = "AI services unavailable."
	fallbackEmptyChat     = "I'm listening."
	fallbackChatError     = "I encountered an error processing your request."

	// older turns beyond this are dropped from the chat prompt
	maxHistoryMessages = 20

	chatSystemInstruction = "You are a personal life and finance assistant inside a private dashboard. " +
		"Answer briefly and practically, grounded in the user's own data when it is given."
)

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Service produces advisory text. Every failure degrades to a fixed fallback
// string so the dashboard keeps rendering regardless of the collaborator.
type Service interface {
	GenerateLifeInsights(ctx context.Context, data lifedata.AppData, query string) string
	Chat(ctx context.Context, history []ChatMessage, message string) string
}

type ServiceImpl struct {
	client Client
}

// NewService accepts a nil client, which means no API key was configured.
func NewService(client Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) GenerateLifeInsights(ctx context.Context, data lifedata.AppData, query string) string {
	if s.client == nil {
		return fallbackNoKeyInsights
	}
	text, err := s.client.GenerateText(ctx, "", insightsPrompt(data, query))
	if err != nil {
		log.Errorf("Failed to generate insights: %v", err)
		return fallbackInsightsError
	}
	if text == "" {
		return fallbackInsightsError
	}
	return text
}

func (s *ServiceImpl) Chat(ctx context.Context, history []ChatMessage, message string) string {
	if s.client == nil {
		return fallbackNoKeyChat
	}
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	var prompt strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&prompt, "%s: %s\n", turn.Role, turn.Text)
	}
	fmt.Fprintf(&prompt, "user: %s\n", message)

	text, err := s.client.GenerateText(ctx, chatSystemInstruction, prompt.String())
	if err != nil {
		log.Errorf("Failed to generate chat reply: %v", err)
		return fallbackChatError
	}
	if text == "" {
		return fallbackEmptyChat
	}
	return text
}

// insightsPrompt summarizes the dashboard so the model can reason about it
// without receiving the raw document.
func insightsPrompt(data lifedata.AppData, query string) string {
	pending := 0
	highPriority := 0
	for _, task := range data.Tasks {
		if task.Completed {
			continue
		}
		pending++
		if task.Priority == lifedata.PriorityP1 || task.Priority == lifedata.PriorityP2 {
			highPriority++
		}
	}
	stats := lifedata.ComputeIncomeStats(data.Transactions)

	var b strings.Builder
	b.WriteString("Current life dashboard:\n")
	fmt.Fprintf(&b, "- Pending tasks: %d (%d high priority)\n", pending, highPriority)
	fmt.Fprintf(&b, "- Habits tracked: %d\n", len(data.Habits))
	fmt.Fprintf(&b, "- Transactions recorded: %d (savings rate %.1f%%)\n", stats.TransactionCount, stats.SavingsRate)
	fmt.Fprintf(&b, "- Contacts in pipeline: %d\n", len(data.Contacts))
	fmt.Fprintf(&b, "- Goals: %d\n", len(data.Goals))
	if data.MissionStatement != "" {
		fmt.Fprintf(&b, "- Mission: %s\n", data.MissionStatement)
	}
	b.WriteString("\n")
	if query != "" {
		b.WriteString(query)
	} else {
		b.WriteString("Give three short, specific suggestions for what to focus on next.")
	}
	return b.String()
}
