package agent

import (
	"context"
	"strings"
	"time"
)

const (
	ActionCreateReminder  = "create_reminder"
	ActionAcknowledgeMiss = "acknowledge_miss"
	ActionNone            = "none"

	morningHour = 9
	eveningHour = 19
)

// ReminderReasoningAgent proposes a reminder action from the user's words.
// It never writes reminders itself.
type ReminderReasoningAgent struct{}

func NewReminderReasoningAgent() *ReminderReasoningAgent { return &ReminderReasoningAgent{} }

func (a *ReminderReasoningAgent) Name() string { return NameReminderReasoning }

func (a *ReminderReasoningAgent) Respond(ctx context.Context, req Request) (Response, error) {
	text := strings.ToLower(req.Goal)

	switch {
	case strings.Contains(text, "remind") || strings.Contains(text, "schedule"):
		result := map[string]any{
			"action":  ActionCreateReminder,
			"message": req.Goal,
		}
		if at, ok := suggestReminderTime(text, req.Now); ok {
			result["suggested_time"] = at
		}
		return Response{
			Agent:      NameReminderReasoning,
			Confidence: 0.95,
			Message:    "I can set that reminder for you.",
			Result:     result,
		}, nil

	case strings.Contains(text, "forgot") || strings.Contains(text, "missed"):
		return Response{
			Agent:      NameReminderReasoning,
			Confidence: 0.7,
			Message:    "No worries, missing one is fine. Let's pick it back up.",
			Result:     map[string]any{"action": ActionAcknowledgeMiss, "tone": "supportive"},
		}, nil

	default:
		return Response{
			Agent:      NameReminderReasoning,
			Confidence: 0.2,
			Result:     map[string]any{"action": ActionNone},
		}, nil
	}
}

// suggestReminderTime only infers a time the user named: tomorrow
// morning or this evening.
func suggestReminderTime(text string, now time.Time) (time.Time, bool) {
	y, m, d := now.Date()
	switch {
	case strings.Contains(text, "tomorrow"):
		return time.Date(y, m, d+1, morningHour, 0, 0, 0, now.Location()), true
	case strings.Contains(text, "evening"):
		return time.Date(y, m, d, eveningHour, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}
