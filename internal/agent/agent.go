// Package agent holds the specialist responders the orchestrator can
// dispatch to. Every variant implements Agent; there is no method probing.
package agent

import (
	"context"
	"time"

	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
)

const (
	NameCoach             = "coach"
	NameDietician         = "dietician"
	NameReminderReasoning = "reminder_reasoning"
	NameFallback          = "fallback"
)

// Agent answers one request. Implementations must be safe for concurrent
// use.
type Agent interface {
	Name() string
	Respond(ctx context.Context, req Request) (Response, error)
}

type Request struct {
	UserID      uuid.UUID                 `json:"user_id"`
	Goal        string                    `json:"goal"`
	Intent      domain.Intent             `json:"intent"`
	Constraints domain.WorkoutConstraints `json:"constraints"`
	Now         time.Time                 `json:"now"`
}

// Response is one agent's answer. Result carries the structured payload;
// an empty Result means the agent had nothing useful to say.
type Response struct {
	Agent      string         `json:"agent"`
	Confidence float64        `json:"confidence"`
	Message    string         `json:"message,omitempty"`
	Result     map[string]any `json:"result,omitempty"`
}
