package domain

import (
	"time"

	"github.com/google/uuid"
)

type MemoryCategory string

const (
	MemoryCategoryNutrition        MemoryCategory = "nutrition"
	MemoryCategoryAIInsight        MemoryCategory = "ai_insight"
	MemoryCategoryReflection       MemoryCategory = "ai_reflection"
	MemoryCategoryAdaptation       MemoryCategory = "adaptation_insight"
	MemoryCategoryReminderBehavior MemoryCategory = "reminder_behavior"
)

func ValidMemoryCategory(c string) bool {
	switch MemoryCategory(c) {
	case MemoryCategoryNutrition, MemoryCategoryAIInsight, MemoryCategoryReflection, MemoryCategoryAdaptation, MemoryCategoryReminderBehavior:
		return true
	}
	return false
}

type MemorySource string

const (
	MemorySourceUser   MemorySource = "user"
	MemorySourceSystem MemorySource = "system"
)

// HealthMemory is a behavioral fact about a user. Content is either free
// text or a small JSON document, never raw model output.
type HealthMemory struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Category  MemoryCategory `json:"category"`
	Source    MemorySource   `json:"source"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Embedding []float32      `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

type MemoryWithScore struct {
	HealthMemory
	Score float32 `json:"score"`
}
