package domain

type Intent string

const (
	IntentRAGQuestion    Intent = "rag_question"
	IntentLLMOnly        Intent = "llm_only"
	IntentReminderCreate Intent = "reminder_create"
	IntentReminderList   Intent = "reminder_list"
	IntentReminderUpdate Intent = "reminder_update"
)

// IsReminder reports whether the intent is handled by reminder reasoning.
func (i Intent) IsReminder() bool {
	switch i {
	case IntentReminderCreate, IntentReminderList, IntentReminderUpdate:
		return true
	}
	return false
}

// WorkoutConstraints holds only what the user stated; empty fields were
// not mentioned.
type WorkoutConstraints struct {
	Level       string `json:"level,omitempty"`
	Environment string `json:"environment,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
}

func (c WorkoutConstraints) Empty() bool {
	return c.Level == "" && c.Environment == "" && c.Equipment == ""
}
