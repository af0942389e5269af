package service

import (
	"strings"

	"github.com/fitnova/central/internal/domain"
)

var (
	reminderCreateKeywords = []string{"remind me", "set a reminder", "add reminder", "schedule"}
	reminderListKeywords   = []string{"my reminders", "show reminders", "list reminders"}
	reminderUpdateKeywords = []string{
		"delete reminder", "remove reminder", "turn off reminder",
		"pause reminder", "resume reminder", "edit reminder",
	}
	ragKeywords = []string{
		"protein", "calories", "nutrition", "diet", "workout",
		"exercise", "sets", "reps", "sleep", "recovery",
		"hypertrophy", "muscle", "fat loss",
	}
	nutritionSupportKeywords = []string{"diet", "nutrition", "protein", "calories", "meal", "food", "macro"}
)

// ClassifyIntent applies keyword rules in priority order. Text no rule
// matches falls back to a conservative guess: anything mentioning
// "remind" creates a reminder, a question is answered from knowledge,
// and the rest goes to the model.
func ClassifyIntent(text string) domain.Intent {
	msg := strings.ToLower(strings.TrimSpace(text))

	switch {
	case containsAny(msg, reminderCreateKeywords):
		return domain.IntentReminderCreate
	case containsAny(msg, reminderListKeywords):
		return domain.IntentReminderList
	case containsAny(msg, reminderUpdateKeywords):
		return domain.IntentReminderUpdate
	case containsAny(msg, ragKeywords):
		return domain.IntentRAGQuestion
	case strings.Contains(msg, "remind"):
		return domain.IntentReminderCreate
	case strings.HasSuffix(msg, "?"):
		return domain.IntentRAGQuestion
	default:
		return domain.IntentLLMOnly
	}
}

type keywordValue struct {
	keyword string
	value   string
}

// Checked in order; the first hit wins.
var (
	levelKeywords = []keywordValue{
		{"beginner", "beginner"},
		{"intermediate", "intermediate"},
		{"advanced", "advanced"},
		{"expert", "advanced"},
	}
	environmentKeywords = []keywordValue{
		{"gym", "gym"},
		{"home", "home"},
		{"at home", "home"},
		{"bodyweight", "calisthenics"},
		{"calisthenics", "calisthenics"},
	}
	equipmentKeywords = []keywordValue{
		{"bodyweight", "bodyweight"},
		{"no equipment", "bodyweight"},
		{"dumbbells", "limited"},
		{"bands", "limited"},
		{"full gym", "full_gym"},
		{"machines", "full_gym"},
	}
)

// ExtractWorkoutConstraints reads only what the text states. Missing
// constraints stay empty; nothing is defaulted.
func ExtractWorkoutConstraints(text string) domain.WorkoutConstraints {
	msg := strings.ToLower(text)
	return domain.WorkoutConstraints{
		Level:       firstKeyword(msg, levelKeywords),
		Environment: firstKeyword(msg, environmentKeywords),
		Equipment:   firstKeyword(msg, equipmentKeywords),
	}
}

// NeedsNutritionSupport reports whether a training answer should carry a
// nutrition hint.
func NeedsNutritionSupport(text string) bool {
	return containsAny(strings.ToLower(text), nutritionSupportKeywords)
}

func firstKeyword(msg string, table []keywordValue) string {
	for _, kv := range table {
		if strings.Contains(msg, kv.keyword) {
			return kv.value
		}
	}
	return ""
}

func containsAny(msg string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
