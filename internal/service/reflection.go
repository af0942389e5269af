package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fitnova/central/internal/agent"
	"github.com/fitnova/central/internal/domain"
	"github.com/google/uuid"
)

const (
	signalPrimaryAgentUsed         = "primary_agent_used"
	signalSecondaryAgentSuppressed = "secondary_agent_suppressed"
	signalUserScopePreference      = "user_scope_preference"
	signalIntentObserved           = "intent_observed"

	preferenceWindow = 50
)

// reflectionSignal is the stored shape of one behavioral observation.
type reflectionSignal struct {
	Signal string `json:"signal"`
	Value  any    `json:"value"`
}

// Preferences is a snapshot derived from stored reflection signals. Empty
// fields mean there was nothing to derive.
type Preferences struct {
	PreferredScope           string `json:"preferred_scope,omitempty"`
	PreferredPrimaryAgent    string `json:"preferred_primary_agent,omitempty"`
	DominantIntent           string `json:"dominant_intent,omitempty"`
	SecondarySuppressionRate int    `json:"secondary_agent_suppression_rate"`
}

// ReflectionService records which agents answered which intents and reads
// those observations back as preferences. It stores behavior, never the
// content of a conversation.
type ReflectionService struct {
	memoryStore domain.HealthMemoryStore
	memories    *MemoryService
}

func NewReflectionService(ms domain.HealthMemoryStore, memories *MemoryService) *ReflectionService {
	return &ReflectionService{memoryStore: ms, memories: memories}
}

// Reflect stores one ai_reflection memory per signal.
func (s *ReflectionService) Reflect(ctx context.Context, userID uuid.UUID, intent domain.Intent, primaryAgent string, suppressed []string) error {
	if primaryAgent == "" {
		return nil
	}

	signals := []reflectionSignal{{Signal: signalPrimaryAgentUsed, Value: primaryAgent}}

	if len(suppressed) > 0 {
		signals = append(signals, reflectionSignal{Signal: signalSecondaryAgentSuppressed, Value: suppressed})
	}

	switch primaryAgent {
	case agent.NameCoach:
		signals = append(signals, reflectionSignal{Signal: signalUserScopePreference, Value: "workout_only"})
	case agent.NameDietician:
		signals = append(signals, reflectionSignal{Signal: signalUserScopePreference, Value: "nutrition_only"})
	}

	signals = append(signals, reflectionSignal{Signal: signalIntentObserved, Value: string(intent)})

	for _, sig := range signals {
		if err := s.memories.RecordJSON(ctx, userID, domain.MemoryCategoryReflection, sig); err != nil {
			return fmt.Errorf("record %s: %w", sig.Signal, err)
		}
	}
	return nil
}

// Preferences reads the most recent reflection signals and reports the
// most common value of each.
func (s *ReflectionService) Preferences(ctx context.Context, userID uuid.UUID) (Preferences, error) {
	memories, err := s.memoryStore.ListByCategory(ctx, userID, domain.MemoryCategoryReflection, preferenceWindow)
	if err != nil {
		return Preferences{}, err
	}

	counts := map[string]*valueCounter{}
	var prefs Preferences

	for _, m := range memories {
		var sig reflectionSignal
		if err := json.Unmarshal([]byte(m.Content), &sig); err != nil || sig.Signal == "" {
			continue
		}

		if sig.Signal == signalSecondaryAgentSuppressed {
			prefs.SecondarySuppressionRate++
			continue
		}

		value, ok := sig.Value.(string)
		if !ok {
			continue
		}
		if counts[sig.Signal] == nil {
			counts[sig.Signal] = &valueCounter{}
		}
		counts[sig.Signal].add(value)
	}

	prefs.PreferredScope = counts[signalUserScopePreference].mostCommon()
	prefs.PreferredPrimaryAgent = counts[signalPrimaryAgentUsed].mostCommon()
	prefs.DominantIntent = counts[signalIntentObserved].mostCommon()
	return prefs, nil
}

// valueCounter counts values and remembers first-seen order so ties go to
// the most recent memory.
type valueCounter struct {
	order  []string
	counts map[string]int
}

func (c *valueCounter) add(v string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *valueCounter) mostCommon() string {
	if c == nil {
		return ""
	}
	best, bestCount := "", 0
	for _, v := range c.order {
		if c.counts[v] > bestCount {
			best, bestCount = v, c.counts[v]
		}
	}
	return best
}
