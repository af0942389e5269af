package domain

import (
	"time"

	"github.com/google/uuid"
)

type MovementPattern string

const (
	MovementSquat          MovementPattern = "squat"
	MovementHinge          MovementPattern = "hinge"
	MovementHorizontalPush MovementPattern = "horizontal_push"
	MovementVerticalPush   MovementPattern = "vertical_push"
	MovementHorizontalPull MovementPattern = "horizontal_pull"
	MovementVerticalPull   MovementPattern = "vertical_pull"
	MovementCarry          MovementPattern = "carry"
	MovementRotation       MovementPattern = "rotation"
	MovementLocomotion     MovementPattern = "locomotion"
)

// FatigueProfile ranks how systemically taxing an exercise is.
type FatigueProfile string

const (
	FatigueLocal    FatigueProfile = "local"
	FatigueNeural   FatigueProfile = "neural"
	FatigueSystemic FatigueProfile = "systemic"
)

// Rank orders fatigue profiles from least to most taxing. Unknown
// profiles rank last.
func (f FatigueProfile) Rank() int {
	switch f {
	case FatigueLocal:
		return 0
	case FatigueNeural:
		return 1
	case FatigueSystemic:
		return 2
	default:
		return 3
	}
}

type Exercise struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	MovementPattern MovementPattern `json:"movement_pattern"`
	FatigueProfile  FatigueProfile  `json:"fatigue_profile"`
	PrimaryMuscles  []string        `json:"primary_muscles,omitempty"`
	Equipment       []string        `json:"equipment,omitempty"`
	DifficultyLevel string          `json:"difficulty_level,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
