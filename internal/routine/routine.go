// Package routine implements the exercise-selection core: generating an
// ordered workout routine from user preferences and swapping a single
// exercise for a random alternative from the same muscle group.
package routine

import (
	"time"

	"github.com/claude/fitgen/internal/catalog"
	"github.com/google/uuid"
)

// Preference is the structured form input, immutable once submitted.
// Equipment and TargetMuscles are expected to be non-empty (the capture
// layer validates this); the generator still defaults them defensively.
type Preference struct {
	Duration      string                `json:"duration"`
	FitnessLevel  catalog.FitnessLevel  `json:"fitness_level"`
	Equipment     []catalog.Equipment   `json:"equipment"`
	TargetMuscles []catalog.MuscleGroup `json:"target_muscles"`
}

// Exercise is one generated routine slot. ID is assigned sequentially
// at generation time and stays stable for the life of the routine so a
// substitution can target a specific slot. Substitution overwrites
// Name, Equipment, MuscleGroup, and Illustration only.
type Exercise struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	Rest         string `json:"rest"`
	Illustration string `json:"illustration"`
	MuscleGroup  string `json:"muscle_group"`
	Equipment    string `json:"equipment"`
}

// Routine is one generated session: a derived title plus the ordered
// exercise list (insertion order is display order). Routines are
// replaced wholesale on regeneration, never merged.
type Routine struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Exercises   []Exercise `json:"exercises"`
	GeneratedAt time.Time  `json:"generated_at"`
}
