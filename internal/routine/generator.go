package routine

import (
	"math/rand/v2"
	"time"

	"github.com/claude/fitgen/internal/catalog"
	"github.com/google/uuid"
)

// Tunable defaults. PrimaryCap bounds the one-exercise-per-selected-group
// pass; TargetCount is the fill-phase minimum; FillAttempts bounds the
// fill loop so a saturated catalog exits gracefully instead of spinning.
const (
	DefaultPrimaryCap   = 5
	DefaultTargetCount  = 6
	DefaultFillAttempts = 200
)

// Rand is the subset of math/rand/v2 the generator uses. Tests inject a
// seeded *rand.Rand for deterministic selection.
type Rand interface {
	IntN(n int) int
}

// globalRand delegates to the package-level generator, which is safe
// for concurrent use by HTTP handlers.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Options tunes the generator. Zero values mean defaults.
type Options struct {
	PrimaryCap   int
	TargetCount  int
	FillAttempts int
	Rand         Rand
}

// Generator produces routines from preferences and the static catalog.
type Generator struct {
	catalog      *catalog.Catalog
	primaryCap   int
	targetCount  int
	fillAttempts int
	rng          Rand
}

// NewGenerator creates a Generator over the given catalog.
func NewGenerator(cat *catalog.Catalog, opts Options) *Generator {
	if opts.PrimaryCap <= 0 {
		opts.PrimaryCap = DefaultPrimaryCap
	}
	if opts.TargetCount <= 0 {
		opts.TargetCount = DefaultTargetCount
	}
	if opts.FillAttempts <= 0 {
		opts.FillAttempts = DefaultFillAttempts
	}
	if opts.Rand == nil {
		opts.Rand = globalRand{}
	}
	return &Generator{
		catalog:      cat,
		primaryCap:   opts.PrimaryCap,
		targetCount:  opts.TargetCount,
		fillAttempts: opts.FillAttempts,
		rng:          opts.Rand,
	}
}

// Generate builds a routine from the given preferences. It never fails:
// every lookup miss degrades to a documented default (bodyweight
// bucket, default illustration, full-body fallback group), so a
// non-empty catalog always yields a non-empty routine.
func (g *Generator) Generate(pref Preference) Routine {
	equipment := pref.Equipment
	if len(equipment) == 0 {
		equipment = []catalog.Equipment{catalog.EquipmentBodyweight}
	}
	targets := pref.TargetMuscles
	if len(targets) == 0 {
		targets = []catalog.MuscleGroup{catalog.MuscleFullBody}
	}
	level, ok := catalog.ParseFitnessLevel(string(pref.FitnessLevel))
	if !ok {
		level = catalog.LevelBeginner
	}

	primaryLabel := targets[0].Label()

	var exercises []Exercise

	// One exercise per selected muscle group, in selection order.
	for _, group := range targets {
		if len(exercises) >= g.primaryCap {
			break
		}
		var pool []catalog.ExerciseTemplate
		for _, equip := range equipment {
			pool = append(pool, g.catalog.Bucket(group, equip)...)
		}
		if len(pool) == 0 {
			pool = g.catalog.Bucket(group, catalog.EquipmentBodyweight)
		}
		if len(pool) == 0 {
			continue
		}
		tmpl := pool[g.rng.IntN(len(pool))]
		exercises = append(exercises, Exercise{
			Name:        tmpl.Name,
			Sets:        tmpl.Sets,
			Reps:        tmpl.Reps,
			Rest:        tmpl.Rest,
			MuscleGroup: group.Label(),
			Equipment:   g.equipmentLabelFor(group, equipment),
		})
	}

	// Fill phase: top up with random (group, equipment) draws from the
	// whole catalog, de-duplicating by name across the routine. The
	// attempt cap bounds the loop when unique names run out.
	groups := g.catalog.Groups()
	for attempts := 0; len(exercises) < g.targetCount && attempts < g.fillAttempts; attempts++ {
		group := groups[g.rng.IntN(len(groups))]
		equip := equipment[g.rng.IntN(len(equipment))]
		bucket := g.catalog.Bucket(group, equip)
		if len(bucket) == 0 {
			equip = catalog.EquipmentBodyweight
			bucket = g.catalog.Bucket(group, equip)
		}
		if len(bucket) == 0 {
			continue
		}
		tmpl := bucket[g.rng.IntN(len(bucket))]
		if hasName(exercises, tmpl.Name) {
			continue
		}
		exercises = append(exercises, Exercise{
			Name:        tmpl.Name,
			Sets:        tmpl.Sets,
			Reps:        tmpl.Reps,
			Rest:        tmpl.Rest,
			MuscleGroup: group.Label(),
			Equipment:   equip.Label(),
		})
	}

	// Difficulty scaling: substitution later preserves these counts.
	for i := range exercises {
		exercises[i].Sets = scaleSets(exercises[i].Sets, level)
	}

	for i := range exercises {
		exercises[i].ID = i + 1
		exercises[i].Illustration = g.catalog.ResolveIllustration(exercises[i].Name)
	}

	return Routine{
		ID:          uuid.New(),
		Title:       level.Label() + " " + primaryLabel + " Workout",
		Exercises:   exercises,
		GeneratedAt: time.Now().UTC(),
	}
}

// equipmentLabelFor returns the label of the first selected equipment
// item for which the group has a bucket, defaulting to "Bodyweight".
func (g *Generator) equipmentLabelFor(group catalog.MuscleGroup, equipment []catalog.Equipment) string {
	for _, equip := range equipment {
		if g.catalog.HasBucket(group, equip) {
			return equip.Label()
		}
	}
	return catalog.EquipmentBodyweight.Label()
}

// scaleSets applies the fitness-level adjustment: advanced +2 capped at
// 5, intermediate +1 capped at 4, beginner unchanged.
func scaleSets(sets int, level catalog.FitnessLevel) int {
	switch level {
	case catalog.LevelAdvanced:
		return min(sets+2, 5)
	case catalog.LevelIntermediate:
		return min(sets+1, 4)
	default:
		return sets
	}
}

func hasName(exercises []Exercise, name string) bool {
	for _, ex := range exercises {
		if ex.Name == name {
			return true
		}
	}
	return false
}
