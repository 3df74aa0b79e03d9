package routine

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/claude/fitgen/internal/catalog"
)

func newTestGenerator(t *testing.T, opts Options) *Generator {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}
	return NewGenerator(cat, opts)
}

func assertUniqueNames(t *testing.T, exercises []Exercise) {
	t.Helper()
	seen := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		if seen[ex.Name] {
			t.Errorf("duplicate exercise name %q", ex.Name)
		}
		seen[ex.Name] = true
	}
}

// TestGenerateBasic verifies a standard request yields a full routine with
// sequential IDs, unique names, and illustrations on every slot.
func TestGenerateBasic(t *testing.T) {
	g := newTestGenerator(t, Options{})
	r := g.Generate(Preference{
		Duration:      "30",
		FitnessLevel:  catalog.LevelBeginner,
		Equipment:     []catalog.Equipment{catalog.EquipmentBodyweight, catalog.EquipmentDumbbells},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleChest, catalog.MuscleBack},
	})

	if len(r.Exercises) < DefaultTargetCount {
		t.Fatalf("exercise count = %d, want >= %d", len(r.Exercises), DefaultTargetCount)
	}
	if r.Title != "Beginner Chest Workout" {
		t.Errorf("title = %q, want %q", r.Title, "Beginner Chest Workout")
	}
	for i, ex := range r.Exercises {
		if ex.ID != i+1 {
			t.Errorf("exercise[%d].ID = %d, want %d", i, ex.ID, i+1)
		}
		if ex.Illustration == "" {
			t.Errorf("exercise %q has no illustration", ex.Name)
		}
		if ex.Sets <= 0 || ex.Reps == "" || ex.Rest == "" {
			t.Errorf("exercise %q has incomplete prescription: %+v", ex.Name, ex)
		}
	}
	assertUniqueNames(t, r.Exercises)
	if r.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("routine ID is the zero UUID")
	}
	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt is zero")
	}
}

// TestGenerateDefaults verifies empty selections degrade to bodyweight
// and full-body rather than failing.
func TestGenerateDefaults(t *testing.T) {
	g := newTestGenerator(t, Options{})
	r := g.Generate(Preference{})

	if r.Title != "Beginner Full Body Workout" {
		t.Errorf("title = %q, want %q", r.Title, "Beginner Full Body Workout")
	}
	if len(r.Exercises) < DefaultTargetCount {
		t.Errorf("exercise count = %d, want >= %d", len(r.Exercises), DefaultTargetCount)
	}
	assertUniqueNames(t, r.Exercises)
}

// TestGenerateUnknownLevel verifies an unrecognized fitness level falls
// back to beginner.
func TestGenerateUnknownLevel(t *testing.T) {
	g := newTestGenerator(t, Options{})
	r := g.Generate(Preference{
		FitnessLevel:  catalog.FitnessLevel("ninja"),
		Equipment:     []catalog.Equipment{catalog.EquipmentBodyweight},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleCore},
	})
	if !strings.HasPrefix(r.Title, "Beginner ") {
		t.Errorf("title = %q, want Beginner prefix", r.Title)
	}
}

// TestGenerateTitleUsesFirstGroup verifies the title names the first
// selected muscle group regardless of the rest.
func TestGenerateTitleUsesFirstGroup(t *testing.T) {
	g := newTestGenerator(t, Options{})
	r := g.Generate(Preference{
		FitnessLevel:  catalog.LevelAdvanced,
		Equipment:     []catalog.Equipment{catalog.EquipmentBodyweight},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleUpperBody, catalog.MuscleLegs, catalog.MuscleCore},
	})
	if r.Title != "Advanced Upper Body Workout" {
		t.Errorf("title = %q, want %q", r.Title, "Advanced Upper Body Workout")
	}
}

// TestGenerateScaling verifies advanced routines cap every exercise at 5
// sets while beginner routines keep the catalog values.
func TestGenerateScaling(t *testing.T) {
	pref := Preference{
		Equipment:     []catalog.Equipment{catalog.EquipmentBodyweight},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleChest},
	}

	g := newTestGenerator(t, Options{})
	pref.FitnessLevel = catalog.LevelAdvanced
	for _, ex := range g.Generate(pref).Exercises {
		if ex.Sets > 5 {
			t.Errorf("advanced %q sets = %d, want <= 5", ex.Name, ex.Sets)
		}
	}

	pref.FitnessLevel = catalog.LevelIntermediate
	for _, ex := range g.Generate(pref).Exercises {
		if ex.Sets > 4 {
			t.Errorf("intermediate %q sets = %d, want <= 4", ex.Name, ex.Sets)
		}
	}
}

// TestScaleSets verifies the per-level set adjustment table.
func TestScaleSets(t *testing.T) {
	cases := []struct {
		sets  int
		level catalog.FitnessLevel
		want  int
	}{
		{3, catalog.LevelBeginner, 3},
		{3, catalog.LevelIntermediate, 4},
		{4, catalog.LevelIntermediate, 4},
		{3, catalog.LevelAdvanced, 5},
		{4, catalog.LevelAdvanced, 5},
		{2, catalog.LevelAdvanced, 4},
		{2, catalog.LevelBeginner, 2},
	}
	for _, tc := range cases {
		if got := scaleSets(tc.sets, tc.level); got != tc.want {
			t.Errorf("scaleSets(%d, %s) = %d, want %d", tc.sets, tc.level, got, tc.want)
		}
	}
}

// TestGenerateGroupWithoutBucket verifies a selected group with no
// catalog bucket (glutes) is skipped in the primary pass and the fill
// phase still reaches the minimum.
func TestGenerateGroupWithoutBucket(t *testing.T) {
	g := newTestGenerator(t, Options{})
	r := g.Generate(Preference{
		FitnessLevel:  catalog.LevelBeginner,
		Equipment:     []catalog.Equipment{catalog.EquipmentBodyweight},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleGlutes},
	})
	if r.Title != "Beginner Glutes Workout" {
		t.Errorf("title = %q, want %q", r.Title, "Beginner Glutes Workout")
	}
	if len(r.Exercises) < DefaultTargetCount {
		t.Errorf("exercise count = %d, want >= %d", len(r.Exercises), DefaultTargetCount)
	}
	assertUniqueNames(t, r.Exercises)
}

// TestGeneratePrimaryCap verifies the one-per-group pass stops at the cap
// even when more groups are selected.
func TestGeneratePrimaryCap(t *testing.T) {
	g := newTestGenerator(t, Options{PrimaryCap: 2, TargetCount: 2, FillAttempts: 1})
	r := g.Generate(Preference{
		Equipment: []catalog.Equipment{catalog.EquipmentBodyweight},
		TargetMuscles: []catalog.MuscleGroup{
			catalog.MuscleChest, catalog.MuscleBack, catalog.MuscleLegs, catalog.MuscleCore,
		},
	})
	// With the cap at 2 and the target met, only the first two groups land.
	if len(r.Exercises) != 2 {
		t.Fatalf("exercise count = %d, want 2", len(r.Exercises))
	}
	if r.Exercises[0].MuscleGroup != "Chest" {
		t.Errorf("first group = %q, want %q", r.Exercises[0].MuscleGroup, "Chest")
	}
	if r.Exercises[1].MuscleGroup != "Back" {
		t.Errorf("second group = %q, want %q", r.Exercises[1].MuscleGroup, "Back")
	}
}

// TestGenerateFillCapExitsGracefully verifies an unreachable target count
// exits after the attempt cap instead of spinning, with names still unique.
func TestGenerateFillCapExitsGracefully(t *testing.T) {
	g := newTestGenerator(t, Options{TargetCount: 500, FillAttempts: 50})
	r := g.Generate(Preference{
		Equipment:     []catalog.Equipment{catalog.EquipmentBodyweight},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleCore},
	})
	if len(r.Exercises) >= 500 {
		t.Fatalf("exercise count = %d, want far fewer than the target", len(r.Exercises))
	}
	assertUniqueNames(t, r.Exercises)
}

// TestGenerateDeterministic verifies two generators seeded identically
// produce identical routines apart from ID and timestamp.
func TestGenerateDeterministic(t *testing.T) {
	pref := Preference{
		FitnessLevel:  catalog.LevelIntermediate,
		Equipment:     []catalog.Equipment{catalog.EquipmentDumbbells},
		TargetMuscles: []catalog.MuscleGroup{catalog.MuscleShoulders, catalog.MuscleArms},
	}
	a := newTestGenerator(t, Options{Rand: rand.New(rand.NewPCG(7, 7))}).Generate(pref)
	b := newTestGenerator(t, Options{Rand: rand.New(rand.NewPCG(7, 7))}).Generate(pref)

	if len(a.Exercises) != len(b.Exercises) {
		t.Fatalf("counts differ: %d vs %d", len(a.Exercises), len(b.Exercises))
	}
	for i := range a.Exercises {
		if a.Exercises[i].Name != b.Exercises[i].Name {
			t.Errorf("exercise[%d] = %q vs %q", i, a.Exercises[i].Name, b.Exercises[i].Name)
		}
	}
}
