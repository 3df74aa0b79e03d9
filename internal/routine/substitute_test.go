package routine

import (
	"math/rand/v2"
	"testing"

	"github.com/claude/fitgen/internal/catalog"
)

// TestSubstituteNeverReturnsSameName verifies repeated swaps never hand
// back the exercise being replaced.
func TestSubstituteNeverReturnsSameName(t *testing.T) {
	g := newTestGenerator(t, Options{Rand: rand.New(rand.NewPCG(3, 9))})
	ex := Exercise{
		ID:          2,
		Name:        "Plank",
		Sets:        3,
		Reps:        "30-60 sec",
		Rest:        "60 sec",
		MuscleGroup: "Core",
		Equipment:   "Bodyweight",
	}
	for i := 0; i < 50; i++ {
		got := g.Substitute(ex)
		if got.Name == "Plank" {
			t.Fatalf("iteration %d: substitute returned the same exercise", i)
		}
	}
}

// TestSubstitutePreservesSlot verifies ID, sets, reps, and rest carry
// over unchanged while the identity fields are replaced.
func TestSubstitutePreservesSlot(t *testing.T) {
	g := newTestGenerator(t, Options{})
	ex := Exercise{
		ID:          4,
		Name:        "Push-ups",
		Sets:        5,
		Reps:        "10-12",
		Rest:        "60 sec",
		MuscleGroup: "Chest",
		Equipment:   "Bodyweight",
	}
	got := g.Substitute(ex)

	if got.ID != 4 {
		t.Errorf("ID = %d, want 4", got.ID)
	}
	if got.Sets != 5 {
		t.Errorf("Sets = %d, want 5", got.Sets)
	}
	if got.Reps != "10-12" {
		t.Errorf("Reps = %q, want %q", got.Reps, "10-12")
	}
	if got.Rest != "60 sec" {
		t.Errorf("Rest = %q, want %q", got.Rest, "60 sec")
	}
	if got.Name == "Push-ups" {
		t.Error("Name unchanged, want a replacement")
	}
	if got.Illustration == "" {
		t.Error("replacement has no illustration")
	}
}

// TestSubstituteUsesGroupBucket verifies a core exercise swaps to another
// core alternative rather than a generic one.
func TestSubstituteUsesGroupBucket(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	coreNames := make(map[string]bool)
	for _, alt := range cat.Alternatives("core") {
		coreNames[alt.Name] = true
	}

	g := NewGenerator(cat, Options{Rand: rand.New(rand.NewPCG(5, 5))})
	for i := 0; i < 25; i++ {
		got := g.Substitute(Exercise{Name: "Plank", MuscleGroup: "Core"})
		if !coreNames[got.Name] {
			t.Fatalf("iteration %d: %q is not a core alternative", i, got.Name)
		}
	}
}

// TestSubstituteFallsBackToDefault verifies a group with no alternatives
// bucket (glutes) draws from the default pool.
func TestSubstituteFallsBackToDefault(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	defaultNames := make(map[string]bool)
	for _, alt := range cat.Alternatives(catalog.DefaultAlternativesKey) {
		defaultNames[alt.Name] = true
	}

	g := NewGenerator(cat, Options{Rand: rand.New(rand.NewPCG(11, 1))})
	got := g.Substitute(Exercise{Name: "Glute Bridges", MuscleGroup: "Glutes"})
	if !defaultNames[got.Name] {
		t.Errorf("%q is not from the default pool", got.Name)
	}
}

// TestSubstituteUnknownGroup verifies an unrecognized muscle group label
// is treated as the default bucket rather than an error.
func TestSubstituteUnknownGroup(t *testing.T) {
	g := newTestGenerator(t, Options{})
	got := g.Substitute(Exercise{Name: "Mystery Move", MuscleGroup: "Obliques"})
	if got.Name == "Mystery Move" || got.Name == "" {
		t.Errorf("Name = %q, want a default-pool replacement", got.Name)
	}
}

// TestPickExcluding verifies the exclusion filter and the exhausted-pool case.
func TestPickExcluding(t *testing.T) {
	g := newTestGenerator(t, Options{})

	pool := []catalog.Alternative{
		{Name: "Plank", Equipment: "Bodyweight", MuscleGroup: "Core"},
		{Name: "Crunches", Equipment: "Bodyweight", MuscleGroup: "Core"},
	}
	got, ok := g.pickExcluding(pool, "Plank")
	if !ok {
		t.Fatal("pickExcluding reported an empty pool")
	}
	if got.Name != "Crunches" {
		t.Errorf("got %q, want %q", got.Name, "Crunches")
	}

	if _, ok := g.pickExcluding(pool[:1], "Plank"); ok {
		t.Error("pickExcluding found a candidate in an exhausted pool")
	}
	if _, ok := g.pickExcluding(nil, "anything"); ok {
		t.Error("pickExcluding found a candidate in a nil pool")
	}
}
