package routine

import "github.com/claude/fitgen/internal/catalog"

// Substitute replaces a single routine slot with a random alternative
// from the same muscle group, never returning the current name. Only
// Name, Equipment, MuscleGroup, and Illustration change; ID, Sets,
// Reps, and Rest carry over, so a swap changes which exercise fills the
// slot but not how hard it is. When both the specific and the default
// pools are exhausted the exercise comes back unchanged.
func (g *Generator) Substitute(ex Exercise) Exercise {
	key := catalog.DefaultAlternativesKey
	if group, ok := catalog.ParseMuscleGroup(ex.MuscleGroup); ok {
		key = string(group)
	}

	pool := g.catalog.Alternatives(key)
	if len(pool) == 0 {
		pool = g.catalog.Alternatives(catalog.DefaultAlternativesKey)
	}

	alt, ok := g.pickExcluding(pool, ex.Name)
	if !ok && key != catalog.DefaultAlternativesKey {
		alt, ok = g.pickExcluding(g.catalog.Alternatives(catalog.DefaultAlternativesKey), ex.Name)
	}
	if !ok {
		return ex
	}

	ex.Name = alt.Name
	ex.Equipment = alt.Equipment
	ex.MuscleGroup = alt.MuscleGroup
	ex.Illustration = g.catalog.ResolveIllustration(alt.Name)
	return ex
}

// pickExcluding selects uniformly at random from pool, skipping
// candidates with the excluded name. Reports false when the filtered
// pool is empty.
func (g *Generator) pickExcluding(pool []catalog.Alternative, exclude string) (catalog.Alternative, bool) {
	filtered := make([]catalog.Alternative, 0, len(pool))
	for _, alt := range pool {
		if alt.Name != exclude {
			filtered = append(filtered, alt)
		}
	}
	if len(filtered) == 0 {
		return catalog.Alternative{}, false
	}
	return filtered[g.rng.IntN(len(filtered))], true
}
