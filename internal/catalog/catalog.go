// Package catalog holds the static exercise reference data: the muscle
// group × equipment exercise tables, the substitute candidates, and the
// name → illustration map. All of it is embedded at build time and
// loaded once at startup; the Catalog exposes no mutation API.
package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// DefaultAlternativesKey is the fallback bucket consulted when a muscle
// group has no alternatives of its own or its pool is exhausted.
const DefaultAlternativesKey = "default"

// ExerciseTemplate is one catalog entry. Reps and Rest are display
// strings because some entries encode hold times ("20-30 sec") rather
// than rep counts.
type ExerciseTemplate struct {
	Name string `yaml:"name" json:"name"`
	Reps string `yaml:"reps" json:"reps"`
	Sets int    `yaml:"sets" json:"sets"`
	Rest string `yaml:"rest" json:"rest"`
}

// Alternative is one substitute candidate. Equipment and MuscleGroup
// are display labels as authored.
type Alternative struct {
	Name        string `yaml:"name" json:"name"`
	Equipment   string `yaml:"equipment" json:"equipment"`
	MuscleGroup string `yaml:"muscle_group" json:"muscle_group"`
}

// Catalog is the immutable, process-wide exercise reference data.
type Catalog struct {
	exercises    map[MuscleGroup]map[Equipment][]ExerciseTemplate
	alternatives map[string][]Alternative
	groups       []MuscleGroup
	images       map[string]string
	defaultImage string
}

type illustrationsFile struct {
	Default   string            `yaml:"default"`
	Exercises map[string]string `yaml:"exercises"`
}

// Load parses the embedded catalog data and validates every key against
// the closed muscle-group and equipment enums.
func Load() (*Catalog, error) {
	c := &Catalog{
		exercises:    make(map[MuscleGroup]map[Equipment][]ExerciseTemplate),
		alternatives: make(map[string][]Alternative),
		images:       make(map[string]string),
	}

	var rawExercises map[string]map[string][]ExerciseTemplate
	if err := loadYAML("data/exercises.yaml", &rawExercises); err != nil {
		return nil, err
	}
	for groupKey, buckets := range rawExercises {
		group, ok := ParseMuscleGroup(groupKey)
		if !ok {
			return nil, fmt.Errorf("exercises.yaml: unknown muscle group %q", groupKey)
		}
		c.exercises[group] = make(map[Equipment][]ExerciseTemplate, len(buckets))
		for equipKey, templates := range buckets {
			equip, ok := ParseEquipment(equipKey)
			if !ok {
				return nil, fmt.Errorf("exercises.yaml: unknown equipment %q under %q", equipKey, groupKey)
			}
			for _, t := range templates {
				if t.Name == "" || t.Sets <= 0 {
					return nil, fmt.Errorf("exercises.yaml: invalid template %+v under %s/%s", t, groupKey, equipKey)
				}
			}
			c.exercises[group][equip] = templates
		}
		c.groups = append(c.groups, group)
	}
	sort.Slice(c.groups, func(i, j int) bool { return c.groups[i] < c.groups[j] })

	var rawAlternatives map[string][]Alternative
	if err := loadYAML("data/alternatives.yaml", &rawAlternatives); err != nil {
		return nil, err
	}
	for key, alts := range rawAlternatives {
		if key != DefaultAlternativesKey {
			if _, ok := ParseMuscleGroup(key); !ok {
				return nil, fmt.Errorf("alternatives.yaml: unknown muscle group %q", key)
			}
		}
		c.alternatives[key] = alts
	}
	if len(c.alternatives[DefaultAlternativesKey]) == 0 {
		return nil, fmt.Errorf("alternatives.yaml: default bucket is required")
	}

	var imgs illustrationsFile
	if err := loadYAML("data/illustrations.yaml", &imgs); err != nil {
		return nil, err
	}
	if imgs.Default == "" {
		return nil, fmt.Errorf("illustrations.yaml: default URL is required")
	}
	c.defaultImage = imgs.Default
	c.images = imgs.Exercises

	return c, nil
}

func loadYAML(path string, v any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Bucket returns the exercise templates for the given muscle group and
// equipment, or nil when the combination has no bucket.
func (c *Catalog) Bucket(group MuscleGroup, equip Equipment) []ExerciseTemplate {
	return c.exercises[group][equip]
}

// HasBucket reports whether the muscle group has a bucket for the equipment.
func (c *Catalog) HasBucket(group MuscleGroup, equip Equipment) bool {
	return len(c.exercises[group][equip]) > 0
}

// Groups returns the muscle groups present in the exercise tables, in a
// stable order. Selectable groups without a bucket (glutes) are absent.
func (c *Catalog) Groups() []MuscleGroup {
	out := make([]MuscleGroup, len(c.groups))
	copy(out, c.groups)
	return out
}

// Alternatives returns the substitute candidates for the given bucket
// key ("chest", "upper_body", or DefaultAlternativesKey). A missing key
// yields nil; callers fall back to the default bucket.
func (c *Catalog) Alternatives(key string) []Alternative {
	return c.alternatives[key]
}

// ResolveIllustration returns the illustration URL for an exercise
// name. The match is exact and case-sensitive; unmapped names resolve
// to the one fixed default URL, never an empty string.
func (c *Catalog) ResolveIllustration(name string) string {
	if url, ok := c.images[name]; ok {
		return url
	}
	return c.defaultImage
}

// DefaultIllustration returns the fallback illustration URL.
func (c *Catalog) DefaultIllustration() string {
	return c.defaultImage
}
