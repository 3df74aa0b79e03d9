package catalog

import "strings"

// MuscleGroup is a closed set of body-region keys used as the primary
// catalog dimension. Keys match the lowercase snake_case form users
// select in the preference form.
type MuscleGroup string

const (
	MuscleFullBody  MuscleGroup = "full_body"
	MuscleUpperBody MuscleGroup = "upper_body"
	MuscleLowerBody MuscleGroup = "lower_body"
	MuscleCore      MuscleGroup = "core"
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleGlutes    MuscleGroup = "glutes"
)

// MuscleGroups lists every selectable muscle group in form display order.
// Glutes is selectable but has no exercise bucket of its own; the
// generator skips it and tops the routine up in the fill phase.
var MuscleGroups = []MuscleGroup{
	MuscleFullBody,
	MuscleUpperBody,
	MuscleLowerBody,
	MuscleCore,
	MuscleChest,
	MuscleBack,
	MuscleShoulders,
	MuscleArms,
	MuscleLegs,
	MuscleGlutes,
}

var muscleLabels = map[MuscleGroup]string{
	MuscleFullBody:  "Full Body",
	MuscleUpperBody: "Upper Body",
	MuscleLowerBody: "Lower Body",
	MuscleCore:      "Core",
	MuscleChest:     "Chest",
	MuscleBack:      "Back",
	MuscleShoulders: "Shoulders",
	MuscleArms:      "Arms",
	MuscleLegs:      "Legs",
	MuscleGlutes:    "Glutes",
}

// Label returns the display form of the muscle group ("Full Body" for
// full_body). Unknown groups fall back to "Full Body".
func (m MuscleGroup) Label() string {
	if l, ok := muscleLabels[m]; ok {
		return l
	}
	return "Full Body"
}

// ParseMuscleGroup maps a user-supplied key or display label to a
// MuscleGroup. Accepts both "upper_body" and "Upper Body" forms.
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	key := MuscleGroup(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	_, ok := muscleLabels[key]
	return key, ok
}

// Equipment is a closed set of equipment keys selecting the sub-bucket
// under a muscle group.
type Equipment string

const (
	EquipmentBodyweight      Equipment = "bodyweight"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentKettlebell      Equipment = "kettlebell"
	EquipmentResistanceBands Equipment = "resistance_bands"
	EquipmentPullUpBar       Equipment = "pull_up_bar"
	EquipmentBench           Equipment = "bench"
	EquipmentCableMachine    Equipment = "cable_machine"
)

// EquipmentOptions lists every selectable equipment type in form display order.
var EquipmentOptions = []Equipment{
	EquipmentBodyweight,
	EquipmentDumbbells,
	EquipmentBarbell,
	EquipmentKettlebell,
	EquipmentResistanceBands,
	EquipmentPullUpBar,
	EquipmentBench,
	EquipmentCableMachine,
}

var equipmentLabels = map[Equipment]string{
	EquipmentBodyweight:      "Bodyweight",
	EquipmentDumbbells:       "Dumbbells",
	EquipmentBarbell:         "Barbell",
	EquipmentKettlebell:      "Kettlebell",
	EquipmentResistanceBands: "Resistance Bands",
	EquipmentPullUpBar:       "Pull-up Bar",
	EquipmentBench:           "Bench",
	EquipmentCableMachine:    "Cable Machine",
}

// Label returns the display form of the equipment key.
func (e Equipment) Label() string {
	if l, ok := equipmentLabels[e]; ok {
		return l
	}
	return "Bodyweight"
}

// ParseEquipment maps a user-supplied key or display label to an Equipment value.
func ParseEquipment(s string) (Equipment, bool) {
	key := Equipment(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_"))
	if key == "pull-up_bar" {
		key = EquipmentPullUpBar
	}
	_, ok := equipmentLabels[key]
	return key, ok
}

// FitnessLevel is the user's self-reported training experience.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// FitnessLevels lists every selectable fitness level.
var FitnessLevels = []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Label returns the capitalized display form ("Beginner").
func (f FitnessLevel) Label() string {
	s := string(f)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseFitnessLevel maps a user-supplied value to a FitnessLevel.
func ParseFitnessLevel(s string) (FitnessLevel, bool) {
	switch FitnessLevel(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBeginner:
		return LevelBeginner, true
	case LevelIntermediate:
		return LevelIntermediate, true
	case LevelAdvanced:
		return LevelAdvanced, true
	}
	return "", false
}

// Durations lists the selectable session lengths in minutes.
var Durations = []string{"15", "30", "45", "60", "90"}

// ValidDuration reports whether d is one of the selectable session lengths.
func ValidDuration(d string) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}
