package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/claude/fitgen/internal/catalog"
	"github.com/claude/fitgen/internal/routine"
	"github.com/mark3labs/mcp-go/mcp"
)

// splitList parses a comma-separated tool argument into trimmed,
// non-empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// --- Tool definitions ---

var toolGenerateRoutine = mcp.NewTool("generate_routine",
	mcp.WithDescription("Generate a personalized workout routine. Returns a titled, ordered list of exercises with sets, reps, rest periods, and illustrations."),
	mcp.WithString("fitness_level", mcp.Required(), mcp.Description("Training experience"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("equipment", mcp.Required(), mcp.Description("Comma-separated equipment keys (e.g. 'bodyweight,dumbbells,barbell,resistance_bands,pull_up_bar,cable_machine')")),
	mcp.WithString("target_muscles", mcp.Required(), mcp.Description("Comma-separated muscle group keys (e.g. 'chest,back,legs,core,full_body,upper_body,lower_body,shoulders,arms')")),
	mcp.WithString("duration", mcp.Description("Session length in minutes. Defaults to 30."), mcp.Enum("15", "30", "45", "60", "90")),
)

var toolSwapExercise = mcp.NewTool("swap_exercise",
	mcp.WithDescription("Swap one exercise for a random alternative from the same muscle group. Never returns the same exercise name; sets, reps, and rest carry over unchanged."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Current exercise name (e.g. 'Plank')")),
	mcp.WithString("muscle_group", mcp.Required(), mcp.Description("The exercise's muscle group label (e.g. 'Core', 'Upper Body')")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog exercise templates for a muscle group, optionally filtered by equipment."),
	mcp.WithString("muscle_group", mcp.Required(), mcp.Description("Muscle group key (e.g. 'chest')")),
	mcp.WithString("equipment", mcp.Description("Equipment key (e.g. 'dumbbells'). When omitted, lists every bucket for the group.")),
)

// --- Tool handlers ---

func (h *handlers) generateRoutine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	levelStr, err := req.RequireString("fitness_level")
	if err != nil {
		return mcp.NewToolResultError("fitness_level parameter is required"), nil
	}
	level, ok := catalog.ParseFitnessLevel(levelStr)
	if !ok {
		return mcp.NewToolResultError("invalid fitness_level: " + levelStr), nil
	}

	equipStr, err := req.RequireString("equipment")
	if err != nil {
		return mcp.NewToolResultError("equipment parameter is required"), nil
	}
	musclesStr, err := req.RequireString("target_muscles")
	if err != nil {
		return mcp.NewToolResultError("target_muscles parameter is required"), nil
	}

	pref := routine.Preference{
		Duration:     req.GetString("duration", "30"),
		FitnessLevel: level,
	}
	for _, e := range splitList(equipStr) {
		equip, ok := catalog.ParseEquipment(e)
		if !ok {
			return mcp.NewToolResultError("unknown equipment: " + e), nil
		}
		pref.Equipment = append(pref.Equipment, equip)
	}
	for _, m := range splitList(musclesStr) {
		group, ok := catalog.ParseMuscleGroup(m)
		if !ok {
			return mcp.NewToolResultError("unknown muscle group: " + m), nil
		}
		pref.TargetMuscles = append(pref.TargetMuscles, group)
	}
	if len(pref.Equipment) == 0 || len(pref.TargetMuscles) == 0 {
		return mcp.NewToolResultError("at least one equipment item and one target muscle group are required"), nil
	}

	generated := h.gen.Generate(pref)
	h.log.Info("mcp generate_routine", "routine_id", generated.ID, "exercises", len(generated.Exercises))

	result, err := mcp.NewToolResultJSON(generated)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) swapExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	group, err := req.RequireString("muscle_group")
	if err != nil {
		return mcp.NewToolResultError("muscle_group parameter is required"), nil
	}

	replacement := h.gen.Substitute(routine.Exercise{Name: name, MuscleGroup: group})
	if replacement.Name == name {
		return mcp.NewToolResultError("no alternative available for " + name), nil
	}

	result, err := mcp.NewToolResultJSON(replacement)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupStr, err := req.RequireString("muscle_group")
	if err != nil {
		return mcp.NewToolResultError("muscle_group parameter is required"), nil
	}
	group, ok := catalog.ParseMuscleGroup(groupStr)
	if !ok {
		return mcp.NewToolResultError("unknown muscle group: " + groupStr), nil
	}

	buckets := make(map[string][]catalog.ExerciseTemplate)
	if equipStr := req.GetString("equipment", ""); equipStr != "" {
		equip, ok := catalog.ParseEquipment(equipStr)
		if !ok {
			return mcp.NewToolResultError("unknown equipment: " + equipStr), nil
		}
		buckets[string(equip)] = h.cat.Bucket(group, equip)
	} else {
		for _, equip := range catalog.EquipmentOptions {
			if templates := h.cat.Bucket(group, equip); len(templates) > 0 {
				buckets[string(equip)] = templates
			}
		}
	}

	result, err := mcp.NewToolResultJSON(buckets)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// --- Resource handlers ---

func (h *handlers) options(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	opts := map[string]any{
		"durations":      catalog.Durations,
		"fitness_levels": catalog.FitnessLevels,
		"equipment":      catalog.EquipmentOptions,
		"muscle_groups":  catalog.MuscleGroups,
	}
	return jsonResource(req, opts)
}

func (h *handlers) alternatives(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	alts := make(map[string][]catalog.Alternative)
	for _, group := range catalog.MuscleGroups {
		if pool := h.cat.Alternatives(string(group)); len(pool) > 0 {
			alts[string(group)] = pool
		}
	}
	alts[catalog.DefaultAlternativesKey] = h.cat.Alternatives(catalog.DefaultAlternativesKey)
	return jsonResource(req, alts)
}

func jsonResource(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
