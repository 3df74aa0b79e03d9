package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/fitgen/internal/catalog"
	"github.com/claude/fitgen/internal/routine"
)

// GenerateRequest is the preference payload submitted by the form.
type GenerateRequest struct {
	Duration      string   `json:"duration"`
	FitnessLevel  string   `json:"fitness_level"`
	Equipment     []string `json:"equipment"`
	TargetMuscles []string `json:"target_muscles"`
}

func (s *Server) handleGenerateRoutine(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	// Capture-layer validation. The generator would default these, but
	// an empty selection is a user error and gets a user-facing message.
	if len(req.Equipment) == 0 || len(req.TargetMuscles) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "must select at least one equipment option and one target muscle group",
		})
		return
	}
	if req.Duration != "" && !catalog.ValidDuration(req.Duration) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid duration: " + req.Duration})
		return
	}

	pref := routine.Preference{Duration: req.Duration}

	level, ok := catalog.ParseFitnessLevel(req.FitnessLevel)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid fitness level: " + req.FitnessLevel})
		return
	}
	pref.FitnessLevel = level

	for _, e := range req.Equipment {
		equip, ok := catalog.ParseEquipment(e)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown equipment: " + e})
			return
		}
		pref.Equipment = append(pref.Equipment, equip)
	}
	for _, m := range req.TargetMuscles {
		group, ok := catalog.ParseMuscleGroup(m)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown muscle group: " + m})
			return
		}
		pref.TargetMuscles = append(pref.TargetMuscles, group)
	}

	generated := s.gen.Generate(pref)
	s.log.Info("routine generated",
		"routine_id", generated.ID,
		"title", generated.Title,
		"exercises", len(generated.Exercises),
	)
	writeJSON(w, http.StatusOK, generated)
}

// SwapRequest carries the current value of the slot being swapped.
type SwapRequest struct {
	Exercise routine.Exercise `json:"exercise"`
}

func (s *Server) handleSwapExercise(w http.ResponseWriter, r *http.Request) {
	var req SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Exercise.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise.name is required"})
		return
	}

	replacement := s.gen.Substitute(req.Exercise)
	writeJSON(w, http.StatusOK, replacement)
}

type option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// handleOptions serves the form vocabulary so the frontend renders from
// the same closed enums the generator validates against.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	durations := make([]option, 0, len(catalog.Durations))
	for _, d := range catalog.Durations {
		durations = append(durations, option{ID: d, Label: d + " minutes"})
	}
	levels := make([]option, 0, len(catalog.FitnessLevels))
	for _, l := range catalog.FitnessLevels {
		levels = append(levels, option{ID: string(l), Label: l.Label()})
	}
	equipment := make([]option, 0, len(catalog.EquipmentOptions))
	for _, e := range catalog.EquipmentOptions {
		equipment = append(equipment, option{ID: string(e), Label: e.Label()})
	}
	muscles := make([]option, 0, len(catalog.MuscleGroups))
	for _, m := range catalog.MuscleGroups {
		muscles = append(muscles, option{ID: string(m), Label: m.Label()})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"durations":      durations,
		"fitness_levels": levels,
		"equipment":      equipment,
		"muscle_groups":  muscles,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
