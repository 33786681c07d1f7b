package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mk-tools/brand-atlas/pkg/models/api"
	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	goalsvc "github.com/mk-tools/brand-atlas/pkg/services/goal"
)

type Handler struct {
	tracker *goalsvc.Tracker
}

func NewHandler(tracker *goalsvc.Tracker) *Handler {
	return &Handler{tracker: tracker}
}

func (h *Handler) GetObjectiveStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	objectiveID := chi.URLParam(r, "objective")

	ev, err := h.tracker.Evaluate(ctx, objectiveID)
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	writeJSON(w, r, mapEvaluation(*ev))
}

func (h *Handler) ListObjectiveStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entityID := chi.URLParam(r, "entity")

	evals, err := h.tracker.EvaluateAll(ctx, entityID)
	if err != nil {
		writeTrackerError(w, r, err)
		return
	}

	response := make([]api.GoalStatus, 0, len(evals))
	for _, ev := range evals {
		response = append(response, mapEvaluation(ev))
	}
	writeJSON(w, r, response)
}

func mapEvaluation(ev goalsvc.Evaluation) api.GoalStatus {
	return api.GoalStatus{
		ObjectiveID: ev.Goal.ID,
		Name:        ev.Goal.Name,
		Progress:    ev.Progress,
		ElapsedPct:  ev.ElapsedPct,
		Status:      string(ev.Status),
	}
}

func writeTrackerError(w http.ResponseWriter, r *http.Request, err error) {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		writeError(w, r, http.StatusBadRequest, cfgErr.Error())
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("objective evaluation failed")
	writeError(w, r, http.StatusInternalServerError, "objective evaluation failed")
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Error: msg}); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode error response")
	}
}
