package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mk-tools/brand-atlas/pkg/adapters"
	"github.com/mk-tools/brand-atlas/pkg/models/api"
	"github.com/mk-tools/brand-atlas/pkg/models/domain"
	reportsvc "github.com/mk-tools/brand-atlas/pkg/services/report"
)

type Handler struct {
	compiler *reportsvc.Compiler
	reports  reportsvc.Store
}

func NewHandler(compiler *reportsvc.Compiler, reports reportsvc.Store) *Handler {
	return &Handler{compiler: compiler, reports: reports}
}

func (h *Handler) CompileReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entityID := chi.URLParam(r, "entity")

	var req api.CompileReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	compiled, err := h.compiler.Compile(ctx, reportsvc.CompileRequest{
		EntityID:      entityID,
		Cadence:       domain.Cadence(req.Cadence),
		CustomStart:   req.CustomStart,
		CustomEnd:     req.CustomEnd,
		WithNarrative: req.Narrative,
	})
	if err != nil {
		writeCompileError(w, r, err)
		return
	}

	writeJSONStatus(w, r, http.StatusCreated, adapters.MapReportDomainToApi(compiled))
}

func (h *Handler) GetLatestReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entityID := chi.URLParam(r, "entity")
	cadence := r.URL.Query().Get("cadence")
	if cadence == "" {
		writeError(w, r, http.StatusBadRequest, "cadence query parameter is required")
		return
	}

	latest, err := h.reports.GetLatest(ctx, entityID, domain.Cadence(cadence))
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "failed to load report")
		zerolog.Ctx(ctx).Error().Err(err).Str("entity", entityID).Msg("failed to load latest report")
		return
	}
	if latest == nil {
		writeError(w, r, http.StatusNotFound, "no report for this entity and cadence")
		return
	}

	writeJSON(w, r, adapters.MapReportDomainToApi(latest))
}

func (h *Handler) GetCheckin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	entityID := chi.URLParam(r, "entity")

	p, text, err := h.compiler.Checkin(ctx, entityID)
	if err != nil {
		writeCompileError(w, r, err)
		return
	}

	writeJSON(w, r, api.CheckinDigest{
		EntityID: entityID,
		Period:   adapters.MapPeriodDomainToApi(p),
		Text:     text,
	})
}

func writeCompileError(w http.ResponseWriter, r *http.Request, err error) {
	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		writeError(w, r, http.StatusBadRequest, cfgErr.Error())
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("report compilation failed")
	writeError(w, r, http.StatusInternalServerError, "report compilation failed")
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	writeJSONStatus(w, r, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
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
