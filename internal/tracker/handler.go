package tracker

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/httpx"
	"github.com/remetra/backend/internal/middleware"
	"github.com/remetra/backend/internal/models"
)

// Handler holds the tracker HTTP handlers. All routes sit behind
// middleware.RequireAuth, so the username is always on the context.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// idParam parses the {id} URL parameter; a non-uuid id is a 400.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "id must be a valid uuid")
		return uuid.Nil, false
	}
	return id, true
}

func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrDuplicateName):
		httpx.WriteError(w, http.StatusConflict, "a food with that name already exists")
	default:
		slog.Error("tracker request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// ── Foods ────────────────────────────────────────────────

func (h *Handler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var in models.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	food, err := h.svc.CreateFood(r.Context(), middleware.Username(r.Context()), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, food)
}

func (h *Handler) GetFood(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	food, err := h.svc.GetFood(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, food)
}

func (h *Handler) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.svc.ListFoods(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foods)
}

func (h *Handler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in models.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	food, err := h.svc.UpdateFood(r.Context(), id, in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, food)
}

func (h *Handler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	food, err := h.svc.DeleteFood(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, food)
}

// ── Symptoms ─────────────────────────────────────────────

func (h *Handler) CreateSymptom(w http.ResponseWriter, r *http.Request) {
	var in models.SymptomInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	sym, err := h.svc.CreateSymptom(r.Context(), middleware.Username(r.Context()), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sym)
}

func (h *Handler) GetSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	sym, err := h.svc.GetSymptom(r.Context(), middleware.Username(r.Context()), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sym)
}

func (h *Handler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.svc.ListSymptoms(r.Context(), middleware.Username(r.Context()))
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, symptoms)
}

func (h *Handler) UpdateSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in models.SymptomInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	sym, err := h.svc.UpdateSymptom(r.Context(), middleware.Username(r.Context()), id, in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sym)
}

func (h *Handler) DeleteSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	sym, err := h.svc.DeleteSymptom(r.Context(), middleware.Username(r.Context()), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sym)
}

// ── Symptom logs ─────────────────────────────────────────

func (h *Handler) CreateSymptomLog(w http.ResponseWriter, r *http.Request) {
	var in models.SymptomLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.svc.CreateSymptomLog(r.Context(), middleware.Username(r.Context()), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, log)
}

func (h *Handler) GetSymptomLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	log, err := h.svc.GetSymptomLog(r.Context(), middleware.Username(r.Context()), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) ListSymptomLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListSymptomLogs(r.Context(), middleware.Username(r.Context()))
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
}

func (h *Handler) UpdateSymptomLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in models.SymptomLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.svc.UpdateSymptomLog(r.Context(), middleware.Username(r.Context()), id, in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) DeleteSymptomLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	log, err := h.svc.DeleteSymptomLog(r.Context(), middleware.Username(r.Context()), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, log)
}

// ── Food logs ────────────────────────────────────────────

func (h *Handler) CreateFoodLog(w http.ResponseWriter, r *http.Request) {
	var in models.FoodLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.svc.CreateFoodLog(r.Context(), middleware.Username(r.Context()), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, log)
}

func (h *Handler) GetFoodLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	log, err := h.svc.GetFoodLog(r.Context(), middleware.Username(r.Context()), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) ListFoodLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.ListFoodLogs(r.Context(), middleware.Username(r.Context()))
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
}

func (h *Handler) UpdateFoodLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in models.FoodLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log, err := h.svc.UpdateFoodLog(r.Context(), middleware.Username(r.Context()), id, in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, log)
}

func (h *Handler) DeleteFoodLog(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	log, err := h.svc.DeleteFoodLog(r.Context(), middleware.Username(r.Context()), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, log)
}
