package handler

import (
	"advisoryboard/internal/model"
	"advisoryboard/internal/service"
	"advisoryboard/internal/transport/rest/middleware"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// EvaluationHandler handles idea evaluation endpoints
type EvaluationHandler struct {
	evalSvc *service.EvaluationService
	logger  *zap.Logger
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evalSvc *service.EvaluationService, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{evalSvc: evalSvc, logger: logger}
}

// Ask handles POST /ask, the unauthenticated form that stores nothing
func (h *EvaluationHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.evalSvc.Evaluate(r.Context(), req.Idea)
	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("Evaluation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Create handles POST /v1/evaluations
func (h *EvaluationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.EvaluationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.evalSvc.Submit(r.Context(), userID, req.Idea)
	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("Evaluation failed", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, model.EvaluationResponse{
		ID:               record.ID,
		EvaluationReport: record.Report,
		DurationMS:       record.DurationMS,
	})
}

// List handles GET /v1/evaluations
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	records, err := h.evalSvc.List(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("List evaluations failed", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"evaluations": records})
}

// Get handles GET /v1/evaluations/{id}
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	record, err := h.evalSvc.Get(r.Context(), userID, id)
	if errors.Is(err, service.ErrEvaluationNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("Get evaluation failed", zap.String("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// Personas handles GET /v1/personas
func (h *EvaluationHandler) Personas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"personas": h.evalSvc.Personas().All()})
}
