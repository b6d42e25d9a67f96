package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository"
)

type InterviewsHandler struct {
	interviewRepo repository.InterviewRepo
}

func NewInterviewsHandler(ir repository.InterviewRepo) *InterviewsHandler {
	return &InterviewsHandler{interviewRepo: ir}
}

type createInterviewRequest struct {
	Title           string `json:"title" validate:"required"`
	Type            string `json:"type" validate:"required"`
	JobRole         string `json:"jobRole"`
	Difficulty      string `json:"difficulty" validate:"required"`
	KeySkills       string `json:"keySkills"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	Description     string `json:"description"`
	Visibility      string `json:"visibility" validate:"omitempty,oneof=Private Public"`
}

func (h *InterviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return
	}

	iv := models.Interview{
		OwnerID:         caller.ID,
		Title:           req.Title,
		Type:            req.Type,
		JobRole:         req.JobRole,
		Difficulty:      req.Difficulty,
		KeySkills:       req.KeySkills,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
		Visibility:      req.Visibility, // repository defaults empty to Private
	}

	id, err := h.interviewRepo.CreateInterview(r.Context(), &iv)
	if err != nil {
		logger.Error("create interview", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	stored, err := h.interviewRepo.GetVisible(r.Context(), id, caller.ID)
	if err != nil || stored == nil {
		logger.Error("read back interview", "id", id, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stored, http.StatusCreated)
}

// ListPublic is anonymous: only Public interviews, regardless of caller.
func (h *InterviewsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	items, err := h.interviewRepo.ListPublic(r.Context())
	if err != nil {
		logger.Error("list public interviews", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Interview{}
	}

	writeJSON(w, items, http.StatusOK)
}

// List returns the caller's own interviews plus all Public ones, each at most
// once.
func (h *InterviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return
	}

	items, err := h.interviewRepo.ListVisible(r.Context(), caller.ID)
	if err != nil {
		logger.Error("list interviews", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.Interview{}
	}

	writeJSON(w, items, http.StatusOK)
}

func (h *InterviewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	iv, err := h.interviewRepo.GetVisible(r.Context(), id, caller.ID)
	if err != nil {
		logger.Error("get interview", "id", id, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if iv == nil {
		writeError(w, "Interview not found", http.StatusNotFound)
		return
	}

	writeJSON(w, iv, http.StatusOK)
}

type updateInterviewRequest struct {
	Details *models.InterviewDetails `json:"details"`
}

func (h *InterviewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	var req updateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Details == nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Details.DurationMinutes != nil && *req.Details.DurationMinutes <= 0 {
		writeError(w, "DurationMinutes must be greater than 0", http.StatusBadRequest)
		return
	}

	iv, err := h.interviewRepo.UpdateInterview(r.Context(), id, caller.ID, req.Details)
	if err != nil {
		logger.Error("update interview", "id", id, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if iv == nil {
		// not-owned and nonexistent are deliberately the same outcome
		writeError(w, "Interview not found", http.StatusNotFound)
		return
	}

	writeJSON(w, iv, http.StatusOK)
}

func (h *InterviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, id, ok := h.callerAndID(w, r)
	if !ok {
		return
	}

	deleted, err := h.interviewRepo.DeleteInterview(r.Context(), id, caller.ID)
	if err != nil {
		logger.Error("delete interview", "id", id, "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		writeError(w, "Interview not found", http.StatusNotFound)
		return
	}

	writeJSON(w, messageResponse{Message: "Interview deleted"}, http.StatusOK)
}

func (h *InterviewsHandler) callerAndID(w http.ResponseWriter, r *http.Request) (*models.User, int64, bool) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return nil, 0, false
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "Interview not found", http.StatusNotFound)
		return nil, 0, false
	}

	return caller, id, true
}
