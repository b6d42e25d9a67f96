package api

import (
	"net/http"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository"
)

type UsersHandler struct {
	userRepo repository.UserRepo
}

func NewUsersHandler(ur repository.UserRepo) *UsersHandler {
	return &UsersHandler{userRepo: ur}
}

// GetUser returns the caller's account with its attached AI results
// populated. The password hash never serializes.
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, "Missing Authorization header", http.StatusUnauthorized)
		return
	}

	user, err := h.userRepo.GetByID(r.Context(), caller.ID)
	if err != nil {
		logger.Error("get user", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	results, err := h.userRepo.ListResultsByUser(r.Context(), user.ID)
	if err != nil {
		logger.Error("list user results", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	user.Results = results

	writeJSON(w, user, http.StatusOK)
}
