package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository"
)

var validate = validator.New()

type AuthHandler struct {
	userRepo      repository.UserRepo
	jwtSecret     string
	tokenDuration time.Duration
	bcryptCost    int
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, jwtSecret string, tokenDuration time.Duration, bcryptCost int) *AuthHandler {
	if bcryptCost < bcrypt.DefaultCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{userRepo: ur, jwtSecret: jwtSecret, tokenDuration: tokenDuration, bcryptCost: bcryptCost}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		writeError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	existing, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("signup lookup", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		writeError(w, "User already exists", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		logger.Error("hash password", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	userID, err := h.userRepo.CreateUser(ctx, &user)
	if err != nil {
		// The unique index on email backs up the pre-check under races.
		if strings.Contains(err.Error(), "UNIQUE") {
			writeError(w, "User already exists", http.StatusBadRequest)
			return
		}
		logger.Error("create user", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	token, err := issueToken(userID, h.jwtSecret, h.tokenDuration)
	if err != nil {
		logger.Error("sign token", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{
		Token: token,
		User:  userPayload{ID: userID, Name: user.Name, Email: user.Email},
	}, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		writeError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	user, err := h.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		logger.Error("login lookup", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	// Unknown email and wrong password produce the same response so callers
	// cannot enumerate accounts.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	token, err := issueToken(user.ID, h.jwtSecret, h.tokenDuration)
	if err != nil {
		logger.Error("sign token", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, authResponse{
		Token: token,
		User:  userPayload{ID: user.ID, Name: user.Name, Email: user.Email},
	}, http.StatusOK)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return "Valid email is required"
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		case "gt":
			return fe.Field() + " must be greater than " + fe.Param()
		case "oneof":
			return fe.Field() + " must be one of: " + fe.Param()
		}
		return fe.Field() + " is invalid"
	}
	return "Invalid request"
}
