package repository

import (
	"context"
	"errors"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrUserNotFound is returned by CreateResultForUser when the owner id does
// not resolve to an existing user. The half-created result is rolled back.
var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// AttachResult appends a result reference to the user's set. Attaching the
	// same pair twice is a no-op.
	AttachResult(ctx context.Context, userID, resultID int64) error
	ListResultsByUser(ctx context.Context, userID int64) ([]models.Result, error)
}

type InterviewRepo interface {
	CreateInterview(ctx context.Context, iv *models.Interview) (int64, error)
	// GetVisible returns the interview when the requester owns it or it is
	// Public; otherwise (nil, nil). Not-owned and nonexistent are
	// indistinguishable to the caller.
	GetVisible(ctx context.Context, id, requesterID int64) (*models.Interview, error)
	ListVisible(ctx context.Context, requesterID int64) ([]models.Interview, error)
	ListPublic(ctx context.Context) ([]models.Interview, error)
	// UpdateInterview applies the non-nil fields of details to the requester's
	// own interview. Returns (nil, nil) when no owned row matches.
	UpdateInterview(ctx context.Context, id, ownerID int64, details *models.InterviewDetails) (*models.Interview, error)
	// DeleteInterview removes the requester's own interview. Returns false
	// when no owned row matches.
	DeleteInterview(ctx context.Context, id, ownerID int64) (bool, error)
}

type ResultRepo interface {
	// CreateResultForUser stores the result and links it to its user in a
	// single transaction. Returns ErrUserNotFound (and persists nothing) when
	// the user does not exist. A result whose RequestID was already stored is
	// returned as-is instead of being inserted again.
	CreateResultForUser(ctx context.Context, res *models.Result) (*models.Result, error)
	GetResultByRequestID(ctx context.Context, requestID string) (*models.Result, error)
}
