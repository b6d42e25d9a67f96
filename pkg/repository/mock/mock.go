package mock

import (
	"context"
	"sort"
	"strings"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	Users      *UserRepo
	Interviews *InterviewRepo
	Results    *ResultRepo
}

func NewMocks() *Mocks {
	users := &UserRepo{}
	return &Mocks{
		Users:      users,
		Interviews: &InterviewRepo{},
		Results:    &ResultRepo{Users: users},
	}
}

type UserRepo struct {
	Stored    []*models.User
	Links     map[int64][]int64 // user id -> result ids
	ResultsBy map[int64]*models.Result
	nextID    int64

	CreateErr error
	GetErr    error
}

var _ repository.UserRepo = (*UserRepo)(nil)

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *u
	stored.ID = m.nextID
	stored.Email = strings.ToLower(stored.Email)
	m.Stored = append(m.Stored, &stored)
	return stored.ID, nil
}

func (m *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.Stored {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, u := range m.Stored {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) AttachResult(ctx context.Context, userID, resultID int64) error {
	if m.Links == nil {
		m.Links = map[int64][]int64{}
	}
	for _, id := range m.Links[userID] {
		if id == resultID {
			return nil
		}
	}
	m.Links[userID] = append(m.Links[userID], resultID)
	return nil
}

// ListResultsByUser returns newest first, matching the sqlite ordering.
func (m *UserRepo) ListResultsByUser(ctx context.Context, userID int64) ([]models.Result, error) {
	var out []models.Result
	for _, id := range m.Links[userID] {
		if res, ok := m.ResultsBy[id]; ok {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Created != out[j].Created {
			return out[i].Created > out[j].Created
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type InterviewRepo struct {
	Stored []*models.Interview
	nextID int64

	CreateErr error
	ListErr   error
}

var _ repository.InterviewRepo = (*InterviewRepo)(nil)

func (m *InterviewRepo) CreateInterview(ctx context.Context, iv *models.Interview) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *iv
	stored.ID = m.nextID
	if stored.Visibility == "" {
		stored.Visibility = models.VisibilityPrivate
	}
	m.Stored = append(m.Stored, &stored)
	return stored.ID, nil
}

func (m *InterviewRepo) GetVisible(ctx context.Context, id, requesterID int64) (*models.Interview, error) {
	for _, iv := range m.Stored {
		if iv.ID == id && (iv.OwnerID == requesterID || iv.Visibility == models.VisibilityPublic) {
			cp := *iv
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *InterviewRepo) ListVisible(ctx context.Context, requesterID int64) ([]models.Interview, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Interview
	for _, iv := range m.Stored {
		if iv.OwnerID == requesterID || iv.Visibility == models.VisibilityPublic {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (m *InterviewRepo) ListPublic(ctx context.Context) ([]models.Interview, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Interview
	for _, iv := range m.Stored {
		if iv.Visibility == models.VisibilityPublic {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (m *InterviewRepo) UpdateInterview(ctx context.Context, id, ownerID int64, details *models.InterviewDetails) (*models.Interview, error) {
	for _, iv := range m.Stored {
		if iv.ID != id || iv.OwnerID != ownerID {
			continue
		}
		if details.Title != nil {
			iv.Title = *details.Title
		}
		if details.Type != nil {
			iv.Type = *details.Type
		}
		if details.JobRole != nil {
			iv.JobRole = *details.JobRole
		}
		if details.Difficulty != nil {
			iv.Difficulty = *details.Difficulty
		}
		if details.KeySkills != nil {
			iv.KeySkills = *details.KeySkills
		}
		if details.DurationMinutes != nil {
			iv.DurationMinutes = *details.DurationMinutes
		}
		if details.Description != nil {
			iv.Description = *details.Description
		}
		cp := *iv
		return &cp, nil
	}
	return nil, nil
}

func (m *InterviewRepo) DeleteInterview(ctx context.Context, id, ownerID int64) (bool, error) {
	for i, iv := range m.Stored {
		if iv.ID == id && iv.OwnerID == ownerID {
			m.Stored = append(m.Stored[:i], m.Stored[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type ResultRepo struct {
	Users  *UserRepo
	Stored []*models.Result
	nextID int64

	CreateErr error
}

var _ repository.ResultRepo = (*ResultRepo)(nil)

func (m *ResultRepo) CreateResultForUser(ctx context.Context, res *models.Result) (*models.Result, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if res.RequestID != "" {
		for _, r := range m.Stored {
			if r.RequestID == res.RequestID {
				cp := *r
				return &cp, nil
			}
		}
	}
	owner, err := m.Users.GetByID(ctx, res.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, repository.ErrUserNotFound
	}
	m.nextID++
	stored := *res
	stored.ID = m.nextID
	if stored.Recommendation == "" {
		stored.Recommendation = "N/A"
	}
	m.Stored = append(m.Stored, &stored)
	if m.Users.ResultsBy == nil {
		m.Users.ResultsBy = map[int64]*models.Result{}
	}
	m.Users.ResultsBy[stored.ID] = &stored
	if err := m.Users.AttachResult(ctx, stored.UserID, stored.ID); err != nil {
		return nil, err
	}
	cp := stored
	return &cp, nil
}

func (m *ResultRepo) GetResultByRequestID(ctx context.Context, requestID string) (*models.Result, error) {
	if requestID == "" {
		return nil, nil
	}
	for _, r := range m.Stored {
		if r.RequestID == requestID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}
