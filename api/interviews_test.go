package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository/mock"
)

func TestCreateInterview(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		check      func(t *testing.T, iv *models.Interview)
	}{
		{
			name:       "InvalidJSON",
			body:       "not a json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingTitle",
			body:       map[string]any{"type": "Technical", "difficulty": "Easy", "durationMinutes": 30},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingDifficulty",
			body:       map[string]any{"title": "T", "type": "Technical", "durationMinutes": 30},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ZeroDuration",
			body:       map[string]any{"title": "T", "type": "Technical", "difficulty": "Easy", "durationMinutes": 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadVisibility",
			body:       map[string]any{"title": "T", "type": "Technical", "difficulty": "Easy", "durationMinutes": 30, "visibility": "Hidden"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "DefaultsToPrivate",
			body:       map[string]any{"title": "T", "type": "Technical", "difficulty": "Easy", "durationMinutes": 30},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, iv *models.Interview) {
				if iv.Visibility != models.VisibilityPrivate {
					t.Fatalf("expected Private default, got %q", iv.Visibility)
				}
				if iv.ID == 0 || iv.OwnerID == 0 {
					t.Fatalf("expected id and owner set, got %#v", iv)
				}
			},
		},
		{
			name: "PublicWithOptionalFields",
			body: map[string]any{
				"title": "Backend loop", "type": "Technical", "jobRole": "Go engineer",
				"difficulty": "Hard", "keySkills": "go,sql", "durationMinutes": 45,
				"description": "deep dive", "visibility": "Public",
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, iv *models.Interview) {
				if iv.Visibility != models.VisibilityPublic || iv.JobRole != "Go engineer" || iv.KeySkills != "go,sql" {
					t.Fatalf("unexpected interview: %#v", iv)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mock.NewMocks()
			_, token := seedUser(t, m, "Ana", "ana@x.com", "longenough1")
			r := newTestRouter(t, m, "")

			rec := doRequest(t, r, http.MethodPost, "/api/interviews", token, tc.body)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.check != nil {
				var iv models.Interview
				decodeBody(t, rec, &iv)
				tc.check(t, &iv)
			}
		})
	}
}

func TestCreateInterview_RequiresAuth(t *testing.T) {
	m := mock.NewMocks()
	r := newTestRouter(t, m, "")

	rec := doRequest(t, r, http.MethodPost, "/api/interviews", "",
		map[string]any{"title": "T", "type": "Technical", "difficulty": "Easy", "durationMinutes": 30})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestListInterviews_OwnUnionPublic(t *testing.T) {
	m := mock.NewMocks()
	anaID, anaToken := seedUser(t, m, "Ana", "ana@x.com", "longenough1")
	bobID, _ := seedUser(t, m, "Bob", "bob@x.com", "longenough1")

	seedInterview(t, m, anaID, "ana-private", models.VisibilityPrivate)
	anaPub := seedInterview(t, m, anaID, "ana-public", models.VisibilityPublic)
	seedInterview(t, m, bobID, "bob-private", models.VisibilityPrivate)
	bobPub := seedInterview(t, m, bobID, "bob-public", models.VisibilityPublic)

	r := newTestRouter(t, m, "")

	// anonymous public listing
	rec := doRequest(t, r, http.MethodGet, "/api/interviews/public", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("public list status = %d", rec.Code)
	}
	var pub []models.Interview
	decodeBody(t, rec, &pub)
	if len(pub) != 2 {
		t.Fatalf("expected 2 public interviews, got %d", len(pub))
	}
	for _, iv := range pub {
		if iv.Visibility != models.VisibilityPublic {
			t.Fatalf("private interview leaked into public list: %#v", iv)
		}
	}

	// authenticated listing: own plus public, each exactly once
	rec = doRequest(t, r, http.MethodGet, "/api/interviews", anaToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var vis []models.Interview
	decodeBody(t, rec, &vis)
	if len(vis) != 3 {
		t.Fatalf("expected 3 visible interviews, got %d: %#v", len(vis), vis)
	}
	counts := map[int64]int{}
	for _, iv := range vis {
		counts[iv.ID]++
	}
	if counts[anaPub] != 1 || counts[bobPub] != 1 {
		t.Fatalf("expected each public interview exactly once, got %v", counts)
	}
}

func TestGetInterview_VisibilityPredicate(t *testing.T) {
	m := mock.NewMocks()
	anaID, anaToken := seedUser(t, m, "Ana", "ana@x.com", "longenough1")
	bobID, _ := seedUser(t, m, "Bob", "bob@x.com", "longenough1")

	anaPriv := seedInterview(t, m, anaID, "ana-private", models.VisibilityPrivate)
	bobPriv := seedInterview(t, m, bobID, "bob-private", models.VisibilityPrivate)
	bobPub := seedInterview(t, m, bobID, "bob-public", models.VisibilityPublic)

	r := newTestRouter(t, m, "")

	// own private: visible
	rec := doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/interviews/%d", anaPriv), anaToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("own private status = %d", rec.Code)
	}

	// someone else's public: visible
	rec = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/interviews/%d", bobPub), anaToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("other public status = %d", rec.Code)
	}

	// someone else's private: indistinguishable from missing
	rec = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/interviews/%d", bobPriv), anaToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("other private status = %d, want 404", rec.Code)
	}

	rec = doRequest(t, r, http.MethodGet, "/api/interviews/99999", anaToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want 404", rec.Code)
	}
}

func TestUpdateDeleteInterview_OwnerScoped(t *testing.T) {
	m := mock.NewMocks()
	anaID, anaToken := seedUser(t, m, "Ana", "ana@x.com", "longenough1")
	_, bobToken := seedUser(t, m, "Bob", "bob@x.com", "longenough1")

	id := seedInterview(t, m, anaID, "T", models.VisibilityPrivate)
	r := newTestRouter(t, m, "")

	// update by owner
	rec := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/interviews/%d", id), anaToken,
		map[string]any{"details": map[string]any{"title": "T2"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("owner update status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var iv models.Interview
	decodeBody(t, rec, &iv)
	if iv.Title != "T2" {
		t.Fatalf("expected updated title, got %q", iv.Title)
	}

	// missing details object
	rec = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/interviews/%d", id), anaToken, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("no-details update status = %d, want 400", rec.Code)
	}

	// update and delete by non-owner: 404, never 403
	rec = doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/interviews/%d", id), bobToken,
		map[string]any{"details": map[string]any{"title": "hax"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign update status = %d, want 404", rec.Code)
	}
	rec = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/interviews/%d", id), bobToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign delete status = %d, want 404", rec.Code)
	}

	// delete by owner, then the interview is gone
	rec = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/interviews/%d", id), anaToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d", rec.Code)
	}
	rec = doRequest(t, r, http.MethodGet, fmt.Sprintf("/api/interviews/%d", id), anaToken, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", rec.Code)
	}
}

func seedInterview(t *testing.T, m *mock.Mocks, ownerID int64, title, visibility string) int64 {
	t.Helper()
	id, err := m.Interviews.CreateInterview(t.Context(), &models.Interview{
		OwnerID: ownerID, Title: title, Type: "Technical", Difficulty: "Easy",
		DurationMinutes: 30, Visibility: visibility,
	})
	if err != nil {
		t.Fatalf("seed interview: %v", err)
	}
	return id
}
