package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/api"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository/mock"
)

const testSecret = "testsecret"

// newTestRouter wires the handlers against mocks the same way SetupRoutes
// wires them against sqlite.
func newTestRouter(t *testing.T, m *mock.Mocks, serviceKey string) *mux.Router {
	t.Helper()

	r := mux.NewRouter()

	authHandler := api.NewAuthHandler(m.Users, testSecret, time.Hour, bcrypt.DefaultCost)
	usersHandler := api.NewUsersHandler(m.Users)
	interviewsHandler := api.NewInterviewsHandler(m.Interviews)
	resultsHandler, err := api.NewResultsHandler(m.Results, serviceKey)
	if err != nil {
		t.Fatalf("NewResultsHandler: %v", err)
	}

	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/interviews/public", interviewsHandler.ListPublic).Methods("GET")
	r.HandleFunc("/api/ai-results", resultsHandler.Ingest).Methods("POST")

	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(api.AuthMiddleware(testSecret, m.Users))
	protected.HandleFunc("/user", usersHandler.GetUser).Methods("GET")
	protected.HandleFunc("/interviews", interviewsHandler.Create).Methods("POST")
	protected.HandleFunc("/interviews", interviewsHandler.List).Methods("GET")
	protected.HandleFunc("/interviews/{id:[0-9]+}", interviewsHandler.Get).Methods("GET")
	protected.HandleFunc("/interviews/{id:[0-9]+}", interviewsHandler.Update).Methods("PUT")
	protected.HandleFunc("/interviews/{id:[0-9]+}", interviewsHandler.Delete).Methods("DELETE")

	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewBuffer(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(v any) ([]byte, error) {
	return json.Marshal(v)
}

// newServiceRequest builds an ingestion request carrying the shared service
// key instead of a user token.
func newServiceRequest(t *testing.T, path string, payload []byte, key string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	if key != "" {
		req.Header.Set("X-Service-Key", key)
	}
	return req
}

func doRawRequest(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	mustUnmarshal(t, rec.Body.Bytes(), v)
}

func mustUnmarshal(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("unmarshal response %q: %v", b, err)
	}
}

// seedUser registers a user directly in the mock store and returns a valid
// token for it.
func seedUser(t *testing.T, m *mock.Mocks, name, email, password string) (int64, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	id, err := m.Users.CreateUser(t.Context(), &models.User{Name: name, Email: email, PasswordHash: string(hash)})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id, mintToken(t, id, time.Hour)
}

func mintToken(t *testing.T, userID int64, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	s, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
