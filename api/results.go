package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/qri-io/jsonschema"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/models"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/pkg/repository"
)

//go:embed result_ingest_v1.json
var resultIngestSchema []byte

// maxIngestBody caps a single ingestion payload; the endpoint is reachable
// without a user token when no service key is configured.
const maxIngestBody = 1 << 20

// ResultsHandler ingests evaluation outcomes pushed by the external AI
// service and links them to the user they belong to.
type ResultsHandler struct {
	resultRepo repository.ResultRepo
	schema     *jsonschema.Schema
	serviceKey string
}

// NewResultsHandler compiles the embedded payload schema once; handlers share it.
func NewResultsHandler(rr repository.ResultRepo, serviceKey string) (*ResultsHandler, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(resultIngestSchema, rs); err != nil {
		return nil, fmt.Errorf("compile result ingest schema: %w", err)
	}
	return &ResultsHandler{resultRepo: rr, schema: rs, serviceKey: serviceKey}, nil
}

type ingestResultRequest struct {
	UserID         int64  `json:"userId"`
	Score          *int64 `json:"score"`
	Feedback       string `json:"feedback"`
	Recommendation string `json:"recommendation"`
	RequestID      string `json:"requestId"`

	// Extra context the AI service sends along. Logged and echoed back,
	// never stored.
	AIGeneratedContent          string `json:"aiGeneratedContent,omitempty"`
	AIModelUsed                 string `json:"aiModelUsed,omitempty"`
	SourceDataReference         string `json:"sourceDataReference,omitempty"`
	Status                      string `json:"status,omitempty"`
	OriginalInterviewDate       string `json:"originalInterviewDate,omitempty"`
	OriginalCandidateIdentifier string `json:"originalCandidateIdentifier,omitempty"`
}

type ingestResultResponse struct {
	Message        string         `json:"message"`
	AIResult       *models.Result `json:"aiResult"`
	AdditionalData map[string]any `json:"additionalData,omitempty"`
}

func (h *ResultsHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	// Inter-service trust: when a shared key is configured the caller has to
	// present it. An empty key leaves the endpoint open for local setups.
	if h.serviceKey != "" && r.Header.Get("X-Service-Key") != h.serviceKey {
		writeError(w, "Invalid service key", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBody)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	verrs, err := h.schema.ValidateBytes(ctx, body)
	if err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if len(verrs) > 0 {
		writeError(w, verrs[0].Error(), http.StatusBadRequest)
		return
	}

	var req ingestResultRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 {
		writeError(w, "User ID is required to store AI generated results", http.StatusBadRequest)
		return
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	res := &models.Result{
		UserID:         req.UserID,
		Score:          req.Score,
		Feedback:       req.Feedback,
		Recommendation: req.Recommendation,
		RequestID:      req.RequestID,
	}

	stored, err := h.resultRepo.CreateResultForUser(ctx, res)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeError(w, "User not found", http.StatusNotFound)
			return
		}
		logger.Error("store ai result", "err", err)
		writeError(w, "Server error", http.StatusInternalServerError)
		return
	}

	logger.Info("ai result ingested",
		"user_id", stored.UserID,
		"result_id", stored.ID,
		"request_id", stored.RequestID,
		"ai_model", req.AIModelUsed,
		"source", req.SourceDataReference,
	)

	writeJSON(w, ingestResultResponse{
		Message:        "AI generated interview result stored and linked to user",
		AIResult:       stored,
		AdditionalData: additionalData(&req),
	}, http.StatusCreated)
}

func additionalData(req *ingestResultRequest) map[string]any {
	out := map[string]any{}
	if req.AIGeneratedContent != "" {
		out["aiGeneratedContent"] = "Present"
	}
	if req.AIModelUsed != "" {
		out["aiModelUsed"] = req.AIModelUsed
	}
	if req.SourceDataReference != "" {
		out["sourceDataReference"] = req.SourceDataReference
	}
	if req.Status != "" {
		out["status"] = req.Status
	}
	if req.OriginalInterviewDate != "" {
		out["originalInterviewDate"] = req.OriginalInterviewDate
	}
	if req.OriginalCandidateIdentifier != "" {
		out["originalCandidateIdentifier"] = req.OriginalCandidateIdentifier
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
