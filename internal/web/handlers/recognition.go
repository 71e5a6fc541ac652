package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/face-client/internal/faceapi"
)

// RecognitionHandler handles detection and identification endpoints.
type RecognitionHandler struct {
	faces FaceService
}

// NewRecognitionHandler creates a new recognition handler.
func NewRecognitionHandler(faces FaceService) *RecognitionHandler {
	return &RecognitionHandler{faces: faces}
}

type detectRequest struct {
	URL string `json:"url"`
}

type identifyRequest struct {
	FaceIDs             []string `json:"faceIds"`
	ConfidenceThreshold *float64 `json:"confidenceThreshold,omitempty"`
	MaxCandidates       int      `json:"maxNumOfCandidatesReturned,omitempty"`
}

// Detect detects faces in the image at the posted URL.
func (h *RecognitionHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "BadArgument", errInvalidRequestBody)
		return
	}
	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "BadArgument", "url is required")
		return
	}

	faces, err := h.faces.DetectFace(r.Context(), req.URL)
	if err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, faces)
}

// Identify identifies the posted face ids against a person group. Any number
// of face ids is accepted.
func (h *RecognitionHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req identifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "BadArgument", errInvalidRequestBody)
		return
	}
	if t := req.ConfidenceThreshold; t != nil && (*t < 0 || *t > 1) {
		respondError(w, http.StatusBadRequest, "BadArgument", "confidenceThreshold must be within [0, 1]")
		return
	}

	opts := faceapi.IdentifyOptions{ConfidenceThreshold: req.ConfidenceThreshold, MaxCandidates: req.MaxCandidates}
	results, err := h.faces.IdentifyFace(r.Context(), chi.URLParam(r, "id"), req.FaceIDs, opts)
	if err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}
