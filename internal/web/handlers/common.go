package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kozaktomas/face-client/internal/faceapi"
)

// errInvalidRequestBody is a shared error message for invalid JSON request bodies.
const errInvalidRequestBody = "invalid request body"

// FaceService is the subset of the Face API client used by the gateway.
type FaceService interface {
	ListPersonGroups(ctx context.Context, opts faceapi.ListOptions) ([]faceapi.PersonGroup, error)
	GetPersonGroup(ctx context.Context, personGroupID string) (*faceapi.PersonGroup, error)
	GetPersonGroupTrainingStatus(ctx context.Context, personGroupID string) (*faceapi.TrainingStatus, error)
	TrainPersonGroup(ctx context.Context, personGroupID string) error
	ListPersonsInPersonGroup(ctx context.Context, personGroupID string, opts faceapi.ListOptions) ([]faceapi.Person, error)
	DetectFace(ctx context.Context, imageURL string) ([]faceapi.DetectedFace, error)
	IdentifyFace(ctx context.Context, personGroupID string, faceIDs []string, opts faceapi.IdentifyOptions) ([]faceapi.IdentifyResult, error)
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response in the Face API's error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// respondFaceAPIError relays a client error. Service errors keep the
// upstream status and error object; anything else is a bad gateway.
func respondFaceAPIError(w http.ResponseWriter, err error) {
	var se *faceapi.ServiceError
	if errors.As(err, &se) {
		status := se.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		respondError(w, status, se.Code, se.Message)
		return
	}
	respondError(w, http.StatusBadGateway, "UpstreamUnavailable", err.Error())
}

// listOptions reads the start and top query parameters.
func listOptions(r *http.Request) (faceapi.ListOptions, error) {
	opts := faceapi.ListOptions{Start: r.URL.Query().Get("start")}
	if s := r.URL.Query().Get("top"); s != "" {
		top, err := strconv.Atoi(s)
		if err != nil || top < 1 || top > faceapi.DefaultListTop {
			return opts, errors.New("top must be between 1 and 1000")
		}
		opts.Top = top
	}
	return opts, nil
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
