package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GroupsHandler handles person group endpoints.
type GroupsHandler struct {
	faces FaceService
}

// NewGroupsHandler creates a new person groups handler.
func NewGroupsHandler(faces FaceService) *GroupsHandler {
	return &GroupsHandler{faces: faces}
}

// List returns person groups, paged by the start and top query parameters.
func (h *GroupsHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "BadArgument", err.Error())
		return
	}
	groups, err := h.faces.ListPersonGroups(r.Context(), opts)
	if err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

// Get returns a single person group.
func (h *GroupsHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.faces.GetPersonGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, group)
}

// TrainingStatus returns the training status of a person group.
func (h *GroupsHandler) TrainingStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.faces.GetPersonGroupTrainingStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// Train queues training of a person group.
func (h *GroupsHandler) Train(w http.ResponseWriter, r *http.Request) {
	if err := h.faces.TrainPersonGroup(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, nil)
}

// ListPersons returns the persons of a person group.
func (h *GroupsHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptions(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "BadArgument", err.Error())
		return
	}
	persons, err := h.faces.ListPersonsInPersonGroup(r.Context(), chi.URLParam(r, "id"), opts)
	if err != nil {
		respondFaceAPIError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, persons)
}
