package faceapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestDetectFace(t *testing.T) {
	data := loadTestData(t, "detect_20261012_102210.json")
	var gotQuery string
	var gotBody map[string]string
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"POST /detect": func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			json.NewDecoder(r.Body).Decode(&gotBody)
			writeJSON(w, http.StatusOK, data)
		},
	})
	defer server.Close()

	faces, err := newTestClient(t, server).DetectFace(context.Background(), "https://example.com/group.jpg")
	if err != nil {
		t.Fatalf("DetectFace failed: %v", err)
	}
	if gotQuery != "returnFaceId=true" {
		t.Errorf("expected query 'returnFaceId=true', got '%s'", gotQuery)
	}
	if gotBody["url"] != "https://example.com/group.jpg" {
		t.Errorf("expected image url in body, got %v", gotBody)
	}
	if len(faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(faces))
	}
	if faces[0].FaceID != "c5c24a82-6845-4031-9d5d-978df9175426" {
		t.Errorf("unexpected first face id '%s'", faces[0].FaceID)
	}
	if faces[0].FaceRectangle.Area() < faces[1].FaceRectangle.Area() {
		t.Error("expected faces ranked by rectangle size, largest first")
	}
}

func TestDetectFace_NoFaces(t *testing.T) {
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"POST /detect": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []byte(`[]`))
		},
	})
	defer server.Close()

	faces, err := newTestClient(t, server).DetectFace(context.Background(), "https://example.com/empty.jpg")
	if err != nil {
		t.Fatalf("expected no error for an image without faces, got %v", err)
	}
	if faces == nil || len(faces) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", faces)
	}
}

func TestDetectFace_ServiceError(t *testing.T) {
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"POST /detect": func(w http.ResponseWriter, r *http.Request) {
			writeServiceError(w, http.StatusBadRequest, "InvalidURL", "Invalid image URL.")
		},
	})
	defer server.Close()

	_, err := newTestClient(t, server).DetectFace(context.Background(), "nope")
	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServiceError, got %T (%v)", err, err)
	}
	if se.Code != "InvalidURL" || se.StatusCode != http.StatusBadRequest {
		t.Errorf("unexpected service error: %+v", se)
	}
}
