package faceapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreatePerson(t *testing.T) {
	var gotBody map[string]string
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"POST /persongroups/family/persons": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&gotBody)
			writeJSON(w, http.StatusOK, []byte(`{"personId":"25985303-c537-4467-b41d-bdb45cd95ca1"}`))
		},
	})
	defer server.Close()

	id, err := newTestClient(t, server).CreatePerson(context.Background(), "family", "Ana", "aunt")
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	if id != "25985303-c537-4467-b41d-bdb45cd95ca1" {
		t.Errorf("expected new person id, got '%s'", id)
	}
	if gotBody["name"] != "Ana" || gotBody["userData"] != "aunt" {
		t.Errorf("unexpected request body: %v", gotBody)
	}
}

func TestListPersonsInPersonGroup(t *testing.T) {
	data := loadTestData(t, "persongroups_family_persons_20261012_101733.json")
	var gotQuery string
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"GET /persongroups/family/persons": func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			writeJSON(w, http.StatusOK, data)
		},
	})
	defer server.Close()

	persons, err := newTestClient(t, server).ListPersonsInPersonGroup(context.Background(), "family", ListOptions{})
	if err != nil {
		t.Fatalf("ListPersonsInPersonGroup failed: %v", err)
	}
	if gotQuery != "start=&top=1000" {
		t.Errorf("expected query 'start=&top=1000', got '%s'", gotQuery)
	}
	if len(persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(persons))
	}
	if len(persons[0].PersistedFaceIDs) != 2 {
		t.Errorf("expected 2 persisted faces for first person, got %d", len(persons[0].PersistedFaceIDs))
	}
	if persons[1].Name != "Bruno" {
		t.Errorf("expected second person 'Bruno', got '%s'", persons[1].Name)
	}
}

func TestAddPersonFace_WithoutUserData(t *testing.T) {
	var gotURI string
	var gotBody map[string]string
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"POST /persongroups/family/persons/p1/persistedFaces": func(w http.ResponseWriter, r *http.Request) {
			gotURI = r.RequestURI
			json.NewDecoder(r.Body).Decode(&gotBody)
			writeJSON(w, http.StatusOK, []byte(`{"persistedFaceId":"015839fb-fbd9-4f79-ace9-7675fc2f1dd9"}`))
		},
	})
	defer server.Close()

	id, err := newTestClient(t, server).AddPersonFace(context.Background(), "family", "p1", "", "https://example.com/ana.jpg")
	if err != nil {
		t.Fatalf("AddPersonFace failed: %v", err)
	}
	if id != "015839fb-fbd9-4f79-ace9-7675fc2f1dd9" {
		t.Errorf("expected persisted face id, got '%s'", id)
	}
	if gotURI != "/face/v1.0/persongroups/family/persons/p1/persistedFaces" {
		t.Errorf("expected no query string, got '%s'", gotURI)
	}
	if gotBody["url"] != "https://example.com/ana.jpg" {
		t.Errorf("expected image url in body, got %v", gotBody)
	}
}

func TestAddPersonFace_WithUserData(t *testing.T) {
	var gotURI string
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"POST /persongroups/family/persons/p1/persistedFaces": func(w http.ResponseWriter, r *http.Request) {
			gotURI = r.RequestURI
			writeJSON(w, http.StatusOK, []byte(`{"persistedFaceId":"f1"}`))
		},
	})
	defer server.Close()

	if _, err := newTestClient(t, server).AddPersonFace(context.Background(), "family", "p1", "x", "https://example.com/ana.jpg"); err != nil {
		t.Fatalf("AddPersonFace failed: %v", err)
	}
	if gotURI != "/face/v1.0/persongroups/family/persons/p1/persistedFaces?userData=x" {
		t.Errorf("expected path ending in '?userData=x', got '%s'", gotURI)
	}
}

func TestPersonLifecycle(t *testing.T) {
	var patched PersonUpdate
	var deleted []string
	server := setupMockServer(t, map[string]http.HandlerFunc{
		"GET /persongroups/family/persons/p1": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []byte(`{"personId":"p1","name":"Ana","persistedFaceIds":["f1"]}`))
		},
		"PATCH /persongroups/family/persons/p1": func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&patched)
			w.WriteHeader(http.StatusOK)
		},
		"DELETE /persongroups/family/persons/p1/persistedFaces/f1": func(w http.ResponseWriter, r *http.Request) {
			deleted = append(deleted, "face")
			w.WriteHeader(http.StatusOK)
		},
		"DELETE /persongroups/family/persons/p1": func(w http.ResponseWriter, r *http.Request) {
			deleted = append(deleted, "person")
			w.WriteHeader(http.StatusOK)
		},
	})
	defer server.Close()

	ctx := context.Background()
	c := newTestClient(t, server)

	person, err := c.GetPerson(ctx, "family", "p1")
	if err != nil {
		t.Fatalf("GetPerson failed: %v", err)
	}
	if person.Name != "Ana" || len(person.PersistedFaceIDs) != 1 {
		t.Errorf("unexpected person: %+v", person)
	}

	if err := c.UpdatePerson(ctx, "family", "p1", PersonUpdate{Name: "Ana Maria"}); err != nil {
		t.Fatalf("UpdatePerson failed: %v", err)
	}
	if patched.Name != "Ana Maria" {
		t.Errorf("expected patched name 'Ana Maria', got '%s'", patched.Name)
	}

	if err := c.DeletePersonFace(ctx, "family", "p1", "f1"); err != nil {
		t.Fatalf("DeletePersonFace failed: %v", err)
	}
	if err := c.DeletePerson(ctx, "family", "p1"); err != nil {
		t.Fatalf("DeletePerson failed: %v", err)
	}
	if len(deleted) != 2 || deleted[0] != "face" || deleted[1] != "person" {
		t.Errorf("expected face then person deletion, got %v", deleted)
	}
}
