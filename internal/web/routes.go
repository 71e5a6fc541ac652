package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/face-client/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	groupsHandler := handlers.NewGroupsHandler(s.faces)
	recognitionHandler := handlers.NewRecognitionHandler(s.faces)

	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Person groups
		r.Get("/groups", groupsHandler.List)
		r.Get("/groups/{id}", groupsHandler.Get)
		r.Get("/groups/{id}/training", groupsHandler.TrainingStatus)
		r.Post("/groups/{id}/train", groupsHandler.Train)
		r.Get("/groups/{id}/persons", groupsHandler.ListPersons)

		// Recognition
		r.Post("/detect", recognitionHandler.Detect)
		r.Post("/groups/{id}/identify", recognitionHandler.Identify)
	})
}
