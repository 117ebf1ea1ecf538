package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/interntrack/interntrack-backend/internal/handlers"
)

// SetupRoutes registers the API surface on the router.
func SetupRoutes(r chi.Router, h *handlers.Handler) {
	r.Get("/api/health", h.Health)

	// Teacher provisioning and dashboard stats
	r.Post("/api/teachers", h.CreateTeacher)
	r.Get("/api/teachers", h.ListTeachers)
	r.Get("/api/teachers/stats", h.TeacherStats)

	// Intern provisioning, supervisor-scoped listing and stats
	r.Post("/api/interns", h.CreateIntern)
	r.Get("/api/interns", h.ListInterns)
	r.Get("/api/interns/stats", h.InternStats)
}
