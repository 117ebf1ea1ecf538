package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/interntrack/interntrack-backend/internal/models"
)

// CreateTeacherRequest is the JSON body for POST /api/teachers.
type CreateTeacherRequest struct {
	TeacherData   *models.TeacherRegistration `json:"teacherData"`
	SupervisorUID string                      `json:"supervisorUid"`
}

// CreateTeacherResponse is the reply for POST /api/teachers.
type CreateTeacherResponse struct {
	Message string                 `json:"message"`
	Teacher *models.TeacherProfile `json:"teacher,omitempty"`
}

// ListTeachersResponse is the reply for GET /api/teachers.
type ListTeachersResponse struct {
	Success  bool                    `json:"success"`
	Message  string                  `json:"message,omitempty"`
	Teachers []models.TeacherProfile `json:"teachers"`
}

// CreateTeacher handles POST /api/teachers.
func (h *Handler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateTeacherResponse{Message: "Invalid request body"})
		return
	}

	if req.TeacherData == nil || req.SupervisorUID == "" {
		writeJSON(w, http.StatusBadRequest, CreateTeacherResponse{Message: "Missing required fields"})
		return
	}

	teacher, err := h.provisioner.CreateTeacherAccount(r.Context(), *req.TeacherData, req.SupervisorUID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateTeacherResponse{Message: "Failed to create teacher account"})
		return
	}

	writeJSON(w, http.StatusCreated, CreateTeacherResponse{
		Message: "Teacher account created successfully",
		Teacher: teacher,
	})
}

// ListTeachers handles GET /api/teachers?supervisorUid= and returns the
// teachers the supervisor created, for the dashboard roster and the intern
// form's teacher dropdown.
func (h *Handler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	supervisorUID := r.URL.Query().Get("supervisorUid")
	if supervisorUID == "" {
		writeJSON(w, http.StatusBadRequest, ListTeachersResponse{
			Message:  "supervisorUid is required",
			Teachers: []models.TeacherProfile{},
		})
		return
	}

	teachers, err := h.roster.TeachersForSupervisor(r.Context(), supervisorUID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ListTeachersResponse{
			Message:  "Failed to load teachers",
			Teachers: []models.TeacherProfile{},
		})
		return
	}

	writeJSON(w, http.StatusOK, ListTeachersResponse{Success: true, Teachers: teachers})
}

// TeacherStats handles GET /api/teachers/stats. The aggregator swallows its
// own query errors, so this route always answers 200.
func (h *Handler) TeacherStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.TeacherStats(r.Context()))
}
