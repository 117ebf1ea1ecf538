package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/interntrack/interntrack-backend/internal/identity"
	"github.com/interntrack/interntrack-backend/internal/models"
)

// CreateInternRequest is the JSON body for POST /api/interns.
type CreateInternRequest struct {
	InternData    *models.InternRegistration `json:"internData"`
	SupervisorUID string                     `json:"supervisorUid"`
}

// CreateInternResponse is the reply for POST /api/interns.
type CreateInternResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Intern  *models.InternProfile `json:"intern,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// ListInternsResponse is the reply for GET /api/interns.
type ListInternsResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Interns []models.InternProfile `json:"interns"`
}

// CreateIntern handles POST /api/interns.
func (h *Handler) CreateIntern(w http.ResponseWriter, r *http.Request) {
	var req CreateInternRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateInternResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if req.InternData == nil || req.SupervisorUID == "" {
		writeJSON(w, http.StatusBadRequest, CreateInternResponse{Success: false, Message: "Missing required fields"})
		return
	}
	if missing := h.missingInternFields(req.InternData); missing {
		writeJSON(w, http.StatusBadRequest, CreateInternResponse{Success: false, Message: "Missing required fields"})
		return
	}

	intern, err := h.provisioner.CreateInternAccount(r.Context(), *req.InternData, req.SupervisorUID)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			writeJSON(w, http.StatusBadRequest, CreateInternResponse{
				Success: false,
				Message: "A user with this email already exists",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, CreateInternResponse{
			Success: false,
			Message: "Failed to create intern account",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreateInternResponse{
		Success: true,
		Message: "Intern account created successfully",
		Intern:  intern,
	})
}

// missingInternFields applies the required-field rule. Phone is only required
// when the deployment opts in via INTERN_REQUIRE_PHONE.
func (h *Handler) missingInternFields(data *models.InternRegistration) bool {
	if data.FirstName == "" || data.LastName == "" || data.Email == "" || data.Password == "" || data.TeacherID == "" {
		return true
	}
	if h.requirePhone && data.Phone == "" {
		return true
	}
	return false
}

// ListInterns handles GET /api/interns?supervisorUid= and returns the raw
// intern documents scoped to the supervisor's teachers.
func (h *Handler) ListInterns(w http.ResponseWriter, r *http.Request) {
	supervisorUID := r.URL.Query().Get("supervisorUid")
	if supervisorUID == "" {
		writeJSON(w, http.StatusBadRequest, ListInternsResponse{
			Message: "supervisorUid is required",
			Interns: []models.InternProfile{},
		})
		return
	}

	interns, err := h.roster.InternsForSupervisor(r.Context(), supervisorUID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ListInternsResponse{
			Message: "Failed to load interns",
			Interns: []models.InternProfile{},
		})
		return
	}

	writeJSON(w, http.StatusOK, ListInternsResponse{Success: true, Interns: interns})
}

// InternStats handles GET /api/interns/stats?supervisorUid=.
func (h *Handler) InternStats(w http.ResponseWriter, r *http.Request) {
	supervisorUID := r.URL.Query().Get("supervisorUid")
	if supervisorUID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "supervisorUid is required"})
		return
	}

	writeJSON(w, http.StatusOK, h.stats.InternStats(r.Context(), supervisorUID))
}
