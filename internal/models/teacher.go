package models

import "time"

// TeacherRegistration is the payload a supervisor submits to create a teacher.
type TeacherRegistration struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	School    string `json:"school,omitempty"`
}

// TeacherProfile is the document stored in the "teachers" collection,
// keyed by the identity-provider-issued uid. It never carries a password.
type TeacherProfile struct {
	UID       string    `bson:"_id" json:"uid"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Phone     string    `bson:"phone" json:"phone"`
	School    string    `bson:"school,omitempty" json:"school,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
}

// NewTeacherProfile builds a teacher profile from a registration payload.
func NewTeacherProfile(req TeacherRegistration, uid, supervisorUID string, now time.Time) *TeacherProfile {
	return &TeacherProfile{
		UID:       uid,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		School:    req.School,
		CreatedAt: now,
		CreatedBy: supervisorUID,
	}
}

// DisplayName is the name shown in rosters and denormalized onto interns.
func (t *TeacherProfile) DisplayName() string {
	if t.FirstName == "" {
		return t.LastName
	}
	if t.LastName == "" {
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}

// UserProfile projects the teacher into the unified "users" collection.
// TeacherID is a self-reference so teacher and intern rows share a shape.
func (t *TeacherProfile) UserProfile(defaultCompany string) *UserProfile {
	company := t.School
	if company == "" {
		company = defaultCompany
	}
	return &UserProfile{
		UID:       t.UID,
		Email:     t.Email,
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Role:      RoleTeacher,
		Company:   company,
		TeacherID: t.UID,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
	}
}
