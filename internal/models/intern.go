package models

import "time"

const (
	// DefaultTimeIn and DefaultTimeOut are applied when a registration omits
	// the intern's scheduled hours.
	DefaultTimeIn  = "08:00"
	DefaultTimeOut = "17:00"
)

// Location is an optional workplace pin attached to an intern profile.
type Location struct {
	Address string  `bson:"address" json:"address"`
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
}

// InternRegistration is the payload a supervisor submits to create an intern.
type InternRegistration struct {
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Phone            string    `json:"phone"`
	Password         string    `json:"password"`
	TeacherID        string    `json:"teacherId"`
	ScheduledTimeIn  string    `json:"scheduledTimeIn,omitempty"`
	ScheduledTimeOut string    `json:"scheduledTimeOut,omitempty"`
	Location         *Location `json:"location,omitempty"`
}

// InternProfile is the document stored in the "interns" collection, keyed by
// the identity-provider-issued uid. TeacherName is a best-effort copy of the
// assigned teacher's display name taken at creation time; it is not kept in
// sync if the teacher is later renamed.
type InternProfile struct {
	UID              string    `bson:"_id" json:"uid"`
	Email            string    `bson:"email" json:"email"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	LastName         string    `bson:"lastName" json:"lastName"`
	Phone            string    `bson:"phone" json:"phone"`
	TeacherID        string    `bson:"teacherId" json:"teacherId"`
	TeacherName      string    `bson:"teacherName,omitempty" json:"teacherName,omitempty"`
	ScheduledTimeIn  string    `bson:"scheduledTimeIn" json:"scheduledTimeIn"`
	ScheduledTimeOut string    `bson:"scheduledTimeOut" json:"scheduledTimeOut"`
	Location         *Location `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy        string    `bson:"createdBy" json:"createdBy"`
}

// NewInternProfile builds an intern profile from a registration payload.
// Defaults are applied here, once: missing scheduled hours become the standard
// shift, and Phone is a plain string so it can never be null downstream.
func NewInternProfile(req InternRegistration, uid, supervisorUID string, now time.Time) *InternProfile {
	timeIn := req.ScheduledTimeIn
	if timeIn == "" {
		timeIn = DefaultTimeIn
	}
	timeOut := req.ScheduledTimeOut
	if timeOut == "" {
		timeOut = DefaultTimeOut
	}
	return &InternProfile{
		UID:              uid,
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
		TeacherID:        req.TeacherID,
		ScheduledTimeIn:  timeIn,
		ScheduledTimeOut: timeOut,
		Location:         req.Location,
		CreatedAt:        now,
		CreatedBy:        supervisorUID,
	}
}

// UserProfile projects the intern into the unified "users" collection.
func (i *InternProfile) UserProfile() *UserProfile {
	return &UserProfile{
		UID:              i.UID,
		Email:            i.Email,
		FirstName:        i.FirstName,
		LastName:         i.LastName,
		Role:             RoleIntern,
		TeacherID:        i.TeacherID,
		TeacherName:      i.TeacherName,
		Phone:            i.Phone,
		ScheduledTimeIn:  i.ScheduledTimeIn,
		ScheduledTimeOut: i.ScheduledTimeOut,
		CreatedAt:        i.CreatedAt,
	}
}
