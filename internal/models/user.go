package models

import "time"

// Role is the coarse access level stored on every user profile.
type Role string

const (
	RoleSupervisor Role = "supervisor"
	RoleTeacher    Role = "teacher"
	RoleIntern     Role = "intern"
)

// UserProfile is the unified lookup record in the "users" collection.
// Every provisioned account gets one, regardless of role, so the frontend
// can resolve any uid to a display profile with a single read.
type UserProfile struct {
	UID       string `bson:"_id" json:"uid"`
	Email     string `bson:"email" json:"email"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Role      Role   `bson:"role" json:"role"`
	Company   string `bson:"company,omitempty" json:"company,omitempty"`
	TeacherID string `bson:"teacherId,omitempty" json:"teacherId,omitempty"`
	// Phone must always be present as a string, possibly empty. The field is
	// non-optional here so the invariant holds everywhere a profile exists,
	// instead of being re-checked at each call site.
	Phone            string `bson:"phone" json:"phone"`
	ScheduledTimeIn  string `bson:"scheduledTimeIn,omitempty" json:"scheduledTimeIn,omitempty"`
	ScheduledTimeOut string `bson:"scheduledTimeOut,omitempty" json:"scheduledTimeOut,omitempty"`
	TeacherName      string `bson:"teacherName,omitempty" json:"teacherName,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
