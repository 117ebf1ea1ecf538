// Package store wraps the profile collections ("teachers", "interns",
// "users") behind an interface so the services layer can be tested against an
// in-memory fake.
package store

import (
	"context"
	"errors"

	"github.com/interntrack/interntrack-backend/internal/models"
)

// ErrNotFound is returned when a lookup by uid matches no document.
var ErrNotFound = errors.New("document not found")

// ProfileStore is the query surface the provisioning and statistics services
// need. InternsByTeacherIDs takes one bounded id batch; callers are
// responsible for partitioning larger id sets (the backing store caps how
// many values an "in" filter may test).
type ProfileStore interface {
	PutTeacher(ctx context.Context, t *models.TeacherProfile) error
	PutIntern(ctx context.Context, i *models.InternProfile) error
	PutUser(ctx context.Context, u *models.UserProfile) error

	TeacherByUID(ctx context.Context, uid string) (*models.TeacherProfile, error)
	TeachersByCreator(ctx context.Context, supervisorUID string) ([]models.TeacherProfile, error)
	AllTeachers(ctx context.Context) ([]models.TeacherProfile, error)

	InternsByTeacherIDs(ctx context.Context, teacherIDs []string) ([]models.InternProfile, error)
	AllInterns(ctx context.Context) ([]models.InternProfile, error)
}
