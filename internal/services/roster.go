package services

import (
	"context"

	"github.com/interntrack/interntrack-backend/internal/models"
	"github.com/interntrack/interntrack-backend/internal/store"
)

// DefaultBatchSize is the largest id list a single "teacherId in (...)" query
// may carry, matching the backing store's filter-list cap.
const DefaultBatchSize = 10

// Roster resolves which teachers and interns belong to a supervisor.
// Interns are scoped transitively: teachers created by the supervisor first,
// then interns assigned to any of those teachers, queried in id batches.
type Roster struct {
	store     store.ProfileStore
	batchSize int
}

func NewRoster(st store.ProfileStore, batchSize int) *Roster {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Roster{store: st, batchSize: batchSize}
}

// TeachersForSupervisor lists the teachers the supervisor created.
func (r *Roster) TeachersForSupervisor(ctx context.Context, supervisorUID string) ([]models.TeacherProfile, error) {
	return r.store.TeachersByCreator(ctx, supervisorUID)
}

// InternsForSupervisor lists the interns assigned to the supervisor's
// teachers. The per-batch queries run sequentially so load on the store stays
// bounded; teacher ids are unique, so batches are disjoint and the union has
// no duplicates.
func (r *Roster) InternsForSupervisor(ctx context.Context, supervisorUID string) ([]models.InternProfile, error) {
	teachers, err := r.store.TeachersByCreator(ctx, supervisorUID)
	if err != nil {
		return nil, err
	}

	teacherIDs := make([]string, 0, len(teachers))
	for _, t := range teachers {
		teacherIDs = append(teacherIDs, t.UID)
	}
	if len(teacherIDs) == 0 {
		return []models.InternProfile{}, nil
	}

	interns := make([]models.InternProfile, 0)
	for start := 0; start < len(teacherIDs); start += r.batchSize {
		end := start + r.batchSize
		if end > len(teacherIDs) {
			end = len(teacherIDs)
		}
		batch, err := r.store.InternsByTeacherIDs(ctx, teacherIDs[start:end])
		if err != nil {
			return nil, err
		}
		interns = append(interns, batch...)
	}
	return interns, nil
}
