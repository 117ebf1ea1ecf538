package services

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/interntrack/interntrack-backend/internal/models"
	"github.com/interntrack/interntrack-backend/internal/store"
)

// recentLimit caps the recentAdditions lists on both stat payloads.
const recentLimit = 5

// TeacherStats is the dashboard summary for the teachers collection.
type TeacherStats struct {
	TotalTeachers     int                     `json:"totalTeachers"`
	ActiveDepartments int                     `json:"activeDepartments"`
	ThisMonth         int                     `json:"thisMonth"`
	PendingApprovals  int                     `json:"pendingApprovals"`
	RecentAdditions   []models.TeacherProfile `json:"recentAdditions"`
}

// InternStats is the dashboard summary for a supervisor's interns.
type InternStats struct {
	TotalInterns    int                    `json:"totalInterns"`
	ThisMonth       int                    `json:"thisMonth"`
	RecentAdditions []models.InternProfile `json:"recentAdditions"`
}

// Stats computes dashboard aggregates. Query failures are swallowed: the
// caller always gets a well-formed zeroed result, so a failing aggregation
// looks like "no data yet" at the API boundary.
type Stats struct {
	store  store.ProfileStore
	roster *Roster
	now    func() time.Time
}

func NewStats(st store.ProfileStore, roster *Roster) *Stats {
	return &Stats{store: st, roster: roster, now: time.Now}
}

// TeacherStats scans the full teachers collection. Collections are expected
// to fit in memory; there is no pagination.
func (s *Stats) TeacherStats(ctx context.Context) TeacherStats {
	stats := TeacherStats{RecentAdditions: []models.TeacherProfile{}}

	teachers, err := s.store.AllTeachers(ctx)
	if err != nil {
		log.Printf("teacher stats query failed: %v", err)
		return stats
	}

	departments := make(map[string]struct{})
	cutoff := s.now().AddDate(0, -1, 0)
	for _, t := range teachers {
		if t.School != "" {
			departments[t.School] = struct{}{}
		}
		if !t.CreatedAt.Before(cutoff) {
			stats.ThisMonth++
		}
	}

	stats.TotalTeachers = len(teachers)
	stats.ActiveDepartments = len(departments)
	// Approval workflows live outside this service; the dashboard card is
	// kept for layout compatibility and always reads zero.
	stats.PendingApprovals = 0

	sort.SliceStable(teachers, func(i, j int) bool {
		return teachers[i].CreatedAt.After(teachers[j].CreatedAt)
	})
	if len(teachers) > recentLimit {
		teachers = teachers[:recentLimit]
	}
	stats.RecentAdditions = teachers

	return stats
}

// InternStats summarizes the interns scoped to a supervisor. An empty
// supervisorUID falls back to a full intern scan.
func (s *Stats) InternStats(ctx context.Context, supervisorUID string) InternStats {
	stats := InternStats{RecentAdditions: []models.InternProfile{}}

	var interns []models.InternProfile
	var err error
	if supervisorUID == "" {
		interns, err = s.store.AllInterns(ctx)
	} else {
		interns, err = s.roster.InternsForSupervisor(ctx, supervisorUID)
	}
	if err != nil {
		log.Printf("intern stats query failed: %v", err)
		return stats
	}

	cutoff := s.now().AddDate(0, -1, 0)
	for _, i := range interns {
		if !i.CreatedAt.Before(cutoff) {
			stats.ThisMonth++
		}
	}
	stats.TotalInterns = len(interns)

	sort.SliceStable(interns, func(i, j int) bool {
		return interns[i].CreatedAt.After(interns[j].CreatedAt)
	})
	if len(interns) > recentLimit {
		interns = interns[:recentLimit]
	}
	stats.RecentAdditions = interns

	return stats
}
