package models

import (
	"testing"
	"time"
)

func TestNewInternProfileDefaults(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	req := InternRegistration{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Reyes",
		Password:  "secret",
		TeacherID: "teacher-1",
	}

	intern := NewInternProfile(req, "intern-1", "supervisor-1", now)

	if intern.Phone != "" {
		t.Fatalf("expected empty phone string, got %q", intern.Phone)
	}
	if intern.ScheduledTimeIn != DefaultTimeIn {
		t.Fatalf("expected default time in %s, got %s", DefaultTimeIn, intern.ScheduledTimeIn)
	}
	if intern.ScheduledTimeOut != DefaultTimeOut {
		t.Fatalf("expected default time out %s, got %s", DefaultTimeOut, intern.ScheduledTimeOut)
	}
	if intern.CreatedBy != "supervisor-1" {
		t.Fatalf("expected createdBy supervisor-1, got %s", intern.CreatedBy)
	}
	if !intern.CreatedAt.Equal(now) {
		t.Fatalf("expected createdAt %v, got %v", now, intern.CreatedAt)
	}
}

func TestNewInternProfileKeepsExplicitSchedule(t *testing.T) {
	req := InternRegistration{
		Email:            "jane@example.com",
		TeacherID:        "teacher-1",
		Phone:            "+63 912 555 0101",
		ScheduledTimeIn:  "09:30",
		ScheduledTimeOut: "18:30",
	}

	intern := NewInternProfile(req, "intern-1", "supervisor-1", time.Now())

	if intern.ScheduledTimeIn != "09:30" || intern.ScheduledTimeOut != "18:30" {
		t.Fatalf("expected explicit schedule to be kept, got %s-%s", intern.ScheduledTimeIn, intern.ScheduledTimeOut)
	}
	if intern.Phone != "+63 912 555 0101" {
		t.Fatalf("expected phone to be kept, got %q", intern.Phone)
	}
}

func TestInternUserProfileProjection(t *testing.T) {
	intern := NewInternProfile(InternRegistration{
		Email:     "jane@example.com",
		FirstName: "Jane",
		TeacherID: "teacher-1",
	}, "intern-1", "supervisor-1", time.Now())
	intern.TeacherName = "Maria Santos"

	user := intern.UserProfile()
	if user.Role != RoleIntern {
		t.Fatalf("expected role intern, got %s", user.Role)
	}
	if user.UID != "intern-1" || user.TeacherID != "teacher-1" {
		t.Fatalf("unexpected ids: uid=%s teacherId=%s", user.UID, user.TeacherID)
	}
	if user.TeacherName != "Maria Santos" {
		t.Fatalf("expected denormalized teacher name, got %q", user.TeacherName)
	}
	if user.Phone != "" {
		t.Fatalf("expected empty phone string on user profile, got %q", user.Phone)
	}
}

func TestTeacherUserProfileProjection(t *testing.T) {
	teacher := NewTeacherProfile(TeacherRegistration{
		Email:     "maria@example.com",
		FirstName: "Maria",
		LastName:  "Santos",
	}, "teacher-1", "supervisor-1", time.Now())

	user := teacher.UserProfile("InternTrack")
	if user.Role != RoleTeacher {
		t.Fatalf("expected role teacher, got %s", user.Role)
	}
	if user.TeacherID != "teacher-1" {
		t.Fatalf("expected self-referencing teacherId, got %s", user.TeacherID)
	}
	if user.Company != "InternTrack" {
		t.Fatalf("expected default company, got %s", user.Company)
	}

	teacher.School = "State University"
	if got := teacher.UserProfile("InternTrack").Company; got != "State University" {
		t.Fatalf("expected school as company, got %s", got)
	}
}

func TestTeacherDisplayName(t *testing.T) {
	cases := []struct {
		first, last, want string
	}{
		{"Maria", "Santos", "Maria Santos"},
		{"Maria", "", "Maria"},
		{"", "Santos", "Santos"},
		{"", "", ""},
	}
	for _, c := range cases {
		teacher := TeacherProfile{FirstName: c.first, LastName: c.last}
		if got := teacher.DisplayName(); got != c.want {
			t.Fatalf("DisplayName(%q, %q) = %q, want %q", c.first, c.last, got, c.want)
		}
	}
}
