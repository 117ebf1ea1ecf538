package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/interntrack/interntrack-backend/internal/identity"
	"github.com/interntrack/interntrack-backend/internal/models"
)

func TestCreateTeacherAccount(t *testing.T) {
	st := newFakeStore()
	idp := &fakeIdentity{}
	p := NewProvisioner(idp, st, "InternTrack")

	teacher, err := p.CreateTeacherAccount(context.Background(), models.TeacherRegistration{
		Email:     "maria@example.com",
		FirstName: "Maria",
		LastName:  "Santos",
		Phone:     "555-0101",
		Password:  "secret",
		School:    "State University",
	}, "supervisor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if teacher.UID != "uid-1" {
		t.Fatalf("expected uid from identity provider, got %s", teacher.UID)
	}
	if _, ok := st.teachers[teacher.UID]; !ok {
		t.Fatal("teacher profile was not persisted")
	}

	user, ok := st.users[teacher.UID]
	if !ok {
		t.Fatal("user profile was not persisted")
	}
	if user.Role != models.RoleTeacher {
		t.Fatalf("expected role teacher, got %s", user.Role)
	}
	if user.TeacherID != teacher.UID {
		t.Fatalf("expected self-referencing teacherId, got %s", user.TeacherID)
	}
	if user.Company != "State University" {
		t.Fatalf("expected school as company, got %s", user.Company)
	}
}

func TestCreateTeacherAccountWrapsUpstreamErrors(t *testing.T) {
	st := newFakeStore()
	idp := &fakeIdentity{err: errors.New("provider exploded")}
	p := NewProvisioner(idp, st, "InternTrack")

	_, err := p.CreateTeacherAccount(context.Background(), models.TeacherRegistration{
		Email:    "maria@example.com",
		Password: "secret",
	}, "supervisor-1")
	if !errors.Is(err, ErrTeacherCreate) {
		t.Fatalf("expected generic ErrTeacherCreate, got %v", err)
	}

	// Duplicate emails are not distinguished on the teacher path either.
	idp.err = identity.ErrEmailExists
	_, err = p.CreateTeacherAccount(context.Background(), models.TeacherRegistration{
		Email:    "maria@example.com",
		Password: "secret",
	}, "supervisor-1")
	if !errors.Is(err, ErrTeacherCreate) {
		t.Fatalf("expected generic ErrTeacherCreate for duplicate email, got %v", err)
	}
}

func TestCreateTeacherAccountStoreFailure(t *testing.T) {
	st := newFakeStore()
	st.failPut = errStoreDown
	p := NewProvisioner(&fakeIdentity{}, st, "InternTrack")

	_, err := p.CreateTeacherAccount(context.Background(), models.TeacherRegistration{
		Email:    "maria@example.com",
		Password: "secret",
	}, "supervisor-1")
	if !errors.Is(err, ErrTeacherCreate) {
		t.Fatalf("expected generic ErrTeacherCreate, got %v", err)
	}
}

func TestCreateInternAccountDefaultsAndDenormalization(t *testing.T) {
	st := newFakeStore()
	st.teachers["teacher-1"] = models.TeacherProfile{
		UID:       "teacher-1",
		FirstName: "Maria",
		LastName:  "Santos",
		CreatedBy: "supervisor-1",
	}
	p := NewProvisioner(&fakeIdentity{}, st, "InternTrack")

	intern, err := p.CreateInternAccount(context.Background(), models.InternRegistration{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Reyes",
		Password:  "secret",
		TeacherID: "teacher-1",
	}, "supervisor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if intern.Phone != "" {
		t.Fatalf("expected empty phone string, got %q", intern.Phone)
	}
	if intern.ScheduledTimeIn != models.DefaultTimeIn || intern.ScheduledTimeOut != models.DefaultTimeOut {
		t.Fatalf("expected default schedule, got %s-%s", intern.ScheduledTimeIn, intern.ScheduledTimeOut)
	}
	if intern.TeacherName != "Maria Santos" {
		t.Fatalf("expected denormalized teacher name, got %q", intern.TeacherName)
	}

	stored, ok := st.interns[intern.UID]
	if !ok {
		t.Fatal("intern profile was not persisted")
	}
	if stored.Phone != "" {
		t.Fatalf("persisted phone must be empty string, got %q", stored.Phone)
	}

	user, ok := st.users[intern.UID]
	if !ok {
		t.Fatal("user profile was not persisted")
	}
	if user.Role != models.RoleIntern || user.Phone != "" {
		t.Fatalf("unexpected user projection: role=%s phone=%q", user.Role, user.Phone)
	}
}

func TestCreateInternAccountMissingTeacherStillSucceeds(t *testing.T) {
	st := newFakeStore()
	p := NewProvisioner(&fakeIdentity{}, st, "InternTrack")

	intern, err := p.CreateInternAccount(context.Background(), models.InternRegistration{
		Email:     "jane@example.com",
		Password:  "secret",
		TeacherID: "ghost-teacher",
	}, "supervisor-1")
	if err != nil {
		t.Fatalf("expected creation to succeed despite missing teacher, got %v", err)
	}
	if intern.TeacherName != "" {
		t.Fatalf("expected empty teacher name, got %q", intern.TeacherName)
	}
	if _, ok := st.interns[intern.UID]; !ok {
		t.Fatal("intern profile was not persisted")
	}
}

func TestCreateInternAccountDuplicateEmailStaysDistinguishable(t *testing.T) {
	st := newFakeStore()
	p := NewProvisioner(&fakeIdentity{err: identity.ErrEmailExists}, st, "InternTrack")

	_, err := p.CreateInternAccount(context.Background(), models.InternRegistration{
		Email:     "jane@example.com",
		Password:  "secret",
		TeacherID: "teacher-1",
	}, "supervisor-1")
	if !errors.Is(err, identity.ErrEmailExists) {
		t.Fatalf("expected identity.ErrEmailExists, got %v", err)
	}
}

func TestCreateInternAccountGenericErrorWrap(t *testing.T) {
	st := newFakeStore()
	p := NewProvisioner(&fakeIdentity{err: errors.New("provider exploded")}, st, "InternTrack")

	_, err := p.CreateInternAccount(context.Background(), models.InternRegistration{
		Email:     "jane@example.com",
		Password:  "secret",
		TeacherID: "teacher-1",
	}, "supervisor-1")
	if !errors.Is(err, ErrInternCreate) {
		t.Fatalf("expected generic ErrInternCreate, got %v", err)
	}
}

func TestProvisionerUsesInjectedClock(t *testing.T) {
	st := newFakeStore()
	p := NewProvisioner(&fakeIdentity{}, st, "InternTrack")
	fixed := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	teacher, err := p.CreateTeacherAccount(context.Background(), models.TeacherRegistration{
		Email:    "maria@example.com",
		Password: "secret",
	}, "supervisor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !teacher.CreatedAt.Equal(fixed) {
		t.Fatalf("expected createdAt %v, got %v", fixed, teacher.CreatedAt)
	}
}
