package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/interntrack/interntrack-backend/internal/identity"
	"github.com/interntrack/interntrack-backend/internal/models"
	"github.com/interntrack/interntrack-backend/internal/store"
)

// Generic provisioning failures. Upstream details are logged, not returned,
// so callers never see raw provider or store errors.
var (
	ErrTeacherCreate = errors.New("failed to create teacher account")
	ErrInternCreate  = errors.New("failed to create intern account")
)

// Provisioner creates teacher and intern accounts: an identity account first,
// then the role profile and the unified user profile. Both dependencies are
// injected so the flows can run against fakes in tests.
type Provisioner struct {
	identity       identity.Provider
	store          store.ProfileStore
	defaultCompany string
	now            func() time.Time
}

func NewProvisioner(idp identity.Provider, st store.ProfileStore, defaultCompany string) *Provisioner {
	return &Provisioner{
		identity:       idp,
		store:          st,
		defaultCompany: defaultCompany,
		now:            time.Now,
	}
}

// CreateTeacherAccount provisions a teacher for the given supervisor and
// returns the stored profile. The returned profile never carries a password.
// Any upstream failure collapses to ErrTeacherCreate.
func (p *Provisioner) CreateTeacherAccount(ctx context.Context, req models.TeacherRegistration, supervisorUID string) (*models.TeacherProfile, error) {
	teacher := models.NewTeacherProfile(req, "", supervisorUID, p.now())

	uid, err := p.identity.CreateAccount(ctx, req.Email, req.Password, teacher.DisplayName())
	if err != nil {
		log.Printf("ERROR: identity account for teacher %s: %v", req.Email, err)
		return nil, ErrTeacherCreate
	}
	teacher.UID = uid

	if err := p.store.PutTeacher(ctx, teacher); err != nil {
		log.Printf("ERROR: persist teacher profile %s: %v", uid, err)
		return nil, ErrTeacherCreate
	}
	if err := p.store.PutUser(ctx, teacher.UserProfile(p.defaultCompany)); err != nil {
		log.Printf("ERROR: persist user profile for teacher %s: %v", uid, err)
		return nil, ErrTeacherCreate
	}

	return teacher, nil
}

// CreateInternAccount provisions an intern for the given supervisor. The
// assigned teacher's display name is denormalized onto the profile on a
// best-effort basis: a failed or empty lookup is logged and never aborts the
// creation. A duplicate email stays distinguishable as identity.ErrEmailExists;
// every other failure collapses to ErrInternCreate.
func (p *Provisioner) CreateInternAccount(ctx context.Context, req models.InternRegistration, supervisorUID string) (*models.InternProfile, error) {
	intern := models.NewInternProfile(req, "", supervisorUID, p.now())

	uid, err := p.identity.CreateAccount(ctx, req.Email, req.Password, intern.FirstName+" "+intern.LastName)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return nil, err
		}
		log.Printf("ERROR: identity account for intern %s: %v", req.Email, err)
		return nil, ErrInternCreate
	}
	intern.UID = uid

	if teacher, err := p.store.TeacherByUID(ctx, req.TeacherID); err != nil {
		log.Printf("teacher %s lookup for intern %s failed: %v", req.TeacherID, uid, err)
	} else {
		intern.TeacherName = teacher.DisplayName()
	}

	if err := p.store.PutIntern(ctx, intern); err != nil {
		log.Printf("ERROR: persist intern profile %s: %v", uid, err)
		return nil, ErrInternCreate
	}
	if err := p.store.PutUser(ctx, intern.UserProfile()); err != nil {
		log.Printf("ERROR: persist user profile for intern %s: %v", uid, err)
		return nil, ErrInternCreate
	}

	return intern, nil
}
