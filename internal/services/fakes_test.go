package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/interntrack/interntrack-backend/internal/models"
	"github.com/interntrack/interntrack-backend/internal/store"
)

// fakeIdentity issues sequential uids and can be forced to fail.
type fakeIdentity struct {
	nextUID int
	err     error
	created []string // emails, in call order
}

func (f *fakeIdentity) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.nextUID++
	f.created = append(f.created, email)
	return fmt.Sprintf("uid-%d", f.nextUID), nil
}

// fakeStore keeps profiles in maps and records every intern batch query.
type fakeStore struct {
	teachers map[string]models.TeacherProfile
	interns  map[string]models.InternProfile
	users    map[string]models.UserProfile

	batchCalls [][]string
	failWith   error // when set, every call fails
	failPut    error // when set, only writes fail
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		teachers: make(map[string]models.TeacherProfile),
		interns:  make(map[string]models.InternProfile),
		users:    make(map[string]models.UserProfile),
	}
}

func (f *fakeStore) PutTeacher(ctx context.Context, t *models.TeacherProfile) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.failPut != nil {
		return f.failPut
	}
	f.teachers[t.UID] = *t
	return nil
}

func (f *fakeStore) PutIntern(ctx context.Context, i *models.InternProfile) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.failPut != nil {
		return f.failPut
	}
	f.interns[i.UID] = *i
	return nil
}

func (f *fakeStore) PutUser(ctx context.Context, u *models.UserProfile) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.failPut != nil {
		return f.failPut
	}
	f.users[u.UID] = *u
	return nil
}

func (f *fakeStore) TeacherByUID(ctx context.Context, uid string) (*models.TeacherProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	t, ok := f.teachers[uid]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (f *fakeStore) TeachersByCreator(ctx context.Context, supervisorUID string) ([]models.TeacherProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.TeacherProfile, 0)
	for _, t := range f.teachers {
		if t.CreatedBy == supervisorUID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) AllTeachers(ctx context.Context) ([]models.TeacherProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.TeacherProfile, 0, len(f.teachers))
	for _, t := range f.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) InternsByTeacherIDs(ctx context.Context, teacherIDs []string) ([]models.InternProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.batchCalls = append(f.batchCalls, append([]string(nil), teacherIDs...))
	out := make([]models.InternProfile, 0)
	for _, i := range f.interns {
		for _, id := range teacherIDs {
			if i.TeacherID == id {
				out = append(out, i)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeStore) AllInterns(ctx context.Context) ([]models.InternProfile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]models.InternProfile, 0, len(f.interns))
	for _, i := range f.interns {
		out = append(out, i)
	}
	return out, nil
}

var errStoreDown = errors.New("store unavailable")
