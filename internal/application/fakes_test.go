package application

import (
	"context"
	"time"

	"github.com/spookymotion/signup-api/internal/domain/entity"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time { return s.now }

// fakeRepo keeps users in memory and enforces the email uniqueness constraint
// the way the postgres adapter does, including the upsert-by-id semantics.
type fakeRepo struct {
	users     map[string]*entity.User
	saveCalls int
	saveErr   error
	findErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*entity.User)}
}

func (r *fakeRepo) Save(_ context.Context, u *entity.User) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	for id, existing := range r.users {
		if id != u.ID() && existing.Email() == u.Email() {
			return entity.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID()] = cloneUser(u)
	return nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email entity.Email) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email() == email {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// cloneUser round-trips through Rehydrate so mutations on a returned aggregate
// never leak into the store, mirroring a real database read.
func cloneUser(u *entity.User) *entity.User {
	var code *entity.ActivationCode
	if c := u.ActivationCode(); c != nil {
		cc := entity.RehydrateActivationCode(c.Value(), c.ExpiresAt())
		code = &cc
	}
	return entity.RehydrateUser(u.ID(), u.Email(), u.PasswordHash(), u.IsActive(), code, u.CreatedAt(), u.UpdatedAt())
}

type sentMail struct {
	to   entity.Email
	code string
}

type fakeSender struct {
	sent    []sentMail
	sendErr error
}

func (s *fakeSender) SendActivationCode(_ context.Context, to entity.Email, code string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, sentMail{to: to, code: code})
	return nil
}

type fakeHasher struct {
	hashErr error
}

func (h fakeHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}
