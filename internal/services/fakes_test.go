package services

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"eventsignup/internal/domain"
)

// testLogger discards output so tests don't assert on log text.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type fakeEventRepo struct {
	listResult  []*domain.Event
	listErr     error
	countResult int
	countErr    error
	getResult   *domain.Event
	getErr      error
	insertErr   error
	updateErr   error

	lastListOffset int
	lastListLimit  int
	lastListSearch string
	lastInserted   *domain.Event
	lastUpdateID   string
	lastUpdateName string
	lastUpdateDesc string
	getCalled      bool
	insertCalled   bool
}

func (f *fakeEventRepo) List(_ context.Context, offset, limit int, search string) ([]*domain.Event, error) {
	f.lastListOffset = offset
	f.lastListLimit = limit
	f.lastListSearch = search
	return f.listResult, f.listErr
}

func (f *fakeEventRepo) Count(_ context.Context, _ string) (int, error) {
	return f.countResult, f.countErr
}

func (f *fakeEventRepo) GetByID(_ context.Context, _ string) (*domain.Event, error) {
	f.getCalled = true
	return f.getResult, f.getErr
}

func (f *fakeEventRepo) Insert(_ context.Context, event *domain.Event) error {
	f.insertCalled = true
	f.lastInserted = event
	return f.insertErr
}

func (f *fakeEventRepo) Update(_ context.Context, id, name, description string) error {
	f.lastUpdateID = id
	f.lastUpdateName = name
	f.lastUpdateDesc = description
	return f.updateErr
}

type fakeSignupRepo struct {
	listResult  []*domain.Signup
	listErr     error
	countResult int
	countErr    error
	insertErr   error

	lastInserted *domain.Signup
	insertCalled bool
}

func (f *fakeSignupRepo) List(_ context.Context, _, _ int, _ string) ([]*domain.Signup, error) {
	return f.listResult, f.listErr
}

func (f *fakeSignupRepo) Count(_ context.Context, _ string) (int, error) {
	return f.countResult, f.countErr
}

func (f *fakeSignupRepo) Insert(_ context.Context, signup *domain.Signup) error {
	f.insertCalled = true
	f.lastInserted = signup
	return f.insertErr
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return f.user, f.err
}

type fakeSessionRepo struct {
	createErr      error
	getResult      *domain.Session
	getErr         error
	deleteErr      error
	deleteExpErr   error
	created        *domain.Session
	deletedToken   string
	reapCalled     bool
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.Session) error {
	f.created = s
	return f.createErr
}

func (f *fakeSessionRepo) Get(_ context.Context, _ string) (*domain.Session, error) {
	return f.getResult, f.getErr
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	f.deletedToken = token
	return f.deleteErr
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context) error {
	f.reapCalled = true
	return f.deleteExpErr
}

// fakeHasher treats the stored hash as "hashed:" plus the plaintext.
type fakeHasher struct {
	compareCalls int
}

func (f *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	f.compareCalls++
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeEmailService struct {
	err      error
	lastData *domain.SignupNotificationEmailData
}

func (f *fakeEmailService) SendSignupNotification(_ context.Context, data *domain.SignupNotificationEmailData) error {
	f.lastData = data
	return f.err
}
