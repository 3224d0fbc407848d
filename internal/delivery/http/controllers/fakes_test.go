package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventsignup/internal/delivery/http/helpers"
	"eventsignup/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var resp struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Data, resp.Error
}

type fakeEventService struct {
	listResult []*domain.Event
	listPaging domain.PageInfo
	getResult  *domain.Event
	getErr     error
	createOK   bool
	updateOK   bool

	lastPage   int
	lastSearch string
	lastName   string
	lastDesc   string
	lastID     string
}

func (f *fakeEventService) List(_ context.Context, page int, search string) ([]*domain.Event, domain.PageInfo) {
	f.lastPage = page
	f.lastSearch = search
	return f.listResult, f.listPaging
}

func (f *fakeEventService) GetByID(_ context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	return f.getResult, f.getErr
}

func (f *fakeEventService) Create(_ context.Context, name, description string) bool {
	f.lastName = name
	f.lastDesc = description
	return f.createOK
}

func (f *fakeEventService) Update(_ context.Context, id, name, description string) bool {
	f.lastID = id
	f.lastName = name
	f.lastDesc = description
	return f.updateOK
}

type fakeSignupService struct {
	listResult []*domain.Signup
	listPaging domain.PageInfo
	createOK   bool

	lastName    string
	lastComment string
	lastEventID string
	createCalls int
}

func (f *fakeSignupService) List(_ context.Context, _ int, _ string) ([]*domain.Signup, domain.PageInfo) {
	return f.listResult, f.listPaging
}

func (f *fakeSignupService) Create(_ context.Context, name, comment, eventID string) bool {
	f.createCalls++
	f.lastName = name
	f.lastComment = comment
	f.lastEventID = eventID
	return f.createOK
}

type fakeAuthService struct {
	user     *domain.User
	token    string
	loginErr error

	loggedOutToken string
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return f.user, f.token, f.loginErr
}

func (f *fakeAuthService) Authenticate(_ context.Context, _ string) (string, bool) {
	return "", false
}

func (f *fakeAuthService) Logout(_ context.Context, token string) {
	f.loggedOutToken = token
}
