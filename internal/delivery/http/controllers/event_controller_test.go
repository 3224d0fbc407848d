package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsignup/internal/domain"
)

func TestEventController_ListEvents(t *testing.T) {
	svc := &fakeEventService{
		listResult: []*domain.Event{{ID: "e1", Name: "Picnic", Slug: "picnic", Created: time.Now()}},
		listPaging: domain.NewPageInfo(2, 120, 50, 50),
	}
	c := NewEventController(testLogger, svc)

	r := httptest.NewRequest(http.MethodGet, "/events?page=2&search=picnic", nil)
	w := httptest.NewRecorder()
	c.ListEvents(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	data, apiErr := decodeResponse(t, w)
	require.Nil(t, apiErr)

	var payload EventListResponse
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Len(t, payload.Events, 1)
	assert.Equal(t, 2, svc.lastPage)
	assert.Equal(t, "picnic", svc.lastSearch)
	assert.Equal(t, "/events/?page=3", payload.Paging.NextURL)
	assert.Equal(t, "/events/?page=1", payload.Paging.PrevURL)
}

func TestEventController_ListEvents_BadPageDefaultsToFirst(t *testing.T) {
	svc := &fakeEventService{listPaging: domain.NewPageInfo(1, 0, 50, 0)}
	c := NewEventController(testLogger, svc)

	r := httptest.NewRequest(http.MethodGet, "/events?page=banana", nil)
	w := httptest.NewRecorder()
	c.ListEvents(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastPage)
}

func TestEventController_AdminListEvents_LinksUseAdminPath(t *testing.T) {
	svc := &fakeEventService{listPaging: domain.NewPageInfo(1, 120, 50, 50)}
	c := NewEventController(testLogger, svc)

	r := httptest.NewRequest(http.MethodGet, "/admin/events", nil)
	w := httptest.NewRecorder()
	c.AdminListEvents(w, r)

	data, _ := decodeResponse(t, w)
	var payload EventListResponse
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "/admin/events/?page=2", payload.Paging.NextURL)
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		getResult  *domain.Event
		getErr     error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "found",
			getResult:  &domain.Event{ID: "e1", Name: "Picnic"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			getErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "storage failure",
			getErr:     assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{getResult: tt.getResult, getErr: tt.getErr}
			c := NewEventController(testLogger, svc)

			r := httptest.NewRequest(http.MethodGet, "/events/e1", nil)
			r.SetPathValue("eventID", "e1")
			w := httptest.NewRecorder()
			c.GetEvent(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			_, apiErr := decodeResponse(t, w)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
			} else {
				assert.Nil(t, apiErr)
			}
		})
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	svc := &fakeEventService{createOK: true}
	c := NewEventController(testLogger, svc)

	body := `{"name":"Summer Picnic","description":"Bring a dish"}`
	r := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	c.CreateEvent(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Summer Picnic", svc.lastName)
	assert.Equal(t, "Bring a dish", svc.lastDesc)
}

func TestEventController_CreateEvent_MissingName(t *testing.T) {
	svc := &fakeEventService{createOK: true}
	c := NewEventController(testLogger, svc)

	r := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(`{"description":"x"}`))
	w := httptest.NewRecorder()
	c.CreateEvent(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	_, apiErr := decodeResponse(t, w)
	require.NotNil(t, apiErr)
	assert.Contains(t, apiErr.Message, "name is required")
	assert.Empty(t, svc.lastName)
}

func TestEventController_CreateEvent_StorageFailure(t *testing.T) {
	svc := &fakeEventService{createOK: false}
	c := NewEventController(testLogger, svc)

	r := httptest.NewRequest(http.MethodPost, "/admin/events", strings.NewReader(`{"name":"Gala"}`))
	w := httptest.NewRecorder()
	c.CreateEvent(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	_, apiErr := decodeResponse(t, w)
	require.NotNil(t, apiErr)
	assert.Equal(t, "could not complete the request", apiErr.Message)
}

func TestEventController_UpdateEvent(t *testing.T) {
	svc := &fakeEventService{updateOK: true}
	c := NewEventController(testLogger, svc)

	body := `{"name":"Renamed","description":"New details"}`
	r := httptest.NewRequest(http.MethodPatch, "/admin/events/e1", strings.NewReader(body))
	r.SetPathValue("eventID", "e1")
	w := httptest.NewRecorder()
	c.UpdateEvent(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "e1", svc.lastID)
	assert.Equal(t, "Renamed", svc.lastName)
}

func TestEventController_UpdateEvent_Failure(t *testing.T) {
	svc := &fakeEventService{updateOK: false}
	c := NewEventController(testLogger, svc)

	r := httptest.NewRequest(http.MethodPatch, "/admin/events/missing", strings.NewReader(`{"name":"Renamed"}`))
	r.SetPathValue("eventID", "missing")
	w := httptest.NewRecorder()
	c.UpdateEvent(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
