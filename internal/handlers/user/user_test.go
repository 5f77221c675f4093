package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/userservice"
	"github.com/gardenus/matchledger/pkg/auth"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte, uid string) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UIDKey, uid))
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), "alice").
					Return(&domain.User{UID: "alice", Name: "Alice", Flower: 360}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), "alice").Return(nil, userservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), "alice").Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/user/me", nil, "alice")
			w := httptest.NewRecorder()

			handler.Me(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "alice", body.UID)
				assert.EqualValues(t, 360, body.Flower)
			}
		})
	}
}

func TestUpdateMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile updated",
			body: `{"name":"Alice","gender":true,"profile_visible":true}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), "alice", "Alice", true, true).
					Return(&domain.User{UID: "alice", Name: "Alice", Gender: true, ProfileVisible: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown user",
			body: `{"name":"Ghost"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), "alice", "Ghost", false, false).
					Return(nil, userservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPut, "/api/user/me", []byte(tt.body), "alice")
			w := httptest.NewRecorder()

			handler.UpdateMe(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCandidatesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Candidates(gomock.Any(), "alice", 5).Return([]domain.User{
		{UID: "bob", Name: "Bob"},
		{UID: "carl", Name: "Carl"},
	}, nil)

	r := authedRequest(http.MethodGet, "/api/candidates?limit=5", nil, "alice")
	w := httptest.NewRecorder()

	handler.Candidates(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.CandidateDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, "bob", body[0].UID)
}

func TestCandidatesHandlerError(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Candidates(gomock.Any(), "alice", defaultCandidateLimit).
		Return(nil, errors.New("some error"))

	r := authedRequest(http.MethodGet, "/api/candidates", nil, "alice")
	w := httptest.NewRecorder()

	handler.Candidates(w, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
