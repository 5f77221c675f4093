package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/pkg/auth"
)

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, uid string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(context.WithValue(r.Context(), auth.UIDKey, uid))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Defaults",
			target: "/api/notifications",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), "alice", false, defaultLimit).
					Return([]domain.Notification{{ID: 1, UID: "alice", Type: domain.NotifLikeReceived}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Unread filter and limit",
			target: "/api/notifications?unread=true&limit=5",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), "alice", true, 5).
					Return([]domain.Notification{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:   "Service failure",
			target: "/api/notifications",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), "alice", false, defaultLimit).
					Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, tt.target, "alice")
			w := httptest.NewRecorder()

			handler.List(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.NotificationDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestMarkReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Marked as read",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), "alice", int64(1)).Return(true, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not the caller's notification",
			id:   "2",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), "alice", int64(2)).Return(false, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service failure",
			id:   "3",
			prepareMock: func() {
				service.EXPECT().MarkRead(gomock.Any(), "alice", int64(3)).Return(false, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/notifications/"+tt.id+"/read", "alice")
			r = withURLParam(r, "id", tt.id)
			w := httptest.NewRecorder()

			handler.MarkRead(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestStreamHandler(t *testing.T) {
	handler, service := NewMock(t)

	events := make(chan domain.Notification, 1)
	events <- domain.Notification{ID: 1, UID: "alice", Type: domain.NotifMatchSuccess, Title: "It's a match!"}

	canceled := false
	service.EXPECT().Subscribe("alice").Return((<-chan domain.Notification)(events), func() { canceled = true })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	r := httptest.NewRequest(http.MethodGet, "/api/notifications/stream", nil)
	r = r.WithContext(context.WithValue(ctx, auth.UIDKey, "alice"))
	w := httptest.NewRecorder()

	handler.Stream(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: notification\n"))
	assert.Contains(t, body, `"type":"MATCH_SUCCESS"`)
	assert.True(t, canceled)
}

func TestStreamHandlerClosedChannel(t *testing.T) {
	handler, service := NewMock(t)

	events := make(chan domain.Notification)
	close(events)
	service.EXPECT().Subscribe("alice").Return((<-chan domain.Notification)(events), func() {})

	r := authedRequest(http.MethodGet, "/api/notifications/stream", "alice")
	w := httptest.NewRecorder()

	handler.Stream(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
