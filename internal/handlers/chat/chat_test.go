package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/chatservice"
	"github.com/gardenus/matchledger/pkg/auth"
)

func NewMock(t *testing.T) (*ChatHandler, *MockService) {
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

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRoomsHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Rooms with the other participant resolved",
			target: "/api/chat/rooms",
			prepareMock: func() {
				service.EXPECT().Rooms(gomock.Any(), "alice", defaultRoomLimit).Return([]domain.ChatRoom{
					{ID: "alice__bob", UIDA: "alice", UIDB: "bob", LastMessageText: "hi", LastMessageAt: now, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Explicit limit is passed through",
			target: "/api/chat/rooms?limit=5",
			prepareMock: func() {
				service.EXPECT().Rooms(gomock.Any(), "alice", 5).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown failure",
			target: "/api/chat/rooms",
			prepareMock: func() {
				service.EXPECT().Rooms(gomock.Any(), "alice", defaultRoomLimit).Return(nil, chatservice.ErrUnknown)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Rooms(w, authedRequest(http.MethodGet, tt.target, nil, "alice"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK && tt.expectedLen > 0 {
				var rooms []dto.ChatRoomDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
				assert.Len(t, rooms, tt.expectedLen)
				assert.Equal(t, "bob", rooms[0].OtherUID)
			}
		})
	}
}

func TestMessagesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Conversation history",
			prepareMock: func() {
				service.EXPECT().Messages(gomock.Any(), "alice", "alice__bob", defaultMessageLimit).Return([]domain.ChatMessage{
					{ID: 1, RoomID: "alice__bob", SenderUID: "bob", Text: "hi"},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Room not found",
			prepareMock: func() {
				service.EXPECT().Messages(gomock.Any(), "alice", "alice__bob", defaultMessageLimit).
					Return(nil, chatservice.ErrRoomNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Caller is not a participant",
			prepareMock: func() {
				service.EXPECT().Messages(gomock.Any(), "alice", "alice__bob", defaultMessageLimit).
					Return(nil, chatservice.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			r := withURLParam(authedRequest(http.MethodGet, "/api/chat/rooms/alice__bob/messages", nil, "alice"), "id", "alice__bob")
			handler.Messages(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var msgs []dto.ChatMessageDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
				assert.Len(t, msgs, 1)
				assert.Equal(t, "bob", msgs[0].SenderUID)
			}
		})
	}
}

func TestSendHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Message sent",
			body: `{"text":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "alice", "alice__bob", "hello").
					Return(&domain.ChatMessage{ID: 7, RoomID: "alice__bob", SenderUID: "alice", Text: "hello"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Empty message",
			body: `{"text":""}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "alice", "alice__bob", "").
					Return(nil, chatservice.ErrEmptyMessage)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Message too long",
			body: `{"text":"..."}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "alice", "alice__bob", "...").
					Return(nil, chatservice.ErrMessageTooLong)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Room not found",
			body: `{"text":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "alice", "alice__bob", "hello").
					Return(nil, chatservice.ErrRoomNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Caller is not a participant",
			body: `{"text":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "alice", "alice__bob", "hello").
					Return(nil, chatservice.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Unknown failure",
			body: `{"text":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "alice", "alice__bob", "hello").
					Return(nil, chatservice.ErrUnknown)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			r := withURLParam(authedRequest(http.MethodPost, "/api/chat/rooms/alice__bob/messages", []byte(tt.body), "alice"), "id", "alice__bob")
			handler.Send(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var msg dto.ChatMessageDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
				assert.EqualValues(t, 7, msg.ID)
				assert.Equal(t, "alice", msg.SenderUID)
			}
		})
	}
}
