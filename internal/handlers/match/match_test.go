package match

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
	"github.com/gardenus/matchledger/internal/service/matchservice"
	"github.com/gardenus/matchledger/pkg/auth"
)

func NewMock(t *testing.T) (*MatchHandler, *MockService) {
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

func TestRequestHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedKind string
	}{
		{
			name: "Forward request created",
			body: `{"to_uid":"bob"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "bob").
					Return(&matchservice.Outcome{Kind: matchservice.OutcomeCreatedForward, Message: "Request sent."}, nil)
			},
			expectedCode: http.StatusOK,
			expectedKind: "created_forward",
		},
		{
			name: "Reverse request auto-accepted",
			body: `{"to_uid":"bob"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "bob").
					Return(&matchservice.Outcome{Kind: matchservice.OutcomeAutoAcceptedReverse, Message: "It's a match!"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedKind: "auto_accepted_reverse",
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing to_uid",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not enough flower",
			body: `{"to_uid":"bob"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "bob").
					Return(nil, matchservice.ErrNotEnoughFlower)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Duplicate request",
			body: `{"to_uid":"bob"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "bob").
					Return(nil, matchservice.ErrAlreadyPending)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Reverse already handled",
			body: `{"to_uid":"bob"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "bob").
					Return(nil, matchservice.ErrReverseAlreadyHandled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Request to self",
			body: `{"to_uid":"alice"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "alice").
					Return(nil, matchservice.ErrSelfRequest)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown failure",
			body: `{"to_uid":"bob"}`,
			prepareMock: func() {
				service.EXPECT().RequestMatch(gomock.Any(), "alice", "bob").
					Return(nil, matchservice.ErrUnknown)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/match/requests", []byte(tt.body), "alice")
			w := httptest.NewRecorder()

			handler.Request(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedKind != "" {
				var body dto.RequestMatchResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedKind, body.Kind)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Accept succeeds",
			body: `{"status":"ACCEPTED"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "bob", "alice_bob", domain.StatusAccepted).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already handled",
			body: `{"status":"DECLINED"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "bob", "alice_bob", domain.StatusDeclined).
					Return(matchservice.ErrAlreadyHandled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Wrong party",
			body: `{"status":"ACCEPTED"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "bob", "alice_bob", domain.StatusAccepted).
					Return(matchservice.ErrWrongParty)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Not found",
			body: `{"status":"ACCEPTED"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "bob", "alice_bob", domain.StatusAccepted).
					Return(matchservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Unsupported status",
			body: `{"status":"CANCELED"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), "bob", "alice_bob", domain.StatusCanceled).
					Return(matchservice.ErrInvalidStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPatch, "/api/match/requests/alice_bob", []byte(tt.body), "bob")
			r = withURLParam(r, "id", "alice_bob")
			w := httptest.NewRecorder()

			handler.UpdateStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCancelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cancel succeeds",
			prepareMock: func() {
				service.EXPECT().CancelAndRefund(gomock.Any(), "alice", "alice_bob").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong party",
			prepareMock: func() {
				service.EXPECT().CancelAndRefund(gomock.Any(), "alice", "alice_bob").
					Return(matchservice.ErrWrongParty)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodDelete, "/api/match/requests/alice_bob", nil, "alice")
			r = withURLParam(r, "id", "alice_bob")
			w := httptest.NewRecorder()

			handler.Cancel(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSentHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SentRequests(gomock.Any(), "alice", defaultLimit).Return([]domain.MatchRequest{
		{ID: "alice_bob", FromUID: "alice", ToUID: "bob", Status: domain.StatusPending},
	}, nil)

	r := authedRequest(http.MethodGet, "/api/match/requests/sent", nil, "alice")
	w := httptest.NewRecorder()

	handler.Sent(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.MatchRequestDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "alice_bob", body[0].ID)
}

func TestReceivedHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ReceivedPendingRequests(gomock.Any(), "bob", 10).Return([]domain.MatchRequest{
		{ID: "alice_bob", FromUID: "alice", ToUID: "bob", Status: domain.StatusPending},
	}, nil)

	r := authedRequest(http.MethodGet, "/api/match/requests/received?limit=10", nil, "bob")
	w := httptest.NewRecorder()

	handler.Received(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMatchesHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Now()
	service.EXPECT().AcceptedMatches(gomock.Any(), "alice", defaultLimit).Return([]matchservice.AcceptedMatch{
		{ID: "alice_bob", FromUID: "alice", ToUID: "bob", OtherUID: "bob", CreatedAt: now},
	}, nil)

	r := authedRequest(http.MethodGet, "/api/match/matches", nil, "alice")
	w := httptest.NewRecorder()

	handler.Matches(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.AcceptedMatchDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "bob", body[0].OtherUID)
}

func TestMatchesHandlerError(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().AcceptedMatches(gomock.Any(), "alice", defaultLimit).Return(nil, matchservice.ErrUnknown)

	r := authedRequest(http.MethodGet, "/api/match/matches", nil, "alice")
	w := httptest.NewRecorder()

	handler.Matches(w, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
