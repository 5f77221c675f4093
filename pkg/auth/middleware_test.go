package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := NewMockJWTServiceInterface(ctrl)

	tests := []struct {
		name           string
		authHeader     string
		prepareMock    func()
		expectedStatus int
		expectedUID    string
	}{
		{
			name:       "Valid Token",
			authHeader: "Bearer good-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good-token").Return(&Claims{UID: "user-123"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUID:    "user-123",
		},
		{
			name:           "Missing Header",
			authHeader:     "",
			prepareMock:    func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "No Bearer Prefix",
			authHeader:     "Basic abc",
			prepareMock:    func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "Invalid Token",
			authHeader: "Bearer bad-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var gotUID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUID = UID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(jwtService)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUID, gotUID)
			}
		})
	}
}
