package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/gardenus/matchledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Existing user",
			prepareMock: func() {
				repo.EXPECT().GetByUID(gomock.Any(), "alice").Return(&domain.User{UID: "alice"}, nil)
			},
		},
		{
			name: "Missing user",
			prepareMock: func() {
				repo.EXPECT().GetByUID(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().GetByUID(gomock.Any(), "alice").Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Get(context.Background(), "alice")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "alice", user.UID)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().UpdateProfile(gomock.Any(), "alice", "Alice", true, true).
		Return(&domain.User{UID: "alice", Name: "Alice", Gender: true, ProfileVisible: true}, nil)

	user, err := service.UpdateProfile(context.Background(), "alice", "Alice", true, true)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	repo.EXPECT().UpdateProfile(gomock.Any(), "ghost", "Ghost", false, false).Return(nil, nil)

	user, err = service.UpdateProfile(context.Background(), "ghost", "Ghost", false, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, user)
}

func TestCandidates(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().GetByUID(gomock.Any(), "alice").Return(&domain.User{UID: "alice", Gender: true}, nil)
	repo.EXPECT().FindCandidates(gomock.Any(), false, 20).Return([]domain.User{
		{UID: "bob", Gender: false},
		{UID: "alice", Gender: false},
		{UID: "carol", Gender: false},
	}, nil)

	candidates, err := service.Candidates(context.Background(), "alice", 20)
	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	for _, c := range candidates {
		assert.NotEqual(t, "alice", c.UID)
	}
}

func TestCandidatesUnknownCaller(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().GetByUID(gomock.Any(), "ghost").Return(nil, nil)

	candidates, err := service.Candidates(context.Background(), "ghost", 20)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, candidates)
}
