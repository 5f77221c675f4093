package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gardenus/matchledger/internal/domain"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	UpdateProfile(ctx context.Context, uid, name string, gender, visible bool) (*domain.User, error)
	FindCandidates(ctx context.Context, gender bool, limit int) ([]domain.User, error)
}

var ErrNotFound = errors.New("user not found")

type Service struct {
	userRepo Repo
}

func New(userRepo Repo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) Get(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, uid, name string, gender, visible bool) (*domain.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, uid, name, gender, visible)
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Candidates returns visible profiles of the gender opposite the
// caller's. Shuffling is left to the client, as is excluding profiles
// the caller already interacted with.
func (s *Service) Candidates(ctx context.Context, uid string, limit int) ([]domain.User, error) {
	me, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	candidates, err := s.userRepo.FindCandidates(ctx, !me.Gender, limit)
	if err != nil {
		zap.L().Error("can't fetch candidates", zap.Error(err))
		return nil, err
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if c.UID != uid {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
