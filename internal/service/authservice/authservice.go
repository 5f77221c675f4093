package authservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type UserRepo interface {
	Upsert(ctx context.Context, uid string) (*domain.User, error)
}

type CodeRepo interface {
	Create(ctx context.Context, phone, codeHash string, expiresAt time.Time) (*domain.AuthCode, error)
	GetLatestActive(ctx context.Context, phone string) (*domain.AuthCode, error)
	MarkUsed(ctx context.Context, id int64) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// CodeSender delivers a one-time code out of band (SMS in production).
type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
}

// LogSender is the development sender: it only logs the code.
type LogSender struct{}

func (LogSender) Send(_ context.Context, phone, code string) error {
	zap.L().Info("sign-in code issued", zap.String("phone", phone), zap.String("code", code))
	return nil
}

var (
	ErrCodeInvalid = errors.New("invalid or expired code")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	userRepo    UserRepo
	codeRepo    CodeRepo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sender      CodeSender
	codeTTL     time.Duration
}

func New(userRepo UserRepo, codeRepo CodeRepo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sender CodeSender, codeTTL time.Duration) *Service {
	return &Service{
		userRepo:    userRepo,
		codeRepo:    codeRepo,
		hashService: hashService,
		jwtService:  jwtService,
		sender:      sender,
		codeTTL:     codeTTL,
	}
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// RequestCode issues a one-time sign-in code for a phone number and
// hands it to the out-of-band sender. Only the bcrypt hash is stored.
func (s *Service) RequestCode(ctx context.Context, phone string) error {
	code, err := generateCode()
	if err != nil {
		zap.L().Error("can't generate code", zap.Error(err))
		return err
	}
	hash, err := s.hashService.HashCode(code)
	if err != nil {
		zap.L().Error("can't hash code", zap.Error(err))
		return err
	}
	if _, err := s.codeRepo.Create(ctx, phone, hash, time.Now().Add(s.codeTTL)); err != nil {
		return err
	}
	return s.sender.Send(ctx, phone, code)
}

// VerifyCode checks the challenge, burns the code, upserts the user and
// returns a session token. The phone number is the user's stable id.
func (s *Service) VerifyCode(ctx context.Context, phone, code string) (string, *domain.User, error) {
	stored, err := s.codeRepo.GetLatestActive(ctx, phone)
	if err != nil {
		return "", nil, err
	}
	if stored == nil || !s.hashService.CompareCode(stored.CodeHash, code) {
		return "", nil, ErrCodeInvalid
	}
	if err := s.codeRepo.MarkUsed(ctx, stored.ID); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.Upsert(ctx, phone)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.GenerateJWT(user.UID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", nil, err
	}
	return token, user, nil
}

// PurgeExpiredCodes removes stale challenges. Wired to the hourly cron.
func (s *Service) PurgeExpiredCodes(ctx context.Context) error {
	n, err := s.codeRepo.PurgeExpired(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		zap.L().Info("purged expired sign-in codes", zap.Int64("count", n))
	}
	return nil
}
