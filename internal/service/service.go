package service

import (
	"github.com/gardenus/matchledger/internal/config"
	"github.com/gardenus/matchledger/internal/gateway"
	"github.com/gardenus/matchledger/internal/notifier"
	"github.com/gardenus/matchledger/internal/pg"
	"github.com/gardenus/matchledger/internal/repo"
	"github.com/gardenus/matchledger/internal/service/authservice"
	"github.com/gardenus/matchledger/internal/service/chatservice"
	"github.com/gardenus/matchledger/internal/service/flowerservice"
	"github.com/gardenus/matchledger/internal/service/matchservice"
	"github.com/gardenus/matchledger/internal/service/userservice"
	pkgauth "github.com/gardenus/matchledger/pkg/auth"
)

type Services struct {
	AuthService   *authservice.Service
	MatchService  *matchservice.Service
	FlowerService *flowerservice.Service
	UserService   *userservice.Service
	ChatService   *chatservice.Service
	Notifier      *notifier.Notifier
	JWTService    pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, gw gateway.Client) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	notif := notifier.New(repo.Notifications, notifier.NewBus())

	return &Services{
		AuthService:   authservice.New(repo.Users, repo.AuthCodes, &pkgauth.HashService{}, jwtService, authservice.LogSender{}, cfg.CodeTTL),
		MatchService:  matchservice.New(repo.Requests, repo.Users, repo.Chats, txManager, notif),
		FlowerService: flowerservice.New(repo.Payments, repo.Users, txManager, gw),
		UserService:   userservice.New(repo.Users),
		ChatService:   chatservice.New(repo.Chats, txManager, notif),
		Notifier:      notif,
		JWTService:    jwtService,
	}
}
