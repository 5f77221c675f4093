package repo

import (
	"github.com/gardenus/matchledger/internal/pg"
	authcoderepo "github.com/gardenus/matchledger/internal/repo/authcode-repo"
	chatrepo "github.com/gardenus/matchledger/internal/repo/chat-repo"
	matchrequestrepo "github.com/gardenus/matchledger/internal/repo/matchrequest-repo"
	notificationrepo "github.com/gardenus/matchledger/internal/repo/notification-repo"
	paymentrepo "github.com/gardenus/matchledger/internal/repo/payment-repo"
	userrepo "github.com/gardenus/matchledger/internal/repo/user-repo"
)

type Repositories struct {
	Users         *userrepo.Repository
	Requests      *matchrequestrepo.Repository
	Payments      *paymentrepo.Repository
	Notifications *notificationrepo.Repository
	AuthCodes     *authcoderepo.Repository
	Chats         *chatrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Users:         userrepo.New(conn),
		Requests:      matchrequestrepo.New(conn, txManager),
		Payments:      paymentrepo.New(conn),
		Notifications: notificationrepo.New(conn),
		AuthCodes:     authcoderepo.New(conn),
		Chats:         chatrepo.New(conn),
	}
}
