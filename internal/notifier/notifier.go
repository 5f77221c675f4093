package notifier

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gardenus/matchledger/internal/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=notifier

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	ListByUser(ctx context.Context, uid string, onlyUnread bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, uid string, id int64) (bool, error)
	UserName(ctx context.Context, uid string) string
}

// Notifier writes notification rows and pushes them to live
// subscribers. Every fan-out call is best-effort: failures are logged
// and swallowed, never surfaced to the ledger.
type Notifier struct {
	repo Repo
	bus  *Bus
}

func New(repo Repo, bus *Bus) *Notifier {
	return &Notifier{
		repo: repo,
		bus:  bus,
	}
}

func (n *Notifier) push(ctx context.Context, notif *domain.Notification) {
	created, err := n.repo.Create(ctx, notif)
	if err != nil {
		zap.L().Warn("can't deliver notification",
			zap.String("type", notif.Type),
			zap.String("uid", notif.UID),
			zap.Error(err))
		return
	}
	n.bus.Publish(*created)
}

func (n *Notifier) LikeReceived(ctx context.Context, fromUID, toUID string) {
	fromName := n.repo.UserName(ctx, fromUID)
	n.push(ctx, &domain.Notification{
		UID:   toUID,
		Type:  domain.NotifLikeReceived,
		Title: "New like",
		Body:  fmt.Sprintf("%s sent you a like. Check it out!", fromName),
	})
}

// MatchSuccess notifies both parties concurrently.
func (n *Notifier) MatchSuccess(ctx context.Context, fromUID, toUID string) {
	var g errgroup.Group
	g.Go(func() error {
		toName := n.repo.UserName(ctx, toUID)
		n.push(ctx, &domain.Notification{
			UID:       fromUID,
			Type:      domain.NotifMatchSuccess,
			Title:     "It's a match!",
			Body:      fmt.Sprintf("You matched with %s. Start chatting!", toName),
			TargetUID: toUID,
		})
		return nil
	})
	g.Go(func() error {
		fromName := n.repo.UserName(ctx, fromUID)
		n.push(ctx, &domain.Notification{
			UID:       toUID,
			Type:      domain.NotifMatchSuccess,
			Title:     "It's a match!",
			Body:      fmt.Sprintf("You matched with %s. Start chatting!", fromName),
			TargetUID: fromUID,
		})
		return nil
	})
	g.Wait()
}

func (n *Notifier) RequestDeclined(ctx context.Context, fromUID, toUID string) {
	n.push(ctx, &domain.Notification{
		UID:   fromUID,
		Type:  domain.NotifRequestDeclined,
		Title: "Request declined",
		Body:  "Your request was declined.",
	})
}

// ChatMessage streams a chat message to the recipient's live feed.
// Conversation history lives in its own table, so nothing is persisted
// here.
func (n *Notifier) ChatMessage(ctx context.Context, recipientUID string, msg domain.ChatMessage) {
	senderName := n.repo.UserName(ctx, msg.SenderUID)
	n.bus.Publish(domain.Notification{
		UID:       recipientUID,
		Type:      domain.NotifChatMessage,
		Title:     senderName,
		Body:      msg.Text,
		TargetUID: msg.SenderUID,
		CreatedAt: msg.CreatedAt,
	})
}

func (n *Notifier) RefundDone(ctx context.Context, uid string, amount int64) {
	n.push(ctx, &domain.Notification{
		UID:   uid,
		Type:  domain.NotifRefundDone,
		Title: "Refund complete",
		Body:  fmt.Sprintf("Your refund is complete. (+%d flower)", amount),
	})
}

func (n *Notifier) List(ctx context.Context, uid string, onlyUnread bool, limit int) ([]domain.Notification, error) {
	items, err := n.repo.ListByUser(ctx, uid, onlyUnread, limit)
	if err != nil {
		zap.L().Error("can't list notifications", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (n *Notifier) MarkRead(ctx context.Context, uid string, id int64) (bool, error) {
	ok, err := n.repo.MarkRead(ctx, uid, id)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return ok, nil
}

// Subscribe exposes the live stream for a user. The returned cancel
// handle must be called when the consumer goes away.
func (n *Notifier) Subscribe(uid string) (<-chan domain.Notification, func()) {
	return n.bus.Subscribe(uid)
}
