package chatservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
)

//go:generate mockgen -source=chatservice.go -destination=mock_chatservice.go -package=chatservice

type Repo interface {
	GetRoom(ctx context.Context, roomID string) (*domain.ChatRoom, error)
	ListRoomsByUser(ctx context.Context, uid string, limit int) ([]domain.ChatRoom, error)
	CreateMessage(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error)
	SetLastMessage(ctx context.Context, roomID, text string) error
	ListMessages(ctx context.Context, roomID string, limit int) ([]domain.ChatMessage, error)
}

// Events is the post-commit live delivery hook. Calls are best-effort
// and never affect the stored conversation.
type Events interface {
	ChatMessage(ctx context.Context, recipientUID string, msg domain.ChatMessage)
}

var (
	ErrRoomNotFound   = errors.New("room_not_found")
	ErrNotParticipant = errors.New("not_participant")
	ErrEmptyMessage   = errors.New("empty_message")
	ErrMessageTooLong = errors.New("message_too_long")
	ErrUnknown        = errors.New("unknown")
)

const maxMessageLen = 2000

type Service struct {
	repo      Repo
	txManager pg.TXManager
	events    Events
}

func New(repo Repo, txManager pg.TXManager, events Events) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		events:    events,
	}
}

func businessErr(err error) bool {
	for _, e := range []error{ErrRoomNotFound, ErrNotParticipant, ErrEmptyMessage, ErrMessageTooLong} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func normalize(err error) error {
	if err == nil || businessErr(err) {
		return err
	}
	zap.L().Error("chat operation failed", zap.Error(err))
	return ErrUnknown
}

// room loads the room and verifies the caller belongs to it.
func (s *Service) room(ctx context.Context, callerUID, roomID string) (*domain.ChatRoom, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if !room.Has(callerUID) {
		return nil, ErrNotParticipant
	}
	return room, nil
}

func (s *Service) Rooms(ctx context.Context, uid string, limit int) ([]domain.ChatRoom, error) {
	rooms, err := s.repo.ListRoomsByUser(ctx, uid, limit)
	return rooms, normalize(err)
}

func (s *Service) Messages(ctx context.Context, callerUID, roomID string, limit int) ([]domain.ChatMessage, error) {
	if _, err := s.room(ctx, callerUID, roomID); err != nil {
		return nil, normalize(err)
	}
	msgs, err := s.repo.ListMessages(ctx, roomID, limit)
	return msgs, normalize(err)
}

// Send stores a message and stamps the room preview in one transaction,
// then streams it to the other participant.
func (s *Service) Send(ctx context.Context, callerUID, roomID, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if len(text) > maxMessageLen {
		return nil, ErrMessageTooLong
	}

	var room *domain.ChatRoom
	var msg *domain.ChatMessage
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		room, err = s.room(ctx, callerUID, roomID)
		if err != nil {
			return err
		}

		msg, err = s.repo.CreateMessage(ctx, &domain.ChatMessage{
			RoomID:    roomID,
			SenderUID: callerUID,
			Text:      text,
		})
		if err != nil {
			return err
		}
		return s.repo.SetLastMessage(ctx, roomID, text)
	})
	if err != nil {
		return nil, normalize(err)
	}

	s.events.ChatMessage(ctx, room.Other(callerUID), *msg)
	return msg, nil
}
