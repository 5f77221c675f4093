package chatrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
	"go.uber.org/zap"
)

const roomColumns = "id, uid_a, uid_b, last_message_text, COALESCE(last_message_at, created_at), created_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRoom(row pgx.Row) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	err := row.Scan(&room.ID, &room.UIDA, &room.UIDB, &room.LastMessageText, &room.LastMessageAt, &room.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// EnsureRoom creates the room for a matched pair if it does not exist
// yet. Re-matching an existing pair is a no-op.
func (r *Repository) EnsureRoom(ctx context.Context, uid1, uid2 string) error {
	if uid2 < uid1 {
		uid1, uid2 = uid2, uid1
	}
	query := `
        INSERT INTO chat_rooms (id, uid_a, uid_b)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, domain.ChatRoomID(uid1, uid2), uid1, uid2)
	if err != nil {
		zap.L().Error("can't ensure chat room", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetRoom(ctx context.Context, roomID string) (*domain.ChatRoom, error) {
	query := `
        SELECT ` + roomColumns + `
        FROM chat_rooms
        WHERE id = $1
    `
	room, err := scanRoom(r.db.QueryRow(ctx, query, roomID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find chat room", zap.Error(err))
		return nil, err
	}
	return room, nil
}

// ListRoomsByUser returns the user's rooms, most recent conversation
// first.
func (r *Repository) ListRoomsByUser(ctx context.Context, uid string, limit int) ([]domain.ChatRoom, error) {
	query := `
        SELECT ` + roomColumns + `
        FROM chat_rooms
        WHERE uid_a = $1 OR uid_b = $1
        ORDER BY COALESCE(last_message_at, created_at) DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, uid, limit)
	if err != nil {
		zap.L().Error("can't query chat rooms", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.ChatRoom
	for rows.Next() {
		var room domain.ChatRoom
		err := rows.Scan(&room.ID, &room.UIDA, &room.UIDB, &room.LastMessageText, &room.LastMessageAt, &room.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan chat room row", zap.Error(err))
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *Repository) CreateMessage(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	query := `
        INSERT INTO chat_messages (room_id, sender_uid, text, created_at)
        VALUES ($1, $2, $3, now())
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, msg.RoomID, msg.SenderUID, msg.Text).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		zap.L().Error("can't create chat message", zap.Error(err))
		return nil, err
	}
	return msg, nil
}

// SetLastMessage stamps the room's conversation preview.
func (r *Repository) SetLastMessage(ctx context.Context, roomID, text string) error {
	query := `
        UPDATE chat_rooms
        SET last_message_text = $2, last_message_at = now()
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, roomID, text)
	if err != nil {
		zap.L().Error("can't update chat room preview", zap.Error(err))
		return err
	}
	return nil
}

// ListMessages returns a room's messages oldest first.
func (r *Repository) ListMessages(ctx context.Context, roomID string, limit int) ([]domain.ChatMessage, error) {
	query := `
        SELECT id, room_id, sender_uid, text, created_at
        FROM chat_messages
        WHERE room_id = $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, roomID, limit)
	if err != nil {
		zap.L().Error("can't query chat messages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		err := rows.Scan(&msg.ID, &msg.RoomID, &msg.SenderUID, &msg.Text, &msg.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan chat message row", zap.Error(err))
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
