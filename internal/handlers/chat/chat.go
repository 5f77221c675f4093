package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/chatservice"
	"github.com/gardenus/matchledger/pkg/auth"
	"github.com/gardenus/matchledger/pkg/utils"
)

//go:generate mockgen -source=chat.go -destination=mock_chat.go -package=chat

const (
	defaultRoomLimit    = 50
	defaultMessageLimit = 100
)

type Service interface {
	Rooms(ctx context.Context, uid string, limit int) ([]domain.ChatRoom, error)
	Messages(ctx context.Context, callerUID, roomID string, limit int) ([]domain.ChatMessage, error)
	Send(ctx context.Context, callerUID, roomID, text string) (*domain.ChatMessage, error)
}

type ChatHandler struct {
	chatService Service
}

func New(chatService Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

func respondChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatservice.ErrRoomNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Room not found")
	case errors.Is(err, chatservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, "You are not in this room")
	case errors.Is(err, chatservice.ErrEmptyMessage):
		utils.RespondWithError(w, http.StatusBadRequest, "Message text is required")
	case errors.Is(err, chatservice.ErrMessageTooLong):
		utils.RespondWithError(w, http.StatusBadRequest, "Message is too long")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}

func limitParam(r *http.Request, fallback int) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func toMessageDTO(msg domain.ChatMessage) dto.ChatMessageDTO {
	return dto.ChatMessageDTO{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		SenderUID: msg.SenderUID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

// Rooms godoc
//
//	@Summary	List the caller's chat rooms
//	@Tags		Chat
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Max results"
//	@Success	200		{array}		dto.ChatRoomDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/chat/rooms [get]
func (h *ChatHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	rooms, err := h.chatService.Rooms(r.Context(), uid, limitParam(r, defaultRoomLimit))
	if err != nil {
		respondChatError(w, err)
		return
	}
	out := make([]dto.ChatRoomDTO, len(rooms))
	for i, room := range rooms {
		out[i] = dto.ChatRoomDTO{
			ID:              room.ID,
			OtherUID:        room.Other(uid),
			LastMessageText: room.LastMessageText,
			LastMessageAt:   room.LastMessageAt,
			CreatedAt:       room.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Messages godoc
//
//	@Summary	List a room's messages, oldest first
//	@Tags		Chat
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		string	true	"Room id"
//	@Param		limit	query		int		false	"Max results"
//	@Success	200		{array}		dto.ChatMessageDTO
//	@Failure	403		{object}	utils.Response	"Caller is not a participant"
//	@Failure	404		{object}	utils.Response	"Room not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/chat/rooms/{id}/messages [get]
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())
	roomID := chi.URLParam(r, "id")

	msgs, err := h.chatService.Messages(r.Context(), uid, roomID, limitParam(r, defaultMessageLimit))
	if err != nil {
		respondChatError(w, err)
		return
	}
	out := make([]dto.ChatMessageDTO, len(msgs))
	for i, msg := range msgs {
		out[i] = toMessageDTO(msg)
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Send godoc
//
//	@Summary		Send a message to a room
//	@Tags			Chat
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Room id"
//	@Param			request	body		dto.SendMessageDTO	true	"Message"
//	@Success		201		{object}	dto.ChatMessageDTO
//	@Failure		400		{object}	utils.Response	"Empty or oversized message"
//	@Failure		403		{object}	utils.Response	"Caller is not a participant"
//	@Failure		404		{object}	utils.Response	"Room not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/chat/rooms/{id}/messages [post]
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())
	roomID := chi.URLParam(r, "id")

	var req dto.SendMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.chatService.Send(r.Context(), uid, roomID, req.Text)
	if err != nil {
		respondChatError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMessageDTO(*msg))
}
