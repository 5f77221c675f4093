package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/pkg/auth"
	"github.com/gardenus/matchledger/pkg/utils"
)

//go:generate mockgen -source=notifications.go -destination=mock_notifications.go -package=notifications

const defaultLimit = 50

type Service interface {
	List(ctx context.Context, uid string, onlyUnread bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, uid string, id int64) (bool, error)
	Subscribe(uid string) (<-chan domain.Notification, func())
}

type NotificationHandler struct {
	service Service
}

func New(service Service) *NotificationHandler {
	return &NotificationHandler{
		service: service,
	}
}

func toDTO(n domain.Notification) dto.NotificationDTO {
	return dto.NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// List godoc
//
//	@Summary	List the caller's notifications
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		unread	query		bool	false	"Only unread"
//	@Param		limit	query		int		false	"Max results"
//	@Success	200		{array}		dto.NotificationDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	onlyUnread := r.URL.Query().Get("unread") == "true"
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	items, err := h.service.List(r.Context(), uid, onlyUnread, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.NotificationDTO, len(items))
	for i, n := range items {
		out[i] = toDTO(n)
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// MarkRead godoc
//
//	@Summary	Mark a notification as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Notification id"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	ok, err := h.service.MarkRead(r.Context(), uid, id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Notification not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Marked as read"})
}

// Stream godoc
//
//	@Summary		Stream notifications
//	@Description	Server-sent events stream of the caller's notifications, delivered best-effort and unordered
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		text/event-stream
//	@Success		200
//	@Router			/api/notifications/stream [get]
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	events, cancel := h.service.Subscribe(uid)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(toDTO(n))
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: notification\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
