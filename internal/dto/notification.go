package dto

import "time"

type NotificationDTO struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type" example:"LIKE_RECEIVED"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
