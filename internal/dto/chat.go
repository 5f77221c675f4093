package dto

import "time"

type ChatRoomDTO struct {
	ID              string    `json:"id" example:"+821012345678__+821098765432"`
	OtherUID        string    `json:"other_uid"`
	LastMessageText string    `json:"last_message_text"`
	LastMessageAt   time.Time `json:"last_message_at"`
	CreatedAt       time.Time `json:"created_at"`
}

type SendMessageDTO struct {
	Text string `json:"text" example:"Hi! Nice to match you."`
}

type ChatMessageDTO struct {
	ID        int64     `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderUID string    `json:"sender_uid"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
