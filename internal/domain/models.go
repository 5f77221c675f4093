package domain

import "time"

// FlowerCost is the price of sending one match request.
const FlowerCost int64 = 180

type MatchRequestStatus string

const (
	StatusPending  MatchRequestStatus = "PENDING"
	StatusAccepted MatchRequestStatus = "ACCEPTED"
	StatusDeclined MatchRequestStatus = "DECLINED"
	StatusCanceled MatchRequestStatus = "CANCELED"
)

type User struct {
	UID            string    `db:"uid"`
	Name           string    `db:"name"`
	Gender         bool      `db:"gender"`
	ProfileVisible bool      `db:"profile_visible"`
	Flower         int64     `db:"flower"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// MatchRequest is a directed request between two users. Its identity is
// the ordered pair key "fromUID_toUID", so at most one request can exist
// per direction.
type MatchRequest struct {
	ID             string             `db:"id"`
	FromUID        string             `db:"from_uid"`
	ToUID          string             `db:"to_uid"`
	Status         MatchRequestStatus `db:"status"`
	FlowerCost     int64              `db:"flower_cost"`
	RefundEligible bool               `db:"refund_eligible"`
	CreatedAt      time.Time          `db:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at"`
}

// MatchRequestID builds the directed pair key for a request.
func MatchRequestID(fromUID, toUID string) string {
	return fromUID + "_" + toUID
}

type Payment struct {
	ID            string    `db:"id"`
	UID           string    `db:"uid"`
	ProductID     string    `db:"product_id"`
	FlowerAmount  int64     `db:"flower_amount"`
	AmountKRW     int64     `db:"amount_krw"`
	GatewayStatus string    `db:"gateway_status"`
	CreatedAt     time.Time `db:"created_at"`
}

type Product struct {
	ID           string `json:"id"`
	FlowerAmount int64  `json:"flower_amount"`
	PriceKRW     int64  `json:"price_krw"`
}

type Notification struct {
	ID        int64     `db:"id"`
	UID       string    `db:"uid"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	TargetUID string    `db:"target_uid"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

const (
	NotifLikeReceived    = "LIKE_RECEIVED"
	NotifMatchSuccess    = "MATCH_SUCCESS"
	NotifRequestDeclined = "REQUEST_DECLINED"
	NotifRefundDone      = "REFUND_DONE"
	NotifChatMessage     = "CHAT_MESSAGE"
)

// ChatRoom is the conversation between two matched users. Its identity
// is the sorted pair key "a__b", so both directions of a match land in
// the same room.
type ChatRoom struct {
	ID              string    `db:"id"`
	UIDA            string    `db:"uid_a"`
	UIDB            string    `db:"uid_b"`
	LastMessageText string    `db:"last_message_text"`
	LastMessageAt   time.Time `db:"last_message_at"`
	CreatedAt       time.Time `db:"created_at"`
}

// ChatRoomID builds the sorted pair key for a room.
func ChatRoomID(uid1, uid2 string) string {
	if uid2 < uid1 {
		uid1, uid2 = uid2, uid1
	}
	return uid1 + "__" + uid2
}

// Has reports whether uid is one of the room's participants.
func (r *ChatRoom) Has(uid string) bool {
	return r.UIDA == uid || r.UIDB == uid
}

// Other returns the participant across from uid.
func (r *ChatRoom) Other(uid string) string {
	if r.UIDA == uid {
		return r.UIDB
	}
	return r.UIDA
}

type ChatMessage struct {
	ID        int64     `db:"id"`
	RoomID    string    `db:"room_id"`
	SenderUID string    `db:"sender_uid"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type AuthCode struct {
	ID        int64     `db:"id"`
	Phone     string    `db:"phone"`
	CodeHash  string    `db:"code_hash"`
	Used      bool      `db:"used"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
