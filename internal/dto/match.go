package dto

import "time"

type RequestMatchDTO struct {
	ToUID string `json:"to_uid" example:"+821098765432"`
}

type RequestMatchResponseDTO struct {
	Kind    string `json:"kind" example:"created_forward"`
	Message string `json:"message"`
}

type UpdateRequestStatusDTO struct {
	Status string `json:"status" example:"ACCEPTED"`
}

type MatchRequestDTO struct {
	ID        string    `json:"id" example:"+821012345678_+821098765432"`
	FromUID   string    `json:"from_uid"`
	ToUID     string    `json:"to_uid"`
	Status    string    `json:"status" example:"PENDING"`
	CreatedAt time.Time `json:"created_at"`
}

type AcceptedMatchDTO struct {
	ID        string    `json:"id"`
	OtherUID  string    `json:"other_uid"`
	CreatedAt time.Time `json:"created_at"`
}
