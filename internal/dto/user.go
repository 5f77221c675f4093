package dto

type ProfileDTO struct {
	UID            string `json:"uid"`
	Name           string `json:"name" example:"Jisoo"`
	Gender         bool   `json:"gender"`
	ProfileVisible bool   `json:"profile_visible"`
	Flower         int64  `json:"flower" example:"180"`
}

type UpdateProfileDTO struct {
	Name           string `json:"name" example:"Jisoo"`
	Gender         bool   `json:"gender"`
	ProfileVisible bool   `json:"profile_visible"`
}

type CandidateDTO struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}
