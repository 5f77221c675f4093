package dto

type RequestCodeDTO struct {
	Phone string `json:"phone" example:"+821012345678"`
}

type VerifyCodeRequestDTO struct {
	Phone string `json:"phone" example:"+821012345678"`
	Code  string `json:"code" example:"048291"`
}

type VerifyCodeResponseDTO struct {
	UID     string `json:"uid" example:"+821012345678"`
	Message string `json:"message"`
}
