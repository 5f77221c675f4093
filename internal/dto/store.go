package dto

type FlowerBalanceDTO struct {
	Flower int64 `json:"flower" example:"180"`
}

type ProductDTO struct {
	ID           string `json:"id" example:"flower_800"`
	FlowerAmount int64  `json:"flower_amount" example:"800"`
	PriceKRW     int64  `json:"price_krw" example:"34900"`
}

type VerifyPaymentRequestDTO struct {
	PaymentID string `json:"payment_id" example:"pay_01HZX"`
	ProductID string `json:"product_id" example:"flower_800"`
}

type VerifyPaymentResponseDTO struct {
	FlowerGranted int64 `json:"flower_granted" example:"800"`
}
