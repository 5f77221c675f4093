package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/flowerservice"
	"github.com/gardenus/matchledger/pkg/auth"
	"github.com/gardenus/matchledger/pkg/utils"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

type Service interface {
	GetBalance(ctx context.Context, uid string) (int64, error)
	ListProducts() []domain.Product
	VerifyPayment(ctx context.Context, uid, paymentID, productID string) (int64, error)
}

type StoreHandler struct {
	flowerService Service
}

func New(flowerService Service) *StoreHandler {
	return &StoreHandler{
		flowerService: flowerService,
	}
}

// GetFlower godoc
//
//	@Summary	Get the caller's flower balance
//	@Tags		Store
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.FlowerBalanceDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/user/flower [get]
func (h *StoreHandler) GetFlower(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	flower, err := h.flowerService.GetBalance(r.Context(), uid)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FlowerBalanceDTO{Flower: flower})
}

// Products godoc
//
//	@Summary	List flower products
//	@Tags		Store
//	@Produce	json
//	@Success	200	{array}	dto.ProductDTO
//	@Router		/api/store/products [get]
func (h *StoreHandler) Products(w http.ResponseWriter, r *http.Request) {
	products := h.flowerService.ListProducts()
	out := make([]dto.ProductDTO, len(products))
	for i, p := range products {
		out[i] = dto.ProductDTO{
			ID:           p.ID,
			FlowerAmount: p.FlowerAmount,
			PriceKRW:     p.PriceKRW,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// VerifyPayment godoc
//
//	@Summary		Verify a payment and credit flower
//	@Description	Check the payment with the gateway and credit the purchased flower exactly once
//	@Tags			Store
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Payment and product ids"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown product or missing fields"
//	@Failure		409		{object}	utils.Response	"Payment already processed"
//	@Failure		422		{object}	utils.Response	"Payment not settled or wrong amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/store/verify-payment [post]
func (h *StoreHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PaymentID == "" || req.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "payment_id and product_id are required")
		return
	}

	granted, err := h.flowerService.VerifyPayment(r.Context(), uid, req.PaymentID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, flowerservice.ErrUnknownProduct):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, flowerservice.ErrDuplicatePayment):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, flowerservice.ErrNotSettled), errors.Is(err, flowerservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyPaymentResponseDTO{FlowerGranted: granted})
}
