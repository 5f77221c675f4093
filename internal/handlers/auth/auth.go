package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/authservice"
	"github.com/gardenus/matchledger/pkg/utils"
	"github.com/gardenus/matchledger/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

type Service interface {
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (string, *domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RequestCode godoc
//
//	@Summary		Request a sign-in code
//	@Description	Issue a one-time code for the given phone number, delivered out of band
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RequestCodeDTO	true	"Phone number"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body or phone"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/request-code [post]
func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsPhone(req.Phone) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid phone number")
		return
	}
	if err := h.authService.RequestCode(r.Context(), req.Phone); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Code sent"})
}

// Verify godoc
//
//	@Summary		Verify a sign-in code
//	@Description	Check the one-time code and return a session token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyCodeRequestDTO	true	"Phone and code"
//	@Success		200		{object}	dto.VerifyCodeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid or expired code"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	token, user, err := h.authService.VerifyCode(r.Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, authservice.ErrCodeInvalid) {
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyCodeResponseDTO{
		UID:     user.UID,
		Message: "Signed in",
	})
}
