package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/userservice"
	"github.com/gardenus/matchledger/pkg/auth"
	"github.com/gardenus/matchledger/pkg/utils"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=user

const defaultCandidateLimit = 50

type Service interface {
	Get(ctx context.Context, uid string) (*domain.User, error)
	UpdateProfile(ctx context.Context, uid, name string, gender, visible bool) (*domain.User, error)
	Candidates(ctx context.Context, uid string, limit int) ([]domain.User, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toProfileDTO(u *domain.User) dto.ProfileDTO {
	return dto.ProfileDTO{
		UID:            u.UID,
		Name:           u.Name,
		Gender:         u.Gender,
		ProfileVisible: u.ProfileVisible,
		Flower:         u.Flower,
	}
}

// Me godoc
//
//	@Summary	Get the caller's profile
//	@Tags		User
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ProfileDTO
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/user/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	user, err := h.userService.Get(r.Context(), uid)
	if err != nil {
		if errors.Is(err, userservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(user))
}

// UpdateMe godoc
//
//	@Summary	Update the caller's profile
//	@Tags		User
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateProfileDTO	true	"Profile fields"
//	@Success	200		{object}	dto.ProfileDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Router		/api/user/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	var req dto.UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), uid, req.Name, req.Gender, req.ProfileVisible)
	if err != nil {
		if errors.Is(err, userservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(user))
}

// Candidates godoc
//
//	@Summary	List match candidates
//	@Tags		User
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Max results"
//	@Success	200		{array}		dto.CandidateDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/candidates [get]
func (h *UserHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	limit := defaultCandidateLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	candidates, err := h.userService.Candidates(r.Context(), uid, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.CandidateDTO, len(candidates))
	for i, c := range candidates {
		out[i] = dto.CandidateDTO{UID: c.UID, Name: c.Name}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
