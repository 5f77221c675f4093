package match

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/dto"
	"github.com/gardenus/matchledger/internal/service/matchservice"
	"github.com/gardenus/matchledger/pkg/auth"
	"github.com/gardenus/matchledger/pkg/utils"
)

//go:generate mockgen -source=match.go -destination=mock_match.go -package=match

const defaultLimit = 50

type Service interface {
	RequestMatch(ctx context.Context, requesterID, targetID string) (*matchservice.Outcome, error)
	UpdateStatus(ctx context.Context, callerUID, requestID string, status domain.MatchRequestStatus) error
	CancelAndRefund(ctx context.Context, callerUID, requestID string) error
	SentRequests(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error)
	ReceivedPendingRequests(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error)
	AcceptedMatches(ctx context.Context, uid string, limit int) ([]matchservice.AcceptedMatch, error)
	RequestsInRange(ctx context.Context, start, end time.Time, asc bool, limit int) ([]domain.MatchRequest, error)
}

type MatchHandler struct {
	matchService Service
}

func New(matchService Service) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

func respondLedgerError(w http.ResponseWriter, err error) {
	msg := matchservice.Message(err)
	switch {
	case errors.Is(err, matchservice.ErrNotEnoughFlower):
		utils.RespondWithError(w, http.StatusPaymentRequired, msg)
	case errors.Is(err, matchservice.ErrAlreadyPending),
		errors.Is(err, matchservice.ErrAlreadyHandled),
		errors.Is(err, matchservice.ErrReverseAlreadyHandled):
		utils.RespondWithError(w, http.StatusConflict, msg)
	case errors.Is(err, matchservice.ErrWrongParty):
		utils.RespondWithError(w, http.StatusForbidden, msg)
	case errors.Is(err, matchservice.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, msg)
	case errors.Is(err, matchservice.ErrSelfRequest),
		errors.Is(err, matchservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, msg)
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, msg)
	}
}

func limitParam(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultLimit
}

func toRequestDTOs(requests []domain.MatchRequest) []dto.MatchRequestDTO {
	out := make([]dto.MatchRequestDTO, len(requests))
	for i, req := range requests {
		out[i] = dto.MatchRequestDTO{
			ID:        req.ID,
			FromUID:   req.FromUID,
			ToUID:     req.ToUID,
			Status:    string(req.Status),
			CreatedAt: req.CreatedAt,
		}
	}
	return out
}

// Request godoc
//
//	@Summary		Send a match request
//	@Description	Create a match request to another user, paying the flower cost, or instantly match when they already requested you
//	@Tags			Match
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RequestMatchDTO	true	"Target user"
//	@Success		200		{object}	dto.RequestMatchResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		402		{object}	utils.Response	"Not enough flower"
//	@Failure		409		{object}	utils.Response	"Request already exists or was handled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/match/requests [post]
func (h *MatchHandler) Request(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	var req dto.RequestMatchDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ToUID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "to_uid is required")
		return
	}

	outcome, err := h.matchService.RequestMatch(r.Context(), uid, req.ToUID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RequestMatchResponseDTO{
		Kind:    string(outcome.Kind),
		Message: outcome.Message,
	})
}

// UpdateStatus godoc
//
//	@Summary		Accept or decline a request
//	@Description	Transition a pending request addressed to the caller to ACCEPTED or DECLINED
//	@Tags			Match
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Request id"
//	@Param			request	body		dto.UpdateRequestStatusDTO	true	"New status"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Unsupported status"
//	@Failure		403		{object}	utils.Response	"Caller is not the recipient"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Request already handled"
//	@Router			/api/match/requests/{id} [patch]
func (h *MatchHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())
	requestID := chi.URLParam(r, "id")

	var req dto.UpdateRequestStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.matchService.UpdateStatus(r.Context(), uid, requestID, domain.MatchRequestStatus(req.Status))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Status updated"})
}

// Cancel godoc
//
//	@Summary		Cancel a sent request
//	@Description	Delete the caller's own request and refund its flower cost
//	@Tags			Match
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Request id"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller is not the requester"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/match/requests/{id} [delete]
func (h *MatchHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())
	requestID := chi.URLParam(r, "id")

	if err := h.matchService.CancelAndRefund(r.Context(), uid, requestID); err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request canceled"})
}

// Sent godoc
//
//	@Summary	List sent requests
//	@Tags		Match
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Max results"
//	@Success	200		{array}		dto.MatchRequestDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/match/requests/sent [get]
func (h *MatchHandler) Sent(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	requests, err := h.matchService.SentRequests(r.Context(), uid, limitParam(r))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRequestDTOs(requests))
}

// Received godoc
//
//	@Summary	List received pending requests
//	@Tags		Match
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Max results"
//	@Success	200		{array}		dto.MatchRequestDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/match/requests/received [get]
func (h *MatchHandler) Received(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	requests, err := h.matchService.ReceivedPendingRequests(r.Context(), uid, limitParam(r))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toRequestDTOs(requests))
}

// Matches godoc
//
//	@Summary	List accepted matches
//	@Tags		Match
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Max results"
//	@Success	200		{array}		dto.AcceptedMatchDTO
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/match/matches [get]
func (h *MatchHandler) Matches(w http.ResponseWriter, r *http.Request) {
	uid := auth.UID(r.Context())

	matches, err := h.matchService.AcceptedMatches(r.Context(), uid, limitParam(r))
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	out := make([]dto.AcceptedMatchDTO, len(matches))
	for i, m := range matches {
		out[i] = dto.AcceptedMatchDTO{
			ID:        m.ID,
			OtherUID:  m.OtherUID,
			CreatedAt: m.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
