package matchservice

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/pg"
	matchrequestrepo "github.com/gardenus/matchledger/internal/repo/matchrequest-repo"
)

//go:generate mockgen -source=matchservice.go -destination=mock_matchservice.go -package=matchservice

type MatchRepo interface {
	GetByID(ctx context.Context, id string) (*domain.MatchRequest, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.MatchRequest, error)
	GetPairForUpdate(ctx context.Context, forwardID, reverseID string) (forward, reverse *domain.MatchRequest, err error)
	Create(ctx context.Context, req *domain.MatchRequest) error
	SetStatus(ctx context.Context, id string, status domain.MatchRequestStatus) error
	SetStatusIfPending(ctx context.Context, id string, status domain.MatchRequestStatus) (bool, error)
	Delete(ctx context.Context, id string) error
	FindSentByUser(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error)
	FindReceivedPending(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error)
	FindAcceptedFrom(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error)
	FindAcceptedTo(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error)
	FindByCreatedRange(ctx context.Context, start, end time.Time, asc bool, limit int) ([]domain.MatchRequest, error)
}

type BalanceRepo interface {
	GetFlowerForUpdate(ctx context.Context, uid string) (int64, error)
	AddFlower(ctx context.Context, uid string, delta int64) error
}

// Rooms creates the chat room for a matched pair inside the accepting
// transaction, so a committed match always has somewhere to talk.
type Rooms interface {
	EnsureRoom(ctx context.Context, uid1, uid2 string) error
}

// Events is the post-commit notification fan-out. Calls are best-effort
// and must never influence a ledger outcome.
type Events interface {
	LikeReceived(ctx context.Context, fromUID, toUID string)
	MatchSuccess(ctx context.Context, fromUID, toUID string)
	RequestDeclined(ctx context.Context, fromUID, toUID string)
	RefundDone(ctx context.Context, uid string, amount int64)
}

var (
	ErrSelfRequest           = errors.New("self_request")
	ErrAlreadyPending        = errors.New("already_pending")
	ErrAlreadyHandled        = errors.New("already_handled")
	ErrReverseAlreadyHandled = errors.New("reverse_already_handled")
	ErrNotEnoughFlower       = errors.New("not_enough_flower")
	ErrNotFound              = errors.New("request_not_found")
	ErrWrongParty            = errors.New("wrong_party")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrUnknown               = errors.New("unknown")
)

// Message returns the user-displayable text for a ledger rejection.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrSelfRequest):
		return "You can't send a request to yourself."
	case errors.Is(err, ErrAlreadyPending):
		return "You already sent a request to this user."
	case errors.Is(err, ErrAlreadyHandled):
		return "This request was already handled."
	case errors.Is(err, ErrReverseAlreadyHandled):
		return "This user's request to you was already handled."
	case errors.Is(err, ErrNotEnoughFlower):
		return "Not enough flower."
	case errors.Is(err, ErrNotFound):
		return "Request not found."
	case errors.Is(err, ErrWrongParty):
		return "You can't act on this request."
	case errors.Is(err, ErrInvalidStatus):
		return "Unsupported status."
	default:
		return "Something went wrong. Please try again."
	}
}

type OutcomeKind string

const (
	OutcomeCreatedForward      OutcomeKind = "created_forward"
	OutcomeAutoAcceptedReverse OutcomeKind = "auto_accepted_reverse"
)

type Outcome struct {
	Kind    OutcomeKind
	Request *domain.MatchRequest
	Message string
}

// AcceptedMatch is one side-agnostic entry of the matches list.
type AcceptedMatch struct {
	ID        string
	FromUID   string
	ToUID     string
	OtherUID  string
	CreatedAt time.Time
}

var requestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gardenus_match_request_outcomes_total",
	Help: "Match request outcomes by kind or rejection",
}, []string{"outcome"})

type Service struct {
	matchRepo   MatchRepo
	balanceRepo BalanceRepo
	rooms       Rooms
	txManager   pg.TXManager
	events      Events
}

func New(matchRepo MatchRepo, balanceRepo BalanceRepo, rooms Rooms, txManager pg.TXManager, events Events) *Service {
	return &Service{
		matchRepo:   matchRepo,
		balanceRepo: balanceRepo,
		rooms:       rooms,
		txManager:   txManager,
		events:      events,
	}
}

// businessErr reports whether err is one of the typed ledger rejections.
func businessErr(err error) bool {
	for _, e := range []error{
		ErrSelfRequest, ErrAlreadyPending, ErrAlreadyHandled,
		ErrReverseAlreadyHandled, ErrNotEnoughFlower,
		ErrNotFound, ErrWrongParty, ErrInvalidStatus,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// normalize collapses infrastructure failures to ErrUnknown so no raw
// database error ever crosses the service boundary.
func normalize(err error) error {
	if err == nil || businessErr(err) {
		return err
	}
	zap.L().Error("ledger operation failed", zap.Error(err))
	return ErrUnknown
}

func count(outcome string) {
	requestOutcomes.WithLabelValues(outcome).Inc()
}

// RequestMatch executes the create-or-auto-accept operation in one
// database transaction. The reverse direction is inspected before the
// forward one: a pending request from the target always wins and turns
// into an instant match instead of a duplicate-request rejection.
func (s *Service) RequestMatch(ctx context.Context, requesterID, targetID string) (*Outcome, error) {
	if requesterID == targetID {
		count("self_request")
		return nil, ErrSelfRequest
	}

	forwardID := domain.MatchRequestID(requesterID, targetID)
	reverseID := domain.MatchRequestID(targetID, requesterID)

	var outcome *Outcome
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		forward, reverse, err := s.matchRepo.GetPairForUpdate(ctx, forwardID, reverseID)
		if err != nil {
			return err
		}

		if reverse != nil {
			if reverse.Status != domain.StatusPending {
				return ErrReverseAlreadyHandled
			}
			// The target already paid for their request, so accepting
			// it costs the requester nothing.
			if err := s.matchRepo.SetStatus(ctx, reverseID, domain.StatusAccepted); err != nil {
				return err
			}
			if err := s.rooms.EnsureRoom(ctx, requesterID, targetID); err != nil {
				return err
			}
			reverse.Status = domain.StatusAccepted
			outcome = &Outcome{
				Kind:    OutcomeAutoAcceptedReverse,
				Request: reverse,
				Message: "It's a match!",
			}
			return nil
		}

		if forward != nil {
			if forward.Status == domain.StatusPending {
				return ErrAlreadyPending
			}
			return ErrAlreadyHandled
		}

		flower, err := s.balanceRepo.GetFlowerForUpdate(ctx, requesterID)
		if err != nil {
			return err
		}
		if flower < domain.FlowerCost {
			return ErrNotEnoughFlower
		}

		req := &domain.MatchRequest{
			ID:             forwardID,
			FromUID:        requesterID,
			ToUID:          targetID,
			Status:         domain.StatusPending,
			FlowerCost:     domain.FlowerCost,
			RefundEligible: true,
		}
		if err := s.matchRepo.Create(ctx, req); err != nil {
			if errors.Is(err, matchrequestrepo.ErrDuplicate) {
				// Lost a race with an identical request that committed
				// after our snapshot.
				return ErrAlreadyPending
			}
			return err
		}
		if err := s.balanceRepo.AddFlower(ctx, requesterID, -domain.FlowerCost); err != nil {
			return err
		}
		outcome = &Outcome{
			Kind:    OutcomeCreatedForward,
			Request: req,
			Message: "Request sent.",
		}
		return nil
	})
	if err != nil {
		err = normalize(err)
		count(err.Error())
		return nil, err
	}

	count(string(outcome.Kind))
	switch outcome.Kind {
	case OutcomeCreatedForward:
		s.events.LikeReceived(ctx, requesterID, targetID)
	case OutcomeAutoAcceptedReverse:
		s.events.MatchSuccess(ctx, targetID, requesterID)
	}
	return outcome, nil
}

// UpdateStatus accepts or declines a pending request. Only the recipient
// may transition it, and terminal states are never overwritten. Accepting
// creates the pair's chat room in the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, callerUID, requestID string, status domain.MatchRequestStatus) error {
	if status != domain.StatusAccepted && status != domain.StatusDeclined {
		return ErrInvalidStatus
	}

	req, err := s.matchRepo.GetByID(ctx, requestID)
	if err != nil {
		return normalize(err)
	}
	if req == nil {
		return ErrNotFound
	}
	if req.ToUID != callerUID {
		return ErrWrongParty
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.matchRepo.SetStatusIfPending(ctx, requestID, status)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyHandled
		}
		if status == domain.StatusAccepted {
			return s.rooms.EnsureRoom(ctx, req.FromUID, req.ToUID)
		}
		return nil
	})
	if err != nil {
		return normalize(err)
	}

	switch status {
	case domain.StatusAccepted:
		s.events.MatchSuccess(ctx, req.FromUID, req.ToUID)
	case domain.StatusDeclined:
		s.events.RequestDeclined(ctx, req.FromUID, req.ToUID)
	}
	return nil
}

// CancelAndRefund deletes the requester's own pending request and
// credits the recorded flower cost back, both in one transaction. A
// request that is already gone is treated as cleaned up.
func (s *Service) CancelAndRefund(ctx context.Context, callerUID, requestID string) error {
	var refunded int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		req, err := s.matchRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req == nil {
			zap.L().Warn("cancel of absent match request", zap.String("id", requestID))
			return nil
		}
		if req.FromUID != callerUID {
			return ErrWrongParty
		}

		if err := s.matchRepo.Delete(ctx, requestID); err != nil {
			return err
		}
		if req.FlowerCost > 0 {
			if err := s.balanceRepo.AddFlower(ctx, req.FromUID, req.FlowerCost); err != nil {
				return err
			}
			refunded = req.FlowerCost
		}
		return nil
	})
	if err != nil {
		return normalize(err)
	}

	if refunded > 0 {
		s.events.RefundDone(ctx, callerUID, refunded)
	}
	return nil
}

func (s *Service) SentRequests(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error) {
	requests, err := s.matchRepo.FindSentByUser(ctx, uid, limit)
	return requests, normalize(err)
}

func (s *Service) ReceivedPendingRequests(ctx context.Context, uid string, limit int) ([]domain.MatchRequest, error) {
	requests, err := s.matchRepo.FindReceivedPending(ctx, uid, limit)
	return requests, normalize(err)
}

// AcceptedMatches merges both directions of accepted requests for a
// user, newest first. The two directional queries run concurrently.
func (s *Service) AcceptedMatches(ctx context.Context, uid string, limit int) ([]AcceptedMatch, error) {
	var from, to []domain.MatchRequest

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		from, err = s.matchRepo.FindAcceptedFrom(gctx, uid, limit)
		return err
	})
	g.Go(func() error {
		var err error
		to, err = s.matchRepo.FindAcceptedTo(gctx, uid, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, normalize(err)
	}

	seen := make(map[string]struct{})
	matches := make([]AcceptedMatch, 0, len(from)+len(to))
	for _, req := range append(from, to...) {
		if _, ok := seen[req.ID]; ok {
			continue
		}
		seen[req.ID] = struct{}{}
		other := req.ToUID
		if req.ToUID == uid {
			other = req.FromUID
		}
		matches = append(matches, AcceptedMatch{
			ID:        req.ID,
			FromUID:   req.FromUID,
			ToUID:     req.ToUID,
			OtherUID:  other,
			CreatedAt: req.CreatedAt,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *Service) RequestsInRange(ctx context.Context, start, end time.Time, asc bool, limit int) ([]domain.MatchRequest, error) {
	requests, err := s.matchRepo.FindByCreatedRange(ctx, start, end, asc, limit)
	return requests, normalize(err)
}
