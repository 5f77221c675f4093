package handlers

import (
	"net/http"

	_ "github.com/gardenus/matchledger/docs"
	authhandlers "github.com/gardenus/matchledger/internal/handlers/auth"
	chathandlers "github.com/gardenus/matchledger/internal/handlers/chat"
	matchhandlers "github.com/gardenus/matchledger/internal/handlers/match"
	notifhandlers "github.com/gardenus/matchledger/internal/handlers/notifications"
	storehandlers "github.com/gardenus/matchledger/internal/handlers/store"
	userhandlers "github.com/gardenus/matchledger/internal/handlers/user"
	"github.com/gardenus/matchledger/internal/metrics"
	"github.com/gardenus/matchledger/internal/service"
	"github.com/gardenus/matchledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	RequestCode(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type MatchHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Sent(w http.ResponseWriter, r *http.Request)
	Received(w http.ResponseWriter, r *http.Request)
	Matches(w http.ResponseWriter, r *http.Request)
}

type StoreHandler interface {
	GetFlower(w http.ResponseWriter, r *http.Request)
	Products(w http.ResponseWriter, r *http.Request)
	VerifyPayment(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	Candidates(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	Rooms(w http.ResponseWriter, r *http.Request)
	Messages(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	MatchHandler        MatchHandler
	StoreHandler        StoreHandler
	UserHandler         UserHandler
	ChatHandler         ChatHandler
	NotificationHandler NotificationHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		MatchHandler:        matchhandlers.New(s.MatchService),
		StoreHandler:        storehandlers.New(s.FlowerService),
		UserHandler:         userhandlers.New(s.UserService),
		ChatHandler:         chathandlers.New(s.ChatService),
		NotificationHandler: notifhandlers.New(s.Notifier),
		jwtService:          s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/request-code", h.AuthHandler.RequestCode)
			r.Post("/verify", h.AuthHandler.Verify)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Route("/user", func(r chi.Router) {
				r.Get("/me", h.UserHandler.Me)
				r.Put("/me", h.UserHandler.UpdateMe)
				r.Get("/flower", h.StoreHandler.GetFlower)
			})
			r.Get("/candidates", h.UserHandler.Candidates)

			r.Route("/match", func(r chi.Router) {
				r.Post("/requests", h.MatchHandler.Request)
				r.Get("/requests/sent", h.MatchHandler.Sent)
				r.Get("/requests/received", h.MatchHandler.Received)
				r.Patch("/requests/{id}", h.MatchHandler.UpdateStatus)
				r.Delete("/requests/{id}", h.MatchHandler.Cancel)
				r.Get("/matches", h.MatchHandler.Matches)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/rooms", h.ChatHandler.Rooms)
				r.Get("/rooms/{id}/messages", h.ChatHandler.Messages)
				r.Post("/rooms/{id}/messages", h.ChatHandler.Send)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.NotificationHandler.List)
				r.Get("/stream", h.NotificationHandler.Stream)
				r.Post("/{id}/read", h.NotificationHandler.MarkRead)
			})

			r.Route("/store", func(r chi.Router) {
				r.Get("/products", h.StoreHandler.Products)
				r.Post("/verify-payment", h.StoreHandler.VerifyPayment)
			})
		})
	})

	return r
}
