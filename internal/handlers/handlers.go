package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bidmart/bidengine/docs"
	authhandlers "github.com/bidmart/bidengine/internal/handlers/auth"
	bidhandlers "github.com/bidmart/bidengine/internal/handlers/bids"
	carthandlers "github.com/bidmart/bidengine/internal/handlers/cart"
	earningshandlers "github.com/bidmart/bidengine/internal/handlers/earnings"
	"github.com/bidmart/bidengine/internal/service"
	"github.com/bidmart/bidengine/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BidHandler interface {
	CreateBid(w http.ResponseWriter, r *http.Request)
	MyBids(w http.ResponseWriter, r *http.Request)
	MyBidStats(w http.ResponseWriter, r *http.Request)
	BidDetails(w http.ResponseWriter, r *http.Request)
	AllBids(w http.ResponseWriter, r *http.Request)
	ProcessResponse(w http.ResponseWriter, r *http.Request)
	DeleteBid(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	AddItem(w http.ResponseWriter, r *http.Request)
	GetCart(w http.ResponseWriter, r *http.Request)
	ClearCart(w http.ResponseWriter, r *http.Request)
}

type EarningsHandler interface {
	CreateEarning(w http.ResponseWriter, r *http.Request)
	MyEarnings(w http.ResponseWriter, r *http.Request)
	AllEarnings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BidHandler      BidHandler
	CartHandler     CartHandler
	EarningsHandler EarningsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BidHandler:      bidhandlers.New(s.BidService),
		CartHandler:     carthandlers.New(s.CartService),
		EarningsHandler: earningshandlers.New(s.EarningsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.CartHandler.GetCart)
			r.Delete("/", h.CartHandler.ClearCart)
			r.Post("/items/{projectID}", h.CartHandler.AddItem)
		})

		r.Post("/bid/new", h.BidHandler.CreateBid)
		r.Get("/bid/{id}", h.BidHandler.BidDetails)
		r.Get("/bids/me", h.BidHandler.MyBids)
		r.Get("/bids/me/stats", h.BidHandler.MyBidStats)

		r.Get("/user/earning", h.EarningsHandler.MyEarnings)

		r.Group(func(r chi.Router) {
			r.Use(auth.AdminMiddleware)
			r.Get("/admin/bids", h.BidHandler.AllBids)
			r.Put("/admin/bid/{id}", h.BidHandler.ProcessResponse)
			r.Delete("/admin/bid/{id}", h.BidHandler.DeleteBid)
			r.Post("/earnings", h.EarningsHandler.CreateEarning)
			r.Get("/admin/earning", h.EarningsHandler.AllEarnings)
		})
	})

	return r
}
