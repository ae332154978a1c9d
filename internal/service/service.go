package service

import (
	"github.com/bidmart/bidengine/internal/catalog"
	"github.com/bidmart/bidengine/internal/handlers/auth"
	"github.com/bidmart/bidengine/internal/handlers/bids"
	"github.com/bidmart/bidengine/internal/handlers/cart"
	"github.com/bidmart/bidengine/internal/handlers/earnings"

	pkgauth "github.com/bidmart/bidengine/pkg/auth"

	"github.com/bidmart/bidengine/internal/pg"
	"github.com/bidmart/bidengine/internal/repo"
	authservice "github.com/bidmart/bidengine/internal/service/authservice"
	bidservice "github.com/bidmart/bidengine/internal/service/bidservice"
	cartservice "github.com/bidmart/bidengine/internal/service/cartservice"
	earningsservice "github.com/bidmart/bidengine/internal/service/earningsservice"
)

type Services struct {
	AuthService     auth.Service
	BidService      bids.Service
	CartService     cart.Service
	EarningsService earnings.Service
}

func New(repo *repo.Repositories, catalogClient *catalog.Client, txManager pg.TXManager) *Services {
	bidService := bidservice.New(repo.BidRepo, repo.CartRepo, catalogClient, txManager)
	cartService := cartservice.New(repo.CartRepo, catalogClient)
	earningsService := earningsservice.New(repo.EarningsRepo, repo.BidRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		BidService:      bidService,
		CartService:     cartService,
		EarningsService: earningsService,
	}
}
