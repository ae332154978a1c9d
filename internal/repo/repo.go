package repo

import (
	"github.com/bidmart/bidengine/internal/pg"
	bidrepo "github.com/bidmart/bidengine/internal/repo/bid-repo"
	cartrepo "github.com/bidmart/bidengine/internal/repo/cart-repo"
	earningsrepo "github.com/bidmart/bidengine/internal/repo/earnings-repo"
	userrepo "github.com/bidmart/bidengine/internal/repo/user-repo"
	"github.com/bidmart/bidengine/internal/service/authservice"
	"github.com/bidmart/bidengine/internal/service/bidservice"
	"github.com/bidmart/bidengine/internal/service/cartservice"
	"github.com/bidmart/bidengine/internal/service/earningsservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	BidRepo      bidservice.Repo
	CartRepo     cartservice.Repo
	EarningsRepo earningsservice.Repo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	bidRepo := bidrepo.New(conn)
	cartRepo := cartrepo.New(conn)
	earningsRepo := earningsrepo.New(conn)

	return &Repositories{
		UserRepo:     userRepo,
		BidRepo:      bidRepo,
		CartRepo:     cartRepo,
		EarningsRepo: earningsRepo,
	}
}
