package cartservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bidmart/bidengine/internal/domain"
)

type Repo interface {
	AddItem(ctx context.Context, item *domain.CartItem) (bool, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type Catalog interface {
	ProjectByID(ctx context.Context, projectID string) (*domain.ProjectSnapshot, error)
}

type Service struct {
	repo    Repo
	catalog Catalog
}

func New(repo Repo, catalog Catalog) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

// AddItem stages a project for a future bid. The snapshot kept on the cart row
// is display cache only; re-adding an already staged project is a no-op.
func (s *Service) AddItem(ctx context.Context, userID int, projectID string) ([]domain.CartItem, error) {
	snapshot, err := s.catalog.ProjectByID(ctx, projectID)
	if err != nil {
		zap.L().Error("can't fetch project for cart add", zap.Error(err))
		return nil, err
	}

	item := &domain.CartItem{
		UserID:    userID,
		ProjectID: snapshot.ID,
		Title:     snapshot.Title,
		Price:     snapshot.Price,
		Thumbnail: snapshot.Thumbnail,
		AddedAt:   time.Now(),
	}
	inserted, err := s.repo.AddItem(ctx, item)
	if err != nil {
		zap.L().Error("can't add cart item", zap.Error(err))
		return nil, err
	}
	if !inserted {
		zap.L().Info("project already in cart",
			zap.Int("userID", userID), zap.String("projectID", projectID))
	}

	return s.GetCart(ctx, userID)
}

func (s *Service) GetCart(ctx context.Context, userID int) ([]domain.CartItem, error) {
	items, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get cart", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) ClearCart(ctx context.Context, userID int) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}
