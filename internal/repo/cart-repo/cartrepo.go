package cartrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// AddItem inserts a cart row. The (user_id, project_id) unique constraint
// makes the add idempotent: a duplicate insert affects zero rows and the
// existing snapshot stays untouched.
func (r *Repository) AddItem(ctx context.Context, item *domain.CartItem) (bool, error) {
	query := `
        INSERT INTO cart_items (user_id, project_id, title, price, thumbnail, added_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, project_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, item.UserID, item.ProjectID, item.Title, item.Price, item.Thumbnail, item.AddedAt)
	if err != nil {
		zap.L().Error("can't save cart item", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.CartItem, error) {
	query := `
        SELECT id, user_id, project_id, title, price, thumbnail, added_at
        FROM cart_items
        WHERE user_id = $1
        ORDER BY added_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ProjectID, &item.Title, &item.Price, &item.Thumbnail, &item.AddedAt)
		if err != nil {
			zap.L().Error("can't scan cart item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) Clear(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("can't clear cart", zap.Error(err))
		return err
	}
	return nil
}
