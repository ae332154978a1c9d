package bidrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

// Save inserts a bid together with its frozen line items. It issues plain
// statements so the caller can bind it into a wider transaction through the
// context (bid creation and cart clearing must commit together).
func (r *Repository) Save(ctx context.Context, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, user_id, proposal, attachment_ref, idempotency_key, response, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		bid.ID, bid.UserID, bid.Proposal, bid.AttachmentRef, bid.IdempotencyKey, bid.Response, bid.CreatedAt, bid.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return err
	}

	itemQuery := `
        INSERT INTO bid_line_items (bid_id, project_id, title, price, thumbnail)
        VALUES ($1, $2, $3, $4, $5)
    `
	for _, item := range bid.LineItems {
		if _, err := r.db.Exec(ctx, itemQuery, bid.ID, item.ProjectID, item.Title, item.Price, item.Thumbnail); err != nil {
			zap.L().Error("can't save bid line item", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	query := `
        SELECT id, user_id, proposal, attachment_ref, idempotency_key, response, created_at, updated_at
        FROM bids
        WHERE id = $1
    `
	bid, err := r.scanBid(r.db.QueryRow(ctx, query, id))
	if err != nil || bid == nil {
		return nil, err
	}
	if err := r.loadLineItems(ctx, []*domain.Bid{bid}); err != nil {
		return nil, err
	}
	return bid, nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Bid, error) {
	query := `
        SELECT id, user_id, proposal, attachment_ref, idempotency_key, response, created_at, updated_at
        FROM bids
        WHERE idempotency_key = $1
    `
	bid, err := r.scanBid(r.db.QueryRow(ctx, query, key))
	if err != nil || bid == nil {
		return nil, err
	}
	if err := r.loadLineItems(ctx, []*domain.Bid{bid}); err != nil {
		return nil, err
	}
	return bid, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Bid, error) {
	query := `
        SELECT id, user_id, proposal, attachment_ref, idempotency_key, response, created_at, updated_at
        FROM bids
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get bids", zap.Error(err))
		return nil, err
	}
	return r.collectBids(ctx, rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Bid, error) {
	query := `
        SELECT id, user_id, proposal, attachment_ref, idempotency_key, response, created_at, updated_at
        FROM bids
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get all bids", zap.Error(err))
		return nil, err
	}
	return r.collectBids(ctx, rows)
}

// UpdateResponse performs the compare-and-set decision write. The guard on the
// current response value makes two concurrent decisions on the same bid
// resolve to exactly one winner; the loser sees zero affected rows.
func (r *Repository) UpdateResponse(ctx context.Context, id uuid.UUID, from, to string, updatedAt time.Time) (bool, error) {
	query := `
        UPDATE bids
        SET response = $1, updated_at = $2
        WHERE id = $3 AND response = $4
    `
	tag, err := r.db.Exec(ctx, query, to, updatedAt, id, from)
	if err != nil {
		zap.L().Error("can't update bid response", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a bid. Line items cascade with it; earnings rows that
// reference the bid keep their amounts and lose only the attribution, so an
// administrator can delete a bid that has already been paid.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete bid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) scanBid(row pgx.Row) (*domain.Bid, error) {
	var bid domain.Bid
	err := row.Scan(&bid.ID, &bid.UserID, &bid.Proposal, &bid.AttachmentRef,
		&bid.IdempotencyKey, &bid.Response, &bid.CreatedAt, &bid.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan bid row", zap.Error(err))
		return nil, err
	}
	return &bid, nil
}

func (r *Repository) collectBids(ctx context.Context, rows pgx.Rows) ([]domain.Bid, error) {
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var bid domain.Bid
		err := rows.Scan(&bid.ID, &bid.UserID, &bid.Proposal, &bid.AttachmentRef,
			&bid.IdempotencyKey, &bid.Response, &bid.CreatedAt, &bid.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, bid)
	}
	if len(bids) == 0 {
		return bids, nil
	}

	refs := make([]*domain.Bid, len(bids))
	for i := range bids {
		refs[i] = &bids[i]
	}
	if err := r.loadLineItems(ctx, refs); err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *Repository) loadLineItems(ctx context.Context, bids []*domain.Bid) error {
	ids := make([]uuid.UUID, len(bids))
	byID := make(map[uuid.UUID]*domain.Bid, len(bids))
	for i, bid := range bids {
		ids[i] = bid.ID
		byID[bid.ID] = bid
	}

	query := `
        SELECT bid_id, project_id, title, price, thumbnail
        FROM bid_line_items
        WHERE bid_id = ANY($1)
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get bid line items", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var bidID uuid.UUID
		var item domain.LineItem
		if err := rows.Scan(&bidID, &item.ProjectID, &item.Title, &item.Price, &item.Thumbnail); err != nil {
			zap.L().Error("can't scan bid line item row", zap.Error(err))
			return err
		}
		if bid, ok := byID[bidID]; ok {
			bid.LineItems = append(bid.LineItems, item)
		}
	}
	return nil
}
