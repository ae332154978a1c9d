package earningsrepo

import (
	"context"

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

// CreateEarning appends one payment record. Rows are never updated or deleted
// afterwards; totals are always recomputed from the log.
func (r *Repository) CreateEarning(ctx context.Context, record *domain.EarningsRecord) (*domain.EarningsRecord, error) {
	query := `
        INSERT INTO earnings (id, user_id, amount, bid_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, record.ID, record.UserID, record.Amount, record.BidID, record.CreatedAt)
	if err != nil {
		zap.L().Error("can't save earnings record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) SumByUserID(ctx context.Context, userID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM earnings
        WHERE user_id = $1
    `
	var total int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("can't sum earnings", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.EarningsRecord, error) {
	query := `
        SELECT id, user_id, amount, bid_id, created_at
        FROM earnings
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get earnings", zap.Error(err))
		return nil, err
	}
	return collectEarnings(rows)
}

func (r *Repository) GetAll(ctx context.Context) ([]domain.EarningsRecord, error) {
	query := `
        SELECT id, user_id, amount, bid_id, created_at
        FROM earnings
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get all earnings", zap.Error(err))
		return nil, err
	}
	return collectEarnings(rows)
}

func collectEarnings(rows pgx.Rows) ([]domain.EarningsRecord, error) {
	defer rows.Close()

	var records []domain.EarningsRecord
	for rows.Next() {
		var record domain.EarningsRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Amount, &record.BidID, &record.CreatedAt); err != nil {
			zap.L().Error("can't scan earnings row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
