package cartrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bidmart/bidengine/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_AddItem(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        INSERT INTO cart_items (user_id, project_id, title, price, thumbnail, added_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, project_id) DO NOTHING
    `
	item := &domain.CartItem{
		UserID: 1, ProjectID: "p1", Title: "Site", Price: 100, Thumbnail: "thumb.png", AddedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		inserted  bool
	}{
		{
			name: "New item inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, "p1", "Site", int64(100), "thumb.png", now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			inserted: true,
		},
		{
			name: "Duplicate project is a no-op",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, "p1", "Site", int64(100), "thumb.png", now).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			inserted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(query)).
					WithArgs(1, "p1", "Site", int64(100), "thumb.png", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			inserted, err := repo.AddItem(context.Background(), item)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.inserted, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := `
        SELECT id, user_id, project_id, title, price, thumbnail, added_at
        FROM cart_items
        WHERE user_id = $1
        ORDER BY added_at ASC, id ASC
    `
	columns := []string{"id", "user_id", "project_id", "title", "price", "thumbnail", "added_at"}

	t.Run("Items in add order", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(1, 1, "p1", "Site", int64(100), "", now.Add(-time.Hour)).
			AddRow(2, 1, "p2", "Bot", int64(200), "", now)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(rows)

		items, err := repo.GetByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "p1", items[0].ProjectID)
		assert.Equal(t, "p2", items[1].ProjectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty cart", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(columns))

		items, err := repo.GetByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetByUserID(context.Background(), 1)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Clear(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Cart cleared", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items WHERE user_id = $1`)).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		err := repo.Clear(context.Background(), 1)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items WHERE user_id = $1`)).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		err := repo.Clear(context.Background(), 1)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
