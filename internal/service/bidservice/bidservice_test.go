package bidservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/internal/pg"
	"github.com/bidmart/bidengine/pkg/apperr"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCartRepo, *MockCatalog, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	cartRepo := NewMockCartRepo(ctrl)
	catalog := NewMockCatalog(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, cartRepo, catalog, txManager)
	defer ctrl.Finish()
	return service, repo, cartRepo, catalog, txManager
}

func TestSubmitBid(t *testing.T) {
	service, repo, cartRepo, catalog, txManager := NewMock(t)

	existingID := uuid.New()
	tests := []struct {
		name           string
		userID         int
		idempotencyKey string
		proposal       string
		prepareMock    func()
		expectedBidID  *uuid.UUID
		expectedKind   apperr.Kind
		expectedError  error
	}{
		{
			name:           "Empty proposal is rejected",
			userID:         1,
			idempotencyKey: "key-1",
			proposal:       "   ",
			expectedKind:   apperr.KindValidation,
		},
		{
			name:         "Missing idempotency key is rejected",
			userID:       1,
			proposal:     "I can build this",
			expectedKind: apperr.KindValidation,
		},
		{
			name:           "Retry with the same key returns the existing bid",
			userID:         1,
			idempotencyKey: "key-1",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").
					Return(&domain.Bid{ID: existingID, UserID: 1, Response: domain.PendingResponse}, nil)
			},
			expectedBidID: &existingID,
		},
		{
			name:           "Key already used by another user",
			userID:         2,
			idempotencyKey: "key-1",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").
					Return(&domain.Bid{ID: existingID, UserID: 1}, nil)
			},
			expectedKind: apperr.KindValidation,
		},
		{
			name:           "Empty cart is rejected",
			userID:         1,
			idempotencyKey: "key-2",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-2").Return(nil, nil)
				cartRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedKind: apperr.KindValidation,
		},
		{
			name:           "Catalog fetch fails",
			userID:         1,
			idempotencyKey: "key-3",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-3").Return(nil, nil)
				cartRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return([]domain.CartItem{
					{UserID: 1, ProjectID: "p1"},
				}, nil)
				catalog.EXPECT().Snapshots(gomock.Any(), []string{"p1"}).
					Return(nil, errors.New("catalog down"))
			},
			expectedError: errors.New("catalog down"),
		},
		{
			name:           "Bid is created from catalog snapshots",
			userID:         1,
			idempotencyKey: "key-4",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-4").Return(nil, nil)
				cartRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return([]domain.CartItem{
					{UserID: 1, ProjectID: "p1", Price: 100},
					{UserID: 1, ProjectID: "p2", Price: 200},
				}, nil)
				catalog.EXPECT().Snapshots(gomock.Any(), []string{"p1", "p2"}).
					Return([]domain.ProjectSnapshot{
						{ID: "p1", Title: "Site", Price: 150},
						{ID: "p2", Title: "Bot", Price: 200},
					}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
						return fn(ctx)
					})
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				cartRepo.EXPECT().Clear(gomock.Any(), 1).Return(nil)
			},
		},
		{
			name:           "Lost same-key insert race returns the winner's bid",
			userID:         1,
			idempotencyKey: "key-6",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-6").Return(nil, nil)
				cartRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return([]domain.CartItem{
					{UserID: 1, ProjectID: "p1"},
				}, nil)
				catalog.EXPECT().Snapshots(gomock.Any(), []string{"p1"}).
					Return([]domain.ProjectSnapshot{{ID: "p1", Title: "Site", Price: 150}}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505"})
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-6").
					Return(&domain.Bid{ID: existingID, UserID: 1, Response: domain.PendingResponse}, nil)
			},
			expectedBidID: &existingID,
		},
		{
			name:           "Lost insert race to another user's key",
			userID:         2,
			idempotencyKey: "key-7",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-7").Return(nil, nil)
				cartRepo.EXPECT().GetByUserID(gomock.Any(), 2).Return([]domain.CartItem{
					{UserID: 2, ProjectID: "p1"},
				}, nil)
				catalog.EXPECT().Snapshots(gomock.Any(), []string{"p1"}).
					Return([]domain.ProjectSnapshot{{ID: "p1", Title: "Site", Price: 150}}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505"})
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-7").
					Return(&domain.Bid{ID: existingID, UserID: 1}, nil)
			},
			expectedKind: apperr.KindValidation,
		},
		{
			name:           "Transaction failure surfaces",
			userID:         1,
			idempotencyKey: "key-5",
			proposal:       "I can build this",
			prepareMock: func() {
				repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-5").Return(nil, nil)
				cartRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return([]domain.CartItem{
					{UserID: 1, ProjectID: "p1"},
				}, nil)
				catalog.EXPECT().Snapshots(gomock.Any(), []string{"p1"}).
					Return([]domain.ProjectSnapshot{{ID: "p1", Title: "Site", Price: 150}}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("tx failed"))
			},
			expectedError: errors.New("tx failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			bid, err := service.SubmitBid(context.Background(), tt.userID, tt.idempotencyKey, tt.proposal, "")
			switch {
			case tt.expectedKind != "":
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				assert.NoError(t, err)
				assert.NotNil(t, bid)
				if tt.expectedBidID != nil {
					assert.Equal(t, *tt.expectedBidID, bid.ID)
				} else {
					assert.Equal(t, domain.PendingResponse, bid.Response)
					assert.Equal(t, tt.userID, bid.UserID)
				}
			}
		})
	}
}

func TestSubmitBidUsesCatalogPrices(t *testing.T) {
	service, repo, cartRepo, catalog, txManager := NewMock(t)

	repo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-fresh").Return(nil, nil)
	cartRepo.EXPECT().GetByUserID(gomock.Any(), 1).Return([]domain.CartItem{
		{UserID: 1, ProjectID: "p1", Title: "Stale title", Price: 1},
	}, nil)
	catalog.EXPECT().Snapshots(gomock.Any(), []string{"p1"}).
		Return([]domain.ProjectSnapshot{{ID: "p1", Title: "Fresh title", Price: 500}}, nil)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	cartRepo.EXPECT().Clear(gomock.Any(), 1).Return(nil)

	bid, err := service.SubmitBid(context.Background(), 1, "key-fresh", "I can build this", "")
	assert.NoError(t, err)
	assert.Len(t, bid.LineItems, 1)
	assert.Equal(t, "Fresh title", bid.LineItems[0].Title)
	assert.Equal(t, int64(500), bid.LineItems[0].Price)
}

func TestGetBid(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	bidID := uuid.New()
	tests := []struct {
		name          string
		prepareMock   func()
		expectedKind  apperr.Kind
		expectedError error
	}{
		{
			name: "Bid found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).
					Return(&domain.Bid{ID: bidID, UserID: 1}, nil)
			},
		},
		{
			name: "Bid not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).Return(nil, nil)
			},
			expectedKind: apperr.KindNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			bid, err := service.GetBid(context.Background(), bidID)
			switch {
			case tt.expectedKind != "":
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, bidID, bid.ID)
			}
		})
	}
}

func TestGetAllBids(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		role          string
		prepareMock   func()
		expectedBids  []domain.Bid
		expectedKind  apperr.Kind
		expectedError error
	}{
		{
			name:         "Member role is forbidden",
			role:         domain.RoleMember,
			expectedKind: apperr.KindForbidden,
		},
		{
			name: "Administrator gets all bids",
			role: domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return([]domain.Bid{
					{UserID: 1, Response: domain.PendingResponse},
					{UserID: 2, Response: domain.ApprovedResponse},
				}, nil)
			},
			expectedBids: []domain.Bid{
				{UserID: 1, Response: domain.PendingResponse},
				{UserID: 2, Response: domain.ApprovedResponse},
			},
		},
		{
			name: "Repository error",
			role: domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			bids, err := service.GetAllBids(context.Background(), tt.role)
			switch {
			case tt.expectedKind != "":
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBids, bids)
			}
		})
	}
}

func TestDeleteBid(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	bidID := uuid.New()
	tests := []struct {
		name          string
		role          string
		prepareMock   func()
		expectedKind  apperr.Kind
		expectedError error
	}{
		{
			name:         "Member role is forbidden",
			role:         domain.RoleMember,
			expectedKind: apperr.KindForbidden,
		},
		{
			name: "Bid deleted",
			role: domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), bidID).Return(true, nil)
			},
		},
		{
			name: "Second delete reports not found",
			role: domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), bidID).Return(false, nil)
			},
			expectedKind: apperr.KindNotFound,
		},
		{
			name: "Repository error",
			role: domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), bidID).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.DeleteBid(context.Background(), bidID, tt.role)
			switch {
			case tt.expectedKind != "":
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessResponse(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	bidID := uuid.New()
	tests := []struct {
		name          string
		decision      string
		role          string
		prepareMock   func()
		expectedKind  apperr.Kind
		expectedError error
	}{
		{
			name:         "Member role is forbidden",
			decision:     domain.ApprovedResponse,
			role:         domain.RoleMember,
			expectedKind: apperr.KindForbidden,
		},
		{
			name:         "Pending is not a valid decision",
			decision:     domain.PendingResponse,
			role:         domain.RoleAdministrator,
			expectedKind: apperr.KindValidation,
		},
		{
			name:         "Unknown decision value",
			decision:     "Maybe",
			role:         domain.RoleAdministrator,
			expectedKind: apperr.KindValidation,
		},
		{
			name:     "Bid not found",
			decision: domain.ApprovedResponse,
			role:     domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).Return(nil, nil)
			},
			expectedKind: apperr.KindNotFound,
		},
		{
			name:     "Bid already approved",
			decision: domain.RejectedResponse,
			role:     domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).
					Return(&domain.Bid{ID: bidID, Response: domain.ApprovedResponse}, nil)
			},
			expectedKind: apperr.KindInvalidState,
		},
		{
			name:     "Concurrent decision loses the compare-and-set",
			decision: domain.ApprovedResponse,
			role:     domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).
					Return(&domain.Bid{ID: bidID, Response: domain.PendingResponse}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), bidID, domain.PendingResponse, domain.ApprovedResponse, gomock.Any()).
					Return(false, nil)
			},
			expectedKind: apperr.KindInvalidState,
		},
		{
			name:     "Approval succeeds",
			decision: domain.ApprovedResponse,
			role:     domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).
					Return(&domain.Bid{ID: bidID, Response: domain.PendingResponse}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), bidID, domain.PendingResponse, domain.ApprovedResponse, gomock.Any()).
					Return(true, nil)
			},
		},
		{
			name:     "Rejection succeeds",
			decision: domain.RejectedResponse,
			role:     domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).
					Return(&domain.Bid{ID: bidID, Response: domain.PendingResponse}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), bidID, domain.PendingResponse, domain.RejectedResponse, gomock.Any()).
					Return(true, nil)
			},
		},
		{
			name:     "Repository error on update",
			decision: domain.ApprovedResponse,
			role:     domain.RoleAdministrator,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), bidID).
					Return(&domain.Bid{ID: bidID, Response: domain.PendingResponse}, nil)
				repo.EXPECT().UpdateResponse(gomock.Any(), bidID, domain.PendingResponse, domain.ApprovedResponse, gomock.Any()).
					Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			bid, err := service.ProcessResponse(context.Background(), bidID, tt.decision, tt.role)
			switch {
			case tt.expectedKind != "":
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperr.KindOf(err))
			case tt.expectedError != nil:
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.decision, bid.Response)
				assert.False(t, bid.UpdatedAt.IsZero())
			}
		})
	}
}

func TestGetBidsByUser(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	now := time.Now()
	repo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Bid{
		{UserID: 1, Response: domain.ApprovedResponse, CreatedAt: now},
	}, nil)

	bids, err := service.GetBidsByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, bids, 1)
	assert.Equal(t, domain.ApprovedResponse, bids[0].Response)
}
