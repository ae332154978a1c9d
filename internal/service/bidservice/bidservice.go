package bidservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/internal/pg"
	"github.com/bidmart/bidengine/pkg/apperr"
	"github.com/bidmart/bidengine/pkg/validate"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type Repo interface {
	Save(ctx context.Context, bid *domain.Bid) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Bid, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Bid, error)
	FindAll(ctx context.Context) ([]domain.Bid, error)
	UpdateResponse(ctx context.Context, id uuid.UUID, from, to string, updatedAt time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type CartRepo interface {
	GetByUserID(ctx context.Context, userID int) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type Catalog interface {
	Snapshots(ctx context.Context, projectIDs []string) ([]domain.ProjectSnapshot, error)
}

type Service struct {
	repo      Repo
	cartRepo  CartRepo
	catalog   Catalog
	txManager pg.TXManager
}

func New(repo Repo, cartRepo CartRepo, catalog Catalog, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		cartRepo:  cartRepo,
		catalog:   catalog,
		txManager: txManager,
	}
}

// SubmitBid freezes the actor's cart into a new pending bid. Line-item titles
// and prices come from the catalog read model at this moment, never from the
// cart rows, so a stale or tampered cart cannot set the recorded price. Bid
// insert and cart clear commit in one transaction.
func (s *Service) SubmitBid(ctx context.Context, userID int, idempotencyKey, proposal, attachmentRef string) (*domain.Bid, error) {
	if !validate.IsProposal(proposal) {
		return nil, apperr.Validation("proposal must not be empty")
	}
	if idempotencyKey == "" {
		return nil, apperr.Validation("idempotency key is required")
	}

	existing, err := s.repo.FindByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		zap.L().Error("can't check idempotency key", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		if existing.UserID != userID {
			return nil, apperr.Validation("idempotency key already used")
		}
		zap.L().Info("bid already created for idempotency key", zap.String("key", idempotencyKey))
		return existing, nil
	}

	cartItems, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't read cart", zap.Error(err))
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	projectIDs := make([]string, len(cartItems))
	for i, item := range cartItems {
		projectIDs[i] = item.ProjectID
	}
	snapshots, err := s.catalog.Snapshots(ctx, projectIDs)
	if err != nil {
		zap.L().Error("can't fetch authoritative project snapshots", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	bid := &domain.Bid{
		ID:             uuid.New(),
		UserID:         userID,
		Proposal:       proposal,
		AttachmentRef:  attachmentRef,
		IdempotencyKey: idempotencyKey,
		Response:       domain.PendingResponse,
		LineItems:      make([]domain.LineItem, len(snapshots)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for i, snap := range snapshots {
		bid.LineItems[i] = domain.LineItem{
			ProjectID: snap.ID,
			Title:     snap.Title,
			Price:     snap.Price,
			Thumbnail: snap.Thumbnail,
		}
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, bid); err != nil {
			return err
		}
		return s.cartRepo.Clear(ctx, userID)
	})
	if isUniqueViolation(err) {
		// Lost a same-key race: a concurrent request created the bid between
		// our key check and this insert. Serve the winner's bid.
		winner, findErr := s.repo.FindByIdempotencyKey(ctx, idempotencyKey)
		if findErr == nil && winner != nil {
			if winner.UserID != userID {
				return nil, apperr.Validation("idempotency key already used")
			}
			zap.L().Info("bid already created for idempotency key", zap.String("key", idempotencyKey))
			return winner, nil
		}
	}
	if err != nil {
		zap.L().Error("can't save bid", zap.Error(err))
		return nil, err
	}

	zap.L().Info("bid submitted",
		zap.String("bidID", bid.ID.String()),
		zap.Int("userID", userID),
		zap.Int("lineItems", len(bid.LineItems)))
	return bid, nil
}

func (s *Service) GetBid(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	bid, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find bid", zap.Error(err))
		return nil, err
	}
	if bid == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "bid %s not found", id)
	}
	return bid, nil
}

func (s *Service) GetBidsByUser(ctx context.Context, userID int) ([]domain.Bid, error) {
	bids, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

func (s *Service) GetAllBids(ctx context.Context, role string) ([]domain.Bid, error) {
	if role != domain.RoleAdministrator {
		return nil, apperr.Forbidden("administrator role required")
	}
	bids, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't get all bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

// DeleteBid removes a bid and its line items. Deletion is deliberately not
// idempotent: a second call reports NotFound so the caller can tell "removed
// now" apart from "already gone".
func (s *Service) DeleteBid(ctx context.Context, id uuid.UUID, role string) error {
	if role != domain.RoleAdministrator {
		return apperr.Forbidden("administrator role required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("can't delete bid", zap.Error(err))
		return err
	}
	if !deleted {
		return apperr.Newf(apperr.KindNotFound, "bid %s not found", id)
	}
	zap.L().Info("bid deleted", zap.String("bidID", id.String()))
	return nil
}

// ProcessResponse applies the administrator decision. The repository write is
// a compare-and-set on the Pending status; if another caller decided the bid
// between our read and the write, the update affects nothing and the call
// fails the same way a late re-processing does.
func (s *Service) ProcessResponse(ctx context.Context, id uuid.UUID, decision, role string) (*domain.Bid, error) {
	if role != domain.RoleAdministrator {
		return nil, apperr.Forbidden("administrator role required")
	}
	if !validate.IsDecision(decision) {
		return nil, apperr.Newf(apperr.KindValidation, "invalid decision %q", decision)
	}

	bid, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find bid", zap.Error(err))
		return nil, err
	}
	if bid == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "bid %s not found", id)
	}
	if bid.Response != domain.PendingResponse {
		return nil, apperr.Newf(apperr.KindInvalidState, "bid already processed: %s", bid.Response)
	}

	now := time.Now()
	updated, err := s.repo.UpdateResponse(ctx, id, domain.PendingResponse, decision, now)
	if err != nil {
		zap.L().Error("can't update bid response", zap.Error(err))
		return nil, err
	}
	if !updated {
		// Lost the race: someone decided this bid after our read.
		return nil, apperr.Newf(apperr.KindInvalidState, "bid %s already processed", id)
	}

	bid.Response = decision
	bid.UpdatedAt = now
	zap.L().Info("bid response processed",
		zap.String("bidID", id.String()),
		zap.String("decision", decision))
	return bid, nil
}
