package earningsservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/pkg/apperr"
	"github.com/bidmart/bidengine/pkg/validate"
)

type Repo interface {
	CreateEarning(ctx context.Context, record *domain.EarningsRecord) (*domain.EarningsRecord, error)
	SumByUserID(ctx context.Context, userID int) (int64, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.EarningsRecord, error)
	GetAll(ctx context.Context) ([]domain.EarningsRecord, error)
}

type BidRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error)
}

type Service struct {
	repo    Repo
	bidRepo BidRepo
}

func New(repo Repo, bidRepo BidRepo) *Service {
	return &Service{
		repo:    repo,
		bidRepo: bidRepo,
	}
}

// RecordPayment appends a payment to the earnings log. When the payment is
// attributed to a bid, that bid must exist and be approved; paying out a
// pending or rejected bid is a state violation, not bad input.
func (s *Service) RecordPayment(ctx context.Context, role string, recipientID int, amount int64, bidID *uuid.UUID) (*domain.EarningsRecord, error) {
	if role != domain.RoleAdministrator {
		return nil, apperr.Forbidden("administrator role required")
	}
	if !validate.IsAmount(amount) {
		return nil, apperr.Validation("amount must be positive")
	}

	if bidID != nil {
		bid, err := s.bidRepo.FindByID(ctx, *bidID)
		if err != nil {
			zap.L().Error("can't find bid for payment", zap.Error(err))
			return nil, err
		}
		if bid == nil {
			return nil, apperr.Newf(apperr.KindNotFound, "bid %s not found", *bidID)
		}
		if bid.Response != domain.ApprovedResponse {
			return nil, apperr.Newf(apperr.KindInvalidState, "bid %s is not approved", *bidID)
		}
	}

	record := &domain.EarningsRecord{
		ID:        uuid.New(),
		UserID:    recipientID,
		Amount:    amount,
		BidID:     bidID,
		CreatedAt: time.Now(),
	}
	created, err := s.repo.CreateEarning(ctx, record)
	if err != nil {
		zap.L().Error("can't record payment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("payment recorded",
		zap.Int("recipientID", recipientID),
		zap.Int64("amount", amount))
	return created, nil
}

func (s *Service) TotalEarningsFor(ctx context.Context, userID int) (int64, error) {
	total, err := s.repo.SumByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't total earnings", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (s *Service) GetEarnings(ctx context.Context, userID int) ([]domain.EarningsRecord, error) {
	records, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get earnings", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (s *Service) GetAllEarnings(ctx context.Context, role string) ([]domain.EarningsRecord, error) {
	if role != domain.RoleAdministrator {
		return nil, apperr.Forbidden("administrator role required")
	}
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		zap.L().Error("can't get all earnings", zap.Error(err))
		return nil, err
	}
	return records, nil
}
