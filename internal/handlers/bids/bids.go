package bids

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bidmart/bidengine/internal/analytics"
	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/internal/dto"
	"github.com/bidmart/bidengine/pkg/apperr"
	"github.com/bidmart/bidengine/pkg/auth"
	"github.com/bidmart/bidengine/pkg/utils"
	"github.com/bidmart/bidengine/pkg/validate"
)

const statsMonthsBack = 6

type Service interface {
	SubmitBid(ctx context.Context, userID int, idempotencyKey, proposal, attachmentRef string) (*domain.Bid, error)
	GetBid(ctx context.Context, id uuid.UUID) (*domain.Bid, error)
	GetBidsByUser(ctx context.Context, userID int) ([]domain.Bid, error)
	GetAllBids(ctx context.Context, role string) ([]domain.Bid, error)
	DeleteBid(ctx context.Context, id uuid.UUID, role string) error
	ProcessResponse(ctx context.Context, id uuid.UUID, decision, role string) (*domain.Bid, error)
}

type BidHandler struct {
	bidService Service
}

func New(bidService Service) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

// CreateBid godoc
//
//	@Summary		Submit a new bid
//	@Description	Freeze the current cart into a pending bid with the given proposal text. Requires a client-generated Idempotency-Key header; retrying with the same key returns the bid created by the first attempt.
//	@Tags			Bids
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string					true	"Client-generated idempotency key"
//	@Param			request			body		dto.CreateBidRequestDTO	true	"Bid request body"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BidResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		422	{object}	utils.Response	"Empty proposal or empty cart"
//	@Failure		404	{object}	utils.Response	"A staged project no longer exists"
//	@Failure		503	{object}	utils.Response	"Project catalog unavailable"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/bid/new [post]
func (h *BidHandler) CreateBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateBidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Proposal is required")
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")
	bid, err := h.bidService.SubmitBid(r.Context(), userID, idempotencyKey, req.Proposal, req.AttachmentRef)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBidDTO(bid, false))
}

// MyBids godoc
//
//	@Summary		Get own bids
//	@Description	Retrieve the authenticated user's bids, newest first.
//	@Tags			Bids
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BidResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/bids/me [get]
func (h *BidHandler) MyBids(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bids, err := h.bidService.GetBidsByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	response := make([]dto.BidResponseDTO, 0, len(bids))
	for i := range bids {
		response = append(response, toBidDTO(&bids[i], false))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// MyBidStats godoc
//
//	@Summary		Get own bid statistics
//	@Description	Status breakdown, month-over-month growth and per-month counts for the last six months.
//	@Tags			Bids
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BidStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/bids/me/stats [get]
func (h *BidHandler) MyBidStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bids, err := h.bidService.GetBidsByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	now := time.Now()
	dates := make([]time.Time, len(bids))
	for i, bid := range bids {
		dates[i] = bid.CreatedAt
	}

	breakdown := analytics.StatusBreakdown(bids)
	buckets := analytics.MonthlyBuckets(dates, statsMonthsBack, now)

	monthly := make([]dto.MonthBucketDTO, len(buckets))
	for i, b := range buckets {
		monthly[i] = dto.MonthBucketDTO{Label: b.Label, Count: b.Count}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BidStatsResponseDTO{
		Approved:    breakdown.Approved,
		Pending:     breakdown.Pending,
		Rejected:    breakdown.Rejected,
		Total:       breakdown.Total,
		MonthGrowth: analytics.MonthGrowth(dates, now),
		Monthly:     monthly,
	})
}

// BidDetails godoc
//
//	@Summary		Get bid details
//	@Description	Retrieve a single bid with its frozen line items.
//	@Tags			Bids
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Bid id"
//	@Success		200	{object}	dto.BidResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Bid not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/bid/{id} [get]
func (h *BidHandler) BidDetails(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Bid not found")
		return
	}

	bid, err := h.bidService.GetBid(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBidDTO(bid, false))
}

// AllBids godoc
//
//	@Summary		Get all bids
//	@Description	Administrator view over every bid in the ledger, newest first.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BidResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Administrator role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/bids [get]
func (h *BidHandler) AllBids(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(string)

	bids, err := h.bidService.GetAllBids(r.Context(), role)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	response := make([]dto.BidResponseDTO, 0, len(bids))
	for i := range bids {
		response = append(response, toBidDTO(&bids[i], true))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ProcessResponse godoc
//
//	@Summary		Decide a pending bid
//	@Description	Apply the administrator decision (Approved or Rejected) to a pending bid. Each bid is decided at most once; repeating the call reports a conflict.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Bid id"
//	@Param			request	body		dto.ProcessResponseRequestDTO	true	"Decision body"
//	@Success		200		{object}	dto.BidResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		404		{object}	utils.Response	"Bid not found"
//	@Failure		409		{object}	utils.Response	"Bid already processed"
//	@Failure		422		{object}	utils.Response	"Invalid decision value"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/bid/{id} [put]
func (h *BidHandler) ProcessResponse(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(string)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Bid not found")
		return
	}

	var req dto.ProcessResponseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bid, err := h.bidService.ProcessResponse(r.Context(), id, req.Status, role)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBidDTO(bid, true))
}

// DeleteBid godoc
//
//	@Summary		Delete a bid
//	@Description	Remove a bid and its line items from the ledger and all views. Not idempotent: a second call reports not found.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Bid id"
//	@Success		200	{object}	utils.Response	"Bid deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Administrator role required"
//	@Failure		404	{object}	utils.Response	"Bid not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/bid/{id} [delete]
func (h *BidHandler) DeleteBid(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(string)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Bid not found")
		return
	}

	if err := h.bidService.DeleteBid(r.Context(), id, role); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bid deleted"})
}

func toBidDTO(bid *domain.Bid, includeUser bool) dto.BidResponseDTO {
	items := make([]dto.LineItemDTO, len(bid.LineItems))
	for i, item := range bid.LineItems {
		items[i] = dto.LineItemDTO{
			ProjectID: item.ProjectID,
			Title:     item.Title,
			Price:     item.Price,
			Thumbnail: item.Thumbnail,
		}
	}
	response := dto.BidResponseDTO{
		ID:            bid.ID.String(),
		Proposal:      bid.Proposal,
		AttachmentRef: bid.AttachmentRef,
		Response:      bid.Response,
		LineItems:     items,
		CreatedAt:     bid.CreatedAt,
		UpdatedAt:     bid.UpdatedAt,
	}
	if includeUser {
		response.UserID = bid.UserID
	}
	return response
}
