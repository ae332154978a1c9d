package earnings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/internal/dto"
	"github.com/bidmart/bidengine/pkg/apperr"
	"github.com/bidmart/bidengine/pkg/auth"
	"github.com/bidmart/bidengine/pkg/utils"
	"github.com/bidmart/bidengine/pkg/validate"
)

type Service interface {
	RecordPayment(ctx context.Context, role string, recipientID int, amount int64, bidID *uuid.UUID) (*domain.EarningsRecord, error)
	TotalEarningsFor(ctx context.Context, userID int) (int64, error)
	GetEarnings(ctx context.Context, userID int) ([]domain.EarningsRecord, error)
	GetAllEarnings(ctx context.Context, role string) ([]domain.EarningsRecord, error)
}

type EarningsHandler struct {
	earningsService Service
}

func New(earningsService Service) *EarningsHandler {
	return &EarningsHandler{
		earningsService: earningsService,
	}
}

// CreateEarning godoc
//
//	@Summary		Record a payment
//	@Description	Append a payment record to the earnings ledger, optionally attributed to an approved bid.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateEarningRequestDTO	true	"Payment body"
//	@Success		201		{object}	dto.EarningResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Administrator role required"
//	@Failure		404		{object}	utils.Response	"Referenced bid not found"
//	@Failure		409		{object}	utils.Response	"Referenced bid is not approved"
//	@Failure		422		{object}	utils.Response	"Non-positive amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/earnings [post]
func (h *EarningsHandler) CreateEarning(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(string)

	var req dto.CreateEarningRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment payload")
		return
	}

	var bidID *uuid.UUID
	if req.BidID != nil {
		parsed, err := uuid.Parse(*req.BidID)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid bid id")
			return
		}
		bidID = &parsed
	}

	record, err := h.earningsService.RecordPayment(r.Context(), role, req.UserID, req.Amount, bidID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEarningDTO(record))
}

// MyEarnings godoc
//
//	@Summary		Get own earnings
//	@Description	Retrieve the authenticated user's payment records, newest first, with the running total.
//	@Tags			Earnings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]interface{}
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/user/earning [get]
func (h *EarningsHandler) MyEarnings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	records, err := h.earningsService.GetEarnings(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	total, err := h.earningsService.TotalEarningsFor(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	response := make([]dto.EarningResponseDTO, 0, len(records))
	for i := range records {
		response = append(response, toEarningDTO(&records[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"total":    total,
		"earnings": response,
	})
}

// AllEarnings godoc
//
//	@Summary		Get all earnings
//	@Description	Administrator view over the whole earnings ledger, newest first.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.EarningResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Administrator role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/earning [get]
func (h *EarningsHandler) AllEarnings(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(string)

	records, err := h.earningsService.GetAllEarnings(r.Context(), role)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}

	response := make([]dto.EarningResponseDTO, 0, len(records))
	for i := range records {
		response = append(response, toEarningDTO(&records[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toEarningDTO(record *domain.EarningsRecord) dto.EarningResponseDTO {
	response := dto.EarningResponseDTO{
		ID:        record.ID.String(),
		UserID:    record.UserID,
		Amount:    record.Amount,
		CreatedAt: record.CreatedAt,
	}
	if record.BidID != nil {
		bidID := record.BidID.String()
		response.BidID = &bidID
	}
	return response
}
