package cart

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/internal/dto"
	"github.com/bidmart/bidengine/pkg/apperr"
	"github.com/bidmart/bidengine/pkg/auth"
	"github.com/bidmart/bidengine/pkg/utils"
)

type Service interface {
	AddItem(ctx context.Context, userID int, projectID string) ([]domain.CartItem, error)
	GetCart(ctx context.Context, userID int) ([]domain.CartItem, error)
	ClearCart(ctx context.Context, userID int) error
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// AddItem godoc
//
//	@Summary		Stage a project for bidding
//	@Description	Add a project snapshot to the cart. Adding the same project twice is a no-op.
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			projectID	path		string	true	"Project id"
//	@Success		200			{object}	dto.CartResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Project not found"
//	@Failure		503			{object}	utils.Response	"Project catalog unavailable"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/cart/items/{projectID} [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	projectID := chi.URLParam(r, "projectID")
	if projectID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Project id is required")
		return
	}

	items, err := h.cartService.AddItem(r.Context(), userID, projectID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCartDTO(items))
}

// GetCart godoc
//
//	@Summary		Get cart contents
//	@Description	Retrieve staged projects in insertion order.
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CartResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	items, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCartDTO(items))
}

// ClearCart godoc
//
//	@Summary		Clear the cart
//	@Description	Remove every staged project for the authenticated user.
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Cart cleared"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
		utils.RespondWithError(w, apperr.HTTPStatus(err), apperr.Message(err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Cart cleared"})
}

func toCartDTO(items []domain.CartItem) dto.CartResponseDTO {
	response := dto.CartResponseDTO{Items: make([]dto.CartItemDTO, len(items))}
	for i, item := range items {
		response.Items[i] = dto.CartItemDTO{
			ProjectID: item.ProjectID,
			Title:     item.Title,
			Price:     item.Price,
			Thumbnail: item.Thumbnail,
			AddedAt:   item.AddedAt,
		}
	}
	return response
}
