package dto

import "time"

type CreateEarningRequestDTO struct {
	UserID int     `json:"userId" validate:"required" example:"42"`
	Amount int64   `json:"amount" validate:"required,gt=0" example:"8000"`
	BidID  *string `json:"bidId,omitempty" validate:"omitempty,uuid4" example:"7b9c3d52-0f6e-4a1b-9c3d-520f6e4a1b9c"`
}

type EarningResponseDTO struct {
	ID        string    `json:"id" example:"3f1a7c20-84b5-4e6d-9a0f-1b2c3d4e5f60"`
	UserID    int       `json:"user_id" example:"42"`
	Amount    int64     `json:"amount" example:"8000"`
	BidID     *string   `json:"bid_id,omitempty"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type TotalEarningsResponseDTO struct {
	Total int64 `json:"total" example:"10000"`
}
