package dto

import "time"

type CreateBidRequestDTO struct {
	Proposal      string `json:"proposal" validate:"required"`
	AttachmentRef string `json:"attachment_ref,omitempty"`
}

type LineItemDTO struct {
	ProjectID string `json:"project_id" example:"proj-101"`
	Title     string `json:"title" example:"Landing page redesign"`
	Price     int64  `json:"price" example:"5000"`
	Thumbnail string `json:"thumbnail" example:"/img/proj-101.jpg"`
}

type BidResponseDTO struct {
	ID            string        `json:"id" example:"7b9c3d52-0f6e-4a1b-9c3d-520f6e4a1b9c"`
	UserID        int           `json:"user_id,omitempty" example:"42"`
	Proposal      string        `json:"proposal" example:"I can do this"`
	AttachmentRef string        `json:"attachment_ref,omitempty"`
	Response      string        `json:"response" example:"Pending"`
	LineItems     []LineItemDTO `json:"line_items"`
	CreatedAt     time.Time     `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	UpdatedAt     time.Time     `json:"updated_at" example:"2020-12-09T16:09:57+03:00"`
}

type ProcessResponseRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected" example:"Approved"`
}

type MonthBucketDTO struct {
	Label string `json:"label" example:"Aug"`
	Count int    `json:"count" example:"3"`
}

type BidStatsResponseDTO struct {
	Approved    int              `json:"approved" example:"2"`
	Pending     int              `json:"pending" example:"1"`
	Rejected    int              `json:"rejected" example:"0"`
	Total       int              `json:"total" example:"3"`
	MonthGrowth float64          `json:"month_growth" example:"50"`
	Monthly     []MonthBucketDTO `json:"monthly"`
}
