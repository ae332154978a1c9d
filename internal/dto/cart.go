package dto

import "time"

type CartItemDTO struct {
	ProjectID string    `json:"project_id" example:"proj-101"`
	Title     string    `json:"title" example:"Landing page redesign"`
	Price     int64     `json:"price" example:"5000"`
	Thumbnail string    `json:"thumbnail" example:"/img/proj-101.jpg"`
	AddedAt   time.Time `json:"added_at" example:"2020-12-09T16:09:57+03:00"`
}

type CartResponseDTO struct {
	Items []CartItemDTO `json:"items"`
}
