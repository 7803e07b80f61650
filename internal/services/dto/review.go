package dto

import (
	"time"

	"storefront/internal/models"
)

// CreateReviewRequest - вход reviews.create
type CreateReviewRequest struct {
	ProductID *string `json:"productId" validate:"required"`
	Text      string  `json:"text"`
	Rating    int     `json:"rating" validate:"rating"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type ReviewResponse struct {
	ID        string        `json:"id"`
	ProductID string        `json:"productId"`
	UserID    string        `json:"userId"`
	Comment   string        `json:"comment"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	User      *UserResponse `json:"user,omitempty"`
}

func NewReviewResponse(r *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Comment:   r.Comment,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		resp.User = &UserResponse{
			ID:    r.User.ID,
			Name:  r.User.Name,
			Image: r.User.Image,
		}
	}
	return resp
}
