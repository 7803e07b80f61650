package dto

import (
	"time"

	"storefront/internal/models"
	"storefront/internal/money"
)

// ListProductsRequest - вход products.list. Вход целиком необязателен.
// Filter (по умолчанию пусто) исключает из выдачи товар с id, равным Filter.
type ListProductsRequest struct {
	Filter string `json:"filter,omitempty" form:"filter"`
}

// GetProductRequest - вход products.byId. Поле обязательно, но пустой id
// не отсекается схемой: такого товара нет, и ответ будет NOT_FOUND.
type GetProductRequest struct {
	ID *string `json:"id" uri:"id" validate:"required"`
}

// ProductResponse - товар с ценой в виде денежного снимка
type ProductResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Price       money.Snapshot `json:"price"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func NewProductResponse(p *models.Product, cur money.Currency) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       money.ToSnapshot(p.Price, cur),
		Attributes:  p.Attributes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
