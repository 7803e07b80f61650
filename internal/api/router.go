// Package api собирает дерево процедур витрины: greeting, products, reviews.
package api

import (
	"context"

	"storefront/internal/auth"
	"storefront/internal/procedure"
	"storefront/internal/services"
	"storefront/internal/services/dto"
	"storefront/internal/validator"
)

// NewAppRouter возвращает корневой роутер процедур
func NewAppRouter(v *validator.Validator, svc *services.ServiceContainer) *procedure.Router {
	return procedure.NewRouter(v).
		Handle("greeting", procedure.Query(greeting)).
		Mount("products", productsRouter(v, svc.ProductService)).
		Mount("reviews", reviewsRouter(v, svc.ReviewService))
}

func greeting(ctx context.Context, call procedure.Call, in *dto.GreetingRequest) (string, error) {
	return "hello " + *in.Text, nil
}

func productsRouter(v *validator.Validator, products services.ProductService) *procedure.Router {
	return procedure.NewRouter(v).
		Handle("list", procedure.Query(func(ctx context.Context, call procedure.Call, in *dto.ListProductsRequest) ([]*dto.ProductResponse, error) {
			return products.ListProducts(ctx, call.DB, in)
		})).
		Handle("byId", procedure.Query(func(ctx context.Context, call procedure.Call, in *dto.GetProductRequest) (*dto.ProductResponse, error) {
			return products.GetProduct(ctx, call.DB, *in.ID)
		}))
}

func reviewsRouter(v *validator.Validator, reviews services.ReviewService) *procedure.Router {
	return procedure.NewRouter(v).
		Handle("create", procedure.ProtectedMutation(func(ctx context.Context, call procedure.Call, caller auth.Caller, in *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
			return reviews.CreateReview(ctx, call.DB, caller, in)
		})).
		Handle("list", procedure.Query(func(ctx context.Context, call procedure.Call, _ *struct{}) ([]*dto.ReviewResponse, error) {
			return reviews.ListReviews(ctx, call.DB)
		}))
}
