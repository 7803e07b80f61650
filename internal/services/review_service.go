package services

import (
	"context"
	"errors"

	"storefront/internal/auth"
	"storefront/internal/identity"
	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services/dto"
	"storefront/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(ctx context.Context, db *gorm.DB, caller auth.Caller, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListReviews(ctx context.Context, db *gorm.DB) ([]*dto.ReviewResponse, error)
}

type reviewService struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	reviewRepo  repositories.ReviewRepository
	identity    identity.Provider
}

func NewReviewService(
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	identityProvider identity.Provider,
) ReviewService {
	return &reviewService{
		productRepo: productRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
		identity:    identityProvider,
	}
}

// CreateReview создает отзыв вызывающего на товар.
// Порядок: проверка товара, профиль у провайдера, затем в одной транзакции
// connect-or-create пользователя и вставка отзыва.
func (s *reviewService) CreateReview(ctx context.Context, db *gorm.DB, caller auth.Caller, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	db = db.WithContext(ctx)

	productID := *req.ProductID
	if err := s.ensureProduct(db, productID); err != nil {
		return nil, err
	}

	profile, err := s.identity.GetUser(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			return nil, apperrors.NewUnauthenticatedError("Caller is unknown to the identity provider").WithError(err)
		}
		return nil, apperrors.ExternalServiceError(err, "identity")
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    caller.UserID,
		Comment:   req.Text,
		Rating:    req.Rating,
	}

	var userCreated bool
	err = db.Transaction(func(tx *gorm.DB) error {
		// товар мог исчезнуть, пока мы ходили к провайдеру
		if err := s.ensureProduct(tx, productID); err != nil {
			return err
		}

		_, created, err := s.userRepo.ConnectOrCreate(tx, &models.User{
			ID:    caller.UserID,
			Name:  identity.DisplayName(profile),
			Image: profile.ProfileImageURL,
		})
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		userCreated = created

		if err := s.reviewRepo.CreateReview(tx, review); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "review created",
		"review_id", review.ID,
		"product_id", review.ProductID,
		"rating", review.Rating,
		"user_created", userCreated,
	)
	return dto.NewReviewResponse(review), nil
}

func (s *reviewService) ensureProduct(db *gorm.DB, productID string) error {
	exists, err := s.productRepo.Exists(db, productID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if !exists {
		return apperrors.NotFound("product").WithError(repositories.ErrProductNotFound)
	}
	return nil
}

// ListReviews - все отзывы с пользователями, новые первыми
func (s *reviewService) ListReviews(ctx context.Context, db *gorm.DB) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindAllWithUser(db.WithContext(ctx))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, dto.NewReviewResponse(&reviews[i]))
	}
	return resp, nil
}
