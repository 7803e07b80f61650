package repositories

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	// FindAllWithUser - все отзывы с пользователем, новые первыми
	FindAllWithUser(db *gorm.DB) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	// Связи задаются только через ProductID/UserID, gorm не должен их upsert'ить
	return db.Omit("Product", "User").Create(review).Error
}

func (r *ReviewRepositoryImpl) FindAllWithUser(db *gorm.DB) ([]models.Review, error) {
	reviews := []models.Review{}
	err := db.Preload("User").
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}
