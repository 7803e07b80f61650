package repositories

import (
	"errors"

	"storefront/internal/models"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	// FindAll возвращает все товары; непустой excludeID исключает товар с таким id
	FindAll(db *gorm.DB, excludeID string) ([]models.Product, error)
	FindByID(db *gorm.DB, id string) (*models.Product, error)
	Exists(db *gorm.DB, id string) (bool, error)
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

func (r *ProductRepositoryImpl) FindAll(db *gorm.DB, excludeID string) ([]models.Product, error) {
	products := []models.Product{}
	query := db.Model(&models.Product{})
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Order("created_at ASC").Order("id ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
