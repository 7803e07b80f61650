// Package testutil - общие хелперы для тестов с БД в памяти.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTestDB поднимает отдельную sqlite-базу в памяти с примененными миграциями.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.Open("sqlite", dsn, "test")
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграции: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateProduct создает товар с ценой price
func CreateProduct(t *testing.T, db *gorm.DB, id, name string, price int64) models.Product {
	t.Helper()
	product := models.Product{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Price:     price,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// CreateUser создает локального пользователя
func CreateUser(t *testing.T, db *gorm.DB, id, name string) models.User {
	t.Helper()
	user := models.User{ID: id, Name: name}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateReview создает отзыв с заданным временем создания
func CreateReview(t *testing.T, db *gorm.DB, productID, userID string, rating int, comment string, createdAt time.Time) models.Review {
	t.Helper()
	review := models.Review{
		BaseModel: models.BaseModel{CreatedAt: createdAt, UpdatedAt: createdAt},
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}
	return review
}

// Count - число строк в таблице модели
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
