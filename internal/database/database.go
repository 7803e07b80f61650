package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Open подключается к БД выбранным драйвером: postgres или sqlite (чистый Go).
func Open(driver, dsn, env string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(env),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if driver == "sqlite" {
		// sqlite не любит конкурентную запись с нескольких соединений
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}

	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Review{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping проверяет доступность БД
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// DemoProducts - каталог для локального запуска
func DemoProducts() []models.Product {
	return []models.Product{
		{
			BaseModel:   models.BaseModel{ID: "demo-mug"},
			Name:        "Enamel Mug",
			Description: "A 350ml enamel camping mug.",
			ImageURL:    "https://images.example.com/products/mug.jpg",
			Price:       1299,
			Attributes:  datatypes.JSONMap{"color": "white", "material": "enamel"},
		},
		{
			BaseModel:   models.BaseModel{ID: "demo-tee"},
			Name:        "Logo T-Shirt",
			Description: "Organic cotton tee with the store logo.",
			ImageURL:    "https://images.example.com/products/tee.jpg",
			Price:       2499,
			Attributes:  datatypes.JSONMap{"sizes": []any{"S", "M", "L", "XL"}},
		},
		{
			BaseModel:   models.BaseModel{ID: "demo-cap"},
			Name:        "Canvas Cap",
			Description: "Adjustable six-panel cap.",
			ImageURL:    "https://images.example.com/products/cap.jpg",
			Price:       1850,
		},
	}
}

// SeedProducts добавляет демо-товары. Повторный вызов ничего не меняет.
func SeedProducts(db *gorm.DB, products []models.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, nil
		}
		return 0, fmt.Errorf("seed products: %w", res.Error)
	}
	return res.RowsAffected, nil
}
