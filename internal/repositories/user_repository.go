package repositories

import (
	"errors"

	"storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	// ConnectOrCreate возвращает пользователя с user.ID, создавая его из user, если строки нет.
	// Существующая строка не меняется. created сообщает, была ли вставка.
	ConnectOrCreate(db *gorm.DB, user *models.User) (result *models.User, created bool, err error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ConnectOrCreate(db *gorm.DB, user *models.User) (*models.User, bool, error) {
	existing, err := r.FindByID(db, user.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, err
	}

	// Параллельный запрос мог успеть вставить ту же строку: конфликт по id игнорируем и перечитываем
	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).Create(user)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return user, true, nil
	}

	existing, err = r.FindByID(db, user.ID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
