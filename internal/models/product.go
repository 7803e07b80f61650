package models

import "gorm.io/datatypes"

// Product - товар витрины. Цена хранится в минимальных единицах валюты (центах).
type Product struct {
	BaseModel
	Name        string            `gorm:"not null" json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	Price       int64             `gorm:"not null;check:price >= 0" json:"price"`
	Attributes  datatypes.JSONMap `json:"attributes,omitempty"`
}
