package models

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	BaseModel
	ProductID string `gorm:"type:varchar(36);not null;index" json:"productId"`
	UserID    string `gorm:"type:varchar(64);not null;index" json:"userId"`
	Comment   string `json:"comment"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	// Relations
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
