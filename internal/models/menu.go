package models

import "time"

type MenuItem struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Category    string  `gorm:"size:50;index" json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
	Rating      float64 `json:"rating"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`
	IsAvailable bool    `gorm:"default:true" json:"is_available"`

	// Varian ikut keambil pas Preload("Variants.Options")
	Variants []MenuVariantGroup `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

// MenuVariantGroup contohnya "Level Pedas" atau "Topping"
type MenuVariantGroup struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	MenuItemID uint64 `gorm:"index" json:"menu_item_id"`
	Name       string `gorm:"size:100" json:"name"`
	IsRequired bool   `gorm:"default:false" json:"is_required"`
	MaxSelect  int    `gorm:"default:1" json:"max_select"`

	Options []MenuVariantOption `gorm:"foreignKey:VariantGroupID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type MenuVariantOption struct {
	ID             uint64  `gorm:"primaryKey" json:"id"`
	VariantGroupID uint64  `gorm:"index" json:"variant_group_id"`
	Name           string  `gorm:"size:100" json:"name"`
	ExtraPrice     float64 `gorm:"default:0" json:"extra_price"`
	IsAvailable    bool    `gorm:"default:true" json:"is_available"`
}

type MenuRating struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	MenuItemID uint64    `gorm:"index" json:"menu_item_id"`
	OrderID    *uint64   `json:"order_id"`
	Rating     int       `json:"rating"` // 1 sampai 5
	Comment    *string   `gorm:"size:500" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type MenuItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	IsAvailable *bool   `json:"is_available"`
}

type VariantOptionInput struct {
	Name        string  `json:"name" binding:"required"`
	ExtraPrice  float64 `json:"extra_price"`
	IsAvailable *bool   `json:"is_available"`
}

type VariantGroupInput struct {
	Name       string               `json:"name" binding:"required"`
	IsRequired bool                 `json:"is_required"`
	MaxSelect  int                  `json:"max_select"`
	Options    []VariantOptionInput `json:"options"`
}

type SaveVariantsInput struct {
	Variants []VariantGroupInput `json:"variants" binding:"required"`
}

type SubmitRatingInput struct {
	Rating  int     `json:"rating" binding:"required"`
	OrderID *uint64 `json:"order_id"`
	Comment *string `json:"comment"`
}
