package models

import "time"

// Order punya 2 jalur status yang jalan sendiri-sendiri:
// - Status: alur dapur (menunggu -> sedang-dibuat -> siap -> selesai, atau dibatalkan)
// - PaymentStatus: alur pembayaran (cash | pending | success | failed | refunded)
type Order struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	OrderNumber   string    `gorm:"uniqueIndex;size:20" json:"order_number"` // Format: #0001
	CustomerName  string    `gorm:"size:100" json:"customer_name"`
	CustomerEmail *string   `gorm:"size:100" json:"customer_email"`
	CustomerPhone *string   `gorm:"size:30" json:"customer_phone"`
	TableNumber   *int      `json:"table_number"` // Pointer karena take-away tidak punya meja
	OrderType     string    `gorm:"size:20;default:dine-in" json:"order_type"`
	Notes         *string   `gorm:"size:255" json:"notes"`
	TotalAmount   float64   `json:"total_amount"` // Snapshot saat order dibuat, tidak pernah dihitung ulang
	PaymentStatus string    `gorm:"size:20;default:cash" json:"payment_status"`
	Status        string    `gorm:"size:20;default:menunggu" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	ID         uint64  `gorm:"primaryKey" json:"id"`
	OrderID    uint64  `gorm:"index" json:"order_id"`
	MenuItemID *uint64 `json:"menu_item_id"` // Boleh NULL kalau item menunya sudah dihapus
	ItemName   string  `gorm:"size:100" json:"item_name"`
	Variant    *string `gorm:"size:255" json:"variant"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"` // quantity * price, dikunci saat order dibuat
}

type OrderItemInput struct {
	MenuItemID *uint64 `json:"menu_item_id"`
	ItemName   string  `json:"item_name" binding:"required"`
	Variant    *string `json:"variant"`
	Quantity   int     `json:"quantity" binding:"required,gt=0"`
	Price      float64 `json:"price" binding:"required,gte=0"`
}

type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name"`
	CustomerEmail *string          `json:"customer_email"`
	CustomerPhone *string          `json:"customer_phone"`
	TableNumber   *int             `json:"table_number"`
	OrderType     string           `json:"order_type"`
	Notes         *string          `json:"notes"`
	PaymentStatus string           `json:"payment_status"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// OrderWithItemCount untuk response list order (ada agregat jumlah item)
type OrderWithItemCount struct {
	Order
	ItemCount   int    `json:"item_count"`
	ItemDetails string `json:"item_details,omitempty"` // "2x Ramen, 1x Gyoza"
}
