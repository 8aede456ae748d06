package repository

import (
	"errors"

	"oramen-backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order tidak ditemukan")

type OrderFilter struct {
	Status      string
	Date        string // format: 2006-01-02
	TableNumber string
	OrderType   string
	Limit       int
}

type StatusUpdate struct {
	PaymentStatus *string
	Status        *string
}

// OrderStore satu-satunya pintu baca/tulis tabel orders + order_items.
// Dibuat interface biar reconciler bisa ditest tanpa MySQL beneran.
type OrderStore interface {
	Create(input *models.CreateOrderInput) (*models.Order, error)
	GetByID(id uint64) (*models.Order, error)
	FindByRef(ref string) (*models.Order, error)
	UpdateStatus(id uint64, update StatusUpdate) error
	Delete(id uint64) error
	List(filter OrderFilter) ([]models.OrderWithItemCount, error)
	Count() (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderStore {
	return &orderRepository{db: db}
}

// Create menyimpan order + semua itemnya dalam satu transaksi.
// Nomor order publik (#NNNN) diambil dari jumlah order saat ini, dihitung di
// dalam transaksi yang sama. Kalau dua order masuk barengan dan dapat nomor
// kembar, unique index di order_number bikin salah satunya gagal, bukan
// menghasilkan dua order bernomor sama.
func (r *orderRepository) Create(input *models.CreateOrderInput) (*models.Order, error) {
	order := BuildOrder(input)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Order{}).Count(&count).Error; err != nil {
			return err
		}
		order.OrderNumber = NormalizeOrderRef(FormatOrderNumber(count + 1))

		// Items ikut ke-insert lewat asosiasi gorm
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// BuildOrder menyusun Order dari input: default field kosong, subtotal per
// item, dan total dihitung di sini sekali saja. Setelah ini total tidak pernah
// dihitung ulang (snapshot harga saat order dibuat).
func BuildOrder(input *models.CreateOrderInput) models.Order {
	orderType := input.OrderType
	if orderType == "" {
		orderType = "dine-in"
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "cash"
	}
	customerName := input.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		subtotal := it.Price * float64(it.Quantity)
		totalAmount += subtotal
		items = append(items, models.OrderItem{
			MenuItemID: it.MenuItemID,
			ItemName:   it.ItemName,
			Variant:    it.Variant,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Subtotal:   subtotal,
		})
	}

	return models.Order{
		CustomerName:  customerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		TableNumber:   input.TableNumber,
		OrderType:     orderType,
		Notes:         input.Notes,
		TotalAmount:   totalAmount,
		PaymentStatus: paymentStatus,
		Status:        "menunggu",
		Items:         items,
	}
}

func (r *orderRepository) GetByID(id uint64) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByRef mencari order dari referensi gateway: bentuk kanonik "#NNNN" dulu,
// kalau tidak ketemu baru fallback ke ID internal numerik.
func (r *orderRepository) FindByRef(ref string) (*models.Order, error) {
	canonical := NormalizeOrderRef(ref)

	if canonical != "" {
		var order models.Order
		err := r.db.Where("order_number = ?", canonical).First(&order).Error
		if err == nil {
			return &order, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if id := ParseNumericRef(ref); id != 0 {
		var order models.Order
		err := r.db.First(&order, id).Error
		if err == nil {
			return &order, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, ErrOrderNotFound
}

// UpdateStatus update parsial payment_status dan/atau status.
// Transisi ke success dibuat kondisional (WHERE payment_status != 'success')
// supaya dua notifikasi settlement yang balapan tidak dobel-apply; notifikasi
// kedua kena 0 rows dan updated_at tidak tersentuh.
func (r *orderRepository) UpdateStatus(id uint64, update StatusUpdate) error {
	values := map[string]interface{}{}
	if update.PaymentStatus != nil {
		values["payment_status"] = *update.PaymentStatus
	}
	if update.Status != nil {
		values["status"] = *update.Status
	}
	if len(values) == 0 {
		return nil
	}

	q := r.db.Model(&models.Order{}).Where("id = ?", id)
	if update.PaymentStatus != nil && *update.PaymentStatus == "success" {
		q = q.Where("payment_status != ?", "success")
	}

	res := q.Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Antara ordernya tidak ada, atau guard idempotensi yang nahan.
		// Dua-duanya bukan error buat caller.
		return nil
	}
	return nil
}

func (r *orderRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

func (r *orderRepository) List(filter OrderFilter) ([]models.OrderWithItemCount, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	q := r.db.Model(&models.Order{}).
		Select("orders.*, COALESCE(SUM(order_items.quantity), 0) as item_count, " +
			"GROUP_CONCAT(CONCAT(order_items.quantity, 'x ', order_items.item_name) SEPARATOR ', ') as item_details").
		Joins("LEFT JOIN order_items ON orders.id = order_items.order_id")

	if filter.Status != "" {
		q = q.Where("orders.status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("DATE(orders.created_at) = ?", filter.Date)
	}
	if filter.TableNumber != "" {
		q = q.Where("orders.table_number = ?", filter.TableNumber)
	}
	if filter.OrderType != "" {
		q = q.Where("orders.order_type = ?", filter.OrderType)
	}

	var orders []models.OrderWithItemCount
	err := q.Group("orders.id").
		Order("orders.created_at DESC").
		Limit(limit).
		Scan(&orders).Error
	return orders, err
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}
