package handlers

import (
	"log"
	"net/http"

	"oramen-backend/internal/payment"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	gateway    *payment.Gateway
	reconciler *payment.Reconciler
}

func NewPaymentHandler(gateway *payment.Gateway, reconciler *payment.Reconciler) *PaymentHandler {
	return &PaymentHandler{gateway: gateway, reconciler: reconciler}
}

type customerDetailsInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type itemDetailInput struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Name     string  `json:"name"`
}

type createTransactionInput struct {
	OrderID         string               `json:"orderId" binding:"required"`
	GrossAmount     float64              `json:"grossAmount" binding:"required,gt=0"`
	CustomerDetails customerDetailsInput `json:"customerDetails"`
	ItemDetails     []itemDetailInput    `json:"itemDetails"`
	PaymentMethod   string               `json:"paymentMethod"`
}

// CreateTransaction minta token Snap ke Midtrans untuk satu order.
// orderId di body adalah nomor order publik (#NNNN).
func (h *PaymentHandler) CreateTransaction(c *gin.Context) {
	var input createTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid: "+err.Error(), nil)
		return
	}

	if !h.gateway.Ready() {
		// Seluruh fitur pembayaran gateway mati kalau Midtrans tidak
		// dikonfigurasi; QRIS dapat pesan khusus biar user diarahkan ke cash
		if input.PaymentMethod == "qris" {
			utils.APIResponse(c, http.StatusServiceUnavailable, false,
				"QRIS payment tidak tersedia. Midtrans belum dikonfigurasi. Silakan gunakan pembayaran Cash.", nil)
			return
		}
		utils.APIResponse(c, http.StatusServiceUnavailable, false,
			"Payment system not configured. Check MIDTRANS_SERVER_KEY and MIDTRANS_CLIENT_KEY in .env", nil)
		return
	}

	email := input.CustomerDetails.Email
	if email == "" {
		email = "customer@example.com"
	}

	items := make([]payment.SessionItem, 0, len(input.ItemDetails))
	for _, it := range input.ItemDetails {
		items = append(items, payment.SessionItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    int64(it.Price),
			Quantity: int32(it.Quantity),
		})
	}

	log.Println("[Midtrans] membuat transaksi untuk order:", input.OrderID)
	session, err := h.gateway.CreateSession(payment.SessionParams{
		OrderRef:      input.OrderID,
		GrossAmount:   int64(input.GrossAmount),
		CustomerName:  input.CustomerDetails.FirstName,
		CustomerEmail: email,
		CustomerPhone: input.CustomerDetails.Phone,
		Items:         items,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		log.Println("[Midtrans] error:", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, payment.GatewayMessage(err), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"token":       session.Token,
		"redirectUrl": session.RedirectURL,
	})
}

// HandleNotification webhook Midtrans. Wajib balas 200 duluan sebelum proses
// apa pun, supaya timer retry Midtrans tidak pernah lihat kegagalan; semua
// kerja beratnya jalan di goroutine terpisah lewat Reconciler.
func (h *PaymentHandler) HandleNotification(c *gin.Context) {
	var n payment.Notification
	bindErr := c.ShouldBindJSON(&n)

	// Ack dulu, apapun isinya
	c.JSON(http.StatusOK, gin.H{"success": true})

	if bindErr != nil {
		log.Printf("[Webhook] body notifikasi tidak bisa dibaca: %v", bindErr)
		return
	}

	go h.reconciler.Process(n)
}

// GetTransactionStatus poll status transaksi langsung ke Midtrans,
// fallback kalau webhook-nya belum masuk
func (h *PaymentHandler) GetTransactionStatus(c *gin.Context) {
	if !h.gateway.Ready() {
		utils.APIResponse(c, http.StatusServiceUnavailable, false, "Midtrans not configured", nil)
		return
	}

	status, err := h.gateway.QueryStatus(c.Param("orderId"))
	if err != nil {
		log.Println("[Midtrans] status check error:", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, payment.GatewayMessage(err), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// GetClientKey dipakai frontend untuk load snap.js
func (h *PaymentHandler) GetClientKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clientKey": h.gateway.ClientKey()})
}
