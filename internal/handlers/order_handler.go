package handlers

import (
	"errors"
	"net/http"

	"oramen-backend/internal/models"
	"oramen-backend/internal/repository"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	store repository.OrderStore
}

func NewOrderHandler(store repository.OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// CreateOrder dipakai customer maupun admin. Nomor order (#NNNN), total, dan
// subtotal per item dihitung di Order Store, bukan dipercaya dari client.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input order tidak valid: "+err.Error(), nil)
		return
	}

	order, err := h.store.Create(&input)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan order", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "", gin.H{
		"id":           order.ID,
		"order_number": order.OrderNumber,
	})
}

// ListOrders untuk customer: filter meja / tipe order
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.store.List(repository.OrderFilter{
		TableNumber: c.Query("table_number"),
		OrderType:   c.Query("order_type"),
		Limit:       200,
	})
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", orders)
}

// ListOrdersAdmin untuk admin panel: filter status / tanggal + limit
func (h *OrderHandler) ListOrdersAdmin(c *gin.Context) {
	limit := int(utils.StringToUint64(c.DefaultQuery("limit", "50")))

	orders, err := h.store.List(repository.OrderFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Limit:  limit,
	})
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", orders)
}

func (h *OrderHandler) GetOrderDetail(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	order, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Order not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "", order)
}

type updateOrderStatusInput struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// UpdateOrderStatus update parsial dari admin (staff geser order di papan
// dapur, atau koreksi manual status pembayaran)
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	var input updateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}
	if input.Status == nil && input.PaymentStatus == nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tidak ada field yang diupdate", nil)
		return
	}

	err := h.store.UpdateStatus(id, repository.StatusUpdate{
		Status:        input.Status,
		PaymentStatus: input.PaymentStatus,
	})
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Order status updated", nil)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	if err := h.store.Delete(id); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Order deleted", nil)
}
