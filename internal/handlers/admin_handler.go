package handlers

import (
	"net/http"
	"time"

	"oramen-backend/internal/models"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// GetDashboardStats ringkasan buat halaman dashboard admin
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	var totalOrders, todayOrders, pendingOrders, menuItems int64
	var totalRevenue, todayRevenue float64

	today := time.Now().Format("2006-01-02")

	h.db.Model(&models.Order{}).Count(&totalOrders)
	h.db.Model(&models.Order{}).Where("DATE(created_at) = ?", today).Count(&todayOrders)
	h.db.Model(&models.Order{}).
		Where("payment_status = ?", "success").
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue)
	h.db.Model(&models.Order{}).
		Where("payment_status = ? AND DATE(created_at) = ?", "success", today).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&todayRevenue)
	h.db.Model(&models.Order{}).Where("status IN ?", []string{"menunggu", "sedang-dibuat"}).Count(&pendingOrders)
	h.db.Model(&models.MenuItem{}).Count(&menuItems)

	utils.APIResponse(c, http.StatusOK, true, "", gin.H{
		"totalOrders":   totalOrders,
		"todayOrders":   todayOrders,
		"totalRevenue":  totalRevenue,
		"todayRevenue":  todayRevenue,
		"pendingOrders": pendingOrders,
		"menuItems":     menuItems,
	})
}

type monthlyReportRow struct {
	Month           int     `json:"month"`
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	CompletedOrders int64   `json:"completed_orders"`
}

// GetMonthlyReport rekap order per bulan untuk satu tahun
func (h *AdminHandler) GetMonthlyReport(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		year = time.Now().Format("2006")
	}

	var report []monthlyReportRow
	err := h.db.Model(&models.Order{}).
		Select("MONTH(created_at) as month, "+
			"COUNT(*) as total_orders, "+
			"COALESCE(SUM(total_amount), 0) as total_revenue, "+
			"SUM(CASE WHEN status = 'selesai' THEN 1 ELSE 0 END) as completed_orders").
		Where("YEAR(created_at) = ?", year).
		Group("MONTH(created_at)").
		Order("month ASC").
		Scan(&report).Error
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": report, "year": year})
}
