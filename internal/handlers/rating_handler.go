package handlers

import (
	"fmt"
	"math"
	"net/http"

	"oramen-backend/internal/models"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RatingHandler struct {
	db *gorm.DB
}

func NewRatingHandler(db *gorm.DB) *RatingHandler {
	return &RatingHandler{db: db}
}

type ratingAggregate struct {
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int64   `json:"rating_count"`
}

// SubmitRating simpan rating customer lalu update agregat di menu item
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	menuItemID := utils.StringToUint64(c.Param("id"))

	var input models.SubmitRatingInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Rating < 1 || input.Rating > 5 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Rating must be between 1 and 5", nil)
		return
	}

	rating := models.MenuRating{
		MenuItemID: menuItemID,
		OrderID:    input.OrderID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := h.db.Create(&rating).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	// Hitung ulang rata-rata dan jumlah rating
	var agg ratingAggregate
	h.db.Model(&models.MenuRating{}).
		Where("menu_item_id = ?", menuItemID).
		Select("COALESCE(AVG(rating), 0) as avg_rating, COUNT(*) as rating_count").
		Scan(&agg)

	// Simpan 1 angka di belakang koma, sama seperti tampilan frontend
	avgRounded := math.Round(agg.AvgRating*10) / 10

	h.db.Model(&models.MenuItem{}).
		Where("id = ?", menuItemID).
		Updates(map[string]interface{}{
			"rating":       avgRounded,
			"rating_avg":   avgRounded,
			"rating_count": agg.RatingCount,
		})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"newRating":   fmt.Sprintf("%.1f", avgRounded),
		"ratingCount": agg.RatingCount,
	})
}

// GetRating agregat rating satu menu item
func (h *RatingHandler) GetRating(c *gin.Context) {
	menuItemID := c.Param("id")

	var agg ratingAggregate
	h.db.Model(&models.MenuRating{}).
		Where("menu_item_id = ?", menuItemID).
		Select("COALESCE(AVG(rating), 0) as avg_rating, COUNT(*) as rating_count").
		Scan(&agg)

	utils.APIResponse(c, http.StatusOK, true, "", gin.H{
		"avgRating":    fmt.Sprintf("%.1f", agg.AvgRating),
		"totalRatings": agg.RatingCount,
	})
}
