package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"oramen-backend/internal/models"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type MenuHandler struct {
	db       *gorm.DB
	rdb      *redis.Client // boleh nil, cache jadi no-op
	cacheTTL time.Duration
}

func NewMenuHandler(db *gorm.DB, rdb *redis.Client, cacheTTLSeconds int) *MenuHandler {
	return &MenuHandler{
		db:       db,
		rdb:      rdb,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}

// GetPublicMenu daftar menu untuk customer, lengkap dengan varian.
// Query varian per item lumayan berat, jadi hasilnya dicache di Redis.
func (h *MenuHandler) GetPublicMenu(c *gin.Context) {
	category := strings.ToLower(c.Query("category"))
	cacheKey := "menu:public"
	if category != "" {
		cacheKey += ":" + category
	}

	if h.rdb != nil {
		if cached, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var items []models.MenuItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				utils.APIResponse(c, http.StatusOK, true, "", items)
				return
			}
		}
	}

	q := h.db.
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("menu_variant_groups.id") }).
		Preload("Variants.Options", "is_available = ?", true).
		Where("is_available = ?", true)
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var items []models.MenuItem
	if err := q.Order("category, name").Find(&items).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	if h.rdb != nil {
		if payload, err := json.Marshal(items); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey, payload, h.cacheTTL)
		}
	}

	utils.APIResponse(c, http.StatusOK, true, "", items)
}

// invalidateMenuCache dipanggil setiap ada perubahan menu/varian
func (h *MenuHandler) invalidateMenuCache() {
	if h.rdb == nil {
		return
	}
	ctx := context.Background()
	keys, err := h.rdb.Keys(ctx, "menu:public*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	h.rdb.Del(ctx, keys...)
}

// ============ ADMIN MENU CRUD ============

func (h *MenuHandler) GetAllMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := h.db.Order("category, name").Find(&items).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "", items)
}

func (h *MenuHandler) CreateMenuItem(c *gin.Context) {
	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid: "+err.Error(), nil)
		return
	}

	item := models.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Rating:      input.Rating,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := h.db.Create(&item).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	h.invalidateMenuCache()
	utils.APIResponse(c, http.StatusOK, true, "", gin.H{"id": item.ID})
}

func (h *MenuHandler) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")

	var item models.MenuItem
	if err := h.db.First(&item, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Menu item not found", nil)
		return
	}

	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid: "+err.Error(), nil)
		return
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Category = input.Category
	item.Price = input.Price
	item.ImageURL = input.ImageURL
	item.Rating = input.Rating
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := h.db.Save(&item).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	h.invalidateMenuCache()
	utils.APIResponse(c, http.StatusOK, true, "Menu item updated", nil)
}

func (h *MenuHandler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}
	h.invalidateMenuCache()
	utils.APIResponse(c, http.StatusOK, true, "Menu item deleted", nil)
}

// ============ VARIAN MENU ============

func (h *MenuHandler) GetVariants(c *gin.Context) {
	id := c.Param("id")

	var groups []models.MenuVariantGroup
	err := h.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("menu_variant_options.id") }).
		Where("menu_item_id = ?", id).
		Order("id").
		Find(&groups).Error
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "", groups)
}

// SaveVariants replace-all: varian lama dihapus, diganti yang baru.
// Satu transaksi biar tidak ada kondisi setengah jadi.
func (h *MenuHandler) SaveVariants(c *gin.Context) {
	menuItemID := utils.StringToUint64(c.Param("id"))

	var input models.SaveVariantsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid: "+err.Error(), nil)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		// Hapus group lama beserta opsinya
		var oldGroups []models.MenuVariantGroup
		if err := tx.Where("menu_item_id = ?", menuItemID).Find(&oldGroups).Error; err != nil {
			return err
		}
		for _, g := range oldGroups {
			if err := tx.Where("variant_group_id = ?", g.ID).Delete(&models.MenuVariantOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("menu_item_id = ?", menuItemID).Delete(&models.MenuVariantGroup{}).Error; err != nil {
			return err
		}

		for _, g := range input.Variants {
			maxSelect := g.MaxSelect
			if maxSelect == 0 {
				maxSelect = 1
			}
			group := models.MenuVariantGroup{
				MenuItemID: menuItemID,
				Name:       g.Name,
				IsRequired: g.IsRequired,
				MaxSelect:  maxSelect,
			}
			if err := tx.Create(&group).Error; err != nil {
				return err
			}

			for _, o := range g.Options {
				available := true
				if o.IsAvailable != nil {
					available = *o.IsAvailable
				}
				option := models.MenuVariantOption{
					VariantGroupID: group.ID,
					Name:           o.Name,
					ExtraPrice:     o.ExtraPrice,
					IsAvailable:    available,
				}
				if err := tx.Create(&option).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	h.invalidateMenuCache()
	utils.APIResponse(c, http.StatusOK, true, "Variants saved", nil)
}
