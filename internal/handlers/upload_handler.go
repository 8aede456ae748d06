package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"oramen-backend/internal/config"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 5 * 1024 * 1024 // 5MB

var allowedImageExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

// UploadImage terima gambar menu dari admin, simpan ke folder uploads,
// balikin URL publiknya
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "No file uploaded", nil)
		return
	}

	if file.Size > maxUploadSize {
		utils.APIResponse(c, http.StatusBadRequest, false, "Ukuran file maksimal 5MB", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		utils.APIResponse(c, http.StatusBadRequest, false, "Only image files allowed", nil)
		return
	}

	// Nama file unik: timestamp + angka acak, ekstensi asli dipertahankan
	filename := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	dst := filepath.Join(h.cfg.UploadsDir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	baseURL := h.cfg.BackendURL
	if baseURL == "" {
		baseURL = "http://localhost:" + h.cfg.Port
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     fmt.Sprintf("%s/uploads/%s", baseURL, filename),
	})
}
