package handlers

import (
	"net/http"

	"oramen-backend/internal/config"
	"oramen-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login admin panel. Kredensial dari env; kalau ADMIN_PASSWORD_HASH diisi,
// dicek pakai bcrypt, kalau tidak ya dibandingkan langsung (mode development).
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	passwordOK := false
	if h.cfg.AdminPasswordHash != "" {
		passwordOK = utils.CheckPassword(input.Password, h.cfg.AdminPasswordHash)
	} else {
		passwordOK = input.Password == h.cfg.AdminPassword
	}

	if input.Username != h.cfg.AdminUsername || !passwordOK {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateAdminToken(input.Username)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": token,
	})
}
