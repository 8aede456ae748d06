package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config menampung semua setting dari .env dalam satu struct.
// Dulu tiap handler panggil os.Getenv sendiri-sendiri, sekarang dipusatkan
// di sini biar kelihatan jelas service ini butuh apa saja.
type Config struct {
	Port        string
	DatabaseDSN string
	RedisURL    string
	FrontendURL string
	BackendURL  string
	UploadsDir  string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // kalau diisi, dipakai menggantikan AdminPassword (bcrypt)

	MidtransServerKey    string
	MidtransClientKey    string
	MidtransIsProduction bool
	MidtransStrictVerify bool // true = notifikasi yang gagal diverifikasi langsung ditolak

	StaffFCMToken      string
	FCMCredentialsFile string

	MenuCacheTTL int // detik
}

func Load() *Config {
	// Load .env kalau ada, kalau tidak ada ya pakai env dari OS
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:root@tcp(localhost:3306)/oramen?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisURL:    getEnv("REDIS_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		BackendURL:  getEnv("BACKEND_URL", ""),
		UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),

		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		MidtransServerKey:    getEnv("MIDTRANS_SERVER_KEY", ""),
		MidtransClientKey:    getEnv("MIDTRANS_CLIENT_KEY", ""),
		MidtransIsProduction: getEnvAsBool("MIDTRANS_IS_PRODUCTION", false),
		MidtransStrictVerify: getEnvAsBool("MIDTRANS_STRICT_VERIFY", false),

		StaffFCMToken:      getEnv("STAFF_FCM_TOKEN", ""),
		FCMCredentialsFile: getEnv("FCM_CREDENTIALS_FILE", ""),

		MenuCacheTTL: getEnvAsInt("MENU_CACHE_TTL", 300),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
