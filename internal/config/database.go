package config

import (
	"log"

	"oramen-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB global, dipakai handler CRUD sederhana.
// Order Store punya repository sendiri (internal/repository) biar gampang ditest.
var DB *gorm.DB

func ConnectDB(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Gagal konek ke database: ", err)
	}

	// Migrasi otomatis semua tabel
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.MenuVariantGroup{},
		&models.MenuVariantOption{},
		&models.MenuRating{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Gagal migrasi database: ", err)
	}

	DB = db
	log.Println("Database connected")
}
