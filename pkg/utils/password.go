package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword mengubah password biasa menjadi hash bcrypt.
// Dipakai untuk generate ADMIN_PASSWORD_HASH sekali saja via tooling.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword membandingkan password inputan dengan hash yang tersimpan
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
