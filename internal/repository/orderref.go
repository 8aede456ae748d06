package repository

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeOrderRef membakukan referensi order ke bentuk kanonik "#NNNN".
// Midtrans kadang mengirim balik order_id tanpa tanda pagar ("0007"),
// kadang lengkap ("#0007"). Daripada mencocokkan 3 varian string seperti dulu,
// semua referensi dinormalisasi sekali di sini, baik saat nomor dicetak
// maupun saat notifikasi masuk.
func NormalizeOrderRef(raw string) string {
	ref := strings.TrimSpace(raw)
	ref = strings.TrimPrefix(ref, "#")
	if ref == "" {
		return ""
	}
	return "#" + ref
}

// FormatOrderNumber mencetak nomor order publik dari urutan ke-n. Contoh: #0042
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("#%04d", seq)
}

// ParseNumericRef mencoba membaca referensi sebagai ID internal (fallback).
// Return 0 kalau bukan angka.
func ParseNumericRef(raw string) uint64 {
	ref := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
