package payment

import (
	"errors"
	"fmt"
	"log"

	"oramen-backend/internal/repository"
)

// Notification body webhook dari Midtrans. Field lain di payload-nya banyak,
// yang dipakai cuma ini.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
}

// NotificationVerifier dicek dulu sebelum notifikasi dipercaya.
// Diimplement oleh Gateway (tanya ulang ke Core API Midtrans).
type NotificationVerifier interface {
	VerifyNotification(orderRef string) (string, error)
}

// Reconciler memproses notifikasi pembayaran Midtrans SETELAH response HTTP
// dikirim. Midtrans kirim at-least-once dan bisa duplikat atau nyasar urutan,
// jadi semua di sini harus idempotent, dan tidak ada satu pun error yang boleh
// naik ke atas: HTTP 200-nya sudah terlanjur jalan, log adalah satu-satunya
// jejak audit.
type Reconciler struct {
	Store    repository.OrderStore
	Verifier NotificationVerifier
	// StrictVerify: tolak notifikasi yang gagal diverifikasi. Default false
	// karena sandbox Midtrans sering gagal verifikasi padahal payload sah.
	StrictVerify bool
	// NotifyStaff opsional, dipanggil saat ada hasil pembayaran final
	NotifyStaff func(title, body string, data map[string]string)
}

// Process menjalankan langkah verifikasi -> resolve order -> guard idempotensi
// -> mapping status -> satu kali tulis. Dipanggil lewat goroutine dari handler
// webhook, jadi panic pun harus ditangkap di sini.
func (r *Reconciler) Process(n Notification) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Webhook] PANIC saat proses notifikasi order %s: %v", n.OrderID, rec)
		}
	}()

	log.Printf("[Webhook] notifikasi diterima - order_id: %s, transaction_id: %s, transaction_status: %s, fraud_status: %s, payment_type: %s, gross_amount: %s",
		n.OrderID, n.TransactionID, n.TransactionStatus, n.FraudStatus, n.PaymentType, n.GrossAmount)

	// 1. Verifikasi keaslian. Gagal verifikasi di-log tapi proses tetap lanjut
	// (kecuali strict mode), mengikuti perilaku sandbox.
	if r.Verifier != nil {
		verified, err := r.Verifier.VerifyNotification(n.OrderID)
		if err != nil {
			log.Printf("[Webhook] verifikasi Midtrans GAGAL untuk order %s: %v", n.OrderID, err)
			if r.StrictVerify {
				log.Printf("[Webhook] strict mode aktif, notifikasi order %s DITOLAK", n.OrderID)
				return
			}
		} else {
			log.Printf("[Webhook] verifikasi Midtrans OK, status resmi: %s", verified)
		}
	}

	// 2. Cari ordernya. Referensi bisa datang sebagai "#0007", "0007", atau ID internal.
	order, err := r.Store.FindByRef(n.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			log.Printf("[Webhook] ORDER TIDAK DITEMUKAN untuk order_id: %s (transaction_id: %s)", n.OrderID, n.TransactionID)
		} else {
			log.Printf("[Webhook] DB error saat cari order %s: %v", n.OrderID, err)
		}
		return
	}

	// 3. Guard idempotensi: yang sudah success jangan diproses lagi,
	// kecuali sinyalnya refund.
	if order.PaymentStatus == "success" && !IsRefundSignal(n.TransactionStatus) {
		log.Printf("[Webhook] order %s (id %d) sudah success, notifikasi duplikat di-skip (transaction_id: %s)",
			order.OrderNumber, order.ID, n.TransactionID)
		return
	}

	// 4. Terjemahkan status
	mapping := MapTransactionStatus(n.TransactionStatus, n.FraudStatus)
	if !mapping.Recognized {
		log.Printf("[Webhook] transaction_status tidak dikenal: %q (fraud_status: %q) untuk order %s, tidak ada yang diubah",
			n.TransactionStatus, n.FraudStatus, order.OrderNumber)
		return
	}

	// 5. Satu kali tulis, dua kolom sekaligus kalau dua-duanya berubah
	update := repository.StatusUpdate{}
	if mapping.PaymentStatus != "" {
		update.PaymentStatus = &mapping.PaymentStatus
	}
	if mapping.OrderStatus != "" {
		update.Status = &mapping.OrderStatus
	}
	if err := r.Store.UpdateStatus(order.ID, update); err != nil {
		log.Printf("[Webhook] DB error saat update order %s: %v", order.OrderNumber, err)
		return
	}

	newOrderStatus := order.Status
	if mapping.OrderStatus != "" {
		newOrderStatus = mapping.OrderStatus
	}
	log.Printf("[Webhook] order %s (id %d) diupdate: payment_status %s -> %s, status %s -> %s (transaction_id: %s)",
		order.OrderNumber, order.ID, order.PaymentStatus, mapping.PaymentStatus, order.Status, newOrderStatus, n.TransactionID)

	// 6. Kabari staff dapur
	if r.NotifyStaff != nil {
		data := map[string]string{
			"order_id":     fmt.Sprintf("%d", order.ID),
			"order_number": order.OrderNumber,
		}
		switch {
		case mapping.PaymentStatus == "success":
			data["type"] = "payment_success"
			r.NotifyStaff("Pembayaran Diterima ✅",
				fmt.Sprintf("Order %s sudah dibayar, siap dibuat.", order.OrderNumber), data)
		case mapping.OrderStatus == "dibatalkan":
			data["type"] = "order_cancelled"
			r.NotifyStaff("Order Dibatalkan ❌",
				fmt.Sprintf("Pembayaran order %s gagal/expired, order dibatalkan.", order.OrderNumber), data)
		}
	}
}
