package payment

// StatusMapping hasil terjemahan status Midtrans ke status internal.
// Field kosong artinya kolom itu tidak diubah.
type StatusMapping struct {
	PaymentStatus string
	OrderStatus   string
	Recognized    bool
}

// MapTransactionStatus menerjemahkan transaction_status (+ fraud_status untuk
// kartu kredit) ke pasangan payment_status / status order.
//
//	capture+accept  -> success, dapur mulai masak (menunggu)
//	capture+challenge -> pending, masih diverifikasi bank
//	capture+deny    -> failed, order batal
//	settlement      -> success (final untuk semua metode non-CC)
//	deny/cancel/expire -> failed, order batal
//	refund/partial_refund -> refunded, status dapur dibiarkan
//
// Status yang tidak dikenal tidak mengubah apa-apa, cuma di-log caller.
func MapTransactionStatus(transactionStatus, fraudStatus string) StatusMapping {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "accept":
			return StatusMapping{PaymentStatus: "success", OrderStatus: "menunggu", Recognized: true}
		case "challenge":
			return StatusMapping{PaymentStatus: "pending", Recognized: true}
		case "deny":
			return StatusMapping{PaymentStatus: "failed", OrderStatus: "dibatalkan", Recognized: true}
		default:
			return StatusMapping{}
		}
	case "settlement":
		return StatusMapping{PaymentStatus: "success", OrderStatus: "menunggu", Recognized: true}
	case "pending":
		return StatusMapping{PaymentStatus: "pending", Recognized: true}
	case "deny", "cancel", "expire":
		return StatusMapping{PaymentStatus: "failed", OrderStatus: "dibatalkan", Recognized: true}
	case "refund", "partial_refund":
		return StatusMapping{PaymentStatus: "refunded", Recognized: true}
	default:
		return StatusMapping{}
	}
}

// IsRefundSignal true untuk notifikasi refund; satu-satunya sinyal yang masih
// boleh diproses setelah order sudah success.
func IsRefundSignal(transactionStatus string) bool {
	return transactionStatus == "refund" || transactionStatus == "partial_refund"
}
