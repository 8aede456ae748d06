package payment

import (
	"errors"
	"testing"

	"oramen-backend/internal/models"
	"oramen-backend/internal/repository"
)

type recordedUpdate struct {
	orderID uint64
	update  repository.StatusUpdate
}

// fakeOrderStore meniru Order Store di memori, termasuk normalisasi
// referensi dan fallback ID numerik
type fakeOrderStore struct {
	orders     []*models.Order
	updates    []recordedUpdate
	failUpdate error
}

func (s *fakeOrderStore) Create(*models.CreateOrderInput) (*models.Order, error) {
	return nil, errors.New("tidak dipakai di test")
}

func (s *fakeOrderStore) GetByID(id uint64) (*models.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (s *fakeOrderStore) FindByRef(ref string) (*models.Order, error) {
	canonical := repository.NormalizeOrderRef(ref)
	for _, o := range s.orders {
		if o.OrderNumber == canonical {
			return o, nil
		}
	}
	if id := repository.ParseNumericRef(ref); id != 0 {
		return s.GetByID(id)
	}
	return nil, repository.ErrOrderNotFound
}

func (s *fakeOrderStore) UpdateStatus(id uint64, update repository.StatusUpdate) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	s.updates = append(s.updates, recordedUpdate{orderID: id, update: update})
	for _, o := range s.orders {
		if o.ID != id {
			continue
		}
		if update.PaymentStatus != nil {
			if *update.PaymentStatus == "success" && o.PaymentStatus == "success" {
				continue // guard kondisional seperti di SQL
			}
			o.PaymentStatus = *update.PaymentStatus
		}
		if update.Status != nil {
			o.Status = *update.Status
		}
	}
	return nil
}

func (s *fakeOrderStore) Delete(uint64) error { return nil }

func (s *fakeOrderStore) List(repository.OrderFilter) ([]models.OrderWithItemCount, error) {
	return nil, nil
}

func (s *fakeOrderStore) Count() (int64, error) { return int64(len(s.orders)), nil }

type fakeVerifier struct {
	status string
	err    error
	calls  int
}

func (v *fakeVerifier) VerifyNotification(string) (string, error) {
	v.calls++
	return v.status, v.err
}

func pendingOrder() *models.Order {
	return &models.Order{
		ID:            7,
		OrderNumber:   "#0007",
		PaymentStatus: "pending",
		Status:        "menunggu",
		TotalAmount:   65000,
	}
}

func TestReconcilerSettlementMovesPendingToSuccess(t *testing.T) {
	store := &fakeOrderStore{orders: []*models.Order{pendingOrder()}}
	r := &Reconciler{Store: store}

	r.Process(Notification{OrderID: "#0007", TransactionID: "trx-1", TransactionStatus: "settlement"})

	if len(store.updates) != 1 {
		t.Fatalf("harusnya ada 1 update, dapat %d", len(store.updates))
	}
	u := store.updates[0]
	if u.orderID != 7 {
		t.Errorf("update kena order %d, harusnya 7", u.orderID)
	}
	if u.update.PaymentStatus == nil || *u.update.PaymentStatus != "success" {
		t.Errorf("payment_status harusnya success, dapat %v", u.update.PaymentStatus)
	}
	if u.update.Status == nil || *u.update.Status != "menunggu" {
		t.Errorf("status harusnya menunggu, dapat %v", u.update.Status)
	}
}

func TestReconcilerDuplicateSettlementIsNoop(t *testing.T) {
	order := pendingOrder()
	store := &fakeOrderStore{orders: []*models.Order{order}}
	r := &Reconciler{Store: store}

	n := Notification{OrderID: "#0007", TransactionID: "trx-1", TransactionStatus: "settlement"}
	r.Process(n)
	r.Process(n) // duplikat, harus di-skip oleh guard idempotensi

	if len(store.updates) != 1 {
		t.Fatalf("notifikasi duplikat tidak boleh nulis lagi, jumlah update = %d", len(store.updates))
	}
	if order.PaymentStatus != "success" {
		t.Errorf("payment_status = %q, want success", order.PaymentStatus)
	}
}

func TestReconcilerResolvesAllRefVariants(t *testing.T) {
	refs := []string{"#0007", "0007", "7"}
	for _, ref := range refs {
		t.Run(ref, func(t *testing.T) {
			store := &fakeOrderStore{orders: []*models.Order{pendingOrder()}}
			r := &Reconciler{Store: store}

			r.Process(Notification{OrderID: ref, TransactionStatus: "settlement"})

			if len(store.updates) != 1 || store.updates[0].orderID != 7 {
				t.Errorf("referensi %q gagal resolve ke order 7 (updates: %+v)", ref, store.updates)
			}
		})
	}
}

func TestReconcilerCaptureChallengeOnlyTouchesPayment(t *testing.T) {
	order := pendingOrder()
	order.Status = "sedang-dibuat"
	store := &fakeOrderStore{orders: []*models.Order{order}}
	r := &Reconciler{Store: store}

	r.Process(Notification{OrderID: "#0007", TransactionStatus: "capture", FraudStatus: "challenge"})

	if len(store.updates) != 1 {
		t.Fatalf("harusnya ada 1 update, dapat %d", len(store.updates))
	}
	if store.updates[0].update.Status != nil {
		t.Error("fraud challenge tidak boleh mengubah status order")
	}
	if order.PaymentStatus != "pending" {
		t.Errorf("payment_status = %q, want pending", order.PaymentStatus)
	}
	if order.Status != "sedang-dibuat" {
		t.Errorf("status order berubah jadi %q, harusnya tetap sedang-dibuat", order.Status)
	}
}

func TestReconcilerUnknownStatusIsNoop(t *testing.T) {
	order := pendingOrder()
	store := &fakeOrderStore{orders: []*models.Order{order}}
	r := &Reconciler{Store: store}

	r.Process(Notification{OrderID: "#0007", TransactionStatus: "unknown_foo"})

	if len(store.updates) != 0 {
		t.Errorf("status tidak dikenal tidak boleh nulis ke store, updates: %+v", store.updates)
	}
	if order.PaymentStatus != "pending" || order.Status != "menunggu" {
		t.Errorf("order berubah padahal statusnya tidak dikenal: %+v", order)
	}
}

func TestReconcilerRefundAfterSuccess(t *testing.T) {
	order := pendingOrder()
	order.PaymentStatus = "success"
	store := &fakeOrderStore{orders: []*models.Order{order}}
	r := &Reconciler{Store: store}

	r.Process(Notification{OrderID: "#0007", TransactionStatus: "refund"})

	if order.PaymentStatus != "refunded" {
		t.Errorf("refund setelah success harus tetap diproses, payment_status = %q", order.PaymentStatus)
	}
	if order.TotalAmount != 65000 {
		t.Errorf("refund tidak boleh mengubah total_amount, dapat %v", order.TotalAmount)
	}
	if order.Status != "menunggu" {
		t.Errorf("refund tidak boleh mengubah status order, dapat %q", order.Status)
	}
}

func TestReconcilerUnresolvableOrderDoesNothing(t *testing.T) {
	store := &fakeOrderStore{orders: []*models.Order{pendingOrder()}}
	r := &Reconciler{Store: store}

	// Tidak boleh panic, tidak boleh nulis
	r.Process(Notification{OrderID: "#9999", TransactionStatus: "settlement"})

	if len(store.updates) != 0 {
		t.Errorf("order tidak ketemu tapi tetap ada write: %+v", store.updates)
	}
}

func TestReconcilerVerificationFailureStillProcesses(t *testing.T) {
	order := pendingOrder()
	store := &fakeOrderStore{orders: []*models.Order{order}}
	verifier := &fakeVerifier{err: errors.New("signature mismatch")}
	r := &Reconciler{Store: store, Verifier: verifier}

	r.Process(Notification{OrderID: "#0007", TransactionStatus: "settlement"})

	if verifier.calls != 1 {
		t.Errorf("verifier dipanggil %d kali, harusnya 1", verifier.calls)
	}
	if order.PaymentStatus != "success" {
		t.Errorf("mode toleran harus tetap proses walau verifikasi gagal, payment_status = %q", order.PaymentStatus)
	}
}

func TestReconcilerStrictModeRejectsUnverified(t *testing.T) {
	order := pendingOrder()
	store := &fakeOrderStore{orders: []*models.Order{order}}
	r := &Reconciler{
		Store:        store,
		Verifier:     &fakeVerifier{err: errors.New("signature mismatch")},
		StrictVerify: true,
	}

	r.Process(Notification{OrderID: "#0007", TransactionStatus: "settlement"})

	if len(store.updates) != 0 {
		t.Errorf("strict mode harus menolak notifikasi yang gagal diverifikasi, updates: %+v", store.updates)
	}
	if order.PaymentStatus != "pending" {
		t.Errorf("payment_status = %q, harusnya tetap pending", order.PaymentStatus)
	}
}

func TestReconcilerSwallowsStoreErrors(t *testing.T) {
	store := &fakeOrderStore{
		orders:     []*models.Order{pendingOrder()},
		failUpdate: errors.New("db lagi ngambek"),
	}
	r := &Reconciler{Store: store}

	// Error dari store cuma di-log, tidak boleh panic atau naik ke caller
	r.Process(Notification{OrderID: "#0007", TransactionStatus: "settlement"})
}

func TestReconcilerNotifiesStaffOnOutcome(t *testing.T) {
	tests := []struct {
		name     string
		n        Notification
		wantType string
	}{
		{
			name:     "settlement kirim notif pembayaran",
			n:        Notification{OrderID: "#0007", TransactionStatus: "settlement"},
			wantType: "payment_success",
		},
		{
			name:     "expire kirim notif order batal",
			n:        Notification{OrderID: "#0007", TransactionStatus: "expire"},
			wantType: "order_cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeOrderStore{orders: []*models.Order{pendingOrder()}}
			var gotType string
			r := &Reconciler{
				Store: store,
				NotifyStaff: func(title, body string, data map[string]string) {
					gotType = data["type"]
				},
			}

			r.Process(tt.n)

			if gotType != tt.wantType {
				t.Errorf("tipe notif = %q, want %q", gotType, tt.wantType)
			}
		})
	}
}
