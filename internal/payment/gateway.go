package payment

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// ErrUnconfigured dikembalikan kalau Midtrans belum/salah dikonfigurasi.
// Satu error ini mematikan seluruh fitur pembayaran gateway, bukan per request.
var ErrUnconfigured = errors.New("payment gateway belum dikonfigurasi")

// Config pengganti singleton global `snap` yang nullable di versi lama.
// Semua yang dibutuhkan buat ngomong ke Midtrans ada di sini, divalidasi
// sekali saat proses start.
type Config struct {
	ServerKey    string
	ClientKey    string
	IsProduction bool
	FinishURL    string // redirect setelah pembayaran selesai
}

// Validate mengecek format key Midtrans. Sandbox key diawali "SB-Mid-server-",
// production "Mid-server-"; salah mode = salah key, lebih baik ketahuan di boot
// daripada error 401 misterius di tengah jam makan siang.
func (c Config) Validate() error {
	if c.ServerKey == "" || c.ClientKey == "" {
		return errors.New("MIDTRANS_SERVER_KEY atau MIDTRANS_CLIENT_KEY belum diisi")
	}
	if strings.Contains(c.ServerKey, "YOUR_SERVER_KEY") {
		return errors.New("MIDTRANS_SERVER_KEY masih placeholder")
	}

	if !strings.HasPrefix(c.ClientKey, "Mid-client-") && !strings.HasPrefix(c.ClientKey, "SB-Mid-client-") {
		return errors.New("client key harus diawali \"Mid-client-\" atau \"SB-Mid-client-\"")
	}

	isSandboxServerKey := strings.HasPrefix(c.ServerKey, "SB-Mid-server-")
	if !c.IsProduction && !isSandboxServerKey {
		return errors.New("mode sandbox butuh server key berawalan \"SB-Mid-server-\"")
	}
	if c.IsProduction && isSandboxServerKey {
		return errors.New("mode production tidak boleh pakai sandbox server key (SB-)")
	}
	return nil
}

type Session struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

type SessionItem struct {
	ID       string
	Name     string
	Price    int64
	Quantity int32
}

type SessionParams struct {
	OrderRef      string // nomor order publik, dipakai sebagai order_id Midtrans
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []SessionItem
	PaymentMethod string // "qris" = paksa QRIS saja di popup Snap
}

// Gateway membungkus Snap (bikin sesi pembayaran) dan Core API (cek status /
// verifikasi notifikasi). Kalau config tidak valid, Ready() false dan semua
// call balas ErrUnconfigured.
type Gateway struct {
	cfg       Config
	snap      snap.Client
	core      coreapi.Client
	ready     bool
	notReason string
}

func NewGateway(cfg Config) *Gateway {
	g := &Gateway{cfg: cfg}

	if err := cfg.Validate(); err != nil {
		g.notReason = err.Error()
		log.Println("Warning: Midtrans TIDAK aktif -", err)
		return g
	}

	env := midtrans.Sandbox
	if cfg.IsProduction {
		env = midtrans.Production
	}

	// Timeout bawaan midtrans-go kepanjangan (80 detik), customer keburu pergi
	midtrans.DefaultGoHttpClient = &http.Client{Timeout: 30 * time.Second}

	g.snap.New(cfg.ServerKey, env)
	g.core.New(cfg.ServerKey, env)
	g.ready = true

	mode := "SANDBOX"
	if cfg.IsProduction {
		mode = "PRODUCTION"
	}
	log.Println("Midtrans Snap aktif, mode:", mode)
	return g
}

func (g *Gateway) Ready() bool {
	return g.ready
}

// ClientKey dibutuhkan frontend untuk load snap.js
func (g *Gateway) ClientKey() string {
	return g.cfg.ClientKey
}

// CreateSession minta token Snap ke Midtrans. Error jaringan/5xx dicoba ulang
// maksimal 2 kali dengan backoff; penolakan bisnis (4xx) langsung diserahkan
// ke caller tanpa retry.
func (g *Gateway) CreateSession(p SessionParams) (*Session, error) {
	if !g.ready {
		return nil, ErrUnconfigured
	}

	items := make([]midtrans.ItemDetails, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.ID,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Quantity,
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.OrderRef,
			GrossAmt: p.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: p.CustomerName,
			Email: p.CustomerEmail,
			Phone: p.CustomerPhone,
		},
		Items: &items,
	}
	if g.cfg.FinishURL != "" {
		req.Callbacks = &snap.Callbacks{Finish: g.cfg.FinishURL}
	}
	if p.PaymentMethod == "qris" {
		// midtrans-go belum punya konstanta untuk "other_qris", jadi pakai literal
		req.EnabledPayments = []snap.SnapPaymentType{snap.SnapPaymentType("other_qris")}
	}

	var resp *snap.Response
	var snapErr *midtrans.Error
	for attempt := 0; attempt <= 2; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * time.Second)
			log.Printf("[Midtrans] retry create transaction ke-%d untuk order %s", attempt, p.OrderRef)
		}
		resp, snapErr = g.snap.CreateTransaction(req)
		if snapErr == nil || !isTransient(snapErr) {
			break
		}
	}
	if snapErr != nil {
		return nil, snapErr
	}

	return &Session{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

// VerifyNotification memastikan notifikasi benar-benar dari Midtrans dengan
// menanyakan ulang status transaksinya ke Core API (cara yang sama dengan
// snap.transaction.notification di SDK JS). Return transaction_status resmi.
func (g *Gateway) VerifyNotification(orderRef string) (string, error) {
	if !g.ready {
		return "", ErrUnconfigured
	}
	resp, err := g.core.CheckTransaction(orderRef)
	if err != nil {
		return "", err
	}
	return resp.TransactionStatus, nil
}

// QueryStatus poll status on-demand, fallback kalau notifikasi belum nyampe.
func (g *Gateway) QueryStatus(orderRef string) (*coreapi.TransactionStatusResponse, error) {
	if !g.ready {
		return nil, ErrUnconfigured
	}
	resp, err := g.core.CheckTransaction(orderRef)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// IsAuthError deteksi 401 dari Midtrans biar bisa dikasih pesan yang lebih
// manusiawi (biasanya gara-gara key production dipakai di sandbox).
func IsAuthError(err error) bool {
	var merr *midtrans.Error
	if errors.As(err, &merr) {
		return merr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// isTransient: cuma error jaringan (StatusCode 0) dan 5xx yang layak di-retry
func isTransient(err *midtrans.Error) bool {
	return err.StatusCode == 0 || err.StatusCode >= 500
}

// GatewayMessage pesan error yang aman ditampilkan ke user
func GatewayMessage(err error) string {
	if IsAuthError(err) {
		return "Midtrans authentication failed. Pastikan MIDTRANS_SERVER_KEY dan MIDTRANS_CLIENT_KEY di .env adalah sandbox keys (SB-Mid-server-xxx dan SB-Mid-client-xxx)."
	}
	var merr *midtrans.Error
	if errors.As(err, &merr) {
		return merr.GetMessage()
	}
	return fmt.Sprintf("Midtrans error: %v", err)
}
