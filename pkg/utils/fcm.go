package utils

import (
	"context"
	"log"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM menginisialisasi koneksi ke Firebase untuk push notif ke device staff.
// Kalau file credential tidak diset, fitur notif dimatikan saja, server tetap jalan.
func InitFCM(credentialsFile string) {
	if credentialsFile == "" {
		log.Println("FCM_CREDENTIALS_FILE kosong, push notif staff dimatikan")
		return
	}

	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Warning: gagal init Firebase, push notif dimatikan: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Warning: gagal ambil messaging client, push notif dimatikan: %v", err)
		return
	}

	fcmClient = client
	log.Println("🔥 Firebase Cloud Messaging Ready!")
}

// SendNotification mengirim pesan ke satu device (FCM Token).
// No-op kalau FCM tidak aktif atau token kosong.
func SendNotification(token string, title string, body string, data map[string]string) error {
	if fcmClient == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data, // Data tambahan (misal: order_id: "123")
	}

	_, err := fcmClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("Error kirim notifikasi: %s", err)
		return err
	}

	return nil
}
