package repository

import (
	"testing"

	"oramen-backend/internal/models"
)

func TestBuildOrderComputesTotals(t *testing.T) {
	input := &models.CreateOrderInput{
		CustomerName: "Budi",
		Items: []models.OrderItemInput{
			{ItemName: "Ramen Original", Quantity: 2, Price: 25000},
			{ItemName: "Gyoza", Quantity: 1, Price: 15000},
		},
	}

	order := BuildOrder(input)

	if order.TotalAmount != 65000 {
		t.Errorf("TotalAmount = %v, want 65000", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("jumlah item = %d, want 2", len(order.Items))
	}
	if order.Items[0].Subtotal != 50000 {
		t.Errorf("subtotal item pertama = %v, want 50000", order.Items[0].Subtotal)
	}
	if order.Items[1].Subtotal != 15000 {
		t.Errorf("subtotal item kedua = %v, want 15000", order.Items[1].Subtotal)
	}
}

func TestBuildOrderDefaults(t *testing.T) {
	input := &models.CreateOrderInput{
		Items: []models.OrderItemInput{
			{ItemName: "Ramen Original", Quantity: 1, Price: 25000},
		},
	}

	order := BuildOrder(input)

	if order.CustomerName != "Guest" {
		t.Errorf("CustomerName = %q, want Guest", order.CustomerName)
	}
	if order.OrderType != "dine-in" {
		t.Errorf("OrderType = %q, want dine-in", order.OrderType)
	}
	if order.PaymentStatus != "cash" {
		t.Errorf("PaymentStatus = %q, want cash", order.PaymentStatus)
	}
	if order.Status != "menunggu" {
		t.Errorf("Status = %q, want menunggu", order.Status)
	}
}

func TestBuildOrderKeepsExplicitPaymentStatus(t *testing.T) {
	input := &models.CreateOrderInput{
		PaymentStatus: "pending", // order QRIS, nunggu webhook
		Items: []models.OrderItemInput{
			{ItemName: "Ramen Original", Quantity: 1, Price: 25000},
		},
	}

	if order := BuildOrder(input); order.PaymentStatus != "pending" {
		t.Errorf("PaymentStatus = %q, want pending", order.PaymentStatus)
	}
}
