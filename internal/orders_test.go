package internal

import (
	"strings"
	"testing"
)

func TestNewOrders_Seeded(t *testing.T) {
	orders := NewOrders()

	list := orders.List()
	if len(list) != 1 {
		t.Fatalf("List() has %d orders, want 1 seeded order", len(list))
	}
	if list[0].Status != StatusShipping {
		t.Errorf("seed order status = %q, want %q", list[0].Status, StatusShipping)
	}
	if list[0].Courier != DefaultCourier {
		t.Errorf("seed order courier = %q, want %q", list[0].Courier, DefaultCourier)
	}
}

func TestPlaceOrder(t *testing.T) {
	orders := NewOrders()
	cart := NewCart()
	cart.Add(NewProduct("Bayam Segar", "Kebun Hijau Jambi", 2500, "ikat"), 4)

	order, err := orders.PlaceOrder(cart)
	if err != nil {
		t.Fatalf("PlaceOrder() error: %v", err)
	}

	if !strings.HasPrefix(order.ID, "RNT-") {
		t.Errorf("order id = %q, want RNT- prefix", order.ID)
	}
	if order.Status != StatusConfirmed {
		t.Errorf("new order status = %q, want %q", order.Status, StatusConfirmed)
	}
	if order.Total != 10000 {
		t.Errorf("order total = %d, want 10000", order.Total)
	}
	if len(cart.Items()) != 0 {
		t.Error("placing an order must clear the cart")
	}
	if got := orders.List(); got[0].ID != order.ID {
		t.Error("new orders should list first")
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orders := NewOrders()

	if _, err := orders.PlaceOrder(NewCart()); err == nil {
		t.Error("PlaceOrder on an empty cart should fail")
	}
}

func TestOrders_Advance(t *testing.T) {
	orders := NewOrders()
	cart := NewCart()
	cart.Add(NewProduct("Bayam Segar", "Kebun Hijau Jambi", 2500, "ikat"), 1)
	order, err := orders.PlaceOrder(cart)
	if err != nil {
		t.Fatalf("PlaceOrder() error: %v", err)
	}

	want := []OrderStatus{StatusPreparing, StatusShipping, StatusDelivered, StatusDelivered}
	for _, expected := range want {
		got, err := orders.Advance(order.ID)
		if err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
		if got != expected {
			t.Errorf("Advance() = %q, want %q", got, expected)
		}
	}

	if _, err := orders.Advance("RNT-MISSING"); err == nil {
		t.Error("Advance on an unknown order should fail")
	}
}

func TestOrders_Get(t *testing.T) {
	orders := NewOrders()

	seed := orders.List()[0]
	got, ok := orders.Get(seed.ID)
	if !ok || got.ID != seed.ID {
		t.Errorf("Get(%q) = (%+v, %v)", seed.ID, got, ok)
	}

	if _, ok := orders.Get("RNT-MISSING"); ok {
		t.Error("Get on an unknown order should report not found")
	}
}
