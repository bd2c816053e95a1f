package models

import "testing"

func TestOrderStatusValid(t *testing.T) {
	for _, st := range []OrderStatus{StatusPending, StatusBaking, StatusDelivered, StatusCompleted, StatusCancelled} {
		if !st.Valid() {
			t.Errorf("%q should be valid", st)
		}
	}
	for _, st := range []OrderStatus{"", "Shipped", "pending"} {
		if st.Valid() {
			t.Errorf("%q should not be valid", st)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if !StatusCompleted.Terminal() || !StatusCancelled.Terminal() {
		t.Error("Completed and Cancelled are terminal")
	}
	for _, st := range []OrderStatus{StatusPending, StatusBaking, StatusDelivered} {
		if st.Terminal() {
			t.Errorf("%q should not be terminal", st)
		}
	}
}

func TestOrderReference(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"abc123def456", "abc12"},
		{"ab", "ab"},
		{"", ""},
	}
	for _, tt := range tests {
		o := Order{ID: tt.id}
		if got := o.Reference(); got != tt.want {
			t.Errorf("Reference of %q = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestOrderNotifiable(t *testing.T) {
	with := Order{Customer: Customer{Email: "ana@example.com"}}
	without := Order{Customer: Customer{Name: "Ana"}}

	if !with.Notifiable() {
		t.Error("order with email should be notifiable")
	}
	if without.Notifiable() {
		t.Error("order without email should not be notifiable")
	}
}
