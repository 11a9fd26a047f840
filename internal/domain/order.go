package domain

import "time"

// Order is the backend's durable record of a submitted booking. Read-only here.
type Order struct {
	ID               int64
	OrderNumber      string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerWhatsApp string
	SpecialRequests  string
	TotalAmount      float64
	PaymentStatus    string
	PaymentMethod    string
	Status           string
	Items            []OrderItem
	CreatedAt        time.Time
}

// OrderItem one line of an order
type OrderItem struct {
	ItemType   string
	ItemName   string
	Quantity   int
	GuestCount int
	UnitPrice  float64
	Subtotal   float64
}
