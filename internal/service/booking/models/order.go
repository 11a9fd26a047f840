package models

import (
	"time"

	"github.com/m04kA/DMar-BookingService/internal/domain"
)

// OrderResponse заказ из бэкенда
type OrderResponse struct {
	ID               int64               `json:"id"`
	OrderNumber      string              `json:"orderNumber"`
	CustomerName     string              `json:"customerName"`
	CustomerEmail    string              `json:"customerEmail"`
	CustomerPhone    string              `json:"customerPhone,omitempty"`
	CustomerWhatsApp string              `json:"customerWhatsapp,omitempty"`
	SpecialRequests  string              `json:"specialRequests,omitempty"`
	TotalAmount      float64             `json:"totalAmount"`
	PaymentStatus    string              `json:"paymentStatus"`
	PaymentMethod    string              `json:"paymentMethod,omitempty"`
	Status           string              `json:"status"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        *time.Time          `json:"createdAt,omitempty"`
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ItemType   string  `json:"itemType"`
	ItemName   string  `json:"itemName"`
	Quantity   int     `json:"quantity"`
	GuestCount int     `json:"guestCount"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`
}

// FromDomainOrder конвертирует domain модель в DTO
func FromDomainOrder(o *domain.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	resp := &OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		CustomerName:     o.CustomerName,
		CustomerEmail:    o.CustomerEmail,
		CustomerPhone:    o.CustomerPhone,
		CustomerWhatsApp: o.CustomerWhatsApp,
		SpecialRequests:  o.SpecialRequests,
		TotalAmount:      o.TotalAmount,
		PaymentStatus:    o.PaymentStatus,
		PaymentMethod:    o.PaymentMethod,
		Status:           o.Status,
		Items:            make([]OrderItemResponse, 0, len(o.Items)),
	}
	if !o.CreatedAt.IsZero() {
		createdAt := o.CreatedAt
		resp.CreatedAt = &createdAt
	}

	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ItemType:   item.ItemType,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			GuestCount: item.GuestCount,
			UnitPrice:  item.UnitPrice,
			Subtotal:   item.Subtotal,
		})
	}

	return resp
}
