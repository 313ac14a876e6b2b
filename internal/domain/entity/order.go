package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every admissible status. Transitions are free form:
// an administrator may move an order from any status to any other.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type OrderItem struct {
	Name     string  `json:"name" firestore:"name"`
	Size     string  `json:"size,omitempty" firestore:"size,omitempty"`
	Quantity int     `json:"quantity" firestore:"quantity"`
	Price    float64 `json:"price" firestore:"price"`
}

// Order rows are written by the storefront checkout flow. The admin side
// only ever patches the status field or deletes the row; total is stored as
// received and never recomputed from subtotal + shipping_cost here.
type Order struct {
	ID              string      `json:"id" firestore:"id"`
	CustomerName    string      `json:"customer_name" firestore:"customerName"`
	CustomerEmail   string      `json:"customer_email" firestore:"customerEmail"`
	CustomerPhone   string      `json:"customer_phone,omitempty" firestore:"customerPhone,omitempty"`
	ShippingAddress string      `json:"shipping_address" firestore:"shippingAddress"`
	Items           []OrderItem `json:"items" firestore:"items"`
	Subtotal        float64     `json:"subtotal" firestore:"subtotal"`
	ShippingCost    float64     `json:"shipping_cost" firestore:"shippingCost"`
	Total           float64     `json:"total" firestore:"total"`
	Status          string      `json:"status" firestore:"status"`
	Notes           string      `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt"`
}
