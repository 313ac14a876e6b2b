package entity

// AdminStats is a read-only aggregate maintained by the store; the admin
// core never writes it.
type AdminStats struct {
	TotalProducts    int64   `json:"total_products" firestore:"totalProducts"`
	TotalOrders      int64   `json:"total_orders" firestore:"totalOrders"`
	TotalSubscribers int64   `json:"total_subscribers" firestore:"totalSubscribers"`
	TotalRevenue     float64 `json:"total_revenue" firestore:"totalRevenue"`
}
