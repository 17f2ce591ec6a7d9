package model

// RecentOrder is a back-office summary row for a recently placed order.
type RecentOrder struct {
	OrderNumber string      `json:"id"`
	Customer    string      `json:"customer"`
	Amount      float64     `json:"amount"`
	Status      OrderStatus `json:"status"`
}

// TopProduct is a back-office summary row for a best-selling product.
type TopProduct struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitsSold   int    `json:"unitsSold"`
}

// AdminStats is the back-office dashboard payload. Revenue counts paid orders
// only.
type AdminStats struct {
	TotalRevenue  float64       `json:"totalRevenue"`
	ProductCount  int           `json:"productCount"`
	CustomerCount int           `json:"customerCount"`
	OrderCount    int           `json:"orderCount"`
	RecentOrders  []RecentOrder `json:"recentOrders"`
	TopProducts   []TopProduct  `json:"topProducts"`
}
