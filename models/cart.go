package models

// CartItem is one course line in the cart.
type CartItem struct {
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"` // unit price at time of adding
	Quantity int     `json:"quantity"`
}

// Discount is a percentage discount applied to the whole cart.
type Discount struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent"` // 0..100
}

// Cart is an explicit application-state container. All mutation goes through
// the pure operations in services/cart; nothing mutates it ambiently.
type Cart struct {
	CartID   string    `json:"cartId"`
	Items    []CartItem `json:"items"`
	Discount *Discount  `json:"discount,omitempty"`
}

// CartTotals are the derived money figures for a cart.
type CartTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"itemCount"`
}
