package dto

import "time"

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

type AddressInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Phone     string `json:"phone,omitempty"`
}

type PaymentInfo struct {
	PaymentID string `json:"paymentId"`
	Provider  string `json:"provider"`
	Status    string `json:"status"`
}

type CreateOrderRequest struct {
	Items        []OrderItem  `json:"items"`
	ShippingInfo *AddressInfo `json:"shippingInfo"`
	BillingInfo  *AddressInfo `json:"billingInfo"`
	Subtotal     float64      `json:"subtotal"`
	Shipping     float64      `json:"shipping"`
	Tax          float64      `json:"tax"`
	Total        float64      `json:"total"`
	IsGuestOrder bool         `json:"isGuestOrder"`
	UserID       string       `json:"userId"`
	PaymentInfo  *PaymentInfo `json:"paymentInfo"`
}

type OrderSummary struct {
	ID        string    `json:"id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateOrderResponse struct {
	Success bool         `json:"success"`
	Order   OrderSummary `json:"order"`
}

type CreatePaymentRequest struct {
	SourceID string `json:"sourceId"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type PaymentResult struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	TotalMoney Money  `json:"totalMoney"`
	ReceiptURL string `json:"receiptUrl,omitempty"`
}

type CreatePaymentResponse struct {
	Success bool          `json:"success"`
	Payment PaymentResult `json:"payment"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ProductView struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
