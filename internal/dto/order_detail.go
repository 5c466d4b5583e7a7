package dto

import (
	"time"

	"greengrow-storefront/internal/model"
)

type OrderDetail struct {
	ID            string       `json:"id"`
	UserID        *string      `json:"userId"`
	Status        string       `json:"status"`
	Subtotal      float64      `json:"subtotal"`
	Shipping      float64      `json:"shipping"`
	Tax           float64      `json:"tax"`
	Total         float64      `json:"total"`
	IsGuestOrder  bool         `json:"isGuestOrder"`
	PaymentID     *string      `json:"paymentId"`
	PaymentMethod *string      `json:"paymentMethod"`
	PaymentStatus string       `json:"paymentStatus"`
	ShippingInfo  AddressInfo  `json:"shippingInfo"`
	BillingInfo   AddressInfo  `json:"billingInfo"`
	Items         []OrderItem  `json:"items"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func OrderDetailFromModel(order *model.Order) *OrderDetail {
	items := make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
		}
	}

	return &OrderDetail{
		ID:            order.ID,
		UserID:        order.UserID,
		Status:        order.Status,
		Subtotal:      order.Subtotal,
		Shipping:      order.Shipping,
		Tax:           order.Tax,
		Total:         order.Total,
		IsGuestOrder:  order.IsGuestOrder,
		PaymentID:     order.PaymentID,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		ShippingInfo: AddressInfo{
			Email:     order.ShippingEmail,
			FirstName: order.ShippingFirstName,
			LastName:  order.ShippingLastName,
			Address:   order.ShippingAddress,
			Apartment: deref(order.ShippingApartment),
			City:      order.ShippingCity,
			State:     order.ShippingState,
			ZipCode:   order.ShippingZipCode,
			Phone:     order.ShippingPhone,
		},
		BillingInfo: AddressInfo{
			Email:     order.BillingEmail,
			FirstName: order.BillingFirstName,
			LastName:  order.BillingLastName,
			Address:   order.BillingAddress,
			Apartment: deref(order.BillingApartment),
			City:      order.BillingCity,
			State:     order.BillingState,
			ZipCode:   order.BillingZipCode,
			Phone:     order.BillingPhone,
		},
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
