package model

import "time"

type Product struct {
	ID           string  `gorm:"primaryKey;size:64;not null"`
	Slug         string  `gorm:"size:128;uniqueIndex;not null"`
	Name         string  `gorm:"size:255;not null"`
	Description  string  `gorm:"type:text"`
	Price        float64 `gorm:"not null"` // dollars
	CategorySlug string  `gorm:"size:128;index"`
	IsActive     bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	ID     string  `gorm:"primaryKey;size:64;not null"`
	UserID *string `gorm:"size:64;index"` // nil for guest orders
	Status string  `gorm:"size:32;index;not null"` // PENDING, CONFIRMED

	Subtotal float64 `gorm:"not null"`
	Shipping float64 `gorm:"not null"`
	Tax      float64 `gorm:"not null"`
	Total    float64 `gorm:"not null"`

	IsGuestOrder bool `gorm:"not null"`

	PaymentID     *string `gorm:"size:128"`
	PaymentMethod *string `gorm:"size:32"`
	PaymentStatus string  `gorm:"size:32;not null"` // PENDING, COMPLETED

	ShippingEmail     string  `gorm:"size:255;not null"`
	ShippingFirstName string  `gorm:"size:128;not null"`
	ShippingLastName  string  `gorm:"size:128;not null"`
	ShippingAddress   string  `gorm:"size:255;not null"`
	ShippingApartment *string `gorm:"size:64"`
	ShippingCity      string  `gorm:"size:128;not null"`
	ShippingState     string  `gorm:"size:64;not null"`
	ShippingZipCode   string  `gorm:"size:32;not null"`
	ShippingPhone     string  `gorm:"size:32"`

	BillingEmail     string  `gorm:"size:255;not null"`
	BillingFirstName string  `gorm:"size:128;not null"`
	BillingLastName  string  `gorm:"size:128;not null"`
	BillingAddress   string  `gorm:"size:255;not null"`
	BillingApartment *string `gorm:"size:64"`
	BillingCity      string  `gorm:"size:128;not null"`
	BillingState     string  `gorm:"size:64;not null"`
	BillingZipCode   string  `gorm:"size:32;not null"`
	BillingPhone     string  `gorm:"size:32"`

	Items []OrderItem `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.id
	OrderID string `gorm:"size:64;index;not null"`
	// FK → product.id
	ProductID string  `gorm:"size:64;index;not null"`
	Quantity  int32   `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`

	CreatedAt time.Time
}

type ContactMessage struct {
	ID        string `gorm:"primaryKey;size:64;not null"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Subject   string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	FormType  string `gorm:"size:32;not null"` // CONTACT
	CreatedAt time.Time
}

// MirrorTask is the outbox row for replicating an order into the hosted
// secondary store. It is created in the same transaction as the order and
// drained by the mirror worker.
type MirrorTask struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.id
	OrderID       string `gorm:"size:64;uniqueIndex;not null"`
	Payload       []byte `gorm:"type:blob;not null"` // client.MirrorOrderRecord JSON
	Status        string `gorm:"size:16;index;not null"` // NEW, DONE, FAILED
	Attempts      int    `gorm:"not null"`
	NextAttemptAt time.Time
	LastError     string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
