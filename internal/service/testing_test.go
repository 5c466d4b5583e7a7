package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.AutoMigrate(db))
	return db
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func validOrderRequest() *dto.CreateOrderRequest {
	return &dto.CreateOrderRequest{
		Items: []dto.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: 9.99},
		},
		ShippingInfo: &dto.AddressInfo{
			Email:     "gardener@example.com",
			FirstName: "Pat",
			LastName:  "Jensen",
			Address:   "12 Meadow Lane",
			City:      "Portland",
			State:     "OR",
			ZipCode:   "97201",
			Phone:     "555-0100",
		},
		BillingInfo: &dto.AddressInfo{
			Email:     "gardener@example.com",
			FirstName: "Pat",
			LastName:  "Jensen",
			Address:   "12 Meadow Lane",
			City:      "Portland",
			State:     "OR",
			ZipCode:   "97201",
		},
		Subtotal: 19.98,
		Shipping: 0,
		Tax:      1.60,
		Total:    21.58,
	}
}
