// Package cart models the client-side shopping cart: selected items with
// their unit prices, and the subtotal/tax/total math the checkout screen
// submits. Prices held here are never authoritative once the order endpoint
// has been called.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales tax applied at checkout (8%).
var TaxRate = decimal.NewFromFloat(0.08)

type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
}

type Cart struct {
	Items []Item `json:"items"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func New() *Cart {
	return &Cart{}
}

// Add merges quantity into an existing line when the product is already in
// the cart, otherwise appends a new line.
func (c *Cart) Add(productID, name string, unitPrice float64, quantity int32) {
	if quantity <= 0 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
}

func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for a line; zero or negative removes it.
func (c *Cart) UpdateQuantity(productID string, quantity int32) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) ItemCount() int32 {
	var count int32
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Totals computes subtotal, shipping (free on all orders), 8% tax, and the
// grand total, rounded to cents.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		line := decimal.NewFromFloat(item.UnitPrice).
			Mul(decimal.NewFromInt32(item.Quantity))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)

	shipping := decimal.Zero
	tax := subtotal.Mul(TaxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

// Snapshot serializes the cart for client storage.
func (c *Cart) Snapshot() ([]byte, error) {
	return json.Marshal(c)
}

// Restore loads a cart from a stored snapshot.
func Restore(data []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
