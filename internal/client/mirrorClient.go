package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"greengrow-storefront/internal/config"
)

// MirrorOrderRecord is the payload persisted in a mirror task and replayed
// against the hosted store. Customer fields are carried alongside the order
// so the worker can resolve-or-create the customer row first.
type MirrorOrderRecord struct {
	OrderID       string                 `json:"order_id"`
	CustomerEmail string                 `json:"customer_email"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	Status        string                 `json:"status"`
	TotalAmount   float64                `json:"total_amount"`
	Currency      string                 `json:"currency"`
	ShippingAddr  map[string]interface{} `json:"shipping_address"`
	BillingAddr   map[string]interface{} `json:"billing_address"`
	Items         []MirrorOrderItem      `json:"items"`
	PaymentID     string                 `json:"payment_intent_id,omitempty"`
}

type MirrorOrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// MirrorClient talks to the hosted secondary store. The primary database
// stays authoritative; everything here is replay-safe replication.
type MirrorClient interface {
	// EnsureCustomer resolves a customer row by email, creating it when absent.
	EnsureCustomer(ctx context.Context, email, name, phone string) (string, error)

	// CreateOrder inserts the mirrored order for an already resolved customer.
	CreateOrder(ctx context.Context, customerID string, rec *MirrorOrderRecord) error
}

type mirrorClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewMirrorClient(cfg *config.Mirror) MirrorClient {
	return &mirrorClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

type mirrorCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

func (c *mirrorClientImpl) EnsureCustomer(ctx context.Context, email, name, phone string) (string, error) {
	query := url.Values{}
	query.Set("email", "eq."+email)
	query.Set("select", "id,email,name")

	var existing []mirrorCustomer
	if err := c.do(ctx, "GET", "/rest/v1/customers?"+query.Encode(), nil, &existing); err != nil {
		return "", fmt.Errorf("look up mirror customer: %w", err)
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}

	created := []mirrorCustomer{}
	body := mirrorCustomer{Email: email, Name: name, Phone: phone}
	if err := c.do(ctx, "POST", "/rest/v1/customers", body, &created); err != nil {
		return "", fmt.Errorf("create mirror customer: %w", err)
	}
	if len(created) == 0 {
		return "", fmt.Errorf("create mirror customer: empty response")
	}

	return created[0].ID, nil
}

func (c *mirrorClientImpl) CreateOrder(ctx context.Context, customerID string, rec *MirrorOrderRecord) error {
	payload := map[string]interface{}{
		"order_id":          rec.OrderID,
		"customer_id":       customerID,
		"status":            rec.Status,
		"total_amount":      rec.TotalAmount,
		"currency":          rec.Currency,
		"shipping_address":  rec.ShippingAddr,
		"billing_address":   rec.BillingAddr,
		"items":             rec.Items,
		"payment_intent_id": rec.PaymentID,
	}

	if err := c.do(ctx, "POST", "/rest/v1/orders", payload, nil); err != nil {
		return fmt.Errorf("create mirror order: %w", err)
	}
	return nil
}

func (c *mirrorClientImpl) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mirror store error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
