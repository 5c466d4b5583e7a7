package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"greengrow-storefront/internal/config"
)

const (
	squareSandboxURL    = "https://connect.squareupsandbox.com"
	squareProductionURL = "https://connect.squareup.com"
)

type squareClientImpl struct {
	httpClient  *http.Client
	baseApiURL  string
	accessToken string
	locationID  string
}

// NewSquareClient builds a PaymentClient over the Square payments REST API.
func NewSquareClient(cfg *config.Square) PaymentClient {
	baseURL := cfg.BaseApiURL
	if baseURL == "" {
		baseURL = squareSandboxURL
		if cfg.Environment == "production" {
			baseURL = squareProductionURL
		}
	}

	return &squareClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:  baseURL,
		accessToken: cfg.AccessToken,
		locationID:  cfg.LocationID,
	}
}

type squareMoney struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type squareCreatePaymentRequest struct {
	SourceID       string      `json:"source_id"`
	AmountMoney    squareMoney `json:"amount_money"`
	LocationID     string      `json:"location_id"`
	IdempotencyKey string      `json:"idempotency_key"`
}

type squareErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

type squareCreatePaymentResult struct {
	Payment *struct {
		ID          string      `json:"id"`
		Status      string      `json:"status"`
		AmountMoney squareMoney `json:"amount_money"`
		ReceiptURL  string      `json:"receipt_url"`
	} `json:"payment"`
	Errors []squareErrorDetail `json:"errors"`
}

func (c *squareClientImpl) Charge(ctx context.Context, chargeReq *ChargeRequest) (*ChargeResult, error) {
	if c.locationID == "" {
		return nil, ErrPaymentLocationNotConfigured
	}

	// Fresh key per call: protects only this single charge submission against
	// being resent, not the order-creation call upstream.
	payload := &squareCreatePaymentRequest{
		SourceID: chargeReq.SourceID,
		AmountMoney: squareMoney{
			Amount:   chargeReq.Amount,
			Currency: chargeReq.Currency,
		},
		LocationID:     c.locationID,
		IdempotencyKey: uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		c.baseApiURL+"/v2/payments", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read payment response: %w", err)
	}

	var result squareCreatePaymentResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode payment response (status %d): %w", resp.StatusCode, err)
	}

	if len(result.Errors) > 0 {
		details := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			if e.Detail != "" {
				details = append(details, e.Detail)
			}
		}
		return nil, &ProcessorError{Details: details}
	}

	if resp.StatusCode != http.StatusOK || result.Payment == nil {
		return nil, fmt.Errorf("payment processing failed: status %d", resp.StatusCode)
	}

	return &ChargeResult{
		PaymentID:  result.Payment.ID,
		Status:     result.Payment.Status,
		Amount:     result.Payment.AmountMoney.Amount,
		Currency:   result.Payment.AmountMoney.Currency,
		ReceiptURL: result.Payment.ReceiptURL,
	}, nil
}
