package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengrow-storefront/internal/config"
)

func newSquareTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, PaymentClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewSquareClient(&config.Square{
		BaseApiURL:  srv.URL,
		AccessToken: "test-token",
		LocationID:  "loc-1",
	})
	return srv, c
}

func TestSquareChargeSuccess(t *testing.T) {
	var gotReq squareCreatePaymentRequest
	_, c := newSquareTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"payment": map[string]interface{}{
				"id":           "pay_1",
				"status":       "COMPLETED",
				"amount_money": map[string]interface{}{"amount": 2158, "currency": "USD"},
				"receipt_url":  "https://squareup.com/receipt/pay_1",
			},
		})
	})

	result, err := c.Charge(context.Background(), &ChargeRequest{
		SourceID: "cnon:card-ok",
		Amount:   2158,
		Currency: "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, "pay_1", result.PaymentID)
	assert.Equal(t, "COMPLETED", result.Status)
	assert.Equal(t, int64(2158), result.Amount)
	assert.Equal(t, "https://squareup.com/receipt/pay_1", result.ReceiptURL)

	assert.Equal(t, "cnon:card-ok", gotReq.SourceID)
	assert.Equal(t, "loc-1", gotReq.LocationID)
	assert.NotEmpty(t, gotReq.IdempotencyKey)
}

func TestSquareChargeFreshIdempotencyKeyPerCall(t *testing.T) {
	var keys []string
	_, c := newSquareTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req squareCreatePaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		keys = append(keys, req.IdempotencyKey)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"payment": map[string]interface{}{
				"id":           "pay_1",
				"status":       "COMPLETED",
				"amount_money": map[string]interface{}{"amount": 2158, "currency": "USD"},
			},
		})
	})

	req := &ChargeRequest{SourceID: "cnon:card-ok", Amount: 2158, Currency: "USD"}
	_, err := c.Charge(context.Background(), req)
	require.NoError(t, err)
	_, err = c.Charge(context.Background(), req)
	require.NoError(t, err)

	// identical input must not suppress a legitimate repeat charge
	require.Len(t, keys, 2)
	assert.NotEqual(t, keys[0], keys[1])
}

func TestSquareChargeProcessorError(t *testing.T) {
	_, c := newSquareTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{
				{"category": "PAYMENT_METHOD_ERROR", "code": "CARD_DECLINED", "detail": "Card declined"},
				{"category": "PAYMENT_METHOD_ERROR", "code": "CVV_FAILURE", "detail": "CVV check failed"},
			},
		})
	})

	_, err := c.Charge(context.Background(), &ChargeRequest{
		SourceID: "cnon:card-declined",
		Amount:   2158,
		Currency: "USD",
	})
	require.Error(t, err)

	var procErr *ProcessorError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "Card declined, CVV check failed", procErr.Error())
}

func TestSquareChargeMissingLocation(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	c := NewSquareClient(&config.Square{
		BaseApiURL:  srv.URL,
		AccessToken: "test-token",
	})

	_, err := c.Charge(context.Background(), &ChargeRequest{
		SourceID: "cnon:card-ok",
		Amount:   2158,
		Currency: "USD",
	})
	assert.ErrorIs(t, err, ErrPaymentLocationNotConfigured)
	assert.False(t, called, "no request should reach the processor")
}
