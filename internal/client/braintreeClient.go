package client

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"

	"greengrow-storefront/internal/config"
)

type braintreeClientImpl struct {
	gateway *braintree.Braintree
}

// NewBraintreeClient initializes the Braintree SDK gateway as an alternate
// card processor behind the same PaymentClient interface.
func NewBraintreeClient(cfg *config.Braintree) PaymentClient {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	gateway := braintree.New(
		env,
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
	)

	return &braintreeClientImpl{
		gateway: gateway,
	}
}

func (c *braintreeClientImpl) Charge(ctx context.Context, chargeReq *ChargeRequest) (*ChargeResult, error) {
	// Amount arrives in minor units; braintree wants NewDecimal(unscaled, scale).
	// 2158 cents -> braintree.NewDecimal(2158, 2)
	btAmount := braintree.NewDecimal(chargeReq.Amount, 2)

	req := &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             btAmount,
		PaymentMethodNonce: chargeReq.SourceID,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true, // captures the funds immediately
		},
	}

	tx, err := c.gateway.Transaction().Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("transaction creation failed: %w", err)
	}

	if tx.Status == braintree.TransactionStatusProcessorDeclined {
		return nil, &ProcessorError{Details: []string{tx.ProcessorResponseText}}
	}

	amount := chargeReq.Amount
	if tx.Amount != nil {
		cents := decimal.New(tx.Amount.Unscaled, -int32(tx.Amount.Scale)).Shift(2)
		amount = cents.IntPart()
	}

	return &ChargeResult{
		PaymentID: tx.Id,
		Status:    "COMPLETED",
		Amount:    amount,
		Currency:  chargeReq.Currency,
	}, nil
}
