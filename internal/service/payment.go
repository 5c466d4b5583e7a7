package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
)

type PaymentService interface {
	// ChargeCard exchanges a tokenized payment source for an authorized
	// charge and returns a normalized summary.
	ChargeCard(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResult, error)
}

type paymentServiceImpl struct {
	paymentClient client.PaymentClient
	log           zerolog.Logger
}

func NewPaymentService(paymentClient client.PaymentClient, log zerolog.Logger) PaymentService {
	return &paymentServiceImpl{
		paymentClient: paymentClient,
		log:           log,
	}
}

func (s *paymentServiceImpl) ChargeCard(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResult, error) {
	if req.SourceID == "" || req.Amount == 0 {
		return nil, ErrMissingPaymentParams
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	result, err := s.paymentClient.Charge(ctx, &client.ChargeRequest{
		SourceID: req.SourceID,
		Amount:   req.Amount,
		Currency: currency,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.log.Info().
		Str("payment_id", result.PaymentID).
		Str("status", result.Status).
		Int64("amount", result.Amount).
		Msg("payment charged")

	return &dto.PaymentResult{
		ID:     result.PaymentID,
		Status: result.Status,
		TotalMoney: dto.Money{
			Amount:   result.Amount,
			Currency: result.Currency,
		},
		ReceiptURL: result.ReceiptURL,
	}, nil
}
