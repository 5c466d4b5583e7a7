package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
)

type stubPaymentClient struct {
	lastReq *client.ChargeRequest
	result  *client.ChargeResult
	err     error
}

func (s *stubPaymentClient) Charge(_ context.Context, req *client.ChargeRequest) (*client.ChargeResult, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestChargeCardMissingParams(t *testing.T) {
	svc := NewPaymentService(&stubPaymentClient{}, testLogger())
	ctx := context.Background()

	_, err := svc.ChargeCard(ctx, &dto.CreatePaymentRequest{Amount: 2158})
	assert.ErrorIs(t, err, ErrMissingPaymentParams)

	_, err = svc.ChargeCard(ctx, &dto.CreatePaymentRequest{SourceID: "cnon:ok"})
	assert.ErrorIs(t, err, ErrMissingPaymentParams)
}

func TestChargeCardDefaultsCurrency(t *testing.T) {
	stub := &stubPaymentClient{result: &client.ChargeResult{
		PaymentID: "pay_1",
		Status:    "COMPLETED",
		Amount:    2158,
		Currency:  "USD",
	}}
	svc := NewPaymentService(stub, testLogger())

	result, err := svc.ChargeCard(context.Background(), &dto.CreatePaymentRequest{
		SourceID: "cnon:ok",
		Amount:   2158,
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", stub.lastReq.Currency)
	assert.Equal(t, "pay_1", result.ID)
	assert.Equal(t, dto.Money{Amount: 2158, Currency: "USD"}, result.TotalMoney)
}

func TestChargeCardPropagatesProcessorError(t *testing.T) {
	procErr := &client.ProcessorError{Details: []string{"Card declined"}}
	svc := NewPaymentService(&stubPaymentClient{err: procErr}, testLogger())

	_, err := svc.ChargeCard(context.Background(), &dto.CreatePaymentRequest{
		SourceID: "cnon:declined",
		Amount:   2158,
	})
	require.Error(t, err)

	var got *client.ProcessorError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "Card declined", got.Error())
}
