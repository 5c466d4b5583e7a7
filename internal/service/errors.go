package service

import "errors"

var (
	// ErrMissingOrderInfo means items, shipping info, or billing info were
	// absent from an order submission.
	ErrMissingOrderInfo = errors.New("missing required order information")

	ErrOrderNotFound = errors.New("order not found")

	// ErrForbidden means an authenticated user asked for an order they do
	// not own.
	ErrForbidden = errors.New("unauthorized")

	ErrAuthRequired = errors.New("authentication required")

	ErrMissingPaymentParams = errors.New("missing required payment parameters")

	ErrMissingContactFields = errors.New("missing required fields")

	ErrMissingChatMessages = errors.New("missing chat messages")
)
