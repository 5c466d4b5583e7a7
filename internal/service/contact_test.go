package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/model"
	"greengrow-storefront/internal/repository"
)

func TestContactSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))
	ctx := context.Background()

	cases := []dto.ContactRequest{
		{Email: "a@b.com", Message: "hi"},
		{Name: "Pat", Message: "hi"},
		{Name: "Pat", Email: "a@b.com"},
	}
	for _, req := range cases {
		_, err := svc.Submit(ctx, &req)
		assert.ErrorIs(t, err, ErrMissingContactFields)
	}

	var count int64
	require.NoError(t, db.Model(&model.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContactSubmitDefaultsSubject(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db))

	id, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Pat",
		Email:   "gardener@example.com",
		Message: "When should I apply compost tea?",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var msg model.ContactMessage
	require.NoError(t, db.First(&msg, "id = ?", id).Error)
	assert.Equal(t, "General Inquiry", msg.Subject)
	assert.Equal(t, "CONTACT", msg.FormType)
}
