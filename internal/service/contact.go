package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/model"
	"greengrow-storefront/internal/repository"
)

type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (string, error)
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, req *dto.ContactRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return "", ErrMissingContactFields
	}

	subject := req.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	msg := &model.ContactMessage{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Subject:  subject,
		Message:  req.Message,
		FormType: "CONTACT",
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("store contact message: %w", err)
	}

	return msg.ID, nil
}
