package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"greengrow-storefront/internal/client"
	"greengrow-storefront/internal/dto"
	"greengrow-storefront/internal/model"
	"greengrow-storefront/internal/repository"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"

	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
)

type OrderService interface {
	// CreateOrder persists the order and its items, and commits a mirror
	// task in the same transaction. sessionUserID is empty for anonymous
	// requests.
	CreateOrder(ctx context.Context, sessionUserID string, req *dto.CreateOrderRequest) (*dto.OrderSummary, error)

	GetOrder(ctx context.Context, sessionUserID, orderID string) (*model.Order, error)
	ListOrders(ctx context.Context, sessionUserID string) ([]*model.Order, error)
}

type orderServiceImpl struct {
	db             *gorm.DB
	orderRepo      repository.OrderRepository
	mirrorTaskRepo repository.MirrorTaskRepository
	log            zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	mirrorTaskRepo repository.MirrorTaskRepository,
	log zerolog.Logger,
) OrderService {
	return &orderServiceImpl{
		db:             db,
		orderRepo:      orderRepo,
		mirrorTaskRepo: mirrorTaskRepo,
		log:            log,
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, sessionUserID string, req *dto.CreateOrderRequest) (*dto.OrderSummary, error) {
	if len(req.Items) == 0 || req.ShippingInfo == nil || req.BillingInfo == nil {
		return nil, ErrMissingOrderInfo
	}

	// Authenticated session wins, then an explicitly supplied id, else guest.
	var userID *string
	switch {
	case sessionUserID != "":
		userID = &sessionUserID
	case req.UserID != "":
		userID = &req.UserID
	}

	status := OrderStatusPending
	paymentStatus := PaymentStatusPending
	var paymentID, paymentMethod *string
	if req.PaymentInfo != nil {
		if req.PaymentInfo.Status == PaymentStatusCompleted {
			status = OrderStatusConfirmed
			paymentStatus = PaymentStatusCompleted
		}
		if req.PaymentInfo.PaymentID != "" {
			paymentID = &req.PaymentInfo.PaymentID
		}
		if req.PaymentInfo.Provider != "" {
			paymentMethod = &req.PaymentInfo.Provider
		}
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Status:        status,
		Subtotal:      req.Subtotal,
		Shipping:      req.Shipping,
		Tax:           req.Tax,
		Total:         req.Total,
		IsGuestOrder:  req.IsGuestOrder || userID == nil,
		PaymentID:     paymentID,
		PaymentMethod: paymentMethod,
		PaymentStatus: paymentStatus,

		ShippingEmail:     req.ShippingInfo.Email,
		ShippingFirstName: req.ShippingInfo.FirstName,
		ShippingLastName:  req.ShippingInfo.LastName,
		ShippingAddress:   req.ShippingInfo.Address,
		ShippingApartment: optional(req.ShippingInfo.Apartment),
		ShippingCity:      req.ShippingInfo.City,
		ShippingState:     req.ShippingInfo.State,
		ShippingZipCode:   req.ShippingInfo.ZipCode,
		ShippingPhone:     req.ShippingInfo.Phone,

		BillingEmail:     req.BillingInfo.Email,
		BillingFirstName: req.BillingInfo.FirstName,
		BillingLastName:  req.BillingInfo.LastName,
		BillingAddress:   req.BillingInfo.Address,
		BillingApartment: optional(req.BillingInfo.Apartment),
		BillingCity:      req.BillingInfo.City,
		BillingState:     req.BillingInfo.State,
		BillingZipCode:   req.BillingInfo.ZipCode,
		BillingPhone:     req.BillingInfo.Phone,
	}

	orderItems := make([]*model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = &model.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}

	task, err := s.buildMirrorTask(order, req)
	if err != nil {
		return nil, fmt.Errorf("build mirror task: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order in db: %w", err)
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items in db: %w", err)
		}
		if err := s.mirrorTaskRepo.Create(ctx, tx, task); err != nil {
			return fmt.Errorf("enqueue mirror task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("status", order.Status).
		Bool("guest", order.IsGuestOrder).
		Msg("order created")

	return &dto.OrderSummary{
		ID:        order.ID,
		Total:     order.Total,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}, nil
}

func (s *orderServiceImpl) buildMirrorTask(order *model.Order, req *dto.CreateOrderRequest) (*model.MirrorTask, error) {
	items := make([]client.MirrorOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = client.MirrorOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}

	rec := &client.MirrorOrderRecord{
		OrderID:       order.ID,
		CustomerEmail: req.ShippingInfo.Email,
		CustomerName:  req.ShippingInfo.FirstName + " " + req.ShippingInfo.LastName,
		CustomerPhone: req.ShippingInfo.Phone,
		Status:        "pending",
		TotalAmount:   order.Total,
		Currency:      "USD",
		ShippingAddr:  addressMap(req.ShippingInfo),
		BillingAddr:   addressMap(req.BillingInfo),
		Items:         items,
	}
	if order.PaymentID != nil {
		rec.PaymentID = *order.PaymentID
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}

	return &model.MirrorTask{
		OrderID:       order.ID,
		Payload:       payload,
		Status:        repository.MirrorTaskStatusNew,
		NextAttemptAt: time.Now(),
	}, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, sessionUserID, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	// Guest orders stay readable by confirmation link; owned orders only by
	// their owner.
	if order.UserID != nil && *order.UserID != sessionUserID {
		return nil, ErrForbidden
	}

	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, sessionUserID string) ([]*model.Order, error) {
	if sessionUserID == "" {
		return nil, ErrAuthRequired
	}

	orders, err := s.orderRepo.FindByUserID(ctx, sessionUserID)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	return orders, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func addressMap(a *dto.AddressInfo) map[string]interface{} {
	m := map[string]interface{}{
		"email":      a.Email,
		"first_name": a.FirstName,
		"last_name":  a.LastName,
		"address":    a.Address,
		"city":       a.City,
		"state":      a.State,
		"zip_code":   a.ZipCode,
	}
	if a.Apartment != "" {
		m["apartment"] = a.Apartment
	}
	if a.Phone != "" {
		m["phone"] = a.Phone
	}
	return m
}
