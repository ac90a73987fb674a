package services

import (
	"context"
	"errors"
	"time"

	"checkout-service/apperrors"
	"checkout-service/gateway"
	"checkout-service/models"
	"checkout-service/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// PaymentGateway is the slice of the gateway client the order service uses.
type PaymentGateway interface {
	CreateOrder(amount int64, currency string) (*gateway.RemoteOrder, error)
	VerifySignature(orderID, paymentID, claimed string) bool
}

// UpdateOrderRequest is a partial patch; nil fields are left untouched.
type UpdateOrderRequest struct {
	Amount        *int64  `json:"amount"`
	Status        *string `json:"status"`
	PaymentID     *string `json:"paymentId"`
	PaymentStatus *string `json:"paymentStatus"`
}

// VerifyPaymentRequest is the callback payload forwarded by the checkout page
// after the hosted widget completes.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// OrderAPI is the order service surface consumed by the HTTP controllers.
type OrderAPI interface {
	Create(ctx context.Context, amount int64) (*models.Order, *apperrors.Error)
	GetAll(ctx context.Context) ([]models.Order, *apperrors.Error)
	GetByID(ctx context.Context, id string) (*models.Order, *apperrors.Error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, *apperrors.Error)
	Update(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, *apperrors.Error)
	Delete(ctx context.Context, id string) (*models.Order, *apperrors.Error)
	VerifyPayment(ctx context.Context, req *VerifyPaymentRequest) (*models.Order, *apperrors.Error)
}

type OrderService struct {
	repo     repository.OrderRepository
	gateway  PaymentGateway
	currency string
	logger   *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, gw PaymentGateway, currency string, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		gateway:  gw,
		currency: currency,
		logger:   logger,
	}
}

// Create requests a remote order from the gateway and persists a record
// mirroring it. If the gateway call fails nothing is persisted.
func (s *OrderService) Create(ctx context.Context, amount int64) (*models.Order, *apperrors.Error) {
	if amount <= 0 {
		return nil, apperrors.Validation("amount must be positive")
	}

	remote, err := s.gateway.CreateOrder(amount, s.currency)
	if err != nil {
		s.logger.Error("Gateway order creation failed", zap.Int64("amount", amount), zap.Error(err))
		return nil, apperrors.Gateway(err)
	}

	status := remote.Status
	if status == "" {
		status = models.OrderCreated
	}

	now := time.Now().UTC()
	order := &models.Order{
		OrderID:       remote.ID,
		Amount:        amount,
		Currency:      s.currency,
		Status:        status,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.String("order_id", remote.ID), zap.Error(err))
		return nil, apperrors.Store(err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.OrderID),
		zap.Int64("amount", amount),
		zap.String("currency", s.currency),
	)
	return order, nil
}

func (s *OrderService) GetAll(ctx context.Context) ([]models.Order, *apperrors.Error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, apperrors.Store(err)
	}
	return orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*models.Order, *apperrors.Error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid order id")
	}

	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, s.lookupError(err, id)
	}
	return order, nil
}

func (s *OrderService) GetByOrderID(ctx context.Context, orderID string) (*models.Order, *apperrors.Error) {
	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, s.lookupError(err, orderID)
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id string, req *UpdateOrderRequest) (*models.Order, *apperrors.Error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid order id")
	}

	updates := bson.M{}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, apperrors.Validation("amount must be positive")
		}
		updates["amount"] = *req.Amount
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.PaymentID != nil {
		updates["payment_id"] = *req.PaymentID
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	order, err := s.repo.Update(ctx, oid, updates)
	if err != nil {
		return nil, s.lookupError(err, id)
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) (*models.Order, *apperrors.Error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.Validation("invalid order id")
	}

	order, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return nil, s.lookupError(err, id)
	}
	s.logger.Info("Order deleted", zap.String("id", id))
	return order, nil
}

// VerifyPayment authenticates a payment completion claim. The signature is
// recomputed server-side and compared in constant time before any mutation;
// mismatch, missing order and store failure all leave the record unchanged.
// Re-verifying an already paid order with a valid signature re-applies the
// same terminal state and succeeds.
func (s *OrderService) VerifyPayment(ctx context.Context, req *VerifyPaymentRequest) (*models.Order, *apperrors.Error) {
	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		s.logger.Warn("Payment signature mismatch",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
		)
		return nil, apperrors.SignatureMismatch()
	}

	order, err := s.repo.MarkPaid(ctx, req.OrderID, req.PaymentID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		s.logger.Warn("Verified payment references unknown order", zap.String("order_id", req.OrderID))
		return nil, apperrors.NotFound("order not found")
	}
	if err != nil {
		s.logger.Error("Failed to mark order paid", zap.String("order_id", req.OrderID), zap.Error(err))
		return nil, apperrors.Store(err)
	}

	s.logger.Info("Payment verified",
		zap.String("order_id", order.OrderID),
		zap.String("payment_id", req.PaymentID),
	)
	return order, nil
}

func (s *OrderService) lookupError(err error, id string) *apperrors.Error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return apperrors.NotFound("order not found")
	}
	s.logger.Error("Order lookup failed", zap.String("id", id), zap.Error(err))
	return apperrors.Store(err)
}
