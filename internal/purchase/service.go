package purchase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/metrics"
	"github.com/Bhishaj9/redbull-backend/internal/money"
	"github.com/Bhishaj9/redbull-backend/internal/payment"
	"github.com/Bhishaj9/redbull-backend/internal/plan"

	"github.com/google/uuid"
)

const AdminListLimit = 200

var ErrVerificationFailed = fmt.Errorf("signature mismatch: %w", api.ErrVerificationFailed)

// Plans is the subset of the catalog the purchase flow reads.
type Plans interface {
	Get(id string) (plan.Plan, error)
	CheckPurchasable(id string, now time.Time) (plan.Plan, error)
}

type Service interface {
	Buy(ctx context.Context, buyer Buyer, planID string) (*BuyResponse, error)
	CreateOrder(ctx context.Context, buyer Buyer, req CreateOrderRequest) (*OrderResponse, error)
	Verify(ctx context.Context, buyer Buyer, req VerifyRequest) (*VerifyResponse, error)
	ListMine(ctx context.Context, userID int) ([]Purchase, error)
	ListInstances(ctx context.Context, userID int) ([]plan.Instance, error)
	ListAll(ctx context.Context) ([]Purchase, error)
}

type service struct {
	repo    Repository
	plans   Plans
	gateway payment.Gateway
	secret  string
	now     func() time.Time
}

func NewService(repo Repository, plans Plans, gateway payment.Gateway, gatewaySecret string) Service {
	return &service{
		repo:    repo,
		plans:   plans,
		gateway: gateway,
		secret:  gatewaySecret,
		now:     time.Now,
	}
}

func (s *service) Buy(ctx context.Context, buyer Buyer, planID string) (*BuyResponse, error) {
	now := s.now()
	p, err := s.plans.CheckPurchasable(planID, now)
	if err != nil {
		return nil, err
	}

	purchase, instance, balance, err := s.repo.BuyWithWallet(ctx, buyer, p, now)
	if err != nil {
		if errors.Is(err, api.ErrInsufficientFunds) {
			metrics.RecordPurchase(MethodWallet, StatusFailed)
		}
		return nil, err
	}

	metrics.RecordPurchase(MethodWallet, StatusCompleted)
	logger.Info("plan bought from wallet",
		"user_id", buyer.ID,
		"plan_id", p.ID,
		"price_paise", p.PricePaise,
	)

	return &BuyResponse{
		Message:     "Plan purchased",
		Purchase:    purchase,
		Instance:    instance,
		WalletPaise: balance,
	}, nil
}

func (s *service) CreateOrder(ctx context.Context, buyer Buyer, req CreateOrderRequest) (*OrderResponse, error) {
	order := NewOrder{UserID: buyer.ID, Phone: buyer.Phone}

	switch {
	case req.PlanID != "" && req.PlanID != TypeRecharge:
		p, err := s.plans.CheckPurchasable(req.PlanID, s.now())
		if err != nil {
			return nil, err
		}
		order.Type = TypePlan
		order.PlanID = p.ID
		order.PlanName = p.Name
		order.AmountPaise = p.PricePaise
	case req.Amount.Valid:
		amount, err := money.PositivePaise(req.Amount.Decimal)
		if err != nil {
			return nil, err
		}
		order.Type = TypeRecharge
		order.PlanName = "Wallet Recharge"
		order.AmountPaise = amount
	default:
		return nil, fmt.Errorf("plan id or amount required: %w", api.ErrValidation)
	}

	receipt := "rb_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	gwOrder, err := s.gateway.CreateOrder(ctx, order.AmountPaise, receipt)
	if err != nil {
		if !errors.Is(err, api.ErrGatewayUnavailable) {
			err = fmt.Errorf("%w: %v", payment.ErrGatewayUnavailable, err)
		}
		logger.Error("gateway order failed", "user_id", buyer.ID, "amount_paise", order.AmountPaise, "error", err)
		return nil, err
	}
	order.OrderID = gwOrder.ID

	purchase, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	metrics.RecordPurchase(MethodGateway, StatusCreated)
	logger.Info("gateway order created",
		"user_id", buyer.ID,
		"order_id", order.OrderID,
		"type", order.Type,
		"amount_paise", order.AmountPaise,
	)

	return &OrderResponse{
		Key:        s.gateway.KeyID(),
		Amount:     order.AmountPaise,
		OrderID:    order.OrderID,
		PurchaseID: purchase.ID,
	}, nil
}

// Verify checks the gateway signature and applies the order. Repeated calls
// for a completed order succeed without crediting again.
func (s *service) Verify(ctx context.Context, buyer Buyer, req VerifyRequest) (*VerifyResponse, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, fmt.Errorf("missing payment parameters: %w", api.ErrValidation)
	}

	existing, err := s.repo.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(buyer.ID) {
		return nil, ErrPurchaseNotFound
	}

	if !payment.VerifySignature(s.secret, req.OrderID, req.PaymentID, req.Signature) {
		metrics.RecordVerification("bad_signature")
		logger.Warn("payment signature mismatch", "order_id", req.OrderID, "user_id", buyer.ID)
		if err := s.repo.MarkSignatureFailed(ctx, req.OrderID); err != nil {
			return nil, err
		}
		return nil, ErrVerificationFailed
	}

	if existing.Status == StatusCompleted {
		metrics.RecordVerification("duplicate")
		return &VerifyResponse{Verified: true, Message: "Already processed", Purchase: existing}, nil
	}

	f := Fulfillment{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		UserID:    buyer.ID,
		Now:       s.now(),
	}
	if existing.Type == TypePlan && existing.PlanID != nil {
		p, err := s.plans.Get(*existing.PlanID)
		if err != nil {
			return nil, err
		}
		f.Plan = &p
	}

	purchase, already, err := s.repo.Fulfill(ctx, f)
	if err != nil {
		return nil, err
	}
	if already {
		metrics.RecordVerification("duplicate")
		return &VerifyResponse{Verified: true, Message: "Already processed", Purchase: purchase}, nil
	}

	metrics.RecordVerification("ok")
	metrics.RecordPurchase(MethodGateway, StatusCompleted)
	logger.Info("gateway payment applied",
		"user_id", buyer.ID,
		"order_id", req.OrderID,
		"type", purchase.Type,
		"amount_paise", purchase.AmountPaise,
	)

	return &VerifyResponse{Verified: true, Message: "Payment verified", Purchase: purchase}, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Purchase, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListInstances(ctx context.Context, userID int) ([]plan.Instance, error) {
	return s.repo.ListInstances(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Purchase, error) {
	return s.repo.ListAll(ctx, AdminListLimit)
}
