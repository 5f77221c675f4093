package flowerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gardenus/matchledger/internal/domain"
	"github.com/gardenus/matchledger/internal/gateway"
	"github.com/gardenus/matchledger/internal/pg"
	paymentrepo "github.com/gardenus/matchledger/internal/repo/payment-repo"
)

//go:generate mockgen -source=flowerservice.go -destination=mock_flowerservice.go -package=flowerservice

type PaymentRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) error
}

type BalanceRepo interface {
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	AddFlower(ctx context.Context, uid string, delta int64) error
}

// Each verification precondition fails with its own error so the caller
// can tell a retryable failure from a permanent one.
var (
	ErrUnknownProduct   = errors.New("unknown product")
	ErrDuplicatePayment = errors.New("payment already processed")
	ErrNotSettled       = errors.New("payment not settled")
	ErrAmountMismatch   = errors.New("payment amount mismatch")
	ErrUserNotFound     = errors.New("user not found")
)

// Products is the flower catalog, priced in KRW.
var Products = []domain.Product{
	{ID: "flower_6400", FlowerAmount: 6400, PriceKRW: 199000},
	{ID: "flower_3200", FlowerAmount: 3200, PriceKRW: 119000},
	{ID: "flower_1600", FlowerAmount: 1600, PriceKRW: 63900},
	{ID: "flower_800", FlowerAmount: 800, PriceKRW: 34900},
	{ID: "flower_400", FlowerAmount: 400, PriceKRW: 18900},
	{ID: "flower_200", FlowerAmount: 200, PriceKRW: 10000},
	{ID: "flower_100", FlowerAmount: 100, PriceKRW: 6000},
}

func findProduct(productID string) *domain.Product {
	for i := range Products {
		if Products[i].ID == productID {
			return &Products[i]
		}
	}
	return nil
}

type Service struct {
	paymentRepo PaymentRepo
	balanceRepo BalanceRepo
	txManager   pg.TXManager
	gateway     gateway.Client
}

func New(paymentRepo PaymentRepo, balanceRepo BalanceRepo, txManager pg.TXManager, gw gateway.Client) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		balanceRepo: balanceRepo,
		txManager:   txManager,
		gateway:     gw,
	}
}

func (s *Service) GetBalance(ctx context.Context, uid string) (int64, error) {
	user, err := s.balanceRepo.GetByUID(ctx, uid)
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Flower, nil
}

func (s *Service) ListProducts() []domain.Product {
	return Products
}

// VerifyPayment checks a payment against the gateway and, when settled
// for the right amount, records it and credits the purchased flower in
// one transaction. The payment id is the primary key of the record, so
// a replayed id fails as a duplicate instead of crediting twice.
func (s *Service) VerifyPayment(ctx context.Context, uid, paymentID, productID string) (int64, error) {
	product := findProduct(productID)
	if product == nil {
		return 0, ErrUnknownProduct
	}

	existing, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicatePayment
	}

	payment, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		zap.L().Error("payment lookup failed", zap.String("payment_id", paymentID), zap.Error(err))
		return 0, err
	}
	if payment.Status != gateway.StatusPaid {
		zap.L().Info("rejecting unsettled payment",
			zap.String("payment_id", paymentID),
			zap.String("status", payment.Status))
		return 0, ErrNotSettled
	}
	if payment.Amount.Total != product.PriceKRW {
		zap.L().Warn("rejecting payment with wrong amount",
			zap.String("payment_id", paymentID),
			zap.Int64("expected", product.PriceKRW),
			zap.Int64("got", payment.Amount.Total))
		return 0, ErrAmountMismatch
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		record := &domain.Payment{
			ID:            paymentID,
			UID:           uid,
			ProductID:     product.ID,
			FlowerAmount:  product.FlowerAmount,
			AmountKRW:     product.PriceKRW,
			GatewayStatus: payment.Status,
		}
		if err := s.paymentRepo.Create(ctx, record); err != nil {
			if errors.Is(err, paymentrepo.ErrDuplicate) {
				return ErrDuplicatePayment
			}
			return err
		}
		return s.balanceRepo.AddFlower(ctx, uid, product.FlowerAmount)
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("flower granted",
		zap.String("uid", uid),
		zap.String("product", product.ID),
		zap.Int64("amount", product.FlowerAmount))
	return product.FlowerAmount, nil
}
