package service

import (
	"context"
	"errors"
	"fmt"

	"degen_api/internal/custom_err"
	"degen_api/internal/models"
	"degen_api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionServicer interface {
	Create(ctx context.Context, walletID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error)
}

var _ TransactionServicer = (*TransactionService)(nil)

type TransactionService struct {
	repo    repository.Transactions
	wallets repository.Wallets
}

func NewTransactionService(repo repository.Transactions, wallets repository.Wallets) *TransactionService {
	return &TransactionService{
		repo:    repo,
		wallets: wallets,
	}
}

func (s *TransactionService) Create(ctx context.Context, walletID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error) {
	const op = "service.TransactionService.Create"

	in, err := validateCreateTransaction(walletID, req)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Create(ctx, *in)
	if err != nil {
		if errors.Is(err, custom_err.ErrConflict) || errors.Is(err, custom_err.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tx, nil
}

func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "service.TransactionService.GetByID"
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_err.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tx, nil
}

// ListByWallet сначала проверяет, что кошелёк существует:
// отсутствующий кошелёк — это 404, а не пустой список.
func (s *TransactionService) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error) {
	const op = "service.TransactionService.ListByWallet"

	if _, err := s.wallets.GetByID(ctx, walletID); err != nil {
		if errors.Is(err, custom_err.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	txs, err := s.repo.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return txs, nil
}

func validateCreateTransaction(walletID uuid.UUID, req models.CreateTransactionRequest) (*models.CreateTransaction, error) {
	if req.TokenAddress == "" {
		return nil, custom_err.NewValidationError("token_address", "token_address must not be empty")
	}
	if req.TokenSymbol == "" {
		return nil, custom_err.NewValidationError("token_symbol", "token_symbol must not be empty")
	}
	if req.TransactionHash == "" {
		return nil, custom_err.NewValidationError("transaction_hash", "transaction_hash must not be empty")
	}

	amount, err := requireNonNegativeDecimal("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	buyPriceUSD, err := requireNonNegativeDecimal("buy_price_usd", req.BuyPriceUSD)
	if err != nil {
		return nil, err
	}
	buyPriceSOL, err := requireNonNegativeDecimal("buy_price_sol", req.BuyPriceSOL)
	if err != nil {
		return nil, err
	}

	if req.BlockNumber == nil {
		return nil, custom_err.NewValidationError("block_number", "block_number is required")
	}
	if *req.BlockNumber < 0 {
		return nil, custom_err.NewValidationError("block_number", "block_number must not be negative")
	}

	return &models.CreateTransaction{
		WalletID:        walletID,
		TokenAddress:    req.TokenAddress,
		TokenSymbol:     req.TokenSymbol,
		Name:            req.Name,
		Amount:          amount,
		BuyPriceUSD:     buyPriceUSD,
		BuyPriceSOL:     buyPriceSOL,
		TransactionHash: req.TransactionHash,
		BlockNumber:     *req.BlockNumber,
	}, nil
}

// Колонки в базе хранят 18 знаков после запятой; всё, что мельче,
// Postgres молча округлил бы, поэтому отсекаем до записи.
const maxDecimalScale = 18

func requireNonNegativeDecimal(field string, value *decimal.Decimal) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Decimal{}, custom_err.NewValidationError(field, field+" is required")
	}
	if value.IsNegative() {
		return decimal.Decimal{}, custom_err.NewValidationError(field, field+" must not be negative")
	}
	if value.Exponent() < -maxDecimalScale {
		return decimal.Decimal{}, custom_err.NewValidationError(field, field+" must have at most 18 decimal places")
	}
	return *value, nil
}
