package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"degen_api/internal/custom_err"
	"degen_api/internal/models"
	"degen_api/internal/repository"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// Solana-адрес — base58 от 32-байтного ключа, длиннее 44 символов не бывает.
const maxAddressLen = 44

// AddressMode управляет строгостью проверки адреса.
type AddressMode string

const (
	AddressModeStrict  AddressMode = "strict"
	AddressModeLenient AddressMode = "lenient"
)

func (m AddressMode) IsValid() bool {
	switch m {
	case AddressModeStrict, AddressModeLenient:
		return true
	}
	return false
}

// WalletServicer описывает, что должен уметь сервис кошелька.
type WalletServicer interface {
	Create(ctx context.Context, req models.CreateWalletRequest) (*models.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error)
	List(ctx context.Context) ([]models.Wallet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ WalletServicer = (*WalletService)(nil)

type WalletService struct {
	repo        repository.Wallets
	addressMode AddressMode
}

func NewWalletService(repo repository.Wallets, addressMode AddressMode) *WalletService {
	return &WalletService{
		repo:        repo,
		addressMode: addressMode,
	}
}

func (s *WalletService) Create(ctx context.Context, req models.CreateWalletRequest) (*models.Wallet, error) {
	const op = "service.WalletService.Create"

	address := strings.TrimSpace(req.Address)
	if err := s.validateAddress(address); err != nil {
		return nil, err
	}

	wallet, err := s.repo.Create(ctx, address, req.Name)
	if err != nil {
		if errors.Is(err, custom_err.ErrConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wallet, nil
}

func (s *WalletService) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	const op = "service.WalletService.GetByID"
	wallet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_err.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wallet, nil
}

func (s *WalletService) List(ctx context.Context) ([]models.Wallet, error) {
	const op = "service.WalletService.List"
	wallets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wallets, nil
}

func (s *WalletService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "service.WalletService.Delete"
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_err.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *WalletService) validateAddress(address string) error {
	if address == "" {
		return custom_err.NewValidationError("address", "address must not be empty")
	}
	if s.addressMode == AddressModeLenient {
		return nil
	}
	if len(address) > maxAddressLen {
		return custom_err.NewValidationError("address", "address is too long")
	}
	if _, err := base58.Decode(address); err != nil {
		return custom_err.NewValidationError("address", "address is not valid base58")
	}
	return nil
}
