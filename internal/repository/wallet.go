package repository

import (
	"context"

	"degen_api/internal/models"

	"github.com/google/uuid"
)

type Wallets interface {
	Create(ctx context.Context, address string, name *string) (*models.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error)
	List(ctx context.Context) ([]models.Wallet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
