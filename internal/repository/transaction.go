package repository

import (
	"context"

	"degen_api/internal/models"

	"github.com/google/uuid"
)

type Transactions interface {
	Create(ctx context.Context, in models.CreateTransaction) (*models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error)
}
