package postgres

import (
	"context"
	"errors"
	"fmt"

	"degen_api/internal/custom_err"
	"degen_api/internal/models"
	"degen_api/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

var _ repository.Wallets = (*WalletRepository)(nil)

type WalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

func (r *WalletRepository) Create(ctx context.Context, address string, name *string) (*models.Wallet, error) {
	const op = "repository.Wallets.Create"
	var wallet models.Wallet
	err := r.db.QueryRow(ctx, repository.CreateWalletQuery, address, name).Scan(
		&wallet.ID, &wallet.Address, &wallet.Name, &wallet.CreatedAt, &wallet.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, custom_err.ErrConflict
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &wallet, nil
}

func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	const op = "repository.Wallets.GetByID"
	var wallet models.Wallet
	err := r.db.QueryRow(ctx, repository.GetWalletByIDQuery, id).Scan(
		&wallet.ID, &wallet.Address, &wallet.Name, &wallet.CreatedAt, &wallet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &wallet, nil
}

func (r *WalletRepository) List(ctx context.Context) ([]models.Wallet, error) {
	const op = "repository.Wallets.List"
	rows, err := r.db.Query(ctx, repository.ListWalletsQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	wallets := make([]models.Wallet, 0)
	for rows.Next() {
		var wallet models.Wallet
		if err := rows.Scan(
			&wallet.ID, &wallet.Address, &wallet.Name, &wallet.CreatedAt, &wallet.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		wallets = append(wallets, wallet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return wallets, nil
}

func (r *WalletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.Wallets.Delete"
	cmdTag, err := r.db.Exec(ctx, repository.DeleteWalletQuery, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return custom_err.ErrNotFound
	}
	return nil
}
