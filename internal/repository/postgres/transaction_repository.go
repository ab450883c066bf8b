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
	"github.com/shopspring/decimal"
)

const foreignKeyViolationCode = "23503"

var _ repository.Transactions = (*TransactionRepository)(nil)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, in models.CreateTransaction) (*models.Transaction, error) {
	const op = "repository.Transactions.Create"
	row := r.db.QueryRow(ctx, repository.CreateTransactionQuery,
		in.WalletID, in.TokenAddress, in.TokenSymbol, in.Name,
		in.Amount.String(), in.BuyPriceUSD.String(), in.BuyPriceSOL.String(),
		in.TransactionHash, in.BlockNumber,
	)
	tx, err := scanTransaction(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return nil, custom_err.ErrConflict
			case foreignKeyViolationCode:
				// кошелька с таким id нет
				return nil, custom_err.ErrNotFound
			}
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tx, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	const op = "repository.Transactions.GetByID"
	tx, err := scanTransaction(r.db.QueryRow(ctx, repository.GetTransactionByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_err.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tx, nil
}

func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error) {
	const op = "repository.Transactions.ListByWallet"
	rows, err := r.db.Query(ctx, repository.ListTransactionsByWalletQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	txs := make([]models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return txs, nil
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var (
		tx                        models.Transaction
		amountStr, usdStr, solStr string
	)
	err := row.Scan(
		&tx.ID, &tx.WalletID, &tx.TokenAddress, &tx.TokenSymbol, &tx.Name,
		&amountStr, &usdStr, &solStr,
		&tx.TransactionHash, &tx.BlockNumber, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tx.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("разбор amount: %w", err)
	}
	if tx.BuyPriceUSD, err = decimal.NewFromString(usdStr); err != nil {
		return nil, fmt.Errorf("разбор buy_price_usd: %w", err)
	}
	if tx.BuyPriceSOL, err = decimal.NewFromString(solStr); err != nil {
		return nil, fmt.Errorf("разбор buy_price_sol: %w", err)
	}
	return &tx, nil
}
