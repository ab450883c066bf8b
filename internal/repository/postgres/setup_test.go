package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"degen_api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Схема должна быть накатана миграциями заранее.
func setupRepoTest(t *testing.T) (*pgxpool.Pool, func()) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		"127.0.0.1", "5432", "postgres", "postgres", "degen_test")

	if envDsn := os.Getenv("TEST_DATABASE_URL"); envDsn != "" {
		dsn = envDsn
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err, "Failed to connect to database")

	_, err = pool.Exec(context.Background(), "TRUNCATE TABLE wallets, transactions RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup
}

func createTestWallet(t *testing.T, repo *WalletRepository, address string) *models.Wallet {
	t.Helper()
	wallet, err := repo.Create(context.Background(), address, nil)
	require.NoError(t, err)
	return wallet
}
