package postgres

import (
	"context"
	"testing"

	"degen_api/internal/custom_err"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	pool, cleanup := setupRepoTest(t)
	defer cleanup()

	repo := NewWalletRepository(pool)
	ctx := context.Background()

	name := "Main"
	created, err := repo.Create(ctx, "3nQ1vABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnop", &name)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.Name)
	assert.Equal(t, "Main", *created.Name)
	// свежая запись: created_at и updated_at совпадают
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Address, fetched.Address)
	assert.Equal(t, *created.Name, *fetched.Name)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, custom_err.ErrNotFound)
}

func TestWalletRepository_Create_DuplicateAddress(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	pool, cleanup := setupRepoTest(t)
	defer cleanup()

	repo := NewWalletRepository(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, "duplicate-address", nil)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "duplicate-address", nil)
	assert.ErrorIs(t, err, custom_err.ErrConflict)
}

func TestWalletRepository_List_Ordering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	pool, cleanup := setupRepoTest(t)
	defer cleanup()

	repo := NewWalletRepository(pool)
	ctx := context.Background()

	first := createTestWallet(t, repo, "wallet-one")
	second := createTestWallet(t, repo, "wallet-two")

	wallets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, wallets, 2)

	// новые кошельки идут первыми
	assert.Equal(t, second.ID, wallets[0].ID)
	assert.Equal(t, first.ID, wallets[1].ID)
}

func TestWalletRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	pool, cleanup := setupRepoTest(t)
	defer cleanup()

	repo := NewWalletRepository(pool)
	ctx := context.Background()

	wallet := createTestWallet(t, repo, "to-delete")

	require.NoError(t, repo.Delete(ctx, wallet.ID))

	_, err := repo.GetByID(ctx, wallet.ID)
	assert.ErrorIs(t, err, custom_err.ErrNotFound)

	err = repo.Delete(ctx, wallet.ID)
	assert.ErrorIs(t, err, custom_err.ErrNotFound)
}

func TestWalletRepository_UpdatedAtTrigger(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	pool, cleanup := setupRepoTest(t)
	defer cleanup()

	repo := NewWalletRepository(pool)
	ctx := context.Background()

	wallet := createTestWallet(t, repo, "touched")

	_, err := pool.Exec(ctx, "UPDATE wallets SET name = 'renamed' WHERE id = $1", wallet.ID)
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}
