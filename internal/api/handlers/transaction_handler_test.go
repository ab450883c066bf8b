package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"degen_api/internal/custom_err"
	"degen_api/internal/models"
	"degen_api/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ service.TransactionServicer = (*mockTransactionService)(nil)

type mockTransactionService struct {
	CreateFunc       func(ctx context.Context, walletID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByWalletFunc func(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error)
}

func (m *mockTransactionService) Create(ctx context.Context, walletID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, walletID, req)
	}
	return nil, nil
}

func (m *mockTransactionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTransactionService) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error) {
	if m.ListByWalletFunc != nil {
		return m.ListByWalletFunc(ctx, walletID)
	}
	return nil, nil
}

const validTransactionBody = `{
	"token_address": "So11111111111111111111111111111111111111112",
	"token_symbol": "SOL",
	"name": "Wrapped SOL",
	"amount": "1.5",
	"buy_price_usd": "142.31",
	"buy_price_sol": "1",
	"transaction_hash": "5h7s",
	"block_number": 250000000
}`

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	mockService := &mockTransactionService{}
	handler := NewTransactionHandler(mockService)

	walletID := uuid.New()
	transactionID := uuid.New()
	createdAt := time.Date(2025, 7, 19, 17, 0, 0, 0, time.UTC)
	name := "Wrapped SOL"
	createdTx := &models.Transaction{
		ID:              transactionID,
		WalletID:        walletID,
		TokenAddress:    "So11111111111111111111111111111111111111112",
		TokenSymbol:     "SOL",
		Name:            &name,
		Amount:          decimal.RequireFromString("1.5"),
		BuyPriceUSD:     decimal.RequireFromString("142.31"),
		BuyPriceSOL:     decimal.RequireFromString("1"),
		TransactionHash: "5h7s",
		BlockNumber:     250000000,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}

	testCases := []struct {
		name            string
		walletIDParam   string
		inputBody       string
		mockTransaction *models.Transaction
		mockError       error
		expectedStatus  int
		expectedBody    string
	}{
		{
			name:            "Success",
			walletIDParam:   walletID.String(),
			inputBody:       validTransactionBody,
			mockTransaction: createdTx,
			mockError:       nil,
			expectedStatus:  http.StatusCreated,
			expectedBody: fmt.Sprintf(
				`{"id":"%s","wallet_id":"%s","token_address":"So11111111111111111111111111111111111111112","token_symbol":"SOL","name":"Wrapped SOL","amount":"1.5","buy_price_usd":"142.31","buy_price_sol":"1","transaction_hash":"5h7s","block_number":250000000,"created_at":"2025-07-19T17:00:00Z","updated_at":"2025-07-19T17:00:00Z"}`,
				transactionID.String(), walletID.String()),
		},
		{
			name:            "Error - Wallet Not Found",
			walletIDParam:   walletID.String(),
			inputBody:       validTransactionBody,
			mockTransaction: nil,
			mockError:       custom_err.ErrNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedBody:    `{"error":"Wallet not found","code":"not_found"}`,
		},
		{
			name:            "Error - Duplicate Hash",
			walletIDParam:   walletID.String(),
			inputBody:       validTransactionBody,
			mockTransaction: nil,
			mockError:       custom_err.ErrConflict,
			expectedStatus:  http.StatusConflict,
			expectedBody:    `{"error":"Transaction with this hash already exists","code":"conflict"}`,
		},
		{
			name:            "Error - Negative Amount",
			walletIDParam:   walletID.String(),
			inputBody:       validTransactionBody,
			mockTransaction: nil,
			mockError:       custom_err.NewValidationError("amount", "amount must not be negative"),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedBody:    `{"error":"amount must not be negative","code":"unprocessable_entity"}`,
		},
		{
			name:            "Error - Invalid UUID",
			walletIDParam:   "not-a-valid-uuid",
			inputBody:       validTransactionBody,
			mockTransaction: nil,
			mockError:       nil, // Сервис не будет вызван
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    `{"error":"Invalid wallet ID format","code":"invalid_request"}`,
		},
		{
			name:            "Error - Invalid JSON",
			walletIDParam:   walletID.String(),
			inputBody:       `{`,
			mockTransaction: nil,
			mockError:       nil,
			expectedStatus:  http.StatusBadRequest,
			expectedBody:    `{"error":"Invalid JSON body","code":"invalid_json"}`,
		},
		{
			name:            "Error - Internal Server Error",
			walletIDParam:   walletID.String(),
			inputBody:       validTransactionBody,
			mockTransaction: nil,
			mockError:       errors.New("some unexpected database error"),
			expectedStatus:  http.StatusInternalServerError,
			expectedBody:    `{"error":"An internal error occurred","code":"internal_error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService.CreateFunc = func(ctx context.Context, walletID uuid.UUID, req models.CreateTransactionRequest) (*models.Transaction, error) {
				return tc.mockTransaction, tc.mockError
			}

			url := fmt.Sprintf("/api/v1/wallets/%s/transactions", tc.walletIDParam)
			req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(tc.inputBody))
			require.NoError(t, err)
			req = withWalletIDParam(req, tc.walletIDParam)

			rr := httptest.NewRecorder()
			handler.CreateTransaction(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestTransactionHandler_GetTransactionByID(t *testing.T) {
	mockService := &mockTransactionService{}
	handler := NewTransactionHandler(mockService)

	transactionID := uuid.New()

	testCases := []struct {
		name               string
		transactionIDParam string
		mockError          error
		expectedStatus     int
		expectedBody       string
	}{
		{
			name:               "Error - Not Found",
			transactionIDParam: transactionID.String(),
			mockError:          custom_err.ErrNotFound,
			expectedStatus:     http.StatusNotFound,
			expectedBody:       `{"error":"Transaction not found","code":"not_found"}`,
		},
		{
			name:               "Error - Invalid UUID",
			transactionIDParam: "xyz",
			mockError:          nil,
			expectedStatus:     http.StatusBadRequest,
			expectedBody:       `{"error":"Invalid transaction ID format","code":"invalid_request"}`,
		},
		{
			name:               "Error - Internal Server Error",
			transactionIDParam: transactionID.String(),
			mockError:          errors.New("unexpected db error"),
			expectedStatus:     http.StatusInternalServerError,
			expectedBody:       `{"error":"Failed to retrieve transaction","code":"internal_error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
				return nil, tc.mockError
			}

			url := fmt.Sprintf("/api/v1/transactions/%s", tc.transactionIDParam)
			req := httptest.NewRequest(http.MethodGet, url, nil)

			chiCtx := chi.NewRouteContext()
			chiCtx.URLParams.Add("transactionID", tc.transactionIDParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))

			rr := httptest.NewRecorder()
			handler.GetTransactionByID(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestTransactionHandler_ListWalletTransactions(t *testing.T) {
	mockService := &mockTransactionService{}
	handler := NewTransactionHandler(mockService)

	walletID := uuid.New()

	t.Run("Success - Empty", func(t *testing.T) {
		mockService.ListByWalletFunc = func(ctx context.Context, id uuid.UUID) ([]models.Transaction, error) {
			return []models.Transaction{}, nil
		}

		url := fmt.Sprintf("/api/v1/wallets/%s/transactions", walletID.String())
		req := httptest.NewRequest(http.MethodGet, url, nil)
		req = withWalletIDParam(req, walletID.String())

		rr := httptest.NewRecorder()
		handler.ListWalletTransactions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Error - Wallet Not Found", func(t *testing.T) {
		mockService.ListByWalletFunc = func(ctx context.Context, id uuid.UUID) ([]models.Transaction, error) {
			return nil, custom_err.ErrNotFound
		}

		url := fmt.Sprintf("/api/v1/wallets/%s/transactions", walletID.String())
		req := httptest.NewRequest(http.MethodGet, url, nil)
		req = withWalletIDParam(req, walletID.String())

		rr := httptest.NewRecorder()
		handler.ListWalletTransactions(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Wallet not found","code":"not_found"}`, rr.Body.String())
	})
}
