package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Денежные поля — decimal.Decimal: NUMERIC в базе, строка в JSON,
// двоичный float не появляется нигде по пути.
type Transaction struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	WalletID        uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	TokenAddress    string          `json:"token_address" db:"token_address"`
	TokenSymbol     string          `json:"token_symbol" db:"token_symbol"`
	Name            *string         `json:"name" db:"name"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	BuyPriceUSD     decimal.Decimal `json:"buy_price_usd" db:"buy_price_usd"`
	BuyPriceSOL     decimal.Decimal `json:"buy_price_sol" db:"buy_price_sol"`
	TransactionHash string          `json:"transaction_hash" db:"transaction_hash"`
	BlockNumber     int64           `json:"block_number" db:"block_number"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// Указатели отличают отсутствующее поле от нулевого значения.
type CreateTransactionRequest struct {
	TokenAddress    string           `json:"token_address"`
	TokenSymbol     string           `json:"token_symbol"`
	Name            *string          `json:"name"`
	Amount          *decimal.Decimal `json:"amount"`
	BuyPriceUSD     *decimal.Decimal `json:"buy_price_usd"`
	BuyPriceSOL     *decimal.Decimal `json:"buy_price_sol"`
	TransactionHash string           `json:"transaction_hash"`
	BlockNumber     *int64           `json:"block_number"`
}

// CreateTransaction — проверенные сервисом значения для слоя репозитория.
type CreateTransaction struct {
	WalletID        uuid.UUID
	TokenAddress    string
	TokenSymbol     string
	Name            *string
	Amount          decimal.Decimal
	BuyPriceUSD     decimal.Decimal
	BuyPriceSOL     decimal.Decimal
	TransactionHash string
	BlockNumber     int64
}
