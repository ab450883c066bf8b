package repository

// NUMERIC-колонки читаются и пишутся как text: pgx без отдельного кодека
// теряет точность на двоичных типах, строка — нет.
const (
	CreateWalletQuery = `
        INSERT INTO wallets (address, name)
        VALUES ($1, $2)
        RETURNING id, address, name, created_at, updated_at
    `

	GetWalletByIDQuery = `
        SELECT id, address, name, created_at, updated_at
        FROM wallets
        WHERE id = $1
    `

	ListWalletsQuery = `
        SELECT id, address, name, created_at, updated_at
        FROM wallets
        ORDER BY created_at DESC, id
    `

	DeleteWalletQuery = `
        DELETE FROM wallets
        WHERE id = $1
    `

	CreateTransactionQuery = `
        INSERT INTO transactions
            (wallet_id, token_address, token_symbol, name, amount,
             buy_price_usd, buy_price_sol, transaction_hash, block_number)
        VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8, $9)
        RETURNING id, wallet_id, token_address, token_symbol, name,
                  amount::text, buy_price_usd::text, buy_price_sol::text,
                  transaction_hash, block_number, created_at, updated_at
    `

	GetTransactionByIDQuery = `
        SELECT id, wallet_id, token_address, token_symbol, name,
               amount::text, buy_price_usd::text, buy_price_sol::text,
               transaction_hash, block_number, created_at, updated_at
        FROM transactions
        WHERE id = $1
    `

	ListTransactionsByWalletQuery = `
        SELECT id, wallet_id, token_address, token_symbol, name,
               amount::text, buy_price_usd::text, buy_price_sol::text,
               transaction_hash, block_number, created_at, updated_at
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC, id
    `
)
