package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// migrations are idempotent and run at startup, in order.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS wallets (
		id          UUID PRIMARY KEY,
		owner_id    UUID NOT NULL,
		currency    VARCHAR(3) NOT NULL DEFAULT 'USD',
		balance     NUMERIC(20,2) NOT NULL DEFAULT 0,
		is_locked   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_wallets_owner_currency UNIQUE (owner_id, currency)
	)`,

	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id              UUID PRIMARY KEY,
		wallet_id       UUID NOT NULL REFERENCES wallets(id),
		sequence_number BIGINT NOT NULL,
		entry_number    VARCHAR(32) NOT NULL,
		entry_type      VARCHAR(32) NOT NULL,
		status          VARCHAR(16) NOT NULL DEFAULT 'CONFIRMED',
		from_user_id    UUID,
		to_user_id      UUID,
		amount          NUMERIC(20,2) NOT NULL,
		currency        VARCHAR(3) NOT NULL DEFAULT 'USD',
		order_id        UUID,
		escrow_id       UUID,
		swap_id         UUID,
		auction_id      UUID,
		transaction_ref VARCHAR(128),
		description     TEXT NOT NULL DEFAULT '',
		metadata        JSONB,
		balance_before  NUMERIC(20,2) NOT NULL,
		balance_after   NUMERIC(20,2) NOT NULL,
		previous_hash   VARCHAR(64) NOT NULL,
		entry_hash      VARCHAR(64) NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_ledger_wallet_sequence UNIQUE (wallet_id, sequence_number)
	)`,

	// Duplicate external references are rejected globally.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_ledger_transaction_ref
		ON ledger_entries (transaction_ref) WHERE transaction_ref IS NOT NULL`,

	// One settlement per escrow: a second RELEASE or REFUND hits this index
	// even if two requests race past the derived-state check.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_ledger_escrow_settlement
		ON ledger_entries (escrow_id)
		WHERE entry_type IN ('ESCROW_RELEASE', 'ESCROW_REFUND')`,

	// One hold per escrow, same reasoning: the derived-state check runs
	// before the write transaction, so concurrent double HOLDs land here.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_ledger_escrow_hold
		ON ledger_entries (escrow_id)
		WHERE entry_type = 'ESCROW_HOLD'`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_wallet_created
		ON ledger_entries (wallet_id, created_at)`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_escrow
		ON ledger_entries (escrow_id) WHERE escrow_id IS NOT NULL`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_order
		ON ledger_entries (order_id) WHERE order_id IS NOT NULL`,

	`CREATE INDEX IF NOT EXISTS idx_ledger_wallet_type
		ON ledger_entries (wallet_id, entry_type)`,
}

// Migrate applies the schema. Every statement is safe to re-run, so startup
// on an already-migrated database is a no-op.
func Migrate(ctx context.Context, pool Pool, log zerolog.Logger) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying migration %d: %w", i, err)
		}
	}
	log.Info().Int("statements", len(migrations)).Msg("database schema up to date")
	return nil
}
