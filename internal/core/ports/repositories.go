package ports

import (
	"context"
	"time"

	"wallet-ledger-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	// GetByIDForUpdate locks the wallet row with FOR UPDATE NOWAIT. Returns
	// apperror.ErrWalletBusy when the lock is held by another transaction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
	SetLocked(ctx context.Context, walletID uuid.UUID, locked bool) error
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// LedgerRepository defines persistence operations for ledger entries.
// The store is append-only: there is no update or delete.
type LedgerRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error)
	// GetChainTail reads the wallet's highest-sequence entry inside the
	// transaction that holds the wallet lock. Returns nil, nil for an empty chain.
	GetChainTail(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (*domain.LedgerEntry, error)
	// GetLastConfirmed reads the most recent CONFIRMED entry (non-locking).
	GetLastConfirmed(ctx context.Context, walletID uuid.UUID) (*domain.LedgerEntry, error)
	// ListChain returns the wallet's full chain in ascending sequence order.
	ListChain(ctx context.Context, walletID uuid.UUID) ([]domain.LedgerEntry, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error)
	ListByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error)
	ListByDateRange(ctx context.Context, walletID uuid.UUID, start, end time.Time) ([]domain.LedgerEntry, error)
	ListByEscrowID(ctx context.Context, escrowID uuid.UUID) ([]domain.LedgerEntry, error)
	GetLastEntryBefore(ctx context.Context, walletID uuid.UUID, at time.Time) (*domain.LedgerEntry, error)
	ExistsByTransactionRef(ctx context.Context, transactionRef string) (bool, error)
	SumAmountByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType) (decimal.Decimal, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
