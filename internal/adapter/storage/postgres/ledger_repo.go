package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, wallet_id, sequence_number, entry_number, entry_type, status,
	from_user_id, to_user_id, amount, currency, order_id, escrow_id, swap_id, auction_id,
	transaction_ref, description, metadata, balance_before, balance_after,
	previous_hash, entry_hash, created_at`

// LedgerRepo implements ports.LedgerRepository. The table is append-only;
// this repo deliberately has no update or delete methods.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts a ledger entry within a database transaction. Unique
// violations are translated to domain errors by constraint name, so the
// indexes act as the last line of defense under concurrency.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.WalletID, e.SequenceNumber, e.EntryNumber, e.EntryType, e.Status,
		e.FromUserID, e.ToUserID, e.Amount, e.Currency, e.OrderID, e.EscrowID, e.SwapID, e.AuctionID,
		e.TransactionRef, e.Description, e.Metadata, e.BalanceBefore, e.BalanceAfter,
		e.PreviousHash, e.EntryHash, e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case "uq_ledger_transaction_ref":
				return apperror.ErrDuplicateTransactionRef()
			case "uq_ledger_escrow_settlement":
				return apperror.ErrEscrowAlreadySettled()
			case "uq_ledger_escrow_hold":
				return apperror.Validation("escrow already held")
			case "uq_ledger_wallet_sequence":
				// Sequence collision means two writers raced past the wallet
				// lock; the caller should retry.
				return apperror.ErrWalletBusy()
			}
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID fetches a ledger entry by UUID.
func (r *LedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE id = $1`

	return scanLedgerEntry(r.pool.QueryRow(ctx, query, id))
}

// GetChainTail fetches the wallet's highest-sequence entry inside the
// transaction that holds the wallet lock. Returns nil, nil for an empty chain.
func (r *LedgerRepo) GetChainTail(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 ORDER BY sequence_number DESC LIMIT 1`

	return scanLedgerEntry(tx.QueryRow(ctx, query, walletID))
}

// GetLastConfirmed fetches the most recent CONFIRMED entry (non-locking).
func (r *LedgerRepo) GetLastConfirmed(ctx context.Context, walletID uuid.UUID) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 AND status = 'CONFIRMED' ORDER BY sequence_number DESC LIMIT 1`

	return scanLedgerEntry(r.pool.QueryRow(ctx, query, walletID))
}

// ListChain returns the wallet's full chain in ascending sequence order,
// the order chain verification walks it.
func (r *LedgerRepo) ListChain(ctx context.Context, walletID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 ORDER BY sequence_number ASC`

	return r.queryEntries(ctx, query, walletID)
}

// ListByWallet fetches a page of entries, newest first.
func (r *LedgerRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 ORDER BY sequence_number DESC LIMIT $2 OFFSET $3`

	return r.queryEntries(ctx, query, walletID, limit, offset)
}

// ListByType fetches entries of one type, newest first.
func (r *LedgerRepo) ListByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 AND entry_type = $2 ORDER BY sequence_number DESC LIMIT $3`

	return r.queryEntries(ctx, query, walletID, entryType, limit)
}

// ListByDateRange fetches entries created within [start, end], oldest first.
func (r *LedgerRepo) ListByDateRange(ctx context.Context, walletID uuid.UUID, start, end time.Time) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 AND created_at >= $2 AND created_at <= $3 ORDER BY sequence_number ASC`

	return r.queryEntries(ctx, query, walletID, start, end)
}

// ListByEscrowID fetches every entry touching one escrow across all wallets,
// oldest first. This is both the escrow audit trail and the input to
// escrow state derivation.
func (r *LedgerRepo) ListByEscrowID(ctx context.Context, escrowID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE escrow_id = $1 ORDER BY created_at ASC, sequence_number ASC`

	return r.queryEntries(ctx, query, escrowID)
}

// GetLastEntryBefore fetches the newest entry created at or before the given
// time. Its balance_after is the wallet's balance at that point.
func (r *LedgerRepo) GetLastEntryBefore(ctx context.Context, walletID uuid.UUID, at time.Time) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries
		WHERE wallet_id = $1 AND created_at <= $2 ORDER BY sequence_number DESC LIMIT 1`

	return scanLedgerEntry(r.pool.QueryRow(ctx, query, walletID, at))
}

// ExistsByTransactionRef checks whether an external reference was already recorded.
func (r *LedgerRepo) ExistsByTransactionRef(ctx context.Context, transactionRef string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM ledger_entries WHERE transaction_ref = $1)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, transactionRef).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transaction ref exists: %w", err)
	}
	return exists, nil
}

// SumAmountByType totals confirmed entry amounts of one type for a wallet.
func (r *LedgerRepo) SumAmountByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries
		WHERE wallet_id = $1 AND entry_type = $2 AND status = 'CONFIRMED'`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, walletID, entryType).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum amount by type: %w", err)
	}
	return total, nil
}

func (r *LedgerRepo) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e := domain.LedgerEntry{}
		if err := scanLedgerEntryFields(rows, &e); err != nil {
			return nil, fmt.Errorf("scan ledger entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entry rows: %w", err)
	}
	return entries, nil
}

// scanLedgerEntry is a helper to scan a single row into a LedgerEntry.
func scanLedgerEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	e := &domain.LedgerEntry{}
	if err := scanLedgerEntryFields(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}
	return e, nil
}

func scanLedgerEntryFields(row pgx.Row, e *domain.LedgerEntry) error {
	return row.Scan(
		&e.ID, &e.WalletID, &e.SequenceNumber, &e.EntryNumber, &e.EntryType, &e.Status,
		&e.FromUserID, &e.ToUserID, &e.Amount, &e.Currency, &e.OrderID, &e.EscrowID, &e.SwapID, &e.AuctionID,
		&e.TransactionRef, &e.Description, &e.Metadata, &e.BalanceBefore, &e.BalanceAfter,
		&e.PreviousHash, &e.EntryHash, &e.CreatedAt,
	)
}
