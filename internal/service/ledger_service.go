package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	txRefTTL            = 24 * time.Hour
	defaultHistoryLimit = 50
)

// LedgerServiceImpl implements ports.LedgerService. It is the only write path
// into wallets and their hash-chained entries: every mutation locks the wallet
// row, reads the chain tail, and appends under one database transaction.
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	txRefCache ports.TxRefCache
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	txRefCache ports.TxRefCache,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		txRefCache: txRefCache,
		transactor: transactor,
		log:        log,
	}
}

// CreateWallet opens a wallet and writes its genesis entry in one commit.
// The genesis entry anchors the chain: sequence 0, zero amount, empty
// previous hash.
func (s *LedgerServiceImpl) CreateWallet(ctx context.Context, ownerID uuid.UUID, currency string) (*domain.Wallet, error) {
	if currency == "" {
		currency = "USD"
	}
	wallet := domain.NewWallet(ownerID, currency)

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, asAppError(err, "create wallet")
	}

	genesis := &domain.LedgerEntry{
		ID:             uuid.New(),
		WalletID:       wallet.ID,
		SequenceNumber: 0,
		EntryNumber:    domain.FormatEntryNumber(domain.EntryTypeMigration, 0),
		EntryType:      domain.EntryTypeMigration,
		Status:         domain.EntryStatusConfirmed,
		Amount:         decimal.Zero,
		Currency:       wallet.Currency,
		Description:    "wallet opened",
		BalanceBefore:  decimal.Zero,
		BalanceAfter:   decimal.Zero,
		PreviousHash:   "",
		CreatedAt:      wallet.CreatedAt,
	}
	genesis.EntryHash = domain.ComputeEntryHash(genesis)

	if err := s.ledgerRepo.Append(ctx, dbTx, genesis); err != nil {
		return nil, asAppError(err, "append genesis entry")
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("owner_id", ownerID.String()).
		Str("currency", wallet.Currency).
		Msg("wallet created with genesis entry")

	return wallet, nil
}

// GetWallet fetches a wallet by ID.
func (s *LedgerServiceImpl) GetWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, asAppError(err, "get wallet")
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return wallet, nil
}

// SetWalletLock freezes or unfreezes a wallet. A locked wallet rejects every
// money movement until unlocked; reads stay available.
func (s *LedgerServiceImpl) SetWalletLock(ctx context.Context, walletID uuid.UUID, locked bool) error {
	if err := s.walletRepo.SetLocked(ctx, walletID, locked); err != nil {
		return asAppError(err, "set wallet lock")
	}
	s.log.Info().
		Str("wallet_id", walletID.String()).
		Bool("locked", locked).
		Msg("wallet lock updated")
	return nil
}

// RecordTransaction appends one signed money movement to a wallet's chain.
// Amount is signed: negative debits, positive credits.
func (s *LedgerServiceImpl) RecordTransaction(ctx context.Context, req ports.TransactionRequest) (*domain.LedgerEntry, error) {
	if req.Amount.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}

	if req.TransactionRef != nil {
		if err := s.checkDuplicateRef(ctx, *req.TransactionRef); err != nil {
			return nil, err
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockWallet(ctx, dbTx, req.WalletID)
	if err != nil {
		return nil, err
	}

	entry, err := s.appendLocked(ctx, dbTx, wallet, req)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.rememberRef(ctx, req.TransactionRef)

	s.log.Info().
		Str("entry_number", entry.EntryNumber).
		Str("wallet_id", wallet.ID.String()).
		Str("entry_type", string(entry.EntryType)).
		Str("amount", entry.Amount.StringFixed(2)).
		Str("balance_after", entry.BalanceAfter.StringFixed(2)).
		Msg("ledger entry recorded")

	return entry, nil
}

// RecordDeposit credits external funds into a wallet.
func (s *LedgerServiceImpl) RecordDeposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, transactionRef string, actorID uuid.UUID) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:       walletID,
		Amount:         domain.AsCredit(amount),
		EntryType:      domain.EntryTypeDeposit,
		ToUserID:       &actorID,
		TransactionRef: &transactionRef,
		Description:    "funds deposited",
	})
}

// RecordWithdrawal debits funds out of a wallet to an external destination.
func (s *LedgerServiceImpl) RecordWithdrawal(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, transactionRef string, actorID uuid.UUID) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:       walletID,
		Amount:         domain.AsDebit(amount),
		EntryType:      domain.EntryTypeWithdrawal,
		FromUserID:     &actorID,
		TransactionRef: &transactionRef,
		Description:    "funds withdrawn",
	})
}

// HoldEscrow debits the buyer's wallet into escrow for an order.
func (s *LedgerServiceImpl) HoldEscrow(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, orderID, escrowID, actorID uuid.UUID) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	state, err := s.escrowState(ctx, escrowID)
	if err != nil {
		return nil, err
	}
	switch state {
	case domain.EscrowStateHeld:
		return nil, apperror.Validation("escrow already held")
	case domain.EscrowStateReleased, domain.EscrowStateRefunded:
		return nil, apperror.ErrEscrowAlreadySettled()
	}

	return s.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:    walletID,
		Amount:      domain.AsDebit(amount),
		EntryType:   domain.EntryTypeEscrowHold,
		FromUserID:  &actorID,
		OrderID:     &orderID,
		EscrowID:    &escrowID,
		Description: "escrow held for order",
	})
}

// ReleaseEscrow credits held escrow funds to the traveler's wallet after
// delivery confirmation. An escrow settles exactly once.
func (s *LedgerServiceImpl) ReleaseEscrow(ctx context.Context, recipientWalletID uuid.UUID, amount decimal.Decimal, orderID, escrowID, systemActorID uuid.UUID) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireEscrowHeld(ctx, escrowID); err != nil {
		return nil, err
	}

	return s.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:    recipientWalletID,
		Amount:      domain.AsCredit(amount),
		EntryType:   domain.EntryTypeEscrowRelease,
		FromUserID:  &systemActorID,
		OrderID:     &orderID,
		EscrowID:    &escrowID,
		Description: "escrow released to traveler",
	})
}

// RefundEscrow returns held escrow funds to the buyer's wallet when an order
// is cancelled or fails.
func (s *LedgerServiceImpl) RefundEscrow(ctx context.Context, buyerWalletID uuid.UUID, amount decimal.Decimal, orderID, escrowID, systemActorID uuid.UUID, reason string) (*domain.LedgerEntry, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.requireEscrowHeld(ctx, escrowID); err != nil {
		return nil, err
	}

	return s.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:    buyerWalletID,
		Amount:      domain.AsCredit(amount),
		EntryType:   domain.EntryTypeEscrowRefund,
		FromUserID:  &systemActorID,
		OrderID:     &orderID,
		EscrowID:    &escrowID,
		Description: "escrow refunded to buyer",
		Metadata:    map[string]any{"refund_reason": reason},
	})
}

// TransferBetweenWallets moves funds between two wallets atomically: both
// legs commit or neither does. Wallets are locked in ascending ID order so
// two opposing transfers cannot deadlock.
func (s *LedgerServiceImpl) TransferBetweenWallets(ctx context.Context, fromWalletID, toWalletID uuid.UUID, amount decimal.Decimal, actorID uuid.UUID) (*ports.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if fromWalletID == toWalletID {
		return nil, apperror.Validation("cannot transfer to the same wallet")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	first, second := fromWalletID, toWalletID
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}

	locked := map[uuid.UUID]*domain.Wallet{}
	for _, id := range []uuid.UUID{first, second} {
		w, err := s.lockWallet(ctx, dbTx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = w
	}
	fromWallet, toWallet := locked[fromWalletID], locked[toWalletID]

	debit, err := s.appendLocked(ctx, dbTx, fromWallet, ports.TransactionRequest{
		WalletID:    fromWalletID,
		Amount:      domain.AsDebit(amount),
		EntryType:   domain.EntryTypeTransferOut,
		FromUserID:  &actorID,
		ToUserID:    &toWallet.OwnerID,
		Description: "transfer to wallet " + toWalletID.String(),
	})
	if err != nil {
		return nil, err
	}

	credit, err := s.appendLocked(ctx, dbTx, toWallet, ports.TransactionRequest{
		WalletID:    toWalletID,
		Amount:      domain.AsCredit(amount),
		EntryType:   domain.EntryTypeTransferIn,
		FromUserID:  &fromWallet.OwnerID,
		ToUserID:    &toWallet.OwnerID,
		Description: "transfer from wallet " + fromWalletID.String(),
	})
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("from_wallet", fromWalletID.String()).
		Str("to_wallet", toWalletID.String()).
		Str("amount", amount.StringFixed(2)).
		Str("debit_entry", debit.EntryNumber).
		Str("credit_entry", credit.EntryNumber).
		Msg("wallet transfer completed")

	return &ports.TransferResult{Debit: debit, Credit: credit}, nil
}

// ReverseEntry appends a compensating adjustment for a confirmed entry.
// The original entry is never modified; the chain only grows.
func (s *LedgerServiceImpl) ReverseEntry(ctx context.Context, entryID uuid.UUID, reason string) (*domain.LedgerEntry, error) {
	original, err := s.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, asAppError(err, "get entry")
	}
	if original == nil {
		return nil, apperror.ErrEntryNotFound()
	}
	if original.IsGenesis() || original.EntryType == domain.EntryTypeMigration ||
		original.Status != domain.EntryStatusConfirmed {
		return nil, apperror.ErrEntryNotReversible()
	}

	return s.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:    original.WalletID,
		Amount:      original.Amount.Neg(),
		EntryType:   domain.EntryTypeSystemAdjustment,
		OrderID:     original.OrderID,
		EscrowID:    original.EscrowID,
		Description: "reversal of " + original.EntryNumber,
		Metadata: map[string]any{
			"reversal_of":           original.ID.String(),
			"original_entry_number": original.EntryNumber,
			"reversal_reason":       reason,
		},
	})
}

// GetEntry fetches a single ledger entry by ID.
func (s *LedgerServiceImpl) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, asAppError(err, "get entry")
	}
	if entry == nil {
		return nil, apperror.ErrEntryNotFound()
	}
	return entry, nil
}

// GetWalletHistory fetches a page of entries, newest first.
func (s *LedgerServiceImpl) GetWalletHistory(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.ledgerRepo.ListByWallet(ctx, walletID, limit, offset)
	if err != nil {
		return nil, asAppError(err, "list wallet history")
	}
	return entries, nil
}

// GetBalanceAtTime reconstructs the wallet balance at a point in time from
// the balance_after of the last entry at or before it.
func (s *LedgerServiceImpl) GetBalanceAtTime(ctx context.Context, walletID uuid.UUID, at time.Time) (decimal.Decimal, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return decimal.Zero, err
	}
	entry, err := s.ledgerRepo.GetLastEntryBefore(ctx, walletID, at)
	if err != nil {
		return decimal.Zero, asAppError(err, "get balance at time")
	}
	if entry == nil {
		return decimal.Zero, nil
	}
	return entry.BalanceAfter, nil
}

// GetTransactionsByType fetches entries of one type, newest first.
func (s *LedgerServiceImpl) GetTransactionsByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.ledgerRepo.ListByType(ctx, walletID, entryType, limit)
	if err != nil {
		return nil, asAppError(err, "list by type")
	}
	return entries, nil
}

// GetTransactionsByDateRange fetches entries created within [start, end].
func (s *LedgerServiceImpl) GetTransactionsByDateRange(ctx context.Context, walletID uuid.UUID, start, end time.Time) ([]domain.LedgerEntry, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListByDateRange(ctx, walletID, start, end)
	if err != nil {
		return nil, asAppError(err, "list by date range")
	}
	return entries, nil
}

// GetEscrowAuditTrail fetches every entry touching an escrow, oldest first.
func (s *LedgerServiceImpl) GetEscrowAuditTrail(ctx context.Context, escrowID uuid.UUID) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListByEscrowID(ctx, escrowID)
	if err != nil {
		return nil, asAppError(err, "list escrow entries")
	}
	if len(entries) == 0 {
		return nil, apperror.ErrEscrowNotFound()
	}
	return entries, nil
}

// GetTotalByType totals confirmed amounts of one entry type for a wallet.
func (s *LedgerServiceImpl) GetTotalByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType) (decimal.Decimal, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return decimal.Zero, err
	}
	total, err := s.ledgerRepo.SumAmountByType(ctx, walletID, entryType)
	if err != nil {
		return decimal.Zero, asAppError(err, "sum by type")
	}
	return total, nil
}

// lockWallet acquires the wallet row lock and rejects frozen wallets.
func (s *LedgerServiceImpl) lockWallet(ctx context.Context, dbTx pgx.Tx, walletID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, asAppError(err, "lock wallet")
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	if wallet.IsLocked {
		return nil, apperror.ErrWalletLocked()
	}
	return wallet, nil
}

// appendLocked builds, hashes, and persists the next chain entry for a wallet
// whose row lock is already held. The sequence number and previous hash come
// from the chain tail read under the same lock, which is what makes the chain
// gap-free under concurrency.
func (s *LedgerServiceImpl) appendLocked(ctx context.Context, dbTx pgx.Tx, wallet *domain.Wallet, req ports.TransactionRequest) (*domain.LedgerEntry, error) {
	balanceAfter := wallet.Balance.Add(req.Amount)
	if balanceAfter.IsNegative() {
		return nil, apperror.ErrInsufficientBalance()
	}

	tail, err := s.ledgerRepo.GetChainTail(ctx, dbTx, wallet.ID)
	if err != nil {
		return nil, asAppError(err, "get chain tail")
	}

	var seq int64
	prevHash := ""
	if tail != nil {
		seq = tail.SequenceNumber + 1
		prevHash = tail.EntryHash
	}

	entry := &domain.LedgerEntry{
		ID:             uuid.New(),
		WalletID:       wallet.ID,
		SequenceNumber: seq,
		EntryNumber:    domain.FormatEntryNumber(req.EntryType, seq),
		EntryType:      req.EntryType,
		Status:         domain.EntryStatusConfirmed,
		FromUserID:     req.FromUserID,
		ToUserID:       req.ToUserID,
		Amount:         req.Amount,
		Currency:       wallet.Currency,
		OrderID:        req.OrderID,
		EscrowID:       req.EscrowID,
		SwapID:         req.SwapID,
		AuctionID:      req.AuctionID,
		TransactionRef: req.TransactionRef,
		Description:    req.Description,
		Metadata:       req.Metadata,
		BalanceBefore:  wallet.Balance,
		BalanceAfter:   balanceAfter,
		PreviousHash:   prevHash,
		CreatedAt:      time.Now().UTC(),
	}
	entry.EntryHash = domain.ComputeEntryHash(entry)

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, balanceAfter); err != nil {
		return nil, asAppError(err, "update balance")
	}
	if err := s.ledgerRepo.Append(ctx, dbTx, entry); err != nil {
		return nil, asAppError(err, "append entry")
	}

	// A second movement on the same wallet within this tx sees the new balance.
	wallet.Balance = balanceAfter

	return entry, nil
}

// checkDuplicateRef rejects already-recorded external references. Redis is
// the fast path; the database unique index is consulted when the cache
// misses and remains the backstop either way.
func (s *LedgerServiceImpl) checkDuplicateRef(ctx context.Context, ref string) error {
	seen, err := s.txRefCache.Seen(ctx, ref)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_ref", ref).Msg("redis duplicate check failed, falling through to DB")
	}
	if seen {
		return apperror.ErrDuplicateTransactionRef()
	}

	exists, err := s.ledgerRepo.ExistsByTransactionRef(ctx, ref)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("db duplicate check: %w", err))
	}
	if exists {
		return apperror.ErrDuplicateTransactionRef()
	}
	return nil
}

// rememberRef caches a committed reference (best-effort).
func (s *LedgerServiceImpl) rememberRef(ctx context.Context, ref *string) {
	if ref == nil {
		return
	}
	if err := s.txRefCache.Remember(ctx, *ref, txRefTTL); err != nil {
		s.log.Warn().Err(err).Str("transaction_ref", *ref).Msg("failed to cache transaction ref")
	}
}

func (s *LedgerServiceImpl) escrowState(ctx context.Context, escrowID uuid.UUID) (domain.EscrowState, error) {
	entries, err := s.ledgerRepo.ListByEscrowID(ctx, escrowID)
	if err != nil {
		return domain.EscrowStateNone, asAppError(err, "list escrow entries")
	}
	return domain.DeriveEscrowState(entries), nil
}

// requireEscrowHeld gates settlement operations: the escrow must exist and
// must not have settled already.
func (s *LedgerServiceImpl) requireEscrowHeld(ctx context.Context, escrowID uuid.UUID) error {
	state, err := s.escrowState(ctx, escrowID)
	if err != nil {
		return err
	}
	switch state {
	case domain.EscrowStateNone:
		return apperror.ErrEscrowNotFound()
	case domain.EscrowStateReleased, domain.EscrowStateRefunded:
		return apperror.ErrEscrowAlreadySettled()
	}
	return nil
}

// asAppError passes domain errors through untouched and wraps everything
// else as an internal error.
func asAppError(err error, op string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}
