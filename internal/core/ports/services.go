package ports

import (
	"context"
	"time"

	"wallet-ledger-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxRefCache is the Redis-layer duplicate detection for external transaction
// references (fast path). The unique index on ledger_entries is the backstop.
type TxRefCache interface {
	// Seen reports whether the reference was recorded recently.
	Seen(ctx context.Context, transactionRef string) (bool, error)
	Remember(ctx context.Context, transactionRef string, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// LedgerService is the wallet balance coordinator: the only write path into
// wallets and their hash-chained ledger entries.
type LedgerService interface {
	CreateWallet(ctx context.Context, ownerID uuid.UUID, currency string) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletID uuid.UUID) (*domain.Wallet, error)
	SetWalletLock(ctx context.Context, walletID uuid.UUID, locked bool) error

	// RecordTransaction is the generic core operation; every money movement
	// funnels through it.
	RecordTransaction(ctx context.Context, req TransactionRequest) (*domain.LedgerEntry, error)

	RecordDeposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, transactionRef string, actorID uuid.UUID) (*domain.LedgerEntry, error)
	RecordWithdrawal(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, transactionRef string, actorID uuid.UUID) (*domain.LedgerEntry, error)
	HoldEscrow(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, orderID, escrowID, actorID uuid.UUID) (*domain.LedgerEntry, error)
	ReleaseEscrow(ctx context.Context, recipientWalletID uuid.UUID, amount decimal.Decimal, orderID, escrowID, systemActorID uuid.UUID) (*domain.LedgerEntry, error)
	RefundEscrow(ctx context.Context, buyerWalletID uuid.UUID, amount decimal.Decimal, orderID, escrowID, systemActorID uuid.UUID, reason string) (*domain.LedgerEntry, error)
	TransferBetweenWallets(ctx context.Context, fromWalletID, toWalletID uuid.UUID, amount decimal.Decimal, actorID uuid.UUID) (*TransferResult, error)
	ReverseEntry(ctx context.Context, entryID uuid.UUID, reason string) (*domain.LedgerEntry, error)

	GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error)
	GetWalletHistory(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error)
	GetBalanceAtTime(ctx context.Context, walletID uuid.UUID, at time.Time) (decimal.Decimal, error)
	GetTransactionsByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error)
	GetTransactionsByDateRange(ctx context.Context, walletID uuid.UUID, start, end time.Time) ([]domain.LedgerEntry, error)
	GetEscrowAuditTrail(ctx context.Context, escrowID uuid.UUID) ([]domain.LedgerEntry, error)
	GetTotalByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType) (decimal.Decimal, error)
}

// TransactionRequest holds validated input for the generic record operation.
// Amount is signed: negative = debit, positive = credit.
type TransactionRequest struct {
	WalletID       uuid.UUID
	Amount         decimal.Decimal
	EntryType      domain.EntryType
	FromUserID     *uuid.UUID
	ToUserID       *uuid.UUID
	OrderID        *uuid.UUID
	EscrowID       *uuid.UUID
	SwapID         *uuid.UUID
	AuctionID      *uuid.UUID
	TransactionRef *string
	Description    string
	Metadata       map[string]any
}

// TransferResult holds both legs of a wallet-to-wallet transfer.
type TransferResult struct {
	Debit  *domain.LedgerEntry `json:"debit"`
	Credit *domain.LedgerEntry `json:"credit"`
}

// VerificationService walks chains and reconciles balances. Read-only:
// integrity violations are reported, never auto-corrected.
type VerificationService interface {
	// VerifyChain is pure and safe to run offline against exported entries.
	VerifyChain(entries []domain.LedgerEntry) VerificationResult
	VerifyWalletChain(ctx context.Context, walletID uuid.UUID) (VerificationResult, error)
	ReconcileBalance(ctx context.Context, walletID uuid.UUID) (*ReconciliationResult, error)
}

// InvalidEntry describes one chain defect found during verification.
type InvalidEntry struct {
	EntryID        uuid.UUID `json:"entry_id"`
	EntryNumber    string    `json:"entry_number"`
	SequenceNumber int64     `json:"sequence_number"`
	ExpectedHash   string    `json:"expected_hash"`
	ActualHash     string    `json:"actual_hash"`
	Reason         string    `json:"reason"`
}

// VerificationResult summarizes a chain walk.
type VerificationResult struct {
	IsValid         bool           `json:"is_valid"`
	TotalEntries    int            `json:"total_entries"`
	VerifiedEntries int            `json:"verified_entries"`
	InvalidEntries  []InvalidEntry `json:"invalid_entries"`
	ElapsedTime     time.Duration  `json:"elapsed_time"`
}

// ReconciliationResult compares a wallet's live balance to its ledger history.
type ReconciliationResult struct {
	WalletID        uuid.UUID       `json:"wallet_id"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	LedgerBalance   decimal.Decimal `json:"ledger_balance"`
	IsReconciled    bool            `json:"is_reconciled"`
	LastTransaction *time.Time      `json:"last_transaction,omitempty"`
	Message         string          `json:"message"`
}
