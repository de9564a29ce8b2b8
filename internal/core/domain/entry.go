package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType represents the kind of financial event an entry records.
type EntryType string

const (
	EntryTypePayment          EntryType = "PAYMENT"
	EntryTypeRefund           EntryType = "REFUND"
	EntryTypeEscrowHold       EntryType = "ESCROW_HOLD"
	EntryTypeEscrowRelease    EntryType = "ESCROW_RELEASE"
	EntryTypeEscrowRefund     EntryType = "ESCROW_REFUND"
	EntryTypeWithdrawal       EntryType = "WITHDRAWAL"
	EntryTypeDeposit          EntryType = "DEPOSIT"
	EntryTypeFee              EntryType = "FEE"
	EntryTypeReward           EntryType = "REWARD"
	EntryTypeSwapInitiated    EntryType = "SWAP_INITIATED"
	EntryTypeSwapCompleted    EntryType = "SWAP_COMPLETED"
	EntryTypeSwapCancelled    EntryType = "SWAP_CANCELLED"
	EntryTypeOrderCreated     EntryType = "ORDER_CREATED"
	EntryTypeOrderCompleted   EntryType = "ORDER_COMPLETED"
	EntryTypeOrderCancelled   EntryType = "ORDER_CANCELLED"
	EntryTypeBidPlaced        EntryType = "BID_PLACED"
	EntryTypeAuctionWon       EntryType = "AUCTION_WON"
	EntryTypeSystemAdjustment EntryType = "SYSTEM_ADJUSTMENT"
	EntryTypeMigration        EntryType = "MIGRATION"
	EntryTypeTransferOut      EntryType = "TRANSFER_OUT"
	EntryTypeTransferIn       EntryType = "TRANSFER_IN"
)

// EntryStatus represents the lifecycle state of an entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusConfirmed EntryStatus = "CONFIRMED"
	EntryStatusFailed    EntryStatus = "FAILED"
	EntryStatusReversed  EntryStatus = "REVERSED"
)

// typePrefixes maps entry types to their entry-number prefixes.
// Prefixes are part of the hashed canonical field set, so this table is
// append-only: renaming a prefix would invalidate every historical chain.
var typePrefixes = map[EntryType]string{
	EntryTypePayment:          "PAY",
	EntryTypeRefund:           "REF",
	EntryTypeEscrowHold:       "ESH",
	EntryTypeEscrowRelease:    "ESR",
	EntryTypeEscrowRefund:     "ESF",
	EntryTypeWithdrawal:       "WTH",
	EntryTypeDeposit:          "DEP",
	EntryTypeFee:              "FEE",
	EntryTypeReward:           "RWD",
	EntryTypeSwapInitiated:    "SWI",
	EntryTypeSwapCompleted:    "SWC",
	EntryTypeSwapCancelled:    "SWX",
	EntryTypeOrderCreated:     "ORD",
	EntryTypeOrderCompleted:   "ORC",
	EntryTypeOrderCancelled:   "ORX",
	EntryTypeBidPlaced:        "BID",
	EntryTypeAuctionWon:       "AWN",
	EntryTypeSystemAdjustment: "ADJ",
	EntryTypeMigration:        "MIG",
	EntryTypeTransferOut:      "TRO",
	EntryTypeTransferIn:       "TRI",
}

// FormatEntryNumber derives the human-readable entry identifier for a type and
// sequence, e.g. PAY-0000000001. Unknown types map to the UNK prefix.
func FormatEntryNumber(entryType EntryType, sequence int64) string {
	prefix, ok := typePrefixes[entryType]
	if !ok {
		prefix = "UNK"
	}
	return fmt.Sprintf("%s-%010d", prefix, sequence)
}

// LedgerEntry is one immutable record of a single financial effect. Once
// persisted it is never updated or deleted; corrections are new entries.
type LedgerEntry struct {
	ID             uuid.UUID       `json:"id"`
	WalletID       uuid.UUID       `json:"wallet_id"`
	SequenceNumber int64           `json:"sequence_number"` // per-wallet, 0 = genesis
	EntryNumber    string          `json:"entry_number"`
	EntryType      EntryType       `json:"entry_type"`
	Status         EntryStatus     `json:"status"`
	FromUserID     *uuid.UUID      `json:"from_user_id,omitempty"`
	ToUserID       *uuid.UUID      `json:"to_user_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"` // negative = debit, positive = credit
	Currency       string          `json:"currency"`
	OrderID        *uuid.UUID      `json:"order_id,omitempty"`
	EscrowID       *uuid.UUID      `json:"escrow_id,omitempty"`
	SwapID         *uuid.UUID      `json:"swap_id,omitempty"`
	AuctionID      *uuid.UUID      `json:"auction_id,omitempty"`
	TransactionRef *string         `json:"transaction_ref,omitempty"`
	Description    string          `json:"description"`
	Metadata       map[string]any  `json:"metadata,omitempty"` // opaque, excluded from the hash
	BalanceBefore  decimal.Decimal `json:"balance_before"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	PreviousHash   string          `json:"previous_hash"` // empty string for genesis
	EntryHash      string          `json:"entry_hash"`
	CreatedAt      time.Time       `json:"created_at"`
}

// IsGenesis reports whether this is the first entry of a wallet's chain.
func (e *LedgerEntry) IsGenesis() bool {
	return e.SequenceNumber == 0
}

// IsDebit reports whether the entry removes funds from the wallet.
func (e *LedgerEntry) IsDebit() bool {
	return e.Amount.IsNegative()
}

// AsDebit normalizes an amount to the debit sign convention (negative).
// All debits go through here so the sign rule lives in exactly one place.
func AsDebit(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs().Neg()
}

// AsCredit normalizes an amount to the credit sign convention (positive).
func AsCredit(amount decimal.Decimal) decimal.Decimal {
	return amount.Abs()
}
