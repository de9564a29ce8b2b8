package dto

import (
	"time"

	"wallet-ledger-service/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Monetary amounts travel as strings so clients never round them through
// floating point.

// CreateWalletRequest is the request body for opening a wallet.
type CreateWalletRequest struct {
	OwnerID  string `json:"owner_id" binding:"required,uuid"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

// SetWalletLockRequest is the request body for freezing or unfreezing a wallet.
type SetWalletLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

// DepositRequest is the request body for recording an external deposit.
type DepositRequest struct {
	Amount         string `json:"amount" binding:"required"`
	TransactionRef string `json:"transaction_ref" binding:"required,max=128"`
	ActorID        string `json:"actor_id" binding:"required,uuid"`
}

// WithdrawRequest is the request body for recording an external withdrawal.
type WithdrawRequest struct {
	Amount         string `json:"amount" binding:"required"`
	TransactionRef string `json:"transaction_ref" binding:"required,max=128"`
	ActorID        string `json:"actor_id" binding:"required,uuid"`
}

// EscrowHoldRequest is the request body for holding escrow funds.
type EscrowHoldRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	OrderID  string `json:"order_id" binding:"required,uuid"`
	Amount   string `json:"amount" binding:"required"`
	ActorID  string `json:"actor_id" binding:"required,uuid"`
}

// EscrowReleaseRequest is the request body for releasing held escrow funds.
type EscrowReleaseRequest struct {
	RecipientWalletID string `json:"recipient_wallet_id" binding:"required,uuid"`
	OrderID           string `json:"order_id" binding:"required,uuid"`
	Amount            string `json:"amount" binding:"required"`
	ActorID           string `json:"actor_id" binding:"required,uuid"`
}

// EscrowRefundRequest is the request body for refunding held escrow funds.
type EscrowRefundRequest struct {
	BuyerWalletID string `json:"buyer_wallet_id" binding:"required,uuid"`
	OrderID       string `json:"order_id" binding:"required,uuid"`
	Amount        string `json:"amount" binding:"required"`
	ActorID       string `json:"actor_id" binding:"required,uuid"`
	Reason        string `json:"reason" binding:"required,max=500"`
}

// TransferRequest is the request body for a wallet-to-wallet transfer.
type TransferRequest struct {
	FromWalletID string `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string `json:"to_wallet_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required"`
	ActorID      string `json:"actor_id" binding:"required,uuid"`
}

// ReverseEntryRequest is the request body for reversing a ledger entry.
type ReverseEntryRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// WalletResponse is the response body for wallet queries.
type WalletResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	IsLocked  bool   `json:"is_locked"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// EntryResponse is the response body for ledger entries.
type EntryResponse struct {
	ID             string         `json:"id"`
	WalletID       string         `json:"wallet_id"`
	SequenceNumber int64          `json:"sequence_number"`
	EntryNumber    string         `json:"entry_number"`
	EntryType      string         `json:"entry_type"`
	Status         string         `json:"status"`
	Amount         string         `json:"amount"`
	Currency       string         `json:"currency"`
	OrderID        *string        `json:"order_id,omitempty"`
	EscrowID       *string        `json:"escrow_id,omitempty"`
	TransactionRef *string        `json:"transaction_ref,omitempty"`
	Description    string         `json:"description"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	BalanceBefore  string         `json:"balance_before"`
	BalanceAfter   string         `json:"balance_after"`
	PreviousHash   string         `json:"previous_hash"`
	EntryHash      string         `json:"entry_hash"`
	CreatedAt      string         `json:"created_at"`
}

// TransferResponse holds both legs of a completed transfer.
type TransferResponse struct {
	Debit  EntryResponse `json:"debit"`
	Credit EntryResponse `json:"credit"`
}

// BalanceAtResponse is the response for point-in-time balance queries.
type BalanceAtResponse struct {
	WalletID string `json:"wallet_id"`
	Balance  string `json:"balance"`
	At       string `json:"at"`
}

// TotalByTypeResponse is the response for per-type totals.
type TotalByTypeResponse struct {
	WalletID  string `json:"wallet_id"`
	EntryType string `json:"entry_type"`
	Total     string `json:"total"`
}

// FromWallet converts a domain wallet to its DTO.
func FromWallet(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:        w.ID.String(),
		OwnerID:   w.OwnerID.String(),
		Currency:  w.Currency,
		Balance:   w.Balance.StringFixed(2),
		IsLocked:  w.IsLocked,
		CreatedAt: w.CreatedAt.Format(time.RFC3339),
		UpdatedAt: w.UpdatedAt.Format(time.RFC3339),
	}
}

// FromEntry converts a domain ledger entry to its DTO.
func FromEntry(e *domain.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:             e.ID.String(),
		WalletID:       e.WalletID.String(),
		SequenceNumber: e.SequenceNumber,
		EntryNumber:    e.EntryNumber,
		EntryType:      string(e.EntryType),
		Status:         string(e.Status),
		Amount:         e.Amount.StringFixed(2),
		Currency:       e.Currency,
		TransactionRef: e.TransactionRef,
		Description:    e.Description,
		Metadata:       e.Metadata,
		BalanceBefore:  e.BalanceBefore.StringFixed(2),
		BalanceAfter:   e.BalanceAfter.StringFixed(2),
		PreviousHash:   e.PreviousHash,
		EntryHash:      e.EntryHash,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
	if e.OrderID != nil {
		s := e.OrderID.String()
		resp.OrderID = &s
	}
	if e.EscrowID != nil {
		s := e.EscrowID.String()
		resp.EscrowID = &s
	}
	return resp
}

// FromEntries converts a slice of entries.
func FromEntries(entries []domain.LedgerEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, FromEntry(&entries[i]))
	}
	return out
}

// ParseAmount parses a decimal amount string and requires it to be positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
