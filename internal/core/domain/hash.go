package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// ComputeEntryHash returns the SHA-256 hex digest of the entry's immutable
// canonical fields. The field set is fixed and versioned: metadata, timestamps
// and status are excluded so that schema evolution cannot silently invalidate
// historical chains. Serialization is key-sorted JSON (encoding/json sorts map
// keys), which makes the digest independent of in-memory construction order.
func ComputeEntryHash(e *LedgerEntry) string {
	canonical := map[string]any{
		"sequence_number": e.SequenceNumber,
		"entry_number":    e.EntryNumber,
		"entry_type":      string(e.EntryType),
		"wallet_id":       e.WalletID.String(),
		"from_user_id":    uuidField(e.FromUserID),
		"to_user_id":      uuidField(e.ToUserID),
		"amount":          e.Amount.StringFixed(2),
		"currency":        e.Currency,
		"order_id":        uuidField(e.OrderID),
		"escrow_id":       uuidField(e.EscrowID),
		"swap_id":         uuidField(e.SwapID),
		"auction_id":      uuidField(e.AuctionID),
		"transaction_ref": stringField(e.TransactionRef),
		"description":     e.Description,
		"previous_hash":   e.PreviousHash,
	}

	// Marshal of a map with string/int64/nil values cannot fail.
	serialized, _ := json.Marshal(canonical)

	sum := sha256.Sum256(serialized)
	return hex.EncodeToString(sum[:])
}

// VerifyEntryHash recomputes the entry's hash and compares it to the stored one.
func VerifyEntryHash(e *LedgerEntry) bool {
	return ComputeEntryHash(e) == e.EntryHash
}

func uuidField(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func stringField(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
