package domain

// EscrowState is the derived lifecycle state of an escrow. It is never stored:
// it is reconstructed by scanning the ledger entries correlated to an escrow id
// (one ESCROW_HOLD, then at most one of ESCROW_RELEASE / ESCROW_REFUND).
type EscrowState string

const (
	EscrowStateNone     EscrowState = "NONE"
	EscrowStateHeld     EscrowState = "HELD"
	EscrowStateReleased EscrowState = "RELEASED"
	EscrowStateRefunded EscrowState = "REFUNDED"
)

// IsTerminal reports whether the escrow has been settled.
// RELEASED and REFUNDED are mutually exclusive and final.
func (s EscrowState) IsTerminal() bool {
	return s == EscrowStateReleased || s == EscrowStateRefunded
}

// DeriveEscrowState reconstructs an escrow's state from the ledger entries
// correlated to its escrow id. FAILED entries are skipped: a failed settlement
// attempt leaves the escrow held.
func DeriveEscrowState(entries []LedgerEntry) EscrowState {
	state := EscrowStateNone
	for i := range entries {
		e := &entries[i]
		if e.Status == EntryStatusFailed {
			continue
		}
		switch e.EntryType {
		case EntryTypeEscrowHold:
			if state == EscrowStateNone {
				state = EscrowStateHeld
			}
		case EntryTypeEscrowRelease:
			return EscrowStateReleased
		case EntryTypeEscrowRefund:
			return EscrowStateRefunded
		}
	}
	return state
}
