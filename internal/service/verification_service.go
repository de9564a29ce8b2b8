package service

import (
	"context"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VerificationServiceImpl implements ports.VerificationService. It is
// strictly read-only: defects are reported, never corrected.
type VerificationServiceImpl struct {
	walletRepo ports.WalletRepository
	ledgerRepo ports.LedgerRepository
	log        zerolog.Logger
}

// NewVerificationService creates a new VerificationServiceImpl.
func NewVerificationService(
	walletRepo ports.WalletRepository,
	ledgerRepo ports.LedgerRepository,
	log zerolog.Logger,
) *VerificationServiceImpl {
	return &VerificationServiceImpl{
		walletRepo: walletRepo,
		ledgerRepo: ledgerRepo,
		log:        log,
	}
}

// VerifyChain walks entries in ascending sequence order and checks two things
// per entry: the stored previous_hash links to the prior entry's stored hash,
// and the recomputed hash matches the stored one. Both checks run on every
// entry, so a single defect can report both reasons. The genesis entry anchors
// the chain: its stored hash is accepted as truth without recomputation. After
// a defect the walk continues from the stored hash, so one corrupted entry
// reports once instead of cascading down the chain.
func (s *VerificationServiceImpl) VerifyChain(entries []domain.LedgerEntry) ports.VerificationResult {
	start := time.Now()
	result := ports.VerificationResult{
		IsValid:      true,
		TotalEntries: len(entries),
	}

	expectedPrevious := ""
	for i := range entries {
		e := &entries[i]

		if e.IsGenesis() {
			result.VerifiedEntries++
			expectedPrevious = e.EntryHash
			continue
		}

		if e.PreviousHash != expectedPrevious {
			result.IsValid = false
			result.InvalidEntries = append(result.InvalidEntries, ports.InvalidEntry{
				EntryID:        e.ID,
				EntryNumber:    e.EntryNumber,
				SequenceNumber: e.SequenceNumber,
				ExpectedHash:   expectedPrevious,
				ActualHash:     e.PreviousHash,
				Reason:         "Previous hash mismatch - chain broken",
			})
		}

		if recomputed := domain.ComputeEntryHash(e); recomputed != e.EntryHash {
			result.IsValid = false
			result.InvalidEntries = append(result.InvalidEntries, ports.InvalidEntry{
				EntryID:        e.ID,
				EntryNumber:    e.EntryNumber,
				SequenceNumber: e.SequenceNumber,
				ExpectedHash:   recomputed,
				ActualHash:     e.EntryHash,
				Reason:         "Entry hash mismatch - data tampered",
			})
		} else {
			result.VerifiedEntries++
		}

		// Advance from the stored hash regardless of validity.
		expectedPrevious = e.EntryHash
	}

	result.ElapsedTime = time.Since(start)
	return result
}

// VerifyWalletChain loads a wallet's full chain and verifies it.
func (s *VerificationServiceImpl) VerifyWalletChain(ctx context.Context, walletID uuid.UUID) (ports.VerificationResult, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return ports.VerificationResult{}, asAppError(err, "get wallet")
	}
	if wallet == nil {
		return ports.VerificationResult{}, apperror.ErrWalletNotFound()
	}

	entries, err := s.ledgerRepo.ListChain(ctx, walletID)
	if err != nil {
		return ports.VerificationResult{}, asAppError(err, "list chain")
	}

	result := s.VerifyChain(entries)
	if !result.IsValid {
		s.log.Error().
			Str("wallet_id", walletID.String()).
			Int("invalid_entries", len(result.InvalidEntries)).
			Msg("chain integrity violation detected")
	}
	return result, nil
}

// ReconcileBalance compares the wallet's live balance against the
// balance_after of its last confirmed entry.
func (s *VerificationServiceImpl) ReconcileBalance(ctx context.Context, walletID uuid.UUID) (*ports.ReconciliationResult, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, asAppError(err, "get wallet")
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	result := &ports.ReconciliationResult{
		WalletID:       walletID,
		CurrentBalance: wallet.Balance,
	}

	last, err := s.ledgerRepo.GetLastConfirmed(ctx, walletID)
	if err != nil {
		return nil, asAppError(err, "get last confirmed entry")
	}
	if last == nil {
		result.LedgerBalance = wallet.Balance
		result.IsReconciled = wallet.Balance.IsZero()
		result.Message = "No transactions yet"
		return result, nil
	}

	result.LedgerBalance = last.BalanceAfter
	result.LastTransaction = &last.CreatedAt
	result.IsReconciled = wallet.Balance.Equal(last.BalanceAfter)
	if result.IsReconciled {
		result.Message = "Balance reconciled"
	} else {
		result.Message = "Balance mismatch detected!"
		s.log.Error().
			Str("wallet_id", walletID.String()).
			Str("current_balance", wallet.Balance.StringFixed(2)).
			Str("ledger_balance", last.BalanceAfter.StringFixed(2)).
			Msg("balance reconciliation mismatch")
	}
	return result, nil
}
