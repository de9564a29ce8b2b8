package service

import (
	"context"
	"testing"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/internal/core/ports/mocks"
	"wallet-ledger-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	walletRepo *mocks.MockWalletRepository
	ledgerRepo *mocks.MockLedgerRepository
	txRefCache *mocks.MockTxRefCache
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		txRefCache: mocks.NewMockTxRefCache(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(
		d.walletRepo, d.ledgerRepo, d.txRefCache, d.transactor, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func testWallet(id uuid.UUID, balance int64) *domain.Wallet {
	return &domain.Wallet{
		ID:       id,
		OwnerID:  uuid.New(),
		Currency: "USD",
		Balance:  decimal.NewFromInt(balance),
	}
}

func chainTail(walletID uuid.UUID, seq int64, balance int64) *domain.LedgerEntry {
	e := &domain.LedgerEntry{
		ID:             uuid.New(),
		WalletID:       walletID,
		SequenceNumber: seq,
		EntryNumber:    domain.FormatEntryNumber(domain.EntryTypeDeposit, seq),
		EntryType:      domain.EntryTypeDeposit,
		Status:         domain.EntryStatusConfirmed,
		Amount:         decimal.NewFromInt(balance),
		Currency:       "USD",
		BalanceBefore:  decimal.Zero,
		BalanceAfter:   decimal.NewFromInt(balance),
		PreviousHash:   "",
	}
	e.EntryHash = domain.ComputeEntryHash(e)
	return e
}

// ==================== CreateWallet Tests ====================

func TestLedgerService_CreateWallet_WritesGenesis(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ownerID := uuid.New()
	tx := &mockTx{}

	var genesis *domain.LedgerEntry
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			genesis = e
			return nil
		})

	wallet, err := d.svc.CreateWallet(ctx, ownerID, "USD")
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, ownerID, wallet.OwnerID)
	assert.True(t, wallet.Balance.IsZero())

	require.NotNil(t, genesis)
	assert.Equal(t, int64(0), genesis.SequenceNumber)
	assert.Equal(t, "MIG-0000000000", genesis.EntryNumber)
	assert.Equal(t, domain.EntryTypeMigration, genesis.EntryType)
	assert.Empty(t, genesis.PreviousHash)
	assert.True(t, genesis.Amount.IsZero())
	assert.True(t, domain.VerifyEntryHash(genesis))
}

// ==================== RecordTransaction Tests ====================

func TestLedgerService_RecordDeposit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	actorID := uuid.New()
	tx := &mockTx{}
	tail := chainTail(walletID, 0, 0)

	d.txRefCache.EXPECT().Seen(ctx, "stripe_pi_001").Return(false, nil)
	d.ledgerRepo.EXPECT().ExistsByTransactionRef(ctx, "stripe_pi_001").Return(false, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(testWallet(walletID, 0), nil)
	d.ledgerRepo.EXPECT().GetChainTail(ctx, tx, walletID).Return(tail, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, decimal.NewFromInt(100)).Return(nil)

	var recorded *domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			recorded = e
			return nil
		})
	d.txRefCache.EXPECT().Remember(ctx, "stripe_pi_001", txRefTTL).Return(nil)

	entry, err := d.svc.RecordDeposit(ctx, walletID, decimal.NewFromInt(100), "stripe_pi_001", actorID)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, int64(1), recorded.SequenceNumber)
	assert.Equal(t, "DEP-0000000001", recorded.EntryNumber)
	assert.Equal(t, tail.EntryHash, recorded.PreviousHash)
	assert.True(t, recorded.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, recorded.BalanceAfter.Equal(decimal.NewFromInt(100)))
	assert.True(t, domain.VerifyEntryHash(recorded))
}

func TestLedgerService_RecordTransaction_DuplicateRefInCache(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ref := "stripe_pi_dup"

	d.txRefCache.EXPECT().Seen(ctx, ref).Return(true, nil)

	_, err := d.svc.RecordDeposit(ctx, uuid.New(), decimal.NewFromInt(10), ref, uuid.New())

	assertAppErrorCode(t, err, apperror.ErrDuplicateTransactionRef().Code)
}

func TestLedgerService_RecordTransaction_DuplicateRefInDB(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	ref := "stripe_pi_dup_db"

	d.txRefCache.EXPECT().Seen(ctx, ref).Return(false, nil)
	d.ledgerRepo.EXPECT().ExistsByTransactionRef(ctx, ref).Return(true, nil)

	_, err := d.svc.RecordDeposit(ctx, uuid.New(), decimal.NewFromInt(10), ref, uuid.New())

	assertAppErrorCode(t, err, apperror.ErrDuplicateTransactionRef().Code)
}

func TestLedgerService_RecordWithdrawal_InsufficientBalance(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}

	d.txRefCache.EXPECT().Seen(ctx, "payout_001").Return(false, nil)
	d.ledgerRepo.EXPECT().ExistsByTransactionRef(ctx, "payout_001").Return(false, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(testWallet(walletID, 10), nil)

	_, err := d.svc.RecordWithdrawal(ctx, walletID, decimal.NewFromInt(30), "payout_001", uuid.New())

	assertAppErrorCode(t, err, apperror.ErrInsufficientBalance().Code)
}

func TestLedgerService_RecordTransaction_WalletLocked(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}
	w := testWallet(walletID, 100)
	w.IsLocked = true

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(w, nil)

	_, err := d.svc.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:  walletID,
		Amount:    decimal.NewFromInt(-20),
		EntryType: domain.EntryTypePayment,
	})

	assertAppErrorCode(t, err, apperror.ErrWalletLocked().Code)
}

func TestLedgerService_RecordTransaction_WalletNotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(nil, nil)

	_, err := d.svc.RecordTransaction(ctx, ports.TransactionRequest{
		WalletID:  walletID,
		Amount:    decimal.NewFromInt(5),
		EntryType: domain.EntryTypeReward,
	})

	assertAppErrorCode(t, err, apperror.ErrWalletNotFound().Code)
}

func TestLedgerService_RecordTransaction_ZeroAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.RecordTransaction(context.Background(), ports.TransactionRequest{
		WalletID:  uuid.New(),
		Amount:    decimal.Zero,
		EntryType: domain.EntryTypePayment,
	})

	assertAppErrorCode(t, err, apperror.ErrInvalidAmount().Code)
}

// ==================== Escrow Tests ====================

func escrowEntry(escrowID uuid.UUID, et domain.EntryType) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:        uuid.New(),
		EntryType: et,
		Status:    domain.EntryStatusConfirmed,
		EscrowID:  &escrowID,
	}
}

func TestLedgerService_ReleaseEscrow_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	orderID, escrowID, systemID := uuid.New(), uuid.New(), uuid.New()
	tx := &mockTx{}
	tail := chainTail(walletID, 3, 20)

	d.ledgerRepo.EXPECT().ListByEscrowID(ctx, escrowID).
		Return([]domain.LedgerEntry{escrowEntry(escrowID, domain.EntryTypeEscrowHold)}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(testWallet(walletID, 20), nil)
	d.ledgerRepo.EXPECT().GetChainTail(ctx, tx, walletID).Return(tail, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, decimal.NewFromInt(70)).Return(nil)

	var recorded *domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			recorded = e
			return nil
		})

	entry, err := d.svc.ReleaseEscrow(ctx, walletID, decimal.NewFromInt(50), orderID, escrowID, systemID)
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, domain.EntryTypeEscrowRelease, recorded.EntryType)
	assert.Equal(t, "ESR-0000000004", recorded.EntryNumber)
	assert.Equal(t, escrowID, *recorded.EscrowID)
	assert.True(t, recorded.Amount.Equal(decimal.NewFromInt(50)))
}

func TestLedgerService_ReleaseEscrow_AlreadySettled(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	escrowID := uuid.New()

	d.ledgerRepo.EXPECT().ListByEscrowID(ctx, escrowID).Return([]domain.LedgerEntry{
		escrowEntry(escrowID, domain.EntryTypeEscrowHold),
		escrowEntry(escrowID, domain.EntryTypeEscrowRelease),
	}, nil)

	_, err := d.svc.ReleaseEscrow(ctx, uuid.New(), decimal.NewFromInt(50), uuid.New(), escrowID, uuid.New())

	assertAppErrorCode(t, err, apperror.ErrEscrowAlreadySettled().Code)
}

func TestLedgerService_RefundEscrow_AlreadySettled(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	escrowID := uuid.New()

	d.ledgerRepo.EXPECT().ListByEscrowID(ctx, escrowID).Return([]domain.LedgerEntry{
		escrowEntry(escrowID, domain.EntryTypeEscrowHold),
		escrowEntry(escrowID, domain.EntryTypeEscrowRefund),
	}, nil)

	_, err := d.svc.RefundEscrow(ctx, uuid.New(), decimal.NewFromInt(50), uuid.New(), escrowID, uuid.New(), "cancelled")

	assertAppErrorCode(t, err, apperror.ErrEscrowAlreadySettled().Code)
}

func TestLedgerService_ReleaseEscrow_NoHold(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	escrowID := uuid.New()

	d.ledgerRepo.EXPECT().ListByEscrowID(ctx, escrowID).Return(nil, nil)

	_, err := d.svc.ReleaseEscrow(ctx, uuid.New(), decimal.NewFromInt(50), uuid.New(), escrowID, uuid.New())

	assertAppErrorCode(t, err, apperror.ErrEscrowNotFound().Code)
}

// ==================== Transfer Tests ====================

func TestLedgerService_TransferBetweenWallets_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	fromID, toID := uuid.New(), uuid.New()
	actorID := uuid.New()
	tx := &mockTx{}

	fromWallet := testWallet(fromID, 100)
	toWallet := testWallet(toID, 5)
	fromTail := chainTail(fromID, 2, 100)
	toTail := chainTail(toID, 1, 5)

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, fromID).Return(fromWallet, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, toID).Return(toWallet, nil)
	d.ledgerRepo.EXPECT().GetChainTail(ctx, tx, fromID).Return(fromTail, nil)
	d.ledgerRepo.EXPECT().GetChainTail(ctx, tx, toID).Return(toTail, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, fromID, decimal.NewFromInt(60)).Return(nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, toID, decimal.NewFromInt(45)).Return(nil)

	var appended []*domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			appended = append(appended, e)
			return nil
		})

	result, err := d.svc.TransferBetweenWallets(ctx, fromID, toID, decimal.NewFromInt(40), actorID)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, appended, 2)

	assert.Equal(t, domain.EntryTypeTransferOut, result.Debit.EntryType)
	assert.Equal(t, domain.EntryTypeTransferIn, result.Credit.EntryType)
	assert.True(t, result.Debit.Amount.Equal(decimal.NewFromInt(-40)))
	assert.True(t, result.Credit.Amount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, fromTail.EntryHash, result.Debit.PreviousHash)
	assert.Equal(t, toTail.EntryHash, result.Credit.PreviousHash)
	assert.True(t, domain.VerifyEntryHash(result.Debit))
	assert.True(t, domain.VerifyEntryHash(result.Credit))
}

func TestLedgerService_TransferBetweenWallets_SameWallet(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	id := uuid.New()
	_, err := d.svc.TransferBetweenWallets(context.Background(), id, id, decimal.NewFromInt(10), uuid.New())

	assertAppErrorCode(t, err, apperror.Validation("").Code)
}

// ==================== ReverseEntry Tests ====================

func TestLedgerService_ReverseEntry_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	tx := &mockTx{}
	tail := chainTail(walletID, 5, 150)

	original := &domain.LedgerEntry{
		ID:             uuid.New(),
		WalletID:       walletID,
		SequenceNumber: 4,
		EntryNumber:    "PAY-0000000004",
		EntryType:      domain.EntryTypePayment,
		Status:         domain.EntryStatusConfirmed,
		Amount:         decimal.NewFromInt(-50),
	}

	d.ledgerRepo.EXPECT().GetByID(ctx, original.ID).Return(original, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByIDForUpdate(ctx, tx, walletID).Return(testWallet(walletID, 150), nil)
	d.ledgerRepo.EXPECT().GetChainTail(ctx, tx, walletID).Return(tail, nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, decimal.NewFromInt(200)).Return(nil)

	var recorded *domain.LedgerEntry
	d.ledgerRepo.EXPECT().Append(ctx, tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			recorded = e
			return nil
		})

	entry, err := d.svc.ReverseEntry(ctx, original.ID, "disputed charge")
	require.NoError(t, err)
	require.NotNil(t, entry)

	assert.Equal(t, domain.EntryTypeSystemAdjustment, recorded.EntryType)
	assert.True(t, recorded.Amount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "PAY-0000000004", recorded.Metadata["original_entry_number"])
	assert.Equal(t, "disputed charge", recorded.Metadata["reversal_reason"])
}

func TestLedgerService_ReverseEntry_GenesisNotReversible(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	genesis := &domain.LedgerEntry{
		ID:             uuid.New(),
		SequenceNumber: 0,
		EntryType:      domain.EntryTypeMigration,
		Status:         domain.EntryStatusConfirmed,
	}

	d.ledgerRepo.EXPECT().GetByID(ctx, genesis.ID).Return(genesis, nil)

	_, err := d.svc.ReverseEntry(ctx, genesis.ID, "mistake")

	assertAppErrorCode(t, err, apperror.ErrEntryNotReversible().Code)
}

func TestLedgerService_ReverseEntry_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	entryID := uuid.New()

	d.ledgerRepo.EXPECT().GetByID(ctx, entryID).Return(nil, nil)

	_, err := d.svc.ReverseEntry(ctx, entryID, "mistake")

	assertAppErrorCode(t, err, apperror.ErrEntryNotFound().Code)
}

// ==================== Query Tests ====================

func TestLedgerService_GetBalanceAtTime(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()
	at := chainTail(walletID, 2, 70)

	d.walletRepo.EXPECT().GetByID(ctx, walletID).Return(testWallet(walletID, 70), nil).Times(2)
	d.ledgerRepo.EXPECT().GetLastEntryBefore(ctx, walletID, gomock.Any()).Return(at, nil)

	balance, err := d.svc.GetBalanceAtTime(ctx, walletID, at.CreatedAt)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(70)))

	// No entries at or before the cutoff means a zero balance.
	d.ledgerRepo.EXPECT().GetLastEntryBefore(ctx, walletID, gomock.Any()).Return(nil, nil)
	balance, err = d.svc.GetBalanceAtTime(ctx, walletID, at.CreatedAt)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestLedgerService_QueryOps_WalletNotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	walletID := uuid.New()

	// Every wallet-scoped query rejects an unknown wallet instead of
	// returning an empty result.
	d.walletRepo.EXPECT().GetByID(ctx, walletID).Return(nil, nil).Times(3)

	_, err := d.svc.GetTransactionsByType(ctx, walletID, domain.EntryTypeDeposit, 10)
	assertAppErrorCode(t, err, apperror.ErrWalletNotFound().Code)

	_, err = d.svc.GetTransactionsByDateRange(ctx, walletID, time.Now().Add(-time.Hour), time.Now())
	assertAppErrorCode(t, err, apperror.ErrWalletNotFound().Code)

	_, err = d.svc.GetTotalByType(ctx, walletID, domain.EntryTypeDeposit)
	assertAppErrorCode(t, err, apperror.ErrWalletNotFound().Code)
}

func TestLedgerService_GetEscrowAuditTrail_NotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	escrowID := uuid.New()

	d.ledgerRepo.EXPECT().ListByEscrowID(ctx, escrowID).Return(nil, nil)

	_, err := d.svc.GetEscrowAuditTrail(ctx, escrowID)

	assertAppErrorCode(t, err, apperror.ErrEscrowNotFound().Code)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}
