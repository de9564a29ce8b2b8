package integration

import (
	"context"
	"sync"
	"time"

	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for PostgreSQL used by the end-to-end
// tests. Transactions map to the store mutex: Begin locks, Commit/Rollback
// unlock, which serializes writers exactly like the row locks do in
// production. Writes apply immediately, so these tests only exercise failure
// paths that reject before writing anything.
type memStore struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]*domain.Wallet
	chains  map[uuid.UUID][]domain.LedgerEntry // per wallet, ascending sequence
	byID    map[uuid.UUID]*domain.LedgerEntry
	all     []*domain.LedgerEntry // insertion order
	refs    map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		wallets: make(map[uuid.UUID]*domain.Wallet),
		chains:  make(map[uuid.UUID][]domain.LedgerEntry),
		byID:    make(map[uuid.UUID]*domain.LedgerEntry),
		refs:    make(map[string]bool),
	}
}

// memTx satisfies pgx.Tx for the repository signatures. Only Commit and
// Rollback are ever called on it.
type memTx struct {
	pgx.Tx
	store *memStore
	done  bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}

type memTransactor struct {
	store *memStore
}

func (m *memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	m.store.mu.Lock()
	return &memTx{store: m.store}, nil
}

// --- WalletRepository ---

type memWalletRepo struct {
	store *memStore
}

func (r *memWalletRepo) Create(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error {
	w := *wallet
	r.store.wallets[w.ID] = &w
	return nil
}

func (r *memWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.walletCopy(id), nil
}

func (r *memWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	// The transaction already holds the store mutex.
	return r.store.walletCopy(id), nil
}

func (r *memWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	w, ok := r.store.wallets[walletID]
	if !ok {
		return apperror.ErrWalletNotFound()
	}
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memWalletRepo) SetLocked(ctx context.Context, walletID uuid.UUID, locked bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[walletID]
	if !ok {
		return apperror.ErrWalletNotFound()
	}
	w.IsLocked = locked
	return nil
}

func (r *memWalletRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(r.store.wallets))
	for id := range r.store.wallets {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *memStore) walletCopy(id uuid.UUID) *domain.Wallet {
	w, ok := s.wallets[id]
	if !ok {
		return nil
	}
	c := *w
	return &c
}

// --- LedgerRepository ---

type memLedgerRepo struct {
	store *memStore
}

func (r *memLedgerRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	s := r.store

	if entry.TransactionRef != nil && s.refs[*entry.TransactionRef] {
		return apperror.ErrDuplicateTransactionRef()
	}
	if entry.EntryType == domain.EntryTypeEscrowRelease || entry.EntryType == domain.EntryTypeEscrowRefund {
		for _, e := range s.all {
			if e.EscrowID != nil && entry.EscrowID != nil && *e.EscrowID == *entry.EscrowID &&
				(e.EntryType == domain.EntryTypeEscrowRelease || e.EntryType == domain.EntryTypeEscrowRefund) {
				return apperror.ErrEscrowAlreadySettled()
			}
		}
	}
	chain := s.chains[entry.WalletID]
	if len(chain) > 0 && chain[len(chain)-1].SequenceNumber >= entry.SequenceNumber {
		return apperror.ErrWalletBusy()
	}

	e := *entry
	s.chains[e.WalletID] = append(s.chains[e.WalletID], e)
	stored := &s.chains[e.WalletID][len(s.chains[e.WalletID])-1]
	s.byID[e.ID] = stored
	s.all = append(s.all, stored)
	if e.TransactionRef != nil {
		s.refs[*e.TransactionRef] = true
	}
	return nil
}

func (r *memLedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.byID[id]
	if !ok {
		return nil, nil
	}
	c := *e
	return &c, nil
}

func (r *memLedgerRepo) GetChainTail(ctx context.Context, tx pgx.Tx, walletID uuid.UUID) (*domain.LedgerEntry, error) {
	chain := r.store.chains[walletID]
	if len(chain) == 0 {
		return nil, nil
	}
	c := chain[len(chain)-1]
	return &c, nil
}

func (r *memLedgerRepo) GetLastConfirmed(ctx context.Context, walletID uuid.UUID) (*domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	chain := r.store.chains[walletID]
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Status == domain.EntryStatusConfirmed {
			c := chain[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memLedgerRepo) ListChain(ctx context.Context, walletID uuid.UUID) ([]domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	chain := r.store.chains[walletID]
	out := make([]domain.LedgerEntry, len(chain))
	copy(out, chain)
	return out, nil
}

func (r *memLedgerRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	chain := r.store.chains[walletID]
	var out []domain.LedgerEntry
	for i := len(chain) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, chain[i])
	}
	return out, nil
}

func (r *memLedgerRepo) ListByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	chain := r.store.chains[walletID]
	var out []domain.LedgerEntry
	for i := len(chain) - 1; i >= 0 && len(out) < limit; i-- {
		if chain[i].EntryType == entryType {
			out = append(out, chain[i])
		}
	}
	return out, nil
}

func (r *memLedgerRepo) ListByDateRange(ctx context.Context, walletID uuid.UUID, start, end time.Time) ([]domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range r.store.chains[walletID] {
		if !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) ListByEscrowID(ctx context.Context, escrowID uuid.UUID) ([]domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range r.store.all {
		if e.EscrowID != nil && *e.EscrowID == escrowID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memLedgerRepo) GetLastEntryBefore(ctx context.Context, walletID uuid.UUID, at time.Time) (*domain.LedgerEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var found *domain.LedgerEntry
	for i := range r.store.chains[walletID] {
		e := r.store.chains[walletID][i]
		if !e.CreatedAt.After(at) {
			c := e
			found = &c
		}
	}
	return found, nil
}

func (r *memLedgerRepo) ExistsByTransactionRef(ctx context.Context, transactionRef string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.refs[transactionRef], nil
}

func (r *memLedgerRepo) SumAmountByType(ctx context.Context, walletID uuid.UUID, entryType domain.EntryType) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	total := decimal.Zero
	for _, e := range r.store.chains[walletID] {
		if e.EntryType == entryType && e.Status == domain.EntryStatusConfirmed {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// --- TxRefCache ---

type memTxRefCache struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newMemTxRefCache() *memTxRefCache {
	return &memTxRefCache{seen: make(map[string]bool)}
}

func (c *memTxRefCache) Seen(ctx context.Context, transactionRef string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen[transactionRef], nil
}

func (c *memTxRefCache) Remember(ctx context.Context, transactionRef string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[transactionRef] = true
	return nil
}
