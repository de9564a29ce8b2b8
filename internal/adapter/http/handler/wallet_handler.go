package handler

import (
	"strconv"
	"time"

	"wallet-ledger-service/internal/adapter/http/dto"
	"wallet-ledger-service/internal/core/domain"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/pkg/apperror"
	"wallet-ledger-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	ledgerSvc ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledgerSvc ports.LedgerService) *WalletHandler {
	return &WalletHandler{ledgerSvc: ledgerSvc}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid owner_id"))
		return
	}

	wallet, err := h.ledgerSvc.CreateWallet(c.Request.Context(), ownerID, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromWallet(wallet))
}

// GetWallet handles GET /api/v1/wallets/:id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	wallet, err := h.ledgerSvc.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromWallet(wallet))
}

// SetWalletLock handles PUT /api/v1/wallets/:id/lock.
func (h *WalletHandler) SetWalletLock(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.SetWalletLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.SetWalletLock(c.Request.Context(), walletID, *req.Locked); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"wallet_id": walletID.String(), "locked": *req.Locked})
}

// Deposit handles POST /api/v1/wallets/:id/deposits.
func (h *WalletHandler) Deposit(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid actor_id"))
		return
	}

	entry, err := h.ledgerSvc.RecordDeposit(c.Request.Context(), walletID, amount, req.TransactionRef, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromEntry(entry))
}

// Withdraw handles POST /api/v1/wallets/:id/withdrawals.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid actor_id"))
		return
	}

	entry, err := h.ledgerSvc.RecordWithdrawal(c.Request.Context(), walletID, amount, req.TransactionRef, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromEntry(entry))
}

// GetHistory handles GET /api/v1/wallets/:id/history.
func (h *WalletHandler) GetHistory(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	entries, err := h.ledgerSvc.GetWalletHistory(c.Request.Context(), walletID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromEntries(entries))
}

// GetBalanceAt handles GET /api/v1/wallets/:id/balance-at?at=<RFC3339>.
func (h *WalletHandler) GetBalanceAt(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		response.Error(c, apperror.Validation("at must be an RFC3339 timestamp"))
		return
	}

	balance, err := h.ledgerSvc.GetBalanceAtTime(c.Request.Context(), walletID, at)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceAtResponse{
		WalletID: walletID.String(),
		Balance:  balance.StringFixed(2),
		At:       at.Format(time.RFC3339),
	})
}

// GetEntries handles GET /api/v1/wallets/:id/entries. Filter by ?type= or by
// ?start=&end= (RFC3339).
func (h *WalletHandler) GetEntries(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if entryType := c.Query("type"); entryType != "" {
		entries, err := h.ledgerSvc.GetTransactionsByType(
			c.Request.Context(), walletID, domain.EntryType(entryType), queryInt(c, "limit", 50))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.FromEntries(entries))
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		response.Error(c, apperror.Validation("provide type= or start=/end= RFC3339 timestamps"))
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		response.Error(c, apperror.Validation("end must be an RFC3339 timestamp"))
		return
	}

	entries, err := h.ledgerSvc.GetTransactionsByDateRange(c.Request.Context(), walletID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromEntries(entries))
}

// GetTotalByType handles GET /api/v1/wallets/:id/totals?type=.
func (h *WalletHandler) GetTotalByType(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entryType := c.Query("type")
	if entryType == "" {
		response.Error(c, apperror.Validation("type is required"))
		return
	}

	total, err := h.ledgerSvc.GetTotalByType(c.Request.Context(), walletID, domain.EntryType(entryType))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TotalByTypeResponse{
		WalletID:  walletID.String(),
		EntryType: entryType,
		Total:     total.StringFixed(2),
	})
}

// pathUUID parses a UUID path param, writing a validation error on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if v, ok := c.GetQuery(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
