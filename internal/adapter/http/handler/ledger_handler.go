package handler

import (
	"wallet-ledger-service/internal/adapter/http/dto"
	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/pkg/apperror"
	"wallet-ledger-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerHandler handles escrow, transfer, and entry endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

// HoldEscrow handles POST /api/v1/escrows/:escrowId/hold.
func (h *LedgerHandler) HoldEscrow(c *gin.Context) {
	escrowID, ok := pathUUID(c, "escrowId")
	if !ok {
		return
	}

	var req dto.EscrowHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, orderID, actorID, amount, err := parseEscrowFields(req.WalletID, req.OrderID, req.ActorID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.ledgerSvc.HoldEscrow(c.Request.Context(), walletID, amount, orderID, escrowID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromEntry(entry))
}

// ReleaseEscrow handles POST /api/v1/escrows/:escrowId/release.
func (h *LedgerHandler) ReleaseEscrow(c *gin.Context) {
	escrowID, ok := pathUUID(c, "escrowId")
	if !ok {
		return
	}

	var req dto.EscrowReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, orderID, actorID, amount, err := parseEscrowFields(req.RecipientWalletID, req.OrderID, req.ActorID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.ledgerSvc.ReleaseEscrow(c.Request.Context(), walletID, amount, orderID, escrowID, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromEntry(entry))
}

// RefundEscrow handles POST /api/v1/escrows/:escrowId/refund.
func (h *LedgerHandler) RefundEscrow(c *gin.Context) {
	escrowID, ok := pathUUID(c, "escrowId")
	if !ok {
		return
	}

	var req dto.EscrowRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	walletID, orderID, actorID, amount, err := parseEscrowFields(req.BuyerWalletID, req.OrderID, req.ActorID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	entry, err := h.ledgerSvc.RefundEscrow(c.Request.Context(), walletID, amount, orderID, escrowID, actorID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromEntry(entry))
}

// GetEscrowAuditTrail handles GET /api/v1/escrows/:escrowId/entries.
func (h *LedgerHandler) GetEscrowAuditTrail(c *gin.Context) {
	escrowID, ok := pathUUID(c, "escrowId")
	if !ok {
		return
	}

	entries, err := h.ledgerSvc.GetEscrowAuditTrail(c.Request.Context(), escrowID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromEntries(entries))
}

// Transfer handles POST /api/v1/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	fromID, err := uuid.Parse(req.FromWalletID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid from_wallet_id"))
		return
	}
	toID, err := uuid.Parse(req.ToWalletID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid to_wallet_id"))
		return
	}
	actorID, err := uuid.Parse(req.ActorID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid actor_id"))
		return
	}
	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.ledgerSvc.TransferBetweenWallets(c.Request.Context(), fromID, toID, amount, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TransferResponse{
		Debit:  dto.FromEntry(result.Debit),
		Credit: dto.FromEntry(result.Credit),
	})
}

// GetEntry handles GET /api/v1/entries/:id.
func (h *LedgerHandler) GetEntry(c *gin.Context) {
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.ledgerSvc.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FromEntry(entry))
}

// ReverseEntry handles POST /api/v1/entries/:id/reverse.
func (h *LedgerHandler) ReverseEntry(c *gin.Context) {
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.ReverseEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	entry, err := h.ledgerSvc.ReverseEntry(c.Request.Context(), entryID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.FromEntry(entry))
}

func parseEscrowFields(walletID, orderID, actorID, amount string) (uuid.UUID, uuid.UUID, uuid.UUID, decimal.Decimal, error) {
	wID, err := uuid.Parse(walletID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Zero, apperror.Validation("invalid wallet id")
	}
	oID, err := uuid.Parse(orderID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Zero, apperror.Validation("invalid order_id")
	}
	aID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Zero, apperror.Validation("invalid actor_id")
	}
	amt, err := dto.ParseAmount(amount)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, decimal.Zero, apperror.ErrInvalidAmount()
	}
	return wID, oID, aID, amt, nil
}
