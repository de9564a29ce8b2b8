package handler

import (
	"wallet-ledger-service/internal/adapter/http/middleware"
	"wallet-ledger-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	VerifySvc      ports.VerificationService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.LedgerSvc)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc)
	auditHandler := NewAuditHandler(deps.VerifySvc)

	v1 := r.Group("/api/v1")

	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.CreateWallet)
		wallets.GET("/:id", walletHandler.GetWallet)
		wallets.PUT("/:id/lock", walletHandler.SetWalletLock)
		wallets.POST("/:id/deposits", walletHandler.Deposit)
		wallets.POST("/:id/withdrawals", walletHandler.Withdraw)
		wallets.GET("/:id/history", walletHandler.GetHistory)
		wallets.GET("/:id/balance-at", walletHandler.GetBalanceAt)
		wallets.GET("/:id/entries", walletHandler.GetEntries)
		wallets.GET("/:id/totals", walletHandler.GetTotalByType)
		wallets.GET("/:id/verify", auditHandler.VerifyChain)
		wallets.GET("/:id/reconcile", auditHandler.ReconcileBalance)
	}

	escrows := v1.Group("/escrows")
	{
		escrows.POST("/:escrowId/hold", ledgerHandler.HoldEscrow)
		escrows.POST("/:escrowId/release", ledgerHandler.ReleaseEscrow)
		escrows.POST("/:escrowId/refund", ledgerHandler.RefundEscrow)
		escrows.GET("/:escrowId/entries", ledgerHandler.GetEscrowAuditTrail)
	}

	v1.POST("/transfers", ledgerHandler.Transfer)

	entries := v1.Group("/entries")
	{
		entries.GET("/:id", ledgerHandler.GetEntry)
		entries.POST("/:id/reverse", ledgerHandler.ReverseEntry)
	}

	return r
}
