package handler

import (
	"net/http"

	"wallet-ledger-service/internal/core/ports"
	"wallet-ledger-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuditHandler handles chain verification and reconciliation endpoints.
type AuditHandler struct {
	verifySvc ports.VerificationService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(verifySvc ports.VerificationService) *AuditHandler {
	return &AuditHandler{verifySvc: verifySvc}
}

// VerifyChain handles GET /api/v1/wallets/:id/verify.
func (h *AuditHandler) VerifyChain(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.verifySvc.VerifyWalletChain(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ReconcileBalance handles GET /api/v1/wallets/:id/reconcile.
func (h *AuditHandler) ReconcileBalance(c *gin.Context) {
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.verifySvc.ReconcileBalance(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
