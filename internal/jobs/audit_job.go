package jobs

import (
	"context"
	"time"

	"wallet-ledger-service/internal/core/ports"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog"
)

// AuditJob periodically walks every wallet's hash chain and reconciles its
// balance against the ledger. Violations are logged, never corrected: a broken
// chain needs a human, not a cron job.
type AuditJob struct {
	walletRepo ports.WalletRepository
	verifySvc  ports.VerificationService
	scheduler  *gocron.Scheduler
	interval   time.Duration
	log        zerolog.Logger
}

// NewAuditJob creates an audit job that sweeps all wallets every interval.
func NewAuditJob(walletRepo ports.WalletRepository, verifySvc ports.VerificationService, interval time.Duration, log zerolog.Logger) *AuditJob {
	return &AuditJob{
		walletRepo: walletRepo,
		verifySvc:  verifySvc,
		scheduler:  gocron.NewScheduler(time.UTC),
		interval:   interval,
		log:        log.With().Str("component", "audit_job").Logger(),
	}
}

// Start schedules the sweep and begins running it asynchronously.
func (j *AuditJob) Start() error {
	_, err := j.scheduler.Every(j.interval).Do(func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}
	j.scheduler.StartAsync()
	j.log.Info().Dur("interval", j.interval).Msg("Audit job started")
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (j *AuditJob) Stop() {
	j.scheduler.Stop()
	j.log.Info().Msg("Audit job stopped")
}

// RunOnce sweeps every wallet a single time and returns the number of wallets
// with integrity problems. Exposed so an operator endpoint or test can trigger
// a sweep on demand.
func (j *AuditJob) RunOnce(ctx context.Context) int {
	start := time.Now()

	walletIDs, err := j.walletRepo.ListIDs(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("Audit sweep failed to list wallets")
		return 0
	}

	violations := 0
	for _, walletID := range walletIDs {
		result, err := j.verifySvc.VerifyWalletChain(ctx, walletID)
		if err != nil {
			j.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("Chain verification failed")
			violations++
			continue
		}
		if !result.IsValid {
			j.log.Error().
				Str("wallet_id", walletID.String()).
				Int("invalid_entries", len(result.InvalidEntries)).
				Msg("AUDIT ALERT: hash chain violation detected")
			violations++
			continue
		}

		recon, err := j.verifySvc.ReconcileBalance(ctx, walletID)
		if err != nil {
			j.log.Error().Err(err).Str("wallet_id", walletID.String()).Msg("Reconciliation failed")
			violations++
			continue
		}
		if !recon.IsReconciled {
			j.log.Error().
				Str("wallet_id", walletID.String()).
				Str("current_balance", recon.CurrentBalance.String()).
				Str("ledger_balance", recon.LedgerBalance.String()).
				Msg("AUDIT ALERT: balance mismatch detected")
			violations++
		}
	}

	j.log.Info().
		Int("wallets", len(walletIDs)).
		Int("violations", violations).
		Dur("elapsed", time.Since(start)).
		Msg("Audit sweep complete")
	return violations
}
