package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tfxsoftware/PickPegaAPI/internal/api/metrics"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/domain"
	"github.com/tfxsoftware/PickPegaAPI/internal/core/ports"
)

// Reconciler sweeps the dual-write journal and removes identity records whose
// account document never materialised (or was already deleted). It only acts
// on entries older than the grace period so in-flight requests are left alone.
type Reconciler struct {
	restaurants ports.RestaurantRepository
	identity    ports.IdentityStore
	journal     ports.DualWriteJournal
	grace       time.Duration
	logger      zerolog.Logger
}

func NewReconciler(
	restaurants ports.RestaurantRepository,
	identity ports.IdentityStore,
	journal ports.DualWriteJournal,
	grace time.Duration,
	logger zerolog.Logger,
) *Reconciler {
	if grace <= 0 {
		grace = 5 * time.Minute
	}
	return &Reconciler{
		restaurants: restaurants,
		identity:    identity,
		journal:     journal,
		grace:       grace,
		logger:      logger,
	}
}

// Run sweeps once per interval until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep processes every pending entry once. Create and delete entries share
// the same repair: an identity record without an account document is an
// orphan and gets removed. Password entries cannot be repaired automatically
// because the true credential is unknowable here; they are logged and cleared
// for manual follow-up.
func (r *Reconciler) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-r.grace)

	for _, op := range []string{ports.JournalOpCreate, ports.JournalOpDelete} {
		ids, err := r.journal.Pending(ctx, op, cutoff)
		if err != nil {
			r.logger.Error().Err(err).Str("op", op).Msg("journal scan failed")
			continue
		}
		for _, id := range ids {
			r.repairOrphan(ctx, op, id)
		}
	}

	ids, err := r.journal.Pending(ctx, ports.JournalOpPassword, cutoff)
	if err != nil {
		r.logger.Error().Err(err).Str("op", ports.JournalOpPassword).Msg("journal scan failed")
		return
	}
	for _, id := range ids {
		r.logger.Warn().Str("account_id", id).
			Msg("credential stores diverged, manual reset required")
		r.clear(ctx, ports.JournalOpPassword, id)
	}
}

func (r *Reconciler) repairOrphan(ctx context.Context, op, id string) {
	_, err := r.restaurants.FindByID(ctx, id)
	switch {
	case err == nil:
		// Document exists, so the original operation completed after all.
		r.clear(ctx, op, id)
		return
	case !errors.Is(err, domain.ErrRestaurantNotFound):
		r.logger.Error().Err(err).Str("account_id", id).Msg("orphan check failed")
		return
	}

	if err := r.identity.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrIdentityNotFound) {
		r.logger.Error().Err(err).Str("account_id", id).Msg("orphan identity delete failed")
		return
	}
	metrics.ReconcilerCleanupsTotal.WithLabelValues(op).Inc()
	r.logger.Info().Str("account_id", id).Str("op", op).Msg("orphan identity record removed")
	r.clear(ctx, op, id)
}

func (r *Reconciler) clear(ctx context.Context, op, id string) {
	if err := r.journal.Clear(ctx, op, id); err != nil {
		r.logger.Warn().Err(err).Str("op", op).Str("account_id", id).Msg("journal clear failed")
	}
}
