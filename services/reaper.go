package services

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zemengames/bingo-live/game"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/utils/logger"
)

const reaperBatchSize = 100

// Reaper force-finalizes sessions idle beyond a threshold. Candidates are
// swept in bounded, id-ordered batches; each one is finalized under its
// own row lock so two concurrent sweeps never both claim the same
// session.
type Reaper struct {
	db          *gorm.DB
	broadcaster *Broadcaster
	batchSize   int
}

func NewReaper(db *gorm.DB, broadcaster *Broadcaster) *Reaper {
	return &Reaper{db: db, broadcaster: broadcaster, batchSize: reaperBatchSize}
}

// Reap sweeps non-finished sessions created before now-idleThreshold and
// returns how many this call actually finalized. A single session's
// failure is logged and skipped; it does not abort the sweep.
func (r *Reaper) Reap(ctx context.Context, idleThreshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-idleThreshold)
	finalized := 0
	lastID := uint(0)

	for {
		var ids []uint
		err := r.db.WithContext(ctx).Model(&models.Session{}).
			Where("status <> ? AND created_at < ? AND id > ?", string(game.StatusFinished), cutoff, lastID).
			Order("id").
			Limit(r.batchSize).
			Pluck("id", &ids).Error
		if err != nil {
			return finalized, err
		}
		if len(ids) == 0 {
			break
		}

		for _, id := range ids {
			lastID = id
			done, err := r.finalizeOne(ctx, id)
			if err != nil {
				logger.Errorf("[Reaper] session %d skipped: %v", id, err)
				continue
			}
			if done {
				finalized++
			}
		}

		if len(ids) < r.batchSize {
			break
		}
	}

	if finalized > 0 {
		logger.Infof("[Reaper] sweep finalized %d sessions", finalized)
	}
	return finalized, nil
}

// finalizeOne takes the row lock without waiting, re-reads the status
// underneath it and abandons the session through the same transition
// table gameplay uses. Reports false when another worker got there
// first.
func (r *Reaper) finalizeOne(ctx context.Context, id uint) (bool, error) {
	var session models.Session
	finalized := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "NOWAIT"}).
			First(&session, id).Error; err != nil {
			return err
		}

		next, err := game.NextStatus(game.SessionStatus(session.Status), game.EventAbandon)
		if err != nil {
			// Already finished between batch selection and lock: skip
			// silently, another worker emitted the side effects.
			return nil
		}

		now := time.Now()
		session.Status = string(next)
		session.FinishedAt = &now
		if err := tx.Save(&session).Error; err != nil {
			return err
		}
		finalized = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if finalized {
		logger.Infof("[Reaper] session %s abandoned after idle threshold", session.ExternalID)
		r.broadcaster.Publish(ctx, &session, ChangeStatus)
	}
	return finalized, nil
}

// RunScheduler triggers Reap on a fixed interval until the context is
// cancelled. Deployments with an external scheduler hit the admin
// endpoint instead.
func (r *Reaper) RunScheduler(ctx context.Context, interval, idleThreshold time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Infof("[Reaper] scheduler running every %s, idle threshold %s", interval, idleThreshold)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Reap(ctx, idleThreshold); err != nil {
				logger.Errorf("[Reaper] sweep failed: %v", err)
			}
		}
	}
}
