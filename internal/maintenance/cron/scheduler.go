package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrphanFinder lists palettes whose project no longer exists.
type OrphanFinder interface {
	FindOrphans(ctx context.Context) ([]int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	finder  OrphanFinder
	log     *zap.Logger
	timeout time.Duration
}

func NewScheduler(finder OrphanFinder, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		finder:  finder,
		log:     log,
		timeout: 30 * time.Second,
	}
}

// Start registers the orphan audit on spec (six fields, seconds first) and
// starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOrphanAudit); err != nil {
		return err
	}

	s.log.Info("cron scheduler started", zap.String("orphan_audit_schedule", spec))
	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for a running audit to finish or ctx to
// expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOrphanAudit reports palettes left behind by deleted projects. Nothing is
// removed.
func (s *Scheduler) RunOrphanAudit() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	ids, err := s.finder.FindOrphans(ctx)
	if err != nil {
		s.log.Error("orphan palette audit failed", zap.Error(err))
		return
	}
	if len(ids) == 0 {
		s.log.Info("orphan palette audit: none found")
		return
	}
	s.log.Warn("orphan palette audit: palettes reference missing projects",
		zap.Int("count", len(ids)),
		zap.Int64s("palette_ids", ids),
	)
}
