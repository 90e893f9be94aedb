// Package scheduler runs periodic estimate maintenance.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Expirer moves overdue SENT and VIEWED estimates to EXPIRED.
type Expirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}

// ExpirySweeper runs Expirer on a cron schedule.
type ExpirySweeper struct {
	cron    *cron.Cron
	expirer Expirer
	timeout time.Duration
	logger  *zap.Logger
}

// NewExpirySweeper registers the sweep under spec (standard five-field cron,
// e.g. "0 1 * * *" for 01:00 every night). Call Start to begin running.
func NewExpirySweeper(spec string, expirer Expirer, logger *zap.Logger) (*ExpirySweeper, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ExpirySweeper{
		cron:    cron.New(),
		expirer: expirer,
		timeout: 5 * time.Minute,
		logger:  logger.Named("expiry_sweeper"),
	}
	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid expiry schedule %q: %w", spec, err)
	}
	return s, nil
}

// Run performs one sweep.
func (s *ExpirySweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	expired, err := s.expirer.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("estimate expiry sweep failed", zap.Int("expired", expired), zap.Error(err))
		return
	}
	s.logger.Info("estimate expiry sweep finished", zap.Int("expired", expired), zap.Duration("took", time.Since(started)))
}

func (s *ExpirySweeper) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *ExpirySweeper) Stop() {
	<-s.cron.Stop().Done()
}
