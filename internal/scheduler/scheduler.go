// Package scheduler runs the periodic report snapshot.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/logx"
	"github.com/Abraxas-365/recruitboard/recruitment/dashboard"
	"github.com/robfig/cron/v3"
)

// Snapshotter composes and archives one report
type Snapshotter interface {
	Snapshot(ctx context.Context) (*dashboard.ExportResult, error)
}

// Scheduler wraps robfig/cron and fires the snapshot on a cron spec
type Scheduler struct {
	cron    *cron.Cron
	job     Snapshotter
	spec    string
	timeout time.Duration
}

// New creates a Scheduler evaluating spec in loc, e.g. "@daily" or "0 6 * * *"
func New(job Snapshotter, spec string, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		job:     job,
		spec:    spec,
		timeout: 5 * time.Minute,
	}
}

// Start registers the job and starts the scheduler
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc %q: %w", s.spec, err)
	}

	s.cron.Start()
	logx.Infof("[scheduler] report snapshot scheduled: %s", s.spec)
	return nil
}

// Stop waits for a running snapshot to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logx.Info("[scheduler] stopped")
}

// Run takes one snapshot. Failures are logged and not retried.
func (s *Scheduler) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.job.Snapshot(ctx)
	if err != nil {
		logx.Errorf("[scheduler] report snapshot failed: %v", err)
		return
	}
	logx.Infof("[scheduler] report snapshot stored at %s", out.JSONKey)
}
