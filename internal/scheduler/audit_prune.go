// Package scheduler triggers recurring background work on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// AuditPruneEnqueuer queues one audit pruning run.
type AuditPruneEnqueuer interface {
	EnqueueAuditPrune(retentionDays int) (string, error)
}

// AuditPruneScheduler enqueues audit pruning on the task queue according to
// a cron schedule. The pruning itself runs on a task worker.
type AuditPruneScheduler struct {
	queue         AuditPruneEnqueuer
	schedule      string
	retentionDays int

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

func NewAuditPruneScheduler(queue AuditPruneEnqueuer, schedule string, retentionDays int) *AuditPruneScheduler {
	return &AuditPruneScheduler{
		queue:         queue,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithParser(cronParser)),
	}
}

// Start registers the job and starts the cron loop. It stops again when ctx
// is cancelled. An empty schedule disables the scheduler.
func (s *AuditPruneScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.schedule == "" {
		log.Printf("Audit prune scheduler: disabled")
		return nil
	}
	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.RunNow(); err != nil {
			log.Printf("Audit prune scheduler: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule audit prune job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true
	log.Printf("Audit prune scheduler: started with schedule '%s', retention %d days", s.schedule, s.retentionDays)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the cron loop and waits for a running job to return.
func (s *AuditPruneScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)
	s.isRunning = false

	log.Printf("Audit prune scheduler: stopped")
}

// RunNow enqueues a pruning run immediately.
func (s *AuditPruneScheduler) RunNow() (string, error) {
	id, err := s.queue.EnqueueAuditPrune(s.retentionDays)
	if err != nil {
		return "", err
	}
	log.Printf("Audit prune scheduler: enqueued task %s", id)
	return id, nil
}

// IsRunning reports whether the cron loop is active.
func (s *AuditPruneScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// NextRun returns when the job fires next, or nil when not running.
func (s *AuditPruneScheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}
