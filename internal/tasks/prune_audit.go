package tasks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// DefaultAuditRetentionDays applies when a task carries no retention.
const DefaultAuditRetentionDays = 30

// AuditPruner deletes audit events older than a retention window.
type AuditPruner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// PruneAuditEventsTask removes audit events older than RetentionDays.
type PruneAuditEventsTask struct {
	RetentionDays int `json:"retention_days"`
}

// Config returns the queue configuration for audit pruning.
func (t PruneAuditEventsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "prune_audit_events",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration: 24 * time.Hour,
			Data:     &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func (t PruneAuditEventsTask) retention() (int, time.Duration) {
	days := t.RetentionDays
	if days <= 0 {
		days = DefaultAuditRetentionDays
	}
	return days, time.Duration(days) * 24 * time.Hour
}

// PruneAuditEventsProcessor returns the processor for PruneAuditEventsTask.
func PruneAuditEventsProcessor(pruner AuditPruner) backlite.QueueProcessor[PruneAuditEventsTask] {
	return func(ctx context.Context, task PruneAuditEventsTask) error {
		if pruner == nil {
			return errors.New("audit pruner not configured")
		}

		days, retention := task.retention()
		deleted, err := pruner.DeleteOldEvents(retention)
		if err != nil {
			return fmt.Errorf("prune audit events: %w", err)
		}

		log.Printf("[TASK] Pruned %d audit events older than %d days", deleted, days)
		return nil
	}
}

// NewPruneAuditEventsQueue creates the backlite queue for audit pruning.
func NewPruneAuditEventsQueue(pruner AuditPruner) backlite.Queue {
	return backlite.NewQueue(PruneAuditEventsProcessor(pruner))
}

// EnqueueAuditPrune schedules one pruning run and returns its task ID.
func (c *Client) EnqueueAuditPrune(retentionDays int) (string, error) {
	ids, err := c.Add(PruneAuditEventsTask{RetentionDays: retentionDays}).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue audit prune: %w", err)
	}
	if len(ids) == 0 {
		return "", errors.New("enqueue audit prune: no task id returned")
	}
	return ids[0], nil
}
