package audit

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/entities"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo    *audit.Repository
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// Flush blocks until every event queued with LogAsync has been written.
func (s *Service) Flush() {
	s.pending.Wait()
}

// LogCreate records the creation of an author or book.
func (s *Service) LogCreate(entityType string, entityID uint, entityName, ipAddr string, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      entityType + "_create",
		Description: fmt.Sprintf("Created %s: %s", entityType, entityName),
		EntityType:  entityType,
		IPAddress:   ipAddr,
		Status:      entities.AuditStatusSuccess,
	}
	if entityID != 0 {
		event.EntityID = &entityID
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// LogDelete records a deletion. cascade marks an author removed because its
// last book was deleted.
func (s *Service) LogDelete(entityType string, entityID uint, entityName, ipAddr string, cascade bool) {
	action := entityType + "_delete"
	if cascade {
		action = entityType + "_delete_cascade"
	}

	event := &entities.AuditEvent{
		EventType:   entities.AuditEventDelete,
		Action:      action,
		Description: fmt.Sprintf("Deleted %s: %s", entityType, entityName),
		EntityType:  entityType,
		EntityID:    &entityID,
		IPAddress:   ipAddr,
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// GetEventsByEntity retrieves paginated audit events for one entity type.
func (s *Service) GetEventsByEntity(entityType string, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByEntity(entityType, limit, offset)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
