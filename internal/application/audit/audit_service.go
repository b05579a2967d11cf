package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/audit"
)

// Service records sensitive operations to the append-only audit log
// and serves review queries. Recording must never fail a business
// operation, so write errors are logged and swallowed.
type Service struct {
	auditRepo audit.Repository
	logger    *zap.Logger
}

// NewService creates a new audit service
func NewService(auditRepo audit.Repository, logger *zap.Logger) *Service {
	return &Service{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// RecordInput describes one operation to log
type RecordInput struct {
	UserID    *uuid.UUID
	Username  string
	Role      string
	Action    string
	Resource  string
	TargetID  string
	Detail    string
	IP        string
	RequestID string
}

// Record appends an entry to the audit log
func (s *Service) Record(ctx context.Context, input RecordInput) {
	entry, err := audit.NewEntry(input.Action, input.Resource)
	if err != nil {
		s.logger.Error("Invalid audit entry", zap.Error(err),
			zap.String("action", input.Action),
			zap.String("resource", input.Resource))
		return
	}
	entry.UserID = input.UserID
	entry.Username = input.Username
	entry.Role = input.Role
	entry.TargetID = input.TargetID
	entry.Detail = input.Detail
	entry.IP = input.IP
	entry.RequestID = input.RequestID

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to write audit entry", zap.Error(err),
			zap.String("action", input.Action),
			zap.String("resource", input.Resource))
	}
}

// EntryInfo contains audit data exposed to API clients
type EntryInfo struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Username  string
	Role      string
	Action    string
	Resource  string
	TargetID  string
	Detail    string
	IP        string
	RequestID string
	CreatedAt time.Time
}

func newEntryInfo(entry *audit.Entry) EntryInfo {
	return EntryInfo{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Username:  entry.Username,
		Role:      entry.Role,
		Action:    entry.Action,
		Resource:  entry.Resource,
		TargetID:  entry.TargetID,
		Detail:    entry.Detail,
		IP:        entry.IP,
		RequestID: entry.RequestID,
		CreatedAt: entry.CreatedAt,
	}
}

// ListByUser returns a user's entries within a window, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]EntryInfo, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := s.auditRepo.FindByUser(ctx, userID, from, to, limit)
	if err != nil {
		return nil, err
	}
	infos := make([]EntryInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, newEntryInfo(entry))
	}
	return infos, nil
}

// ListByResource returns entries touching a resource, newest first
func (s *Service) ListByResource(ctx context.Context, resource, targetID string, limit int) ([]EntryInfo, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := s.auditRepo.FindByResource(ctx, resource, targetID, limit)
	if err != nil {
		return nil, err
	}
	infos := make([]EntryInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, newEntryInfo(entry))
	}
	return infos, nil
}
