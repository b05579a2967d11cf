package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// Entry records one sensitive operation for later review: who did
// what to which resource, and from where.
type Entry struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Username  string
	Role      string
	Action    string // e.g. "order.cancel", "inventory.adjust"
	Resource  string // Resource type acted on
	TargetID  string // Identifier of the affected record
	Detail    string // Free-form context, JSON encoded by the caller
	IP        string
	RequestID string
	CreatedAt time.Time
}

// NewEntry creates an audit entry
func NewEntry(action, resource string) (*Entry, error) {
	if action == "" {
		return nil, shared.NewDomainError("INVALID_ACTION", "Audit action cannot be empty")
	}
	if resource == "" {
		return nil, shared.NewDomainError("INVALID_RESOURCE", "Audit resource cannot be empty")
	}

	return &Entry{
		ID:        uuid.New(),
		Action:    action,
		Resource:  resource,
		CreatedAt: time.Now(),
	}, nil
}

// Repository defines the interface for the append-only audit log
type Repository interface {
	// Create appends an entry
	Create(ctx context.Context, entry *Entry) error

	// FindByUser returns a user's entries within a window, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*Entry, error)

	// FindByResource returns entries touching a resource, newest first
	FindByResource(ctx context.Context, resource, targetID string, limit int) ([]*Entry, error)
}
