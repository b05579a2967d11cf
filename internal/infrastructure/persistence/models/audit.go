package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/audit"
)

// AuditEntryModel is the persistence model for an audit log entry.
type AuditEntryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Username  string     `gorm:"type:varchar(50)"`
	Role      string     `gorm:"type:varchar(20)"`
	Action    string     `gorm:"type:varchar(100);not null;index"`
	Resource  string     `gorm:"type:varchar(50);not null;index"`
	TargetID  string     `gorm:"type:varchar(100);index"`
	Detail    string     `gorm:"type:text"`
	IP        string     `gorm:"type:varchar(45)"`
	RequestID string     `gorm:"type:varchar(64)"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts the persistence model to a domain audit entry.
func (m *AuditEntryModel) ToDomain() *audit.Entry {
	return &audit.Entry{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		Role:      m.Role,
		Action:    m.Action,
		Resource:  m.Resource,
		TargetID:  m.TargetID,
		Detail:    m.Detail,
		IP:        m.IP,
		RequestID: m.RequestID,
		CreatedAt: m.CreatedAt,
	}
}

// AuditEntryModelFromDomain creates a new persistence model from a domain audit entry.
func AuditEntryModelFromDomain(e *audit.Entry) *AuditEntryModel {
	return &AuditEntryModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Username:  e.Username,
		Role:      e.Role,
		Action:    e.Action,
		Resource:  e.Resource,
		TargetID:  e.TargetID,
		Detail:    e.Detail,
		IP:        e.IP,
		RequestID: e.RequestID,
		CreatedAt: e.CreatedAt,
	}
}
