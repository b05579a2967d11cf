package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/audit"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/persistence/models"
)

// GormAuditRepository implements audit.Repository using GORM.
// The log is append-only, there is no update or delete path.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Create appends an audit entry
func (r *GormAuditRepository) Create(ctx context.Context, entry *audit.Entry) error {
	model := models.AuditEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByUser returns a user's entries within a window, newest first
func (r *GormAuditRepository) FindByUser(ctx context.Context, userID uuid.UUID, from, to time.Time, limit int) ([]*audit.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var entryModels []models.AuditEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainAuditEntries(entryModels), nil
}

// FindByResource returns entries touching a resource, newest first
func (r *GormAuditRepository) FindByResource(ctx context.Context, resource, targetID string, limit int) ([]*audit.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := r.db.WithContext(ctx).Where("resource = ?", resource)
	if targetID != "" {
		query = query.Where("target_id = ?", targetID)
	}

	var entryModels []models.AuditEntryModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}
	return toDomainAuditEntries(entryModels), nil
}

func toDomainAuditEntries(entryModels []models.AuditEntryModel) []*audit.Entry {
	entries := make([]*audit.Entry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToDomain()
	}
	return entries
}

var _ audit.Repository = (*GormAuditRepository)(nil)
