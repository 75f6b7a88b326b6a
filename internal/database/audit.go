package database

import (
	"context"

	"report-console/internal/models"
)

// Audit writes one journal row. The actor is taken from the entry as given.
func (r *Repository) Audit(ctx context.Context, e models.AuditEntry) error {
	record := AuditLog{
		UserID:   e.ActorID,
		Username: e.Actor,
		Entity:   e.Entity,
		EntityID: e.EntityID,
		Action:   e.Action,
		Details:  e.Details,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *Repository) ListAuditLogs(ctx context.Context, pageNo, limit int) ([]models.AuditEntry, int64, error) {
	db := r.db.WithContext(ctx)
	var total int64
	if err := db.Model(&AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []AuditLog
	if err := page(db, pageNo, limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]models.AuditEntry, 0, len(rows))
	for _, l := range rows {
		out = append(out, models.AuditEntry{
			ID:        l.ID,
			ActorID:   l.UserID,
			Actor:     l.Username,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Action:    l.Action,
			Details:   l.Details,
			CreatedAt: stamp(l.CreatedAt),
		})
	}
	return out, total, nil
}
