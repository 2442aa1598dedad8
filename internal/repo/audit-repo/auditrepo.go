package auditrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rewardledger/internal/domain"
	"github.com/GlebRadaev/rewardledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create stores an audit record; details are encoded as jsonb by the driver.
func (r *Repository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_logs (actor_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, entry.ActorID, entry.Action, entry.Details).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save audit entry", zap.String("action", entry.Action), zap.Error(err))
		return domain.StoreError(err)
	}
	return nil
}
