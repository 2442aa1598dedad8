package shoprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.db.QueryRow(ctx, `SELECT id, owner_id, name, status FROM shops WHERE id = $1`, id).
		Scan(&shop.ID, &shop.OwnerID, &shop.Name, &shop.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find shop", zap.Int("shopID", id), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return &shop, nil
}
