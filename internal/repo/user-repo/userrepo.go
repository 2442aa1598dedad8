package userrepo

import (
	"context"
	"errors"
	"time"

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

const userColumns = `id, login, password_hash, role, plan_type, referral_code, referred_by,
	referral_count, pair_count, first_cashback_state, is_active, activated_at, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.PlanType, &u.ReferralCode, &u.ReferredBy,
		&u.ReferralCount, &u.PairCount, &u.FirstCashback, &u.IsActive, &u.ActivatedAt, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// FindByIDForUpdate locks the user row for the rest of the transaction.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id)
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE referral_code = $1", code)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role, referred_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, plan_type, first_cashback_state, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role, user.ReferredBy).
		Scan(&user.ID, &user.PlanType, &user.FirstCashback, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return user, nil
}

func (repo *Repository) Activate(ctx context.Context, userID int, plan domain.PlanType, at time.Time) error {
	query := `UPDATE users SET plan_type = $2, is_active = TRUE, activated_at = $3 WHERE id = $1`
	tag, err := repo.db.Exec(ctx, query, userID, plan, at)
	if err != nil {
		zap.L().Error("can't activate user", zap.Int("userID", userID), zap.Error(err))
		return domain.StoreError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// AssignReferralCode sets the code only if the user has none and reports whether it did.
func (repo *Repository) AssignReferralCode(ctx context.Context, userID int, code string) (bool, error) {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET referral_code = $2 WHERE id = $1 AND referral_code IS NULL`, userID, code)
	if err != nil {
		zap.L().Error("can't assign referral code", zap.Int("userID", userID), zap.Error(err))
		return false, domain.StoreError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) IncrementReferralCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := repo.db.QueryRow(ctx, `UPDATE users SET referral_count = referral_count + 1 WHERE id = $1 RETURNING referral_count`, userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't increment referral count", zap.Int("userID", userID), zap.Error(err))
		return 0, domain.StoreError(err)
	}
	return count, nil
}

// AdvancePairCount raises pair_count to total only if the stored value is lower.
func (repo *Repository) AdvancePairCount(ctx context.Context, userID int, total int) (bool, error) {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET pair_count = $2 WHERE id = $1 AND pair_count < $2`, userID, total)
	if err != nil {
		zap.L().Error("can't advance pair count", zap.Int("userID", userID), zap.Error(err))
		return false, domain.StoreError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// AddReward appends a milestone reward. A repeated (user, type, tier) is ignored.
func (repo *Repository) AddReward(ctx context.Context, reward *domain.Reward) error {
	query := `
		INSERT INTO user_rewards (user_id, type, pair_tier, awarded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, type, pair_tier) DO NOTHING
	`
	if _, err := repo.db.Exec(ctx, query, reward.UserID, reward.Type, reward.PairTier, reward.AwardedAt); err != nil {
		zap.L().Error("can't save reward", zap.Int("userID", reward.UserID), zap.Error(err))
		return domain.StoreError(err)
	}
	return nil
}

func (repo *Repository) ListRewards(ctx context.Context, userID int) ([]domain.Reward, error) {
	rows, err := repo.db.Query(ctx, `SELECT id, user_id, type, pair_tier, awarded_at FROM user_rewards WHERE user_id = $1 ORDER BY pair_tier`, userID)
	if err != nil {
		zap.L().Error("failed to fetch rewards", zap.Int("userID", userID), zap.Error(err))
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var r domain.Reward
		if err := rows.Scan(&r.ID, &r.UserID, &r.Type, &r.PairTier, &r.AwardedAt); err != nil {
			zap.L().Error("failed to scan reward row", zap.Error(err))
			return nil, domain.StoreError(err)
		}
		rewards = append(rewards, r)
	}
	return rewards, domain.StoreError(rows.Err())
}
