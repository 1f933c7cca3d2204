package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/entity"
)

type usersStore struct {
	*MYSQLStore
}

// Users returns an object implementing dependency.Users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &usersStore{
		MYSQLStore: ms,
	}
}

func (us *usersStore) CountUsers(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, us.DB(), `SELECT COUNT(*) FROM user`, map[string]any{})
}

func (us *usersStore) CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM user WHERE created_at >= :since`
	return QueryCountNamed(ctx, us.DB(), query, map[string]any{"since": since})
}

func (us *usersStore) CountUsersCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM user WHERE created_at >= :from AND created_at < :to`
	return QueryCountNamed(ctx, us.DB(), query, map[string]any{"from": from, "to": to})
}

func (us *usersStore) CountUsersVerifiedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM user
		WHERE is_verified = 1 AND verified_at >= :from AND verified_at < :to
	`
	return QueryCountNamed(ctx, us.DB(), query, map[string]any{"from": from, "to": to})
}

func (us *usersStore) GroupUsersByRole(ctx context.Context) ([]entity.LabelCount, error) {
	query := `SELECT role AS label, COUNT(*) AS cnt FROM user GROUP BY role`
	rows, err := QueryListNamed[entity.LabelCount](ctx, us.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't group users by role: %w", err)
	}
	return rows, nil
}

func (us *usersStore) RecentlyVerifiedUsers(ctx context.Context, limit int) ([]entity.User, error) {
	query := `
		SELECT id, name, email, role, is_verified, verified_at, created_at
		FROM user
		WHERE is_verified = 1
		ORDER BY verified_at DESC
		LIMIT :limit
	`
	rows, err := QueryListNamed[entity.User](ctx, us.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recently verified users: %w", err)
	}
	return rows, nil
}
