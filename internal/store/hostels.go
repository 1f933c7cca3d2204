package store

import (
	"context"
	"fmt"

	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/entity"
)

type hostelsStore struct {
	*MYSQLStore
}

// Hostels returns an object implementing dependency.Hostels interface
func (ms *MYSQLStore) Hostels() dependency.Hostels {
	return &hostelsStore{
		MYSQLStore: ms,
	}
}

func (hs *hostelsStore) CountHostels(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, hs.DB(), `SELECT COUNT(*) FROM hostel`, map[string]any{})
}

func (hs *hostelsStore) CountVerifiedHostels(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM hostel WHERE is_verified = 1`
	return QueryCountNamed(ctx, hs.DB(), query, map[string]any{})
}

func (hs *hostelsStore) CountAcceptingHostels(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM hostel WHERE accepting_bookings = 1`
	return QueryCountNamed(ctx, hs.DB(), query, map[string]any{})
}

func (hs *hostelsStore) GroupHostelsByVerification(ctx context.Context) ([]entity.LabelCount, error) {
	query := `SELECT is_verified AS label, COUNT(*) AS cnt FROM hostel GROUP BY is_verified`
	rows, err := QueryListNamed[entity.LabelCount](ctx, hs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't group hostels by verification: %w", err)
	}
	return rows, nil
}

func (hs *hostelsStore) GroupHostelsByAccepting(ctx context.Context) ([]entity.LabelCount, error) {
	query := `SELECT accepting_bookings AS label, COUNT(*) AS cnt FROM hostel GROUP BY accepting_bookings`
	rows, err := QueryListNamed[entity.LabelCount](ctx, hs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't group hostels by booking availability: %w", err)
	}
	return rows, nil
}
