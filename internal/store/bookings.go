package store

import (
	"context"
	"fmt"
	"time"

	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/entity"
)

type bookingsStore struct {
	*MYSQLStore
}

// Bookings returns an object implementing dependency.Bookings interface
func (ms *MYSQLStore) Bookings() dependency.Bookings {
	return &bookingsStore{
		MYSQLStore: ms,
	}
}

func (bs *bookingsStore) CountBookings(ctx context.Context) (int, error) {
	return QueryCountNamed(ctx, bs.DB(), `SELECT COUNT(*) FROM booking`, map[string]any{})
}

func (bs *bookingsStore) CountBookingsByStatus(ctx context.Context, statuses ...entity.BookingStatus) (int, error) {
	if len(statuses) == 0 {
		return 0, fmt.Errorf("no booking statuses provided")
	}
	query := `SELECT COUNT(*) FROM booking WHERE status IN (:statuses)`
	return QueryCountNamed(ctx, bs.DB(), query, map[string]any{
		"statuses": statuses,
	})
}

func (bs *bookingsStore) CountBookingsCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM booking WHERE created_at >= :from AND created_at < :to`
	return QueryCountNamed(ctx, bs.DB(), query, map[string]any{"from": from, "to": to})
}

func (bs *bookingsStore) GroupBookingsByStatus(ctx context.Context) ([]entity.LabelCount, error) {
	query := `SELECT status AS label, COUNT(*) AS cnt FROM booking GROUP BY status`
	rows, err := QueryListNamed[entity.LabelCount](ctx, bs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't group bookings by status: %w", err)
	}
	return rows, nil
}

func (bs *bookingsStore) GroupBookingsByType(ctx context.Context) ([]entity.LabelCount, error) {
	query := `SELECT room_type AS label, COUNT(*) AS cnt FROM booking GROUP BY room_type`
	rows, err := QueryListNamed[entity.LabelCount](ctx, bs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't group bookings by room type: %w", err)
	}
	return rows, nil
}

func (bs *bookingsStore) RecentBookings(ctx context.Context, limit int) ([]entity.RecentBooking, error) {
	query := `
	SELECT
		b.uuid,
		b.user_id,
		b.hostel_id,
		b.room_id,
		b.status,
		b.room_type,
		b.check_in,
		b.check_out,
		b.created_at,
		u.name AS guest_name,
		u.email AS guest_email,
		h.name AS hostel_name
	FROM booking b
	INNER JOIN user u ON b.user_id = u.id
	INNER JOIN hostel h ON b.hostel_id = h.id
	ORDER BY b.created_at DESC
	LIMIT :limit`
	rows, err := QueryListNamed[entity.RecentBooking](ctx, bs.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recent bookings: %w", err)
	}
	return rows, nil
}
