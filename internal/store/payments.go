package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/entity"
)

type paymentsStore struct {
	*MYSQLStore
}

// Payments returns an object implementing dependency.Payments interface
func (ms *MYSQLStore) Payments() dependency.Payments {
	return &paymentsStore{
		MYSQLStore: ms,
	}
}

type amountRow struct {
	Total decimal.Decimal `db:"total"`
}

func (ps *paymentsStore) SumCompletedPayments(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) AS total FROM payment WHERE status = :status`
	row, err := QueryNamedOne[amountRow](ctx, ps.DB(), query, map[string]any{
		"status": entity.PaymentStatusCompleted,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't sum completed payments: %w", err)
	}
	return row.Total, nil
}

func (ps *paymentsStore) SumCompletedPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS total FROM payment
		WHERE status = :status AND paid_at >= :from AND paid_at < :to
	`
	row, err := QueryNamedOne[amountRow](ctx, ps.DB(), query, map[string]any{
		"status": entity.PaymentStatusCompleted,
		"from":   from,
		"to":     to,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't sum completed payments in range: %w", err)
	}
	return row.Total, nil
}

func (ps *paymentsStore) GroupPaymentAmountsByMethod(ctx context.Context, from, to time.Time) ([]entity.LabelSum, error) {
	query := `
		SELECT method AS label, COALESCE(SUM(amount), 0) AS total FROM payment
		WHERE status = :status AND paid_at >= :from AND paid_at < :to
		GROUP BY method
	`
	rows, err := QueryListNamed[entity.LabelSum](ctx, ps.DB(), query, map[string]any{
		"status": entity.PaymentStatusCompleted,
		"from":   from,
		"to":     to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't group payment amounts by method: %w", err)
	}
	return rows, nil
}

func (ps *paymentsStore) GroupPaymentsByStatus(ctx context.Context, from, to time.Time) ([]entity.LabelCount, error) {
	query := `
		SELECT status AS label, COUNT(*) AS cnt FROM payment
		WHERE paid_at >= :from AND paid_at < :to
		GROUP BY status
	`
	rows, err := QueryListNamed[entity.LabelCount](ctx, ps.DB(), query, map[string]any{
		"from": from,
		"to":   to,
	})
	if err != nil {
		return nil, fmt.Errorf("can't group payments by status: %w", err)
	}
	return rows, nil
}

func (ps *paymentsStore) RecentPayments(ctx context.Context, limit int) ([]entity.RecentPayment, error) {
	query := `
	SELECT
		p.id,
		p.booking_uuid,
		p.amount,
		p.method,
		p.status,
		p.paid_at,
		u.name AS guest_name,
		u.email AS guest_email,
		h.name AS hostel_name
	FROM payment p
	INNER JOIN booking b ON p.booking_uuid = b.uuid
	INNER JOIN user u ON b.user_id = u.id
	INNER JOIN hostel h ON b.hostel_id = h.id
	ORDER BY p.paid_at DESC
	LIMIT :limit`
	rows, err := QueryListNamed[entity.RecentPayment](ctx, ps.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recent payments: %w", err)
	}
	return rows, nil
}
