package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stayhive/hostel-manager/internal/entity"
)

type (
	// Users exposes the read capabilities the analytics engine needs over
	// the user collection. All methods issue plain consistent reads.
	Users interface {
		CountUsers(ctx context.Context) (int, error)
		CountUsersCreatedSince(ctx context.Context, since time.Time) (int, error)
		CountUsersCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
		CountUsersVerifiedBetween(ctx context.Context, from, to time.Time) (int, error)
		GroupUsersByRole(ctx context.Context) ([]entity.LabelCount, error)
		// RecentlyVerifiedUsers returns up to limit verified users,
		// most recently verified first.
		RecentlyVerifiedUsers(ctx context.Context, limit int) ([]entity.User, error)
	}

	Bookings interface {
		CountBookings(ctx context.Context) (int, error)
		CountBookingsByStatus(ctx context.Context, statuses ...entity.BookingStatus) (int, error)
		CountBookingsCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
		GroupBookingsByStatus(ctx context.Context) ([]entity.LabelCount, error)
		GroupBookingsByType(ctx context.Context) ([]entity.LabelCount, error)
		// RecentBookings returns up to limit bookings joined with guest and
		// hostel names, most recently created first.
		RecentBookings(ctx context.Context, limit int) ([]entity.RecentBooking, error)
	}

	Hostels interface {
		CountHostels(ctx context.Context) (int, error)
		CountVerifiedHostels(ctx context.Context) (int, error)
		CountAcceptingHostels(ctx context.Context) (int, error)
		GroupHostelsByVerification(ctx context.Context) ([]entity.LabelCount, error)
		GroupHostelsByAccepting(ctx context.Context) ([]entity.LabelCount, error)
	}

	Payments interface {
		// SumCompletedPayments sums completed payment amounts over all time.
		SumCompletedPayments(ctx context.Context) (decimal.Decimal, error)
		// SumCompletedPaymentsBetween sums completed payment amounts with
		// paid_at in [from, to).
		SumCompletedPaymentsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
		GroupPaymentAmountsByMethod(ctx context.Context, from, to time.Time) ([]entity.LabelSum, error)
		GroupPaymentsByStatus(ctx context.Context, from, to time.Time) ([]entity.LabelCount, error)
		// RecentPayments returns up to limit payments joined with payer and
		// hostel names, most recently paid first.
		RecentPayments(ctx context.Context, limit int) ([]entity.RecentPayment, error)
	}

	Admin interface {
		PasswordHashByUsername(ctx context.Context, username string) (string, error)
		AddAdmin(ctx context.Context, username, pwHash string) error
		DeleteAdmin(ctx context.Context, username string) error
		ChangePassword(ctx context.Context, username, newHash string) error
	}

	// Repository is the full read-side surface of the store.
	Repository interface {
		Users() Users
		Bookings() Bookings
		Hostels() Hostels
		Payments() Payments
		Admin() Admin
		Close()
	}

	// Analytics is the report-producing surface consumed by the HTTP layer.
	Analytics interface {
		DashboardStats(ctx context.Context, now time.Time) (*entity.DashboardStats, error)
		UsersOverview(ctx context.Context, now time.Time) (*entity.UsersOverview, error)
		BookingsOverview(ctx context.Context, now time.Time) (*entity.BookingsOverview, error)
		HostelsOverview(ctx context.Context) (*entity.HostelsOverview, error)
		RevenueOverview(ctx context.Context, period string, now time.Time) (*entity.RevenueOverview, error)
		RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error)
	}

	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
