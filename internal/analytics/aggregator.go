package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/entity"
	"golang.org/x/sync/errgroup"
)

// Aggregator produces dashboard-ready reports over the four record
// collections. It holds no state between calls; every report is issued as a
// concurrent fan-out of independent read queries followed by a pure
// in-memory reduction. Any failed query aborts the whole report.
type Aggregator struct {
	repo dependency.Repository
}

// New creates an aggregator on top of the given read-side repository.
func New(repo dependency.Repository) *Aggregator {
	return &Aggregator{repo: repo}
}

// DashboardStats assembles the admin landing-page snapshot. All underlying
// queries run concurrently; the barrier is g.Wait, after which only local
// results are combined. Growth figures compare the in-progress month against
// the whole previous calendar month.
func (a *Aggregator) DashboardStats(ctx context.Context, now time.Time) (*entity.DashboardStats, error) {
	months, err := ComputeWindows(PeriodMonthly, now)
	if err != nil {
		return nil, err
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		totalUsers, newToday          int
		totalHostels, verifiedHostels int
		totalBookings, activeBookings int
		monthBookings, prevBookings   int
		monthVerified, prevVerified   int
		totalRevenue, monthRevenue    decimal.Decimal
		prevRevenue                   decimal.Decimal
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalUsers, err = a.repo.Users().CountUsers(ctx)
		return wrap("total users", err)
	})
	g.Go(func() (err error) {
		newToday, err = a.repo.Users().CountUsersCreatedSince(ctx, midnight)
		return wrap("new users today", err)
	})
	g.Go(func() (err error) {
		totalHostels, err = a.repo.Hostels().CountHostels(ctx)
		return wrap("total hostels", err)
	})
	g.Go(func() (err error) {
		verifiedHostels, err = a.repo.Hostels().CountVerifiedHostels(ctx)
		return wrap("verified hostels", err)
	})
	g.Go(func() (err error) {
		totalBookings, err = a.repo.Bookings().CountBookings(ctx)
		return wrap("total bookings", err)
	})
	g.Go(func() (err error) {
		activeBookings, err = a.repo.Bookings().CountBookingsByStatus(ctx,
			entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn)
		return wrap("active bookings", err)
	})
	g.Go(func() (err error) {
		totalRevenue, err = a.repo.Payments().SumCompletedPayments(ctx)
		return wrap("total revenue", err)
	})
	g.Go(func() (err error) {
		monthRevenue, err = a.repo.Payments().SumCompletedPaymentsBetween(ctx,
			months.Current.Start, months.Current.End)
		return wrap("month revenue", err)
	})
	g.Go(func() (err error) {
		prevRevenue, err = a.repo.Payments().SumCompletedPaymentsBetween(ctx,
			months.Previous.Start, months.Previous.End)
		return wrap("previous month revenue", err)
	})
	g.Go(func() (err error) {
		monthBookings, err = a.repo.Bookings().CountBookingsCreatedBetween(ctx,
			months.Current.Start, months.Current.End)
		return wrap("month bookings", err)
	})
	g.Go(func() (err error) {
		prevBookings, err = a.repo.Bookings().CountBookingsCreatedBetween(ctx,
			months.Previous.Start, months.Previous.End)
		return wrap("previous month bookings", err)
	})
	g.Go(func() (err error) {
		monthVerified, err = a.repo.Users().CountUsersVerifiedBetween(ctx,
			months.Current.Start, months.Current.End)
		return wrap("month verified users", err)
	})
	g.Go(func() (err error) {
		prevVerified, err = a.repo.Users().CountUsersVerifiedBetween(ctx,
			months.Previous.Start, months.Previous.End)
		return wrap("previous month verified users", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.DashboardStats{
		TotalUsers:      totalUsers,
		NewUsersToday:   newToday,
		TotalHostels:    totalHostels,
		VerifiedHostels: verifiedHostels,
		TotalBookings:   totalBookings,
		ActiveBookings:  activeBookings,
		TotalRevenue:    totalRevenue,
		MonthRevenue:    monthRevenue,
		UserGrowth:      GrowthInt(monthVerified, prevVerified),
		BookingGrowth:   GrowthInt(monthBookings, prevBookings),
		RevenueGrowth:   GrowthDecimal(monthRevenue, prevRevenue),
	}, nil
}

// UsersOverview reports user totals. Weekly and Monthly are cumulative
// counts of users created since the window start; growth compares users
// created this month against the whole previous calendar month.
func (a *Aggregator) UsersOverview(ctx context.Context, now time.Time) (*entity.UsersOverview, error) {
	months, err := ComputeWindows(PeriodMonthly, now)
	if err != nil {
		return nil, err
	}

	var (
		total, weekly, monthly, prevMonth int
		byRole                            []entity.LabelCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = a.repo.Users().CountUsers(ctx)
		return wrap("total users", err)
	})
	g.Go(func() (err error) {
		weekly, err = a.repo.Users().CountUsersCreatedSince(ctx, now.AddDate(0, 0, -7))
		return wrap("weekly users", err)
	})
	g.Go(func() (err error) {
		monthly, err = a.repo.Users().CountUsersCreatedSince(ctx, months.Current.Start)
		return wrap("monthly users", err)
	})
	g.Go(func() (err error) {
		prevMonth, err = a.repo.Users().CountUsersCreatedBetween(ctx,
			months.Previous.Start, months.Previous.End)
		return wrap("previous month users", err)
	})
	g.Go(func() (err error) {
		byRole, err = a.repo.Users().GroupUsersByRole(ctx)
		return wrap("users by role", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.UsersOverview{
		Total:   total,
		Weekly:  weekly,
		Monthly: monthly,
		Growth:  GrowthInt(monthly, prevMonth),
		ByRole:  ReduceCounts(byRole, PassThrough),
	}, nil
}

func (a *Aggregator) BookingsOverview(ctx context.Context, now time.Time) (*entity.BookingsOverview, error) {
	months, err := ComputeWindows(PeriodMonthly, now)
	if err != nil {
		return nil, err
	}

	var (
		total, monthly, prevMonth int
		byStatus, byType          []entity.LabelCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = a.repo.Bookings().CountBookings(ctx)
		return wrap("total bookings", err)
	})
	g.Go(func() (err error) {
		monthly, err = a.repo.Bookings().CountBookingsCreatedBetween(ctx,
			months.Current.Start, months.Current.End)
		return wrap("monthly bookings", err)
	})
	g.Go(func() (err error) {
		prevMonth, err = a.repo.Bookings().CountBookingsCreatedBetween(ctx,
			months.Previous.Start, months.Previous.End)
		return wrap("previous month bookings", err)
	})
	g.Go(func() (err error) {
		byStatus, err = a.repo.Bookings().GroupBookingsByStatus(ctx)
		return wrap("bookings by status", err)
	})
	g.Go(func() (err error) {
		byType, err = a.repo.Bookings().GroupBookingsByType(ctx)
		return wrap("bookings by type", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.BookingsOverview{
		Total:    total,
		Monthly:  monthly,
		Growth:   GrowthInt(monthly, prevMonth),
		ByStatus: ReduceCounts(byStatus, PassThrough),
		ByType:   ReduceCounts(byType, PassThrough),
	}, nil
}

// HostelsOverview reports hostel verification and booking-availability
// breakdowns. The verification rate is 0 when no hostels exist.
func (a *Aggregator) HostelsOverview(ctx context.Context) (*entity.HostelsOverview, error) {
	var (
		total, verified, accepting int
		byVerification, byAccept   []entity.LabelCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = a.repo.Hostels().CountHostels(ctx)
		return wrap("total hostels", err)
	})
	g.Go(func() (err error) {
		verified, err = a.repo.Hostels().CountVerifiedHostels(ctx)
		return wrap("verified hostels", err)
	})
	g.Go(func() (err error) {
		accepting, err = a.repo.Hostels().CountAcceptingHostels(ctx)
		return wrap("accepting hostels", err)
	})
	g.Go(func() (err error) {
		byVerification, err = a.repo.Hostels().GroupHostelsByVerification(ctx)
		return wrap("hostels by verification", err)
	})
	g.Go(func() (err error) {
		byAccept, err = a.repo.Hostels().GroupHostelsByAccepting(ctx)
		return wrap("hostels by accepting", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rate float64
	if total > 0 {
		rate = math.Round(float64(verified)/float64(total)*1000) / 10
	}

	return &entity.HostelsOverview{
		Total:                total,
		Verified:             verified,
		AcceptingBookings:    accepting,
		VerificationRate:     rate,
		ByVerificationStatus: ReduceCounts(byVerification, BoolLabels(LabelVerified, LabelUnverified)),
		ByBookingStatus:      ReduceCounts(byAccept, BoolLabels(LabelAccepting, LabelClosed)),
	}, nil
}

// RevenueOverview reports payment sums for the selected period. The method
// and status breakdowns cover the current window only.
func (a *Aggregator) RevenueOverview(ctx context.Context, period string, now time.Time) (*entity.RevenueOverview, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	windows, err := ComputeWindows(p, now)
	if err != nil {
		return nil, err
	}

	var (
		total, previous decimal.Decimal
		byMethod        []entity.LabelSum
		byStatus        []entity.LabelCount
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = a.repo.Payments().SumCompletedPaymentsBetween(ctx,
			windows.Current.Start, windows.Current.End)
		return wrap("current revenue", err)
	})
	g.Go(func() (err error) {
		previous, err = a.repo.Payments().SumCompletedPaymentsBetween(ctx,
			windows.Previous.Start, windows.Previous.End)
		return wrap("previous revenue", err)
	})
	g.Go(func() (err error) {
		byMethod, err = a.repo.Payments().GroupPaymentAmountsByMethod(ctx,
			windows.Current.Start, windows.Current.End)
		return wrap("revenue by method", err)
	})
	g.Go(func() (err error) {
		byStatus, err = a.repo.Payments().GroupPaymentsByStatus(ctx,
			windows.Current.Start, windows.Current.End)
		return wrap("payments by status", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.RevenueOverview{
		Total:    total,
		Previous: previous,
		Growth:   GrowthDecimal(total, previous),
		ByMethod: ReduceSums(byMethod, PassThrough),
		ByStatus: ReduceCounts(byStatus, PassThrough),
		Period:   string(p),
	}, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
