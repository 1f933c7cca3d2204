package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/stayhive/hostel-manager/internal/entity"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultFeedLimit is used when the caller supplies no limit.
	DefaultFeedLimit = 10

	// feedSourceFetch is how many records each event source contributes.
	// It is fixed rather than derived from the requested limit, so the
	// feed can never return more than 3*feedSourceFetch items however
	// large the limit is.
	feedSourceFetch = 5
)

// RecentActivities merges the latest events from the three event sources
// (verified users, bookings, payments) into one feed, newest first. The
// three fetches run concurrently; merging and sorting happen after the
// barrier. The sort is stable so records sharing a timestamp keep their
// insertion order (users, then bookings, then payments) and results are
// deterministic for identical inputs.
func (a *Aggregator) RecentActivities(ctx context.Context, limit int) ([]entity.Activity, error) {
	if limit <= 0 {
		limit = DefaultFeedLimit
	}

	var (
		users    []entity.User
		bookings []entity.RecentBooking
		payments []entity.RecentPayment
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = a.repo.Users().RecentlyVerifiedUsers(ctx, feedSourceFetch)
		return wrap("recent users", err)
	})
	g.Go(func() (err error) {
		bookings, err = a.repo.Bookings().RecentBookings(ctx, feedSourceFetch)
		return wrap("recent bookings", err)
	})
	g.Go(func() (err error) {
		payments, err = a.repo.Payments().RecentPayments(ctx, feedSourceFetch)
		return wrap("recent payments", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	activities := make([]entity.Activity, 0, len(users)+len(bookings)+len(payments))
	for _, u := range users {
		activities = append(activities, userActivity(u))
	}
	for _, b := range bookings {
		activities = append(activities, bookingActivity(b))
	}
	for _, p := range payments {
		activities = append(activities, paymentActivity(p))
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func userActivity(u entity.User) entity.Activity {
	ts := u.CreatedAt
	if u.VerifiedAt.Valid {
		ts = u.VerifiedAt.Time
	}
	return entity.Activity{
		Id:          fmt.Sprintf("user-%d", u.Id),
		Type:        entity.ActivityTypeUser,
		Action:      "USER_VERIFIED",
		Description: fmt.Sprintf("%s verified their account", u.Name),
		Timestamp:   ts,
		Actor:       &entity.ActivityActor{Id: u.Id, Name: u.Name, Email: u.Email},
		Metadata:    map[string]any{"role": u.Role},
	}
}

func bookingActivity(b entity.RecentBooking) entity.Activity {
	return entity.Activity{
		Id:          fmt.Sprintf("booking-%s", b.UUID),
		Type:        entity.ActivityTypeBooking,
		Action:      strings.ToUpper(string(b.Status)),
		Description: fmt.Sprintf("%s booked a %s room at %s", b.GuestName, b.Type, b.HostelName),
		Timestamp:   b.CreatedAt,
		Actor:       &entity.ActivityActor{Id: b.UserId, Name: b.GuestName, Email: b.GuestEmail},
		Metadata: map[string]any{
			"hostel":   b.HostelName,
			"roomType": b.Type,
			"checkIn":  b.CheckIn.Format(time.RFC3339),
			"checkOut": b.CheckOut.Format(time.RFC3339),
		},
	}
}

func paymentActivity(p entity.RecentPayment) entity.Activity {
	return entity.Activity{
		Id:          fmt.Sprintf("payment-%d", p.Id),
		Type:        entity.ActivityTypePayment,
		Action:      "PAYMENT_" + strings.ToUpper(string(p.Status)),
		Description: fmt.Sprintf("%s paid %s by %s for a stay at %s", p.GuestName, p.Amount.StringFixed(2), p.Method, p.HostelName),
		Timestamp:   p.PaidAt,
		Metadata: map[string]any{
			"amount":      p.Amount.StringFixed(2),
			"method":      p.Method,
			"bookingUuid": p.BookingUUID,
		},
	}
}
