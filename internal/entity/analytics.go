package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TimeWindow is a half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// PeriodPair holds the current reporting window and the window it is
// compared against. For daily and weekly periods the windows are
// contiguous; for monthly the previous window is the whole preceding
// calendar month even when the current month is still in progress.
type PeriodPair struct {
	Current  TimeWindow `json:"current"`
	Previous TimeWindow `json:"previous"`
}

// LabelCount is a raw grouped-count row as it comes off a query.
// Label is nullable: rows with a NULL grouping column are still reported.
type LabelCount struct {
	Label sql.NullString `db:"label"`
	Count int            `db:"cnt"`
}

// LabelSum is a raw grouped-sum row as it comes off a query.
type LabelSum struct {
	Label sql.NullString  `db:"label"`
	Sum   decimal.Decimal `db:"total"`
}

// GroupedCounts maps a canonical label to an observed count.
type GroupedCounts map[string]int

// GroupedSums maps a canonical label to an observed monetary sum.
type GroupedSums map[string]decimal.Decimal

type ActivityType string

const (
	ActivityTypeUser    ActivityType = "user"
	ActivityTypeBooking ActivityType = "booking"
	ActivityTypePayment ActivityType = "payment"
)

type ActivityActor struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Activity is a normalized domain event used to build the unified
// recent-events feed. Values are built fresh per request and never stored.
type Activity struct {
	Id          string         `json:"id"`
	Type        ActivityType   `json:"type"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Actor       *ActivityActor `json:"actor,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// DashboardStats is the aggregate snapshot behind the admin landing page.
// Constructed fresh per request, never cached.
type DashboardStats struct {
	TotalUsers      int             `json:"totalUsers"`
	NewUsersToday   int             `json:"newUsersToday"`
	TotalHostels    int             `json:"totalHostels"`
	VerifiedHostels int             `json:"verifiedHostels"`
	TotalBookings   int             `json:"totalBookings"`
	ActiveBookings  int             `json:"activeBookings"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	MonthRevenue    decimal.Decimal `json:"monthRevenue"`
	UserGrowth      float64         `json:"userGrowth"`
	BookingGrowth   float64         `json:"bookingGrowth"`
	RevenueGrowth   float64         `json:"revenueGrowth"`
}

// UsersOverview reports user totals. Weekly and Monthly are cumulative
// counts of users created since the window start, not per-bucket deltas.
type UsersOverview struct {
	Total   int           `json:"total"`
	Weekly  int           `json:"weekly"`
	Monthly int           `json:"monthly"`
	Growth  float64       `json:"growth"`
	ByRole  GroupedCounts `json:"byRole"`
}

type BookingsOverview struct {
	Total    int           `json:"total"`
	Monthly  int           `json:"monthly"`
	Growth   float64       `json:"growth"`
	ByStatus GroupedCounts `json:"byStatus"`
	ByType   GroupedCounts `json:"byType"`
}

type HostelsOverview struct {
	Total                int           `json:"total"`
	Verified             int           `json:"verified"`
	AcceptingBookings    int           `json:"acceptingBookings"`
	VerificationRate     float64       `json:"verificationRate"`
	ByVerificationStatus GroupedCounts `json:"byVerificationStatus"`
	ByBookingStatus      GroupedCounts `json:"byBookingStatus"`
}

type RevenueOverview struct {
	Total    decimal.Decimal `json:"total"`
	Previous decimal.Decimal `json:"previous"`
	Growth   float64         `json:"growth"`
	ByMethod GroupedSums     `json:"byMethod"`
	ByStatus GroupedCounts   `json:"byStatus"`
	Period   string          `json:"period"`
}
