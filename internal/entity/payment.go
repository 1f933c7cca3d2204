package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	Id          int             `db:"id" json:"id"`
	BookingUUID string          `db:"booking_uuid" json:"bookingUuid"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Method      PaymentMethod   `db:"method" json:"method"`
	Status      PaymentStatus   `db:"status" json:"status"`
	PaidAt      time.Time       `db:"paid_at" json:"paidAt"`
}

// RecentPayment carries the payer and hostel names needed to render
// a payment as a feed entry without extra lookups.
type RecentPayment struct {
	Payment
	GuestName  string `db:"guest_name" json:"guestName"`
	GuestEmail string `db:"guest_email" json:"guestEmail"`
	HostelName string `db:"hostel_name" json:"hostelName"`
}
