package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	UUID      string        `db:"uuid" json:"uuid"`
	UserId    int           `db:"user_id" json:"userId"`
	HostelId  int           `db:"hostel_id" json:"hostelId"`
	RoomId    int           `db:"room_id" json:"roomId"`
	Status    BookingStatus `db:"status" json:"status"`
	Type      RoomType      `db:"room_type" json:"type"`
	CheckIn   time.Time     `db:"check_in" json:"checkIn"`
	CheckOut  time.Time     `db:"check_out" json:"checkOut"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

// RecentBooking carries the guest and hostel names needed to render
// a booking as a feed entry without extra lookups.
type RecentBooking struct {
	Booking
	GuestName  string `db:"guest_name" json:"guestName"`
	GuestEmail string `db:"guest_email" json:"guestEmail"`
	HostelName string `db:"hostel_name" json:"hostelName"`
}
