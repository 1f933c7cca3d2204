package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hostel struct {
	Id                int       `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	City              string    `db:"city" json:"city"`
	IsVerified        bool      `db:"is_verified" json:"isVerified"`
	AcceptingBookings bool      `db:"accepting_bookings" json:"acceptingBookings"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
}

type RoomType string

const (
	RoomTypeDorm    RoomType = "dorm"
	RoomTypePrivate RoomType = "private"
)

type Room struct {
	Id            int             `db:"id" json:"id"`
	HostelId      int             `db:"hostel_id" json:"hostelId"`
	Name          string          `db:"name" json:"name"`
	Type          RoomType        `db:"room_type" json:"type"`
	Beds          int             `db:"beds" json:"beds"`
	PricePerNight decimal.Decimal `db:"price_per_night" json:"pricePerNight"`
}
