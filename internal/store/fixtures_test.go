package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stayhive/hostel-manager/internal/entity"
)

func seedUser(ctx context.Context, store *MYSQLStore, id int, name, email string, role entity.UserRole, verifiedAt *time.Time, createdAt time.Time) error {
	params := map[string]any{
		"id":         id,
		"name":       name,
		"email":      email,
		"role":       role,
		"isVerified": verifiedAt != nil,
		"verifiedAt": verifiedAt,
		"createdAt":  createdAt,
	}
	return ExecNamed(ctx, store.DB(), `
		INSERT INTO user (id, name, email, role, is_verified, verified_at, created_at)
		VALUES (:id, :name, :email, :role, :isVerified, :verifiedAt, :createdAt)`, params)
}

func seedHostel(ctx context.Context, store *MYSQLStore, id int, name string, verified, accepting bool) error {
	params := map[string]any{
		"id":        id,
		"name":      name,
		"city":      "Lisbon",
		"verified":  verified,
		"accepting": accepting,
	}
	return ExecNamed(ctx, store.DB(), `
		INSERT INTO hostel (id, name, city, is_verified, accepting_bookings)
		VALUES (:id, :name, :city, :verified, :accepting)`, params)
}

func seedBooking(ctx context.Context, store *MYSQLStore, uuid string, userId, hostelId, roomId int, status entity.BookingStatus, roomType entity.RoomType, createdAt time.Time) error {
	params := map[string]any{
		"uuid":      uuid,
		"userId":    userId,
		"hostelId":  hostelId,
		"roomId":    roomId,
		"status":    status,
		"roomType":  roomType,
		"checkIn":   createdAt.AddDate(0, 0, 1),
		"checkOut":  createdAt.AddDate(0, 0, 3),
		"createdAt": createdAt,
	}
	return ExecNamed(ctx, store.DB(), `
		INSERT INTO booking (uuid, user_id, hostel_id, room_id, status, room_type, check_in, check_out, created_at)
		VALUES (:uuid, :userId, :hostelId, :roomId, :status, :roomType, :checkIn, :checkOut, :createdAt)`, params)
}

func seedRoom(ctx context.Context, store *MYSQLStore, id, hostelId int, roomType entity.RoomType) error {
	params := map[string]any{
		"id":       id,
		"hostelId": hostelId,
		"name":     "Room",
		"roomType": roomType,
		"price":    decimal.NewFromInt(25),
	}
	return ExecNamed(ctx, store.DB(), `
		INSERT INTO room (id, hostel_id, name, room_type, price_per_night)
		VALUES (:id, :hostelId, :name, :roomType, :price)`, params)
}

func seedPayment(ctx context.Context, store *MYSQLStore, bookingUuid string, amount decimal.Decimal, method entity.PaymentMethod, status entity.PaymentStatus, paidAt time.Time) error {
	params := map[string]any{
		"bookingUuid": bookingUuid,
		"amount":      amount,
		"method":      method,
		"status":      status,
		"paidAt":      paidAt,
	}
	return ExecNamed(ctx, store.DB(), `
		INSERT INTO payment (booking_uuid, amount, method, status, paid_at)
		VALUES (:bookingUuid, :amount, :method, :status, :paidAt)`, params)
}
