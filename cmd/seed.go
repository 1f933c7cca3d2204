package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stayhive/hostel-manager/config"
	"github.com/stayhive/hostel-manager/internal/entity"
	"github.com/stayhive/hostel-manager/internal/store"
)

// seedCmd populates the database with demo data so the analytics
// endpoints return something meaningful on a fresh install.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	RunE:  seed,
}

var demoHostels = []struct {
	name      string
	city      string
	verified  bool
	accepting bool
}{
	{"Sunset Hostel", "Lisbon", true, true},
	{"Harbor Bunk", "Porto", true, true},
	{"City Nest", "Madrid", true, false},
	{"Alfama View", "Lisbon", false, true},
}

var demoNames = []string{
	"Ana Silva", "Ben Carter", "Chloe Dubois", "Diego Ramos", "Emma Fischer",
	"Felix Novak", "Greta Lindqvist", "Hugo Mendes", "Iris Tanaka", "Jonas Weber",
}

func seed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg.DB.Automigrate = true
	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("cannot connect to mysql %v", err.Error())
	}
	defer db.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i, h := range demoHostels {
		if err := store.ExecNamed(ctx, db.DB(), `
			INSERT INTO hostel (id, name, city, is_verified, accepting_bookings, created_at)
			VALUES (:id, :name, :city, :verified, :accepting, :createdAt)`, map[string]any{
			"id":        i + 1,
			"name":      h.name,
			"city":      h.city,
			"verified":  h.verified,
			"accepting": h.accepting,
			"createdAt": now.AddDate(0, -6, 0),
		}); err != nil {
			return err
		}
		for r := 0; r < 2; r++ {
			roomType := entity.RoomTypeDorm
			beds := 6
			if r == 1 {
				roomType = entity.RoomTypePrivate
				beds = 2
			}
			if err := store.ExecNamed(ctx, db.DB(), `
				INSERT INTO room (id, hostel_id, name, room_type, beds, price_per_night)
				VALUES (:id, :hostelId, :name, :roomType, :beds, :price)`, map[string]any{
				"id":       i*2 + r + 1,
				"hostelId": i + 1,
				"name":     fmt.Sprintf("Room %d", r+1),
				"roomType": roomType,
				"beds":     beds,
				"price":    decimal.NewFromInt(int64(15 + rng.Intn(40))),
			}); err != nil {
				return err
			}
		}
	}

	statuses := []entity.BookingStatus{
		entity.BookingStatusPending,
		entity.BookingStatusConfirmed,
		entity.BookingStatusCheckedIn,
		entity.BookingStatusCheckedOut,
		entity.BookingStatusCancelled,
	}
	methods := []entity.PaymentMethod{
		entity.PaymentMethodCard,
		entity.PaymentMethodCash,
		entity.PaymentMethodTransfer,
	}

	for i, name := range demoNames {
		createdAt := now.AddDate(0, 0, -rng.Intn(60))
		var verifiedAt *time.Time
		if rng.Intn(10) < 7 {
			ts := createdAt.Add(time.Duration(rng.Intn(72)) * time.Hour)
			verifiedAt = &ts
		}
		if err := store.ExecNamed(ctx, db.DB(), `
			INSERT INTO user (id, name, email, role, is_verified, verified_at, created_at)
			VALUES (:id, :name, :email, :role, :isVerified, :verifiedAt, :createdAt)`, map[string]any{
			"id":         i + 1,
			"name":       name,
			"email":      fmt.Sprintf("guest%d@example.com", i+1),
			"role":       entity.UserRoleGuest,
			"isVerified": verifiedAt != nil,
			"verifiedAt": verifiedAt,
			"createdAt":  createdAt,
		}); err != nil {
			return err
		}

		for b := 0; b < 1+rng.Intn(3); b++ {
			bookingUuid := uuid.NewString()
			hostelId := 1 + rng.Intn(len(demoHostels))
			roomId := (hostelId-1)*2 + 1 + rng.Intn(2)
			roomType := entity.RoomTypeDorm
			if roomId%2 == 0 {
				roomType = entity.RoomTypePrivate
			}
			status := statuses[rng.Intn(len(statuses))]
			bookedAt := createdAt.Add(time.Duration(rng.Intn(300)) * time.Hour)
			checkIn := bookedAt.AddDate(0, 0, 1+rng.Intn(14))

			if err := store.ExecNamed(ctx, db.DB(), `
				INSERT INTO booking (uuid, user_id, hostel_id, room_id, status, room_type, check_in, check_out, created_at)
				VALUES (:uuid, :userId, :hostelId, :roomId, :status, :roomType, :checkIn, :checkOut, :createdAt)`, map[string]any{
				"uuid":      bookingUuid,
				"userId":    i + 1,
				"hostelId":  hostelId,
				"roomId":    roomId,
				"status":    status,
				"roomType":  roomType,
				"checkIn":   checkIn,
				"checkOut":  checkIn.AddDate(0, 0, 1+rng.Intn(5)),
				"createdAt": bookedAt,
			}); err != nil {
				return err
			}

			if status == entity.BookingStatusCancelled || status == entity.BookingStatusPending {
				continue
			}
			if err := store.ExecNamed(ctx, db.DB(), `
				INSERT INTO payment (booking_uuid, amount, method, status, paid_at)
				VALUES (:bookingUuid, :amount, :method, :status, :paidAt)`, map[string]any{
				"bookingUuid": bookingUuid,
				"amount":      decimal.NewFromInt(int64(20 + rng.Intn(200))),
				"method":      methods[rng.Intn(len(methods))],
				"status":      entity.PaymentStatusCompleted,
				"paidAt":      bookedAt.Add(time.Hour),
			}); err != nil {
				return err
			}
		}
	}

	slog.Default().Info("demo data seeded")
	return nil
}
