package entity

import (
	"database/sql"
	"time"
)

type UserRole string

const (
	UserRoleGuest UserRole = "guest"
	UserRoleHost  UserRole = "host"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id         int          `db:"id" json:"id"`
	Name       string       `db:"name" json:"name"`
	Email      string       `db:"email" json:"email"`
	Role       UserRole     `db:"role" json:"role"`
	IsVerified bool         `db:"is_verified" json:"isVerified"`
	VerifiedAt sql.NullTime `db:"verified_at" json:"verifiedAt"`
	CreatedAt  time.Time    `db:"created_at" json:"createdAt"`
}
