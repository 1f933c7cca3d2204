package entity

import "time"

// AdminAccount is a dashboard operator account, separate from platform users.
type AdminAccount struct {
	Id           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
