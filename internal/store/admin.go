package store

import (
	"context"
	"fmt"

	"github.com/stayhive/hostel-manager/internal/dependency"
	"github.com/stayhive/hostel-manager/internal/entity"
)

type adminStore struct {
	*MYSQLStore
}

// Admin returns an object implementing dependency.Admin interface
func (ms *MYSQLStore) Admin() dependency.Admin {
	return &adminStore{
		MYSQLStore: ms,
	}
}

// AddAdmin creates a new admin account
func (as *adminStore) AddAdmin(ctx context.Context, un, pwHash string) error {
	_, err := as.db.ExecContext(ctx, `
	INSERT INTO admins
	(username, password_hash)
	VALUES
	(?, ?)`, un, pwHash)
	if err != nil {
		return fmt.Errorf("can't add admin user %v", err.Error())
	}
	return nil
}

// DeleteAdmin deletes an admin account
func (as *adminStore) DeleteAdmin(ctx context.Context, username string) error {
	res, err := as.db.ExecContext(ctx, `
	DELETE FROM admins WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete admin user")
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows")
	}
	if ra == 0 {
		return fmt.Errorf("admin not found")
	}
	return nil
}

// ChangePassword changes the password of an admin account
func (as *adminStore) ChangePassword(ctx context.Context, un, newHash string) error {
	res, err := as.db.ExecContext(ctx, `
		UPDATE admins
		SET password_hash = ?
		WHERE username = ?`, newHash, un)
	if err != nil {
		return fmt.Errorf("failed change admin user password")
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows")
	}
	if ra == 0 {
		return fmt.Errorf("admin not found")
	}
	return nil
}

// PasswordHashByUsername returns the password hash of an admin account
func (as *adminStore) PasswordHashByUsername(ctx context.Context, un string) (string, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admins WHERE username = :username
	`
	admin, err := QueryNamedOne[entity.AdminAccount](ctx, as.DB(), query, map[string]any{
		"username": un,
	})
	if err != nil {
		return "", fmt.Errorf("admin not found %v", err.Error())
	}
	return admin.PasswordHash, nil
}
