package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestDB connects to the database named by TEST_MYSQL_DSN and wipes
// every table. Tests are skipped when the variable is unset.
func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN is not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	assert.NoError(t, err)

	_, err = db.db.ExecContext(context.Background(), "SET FOREIGN_KEY_CHECKS = 0")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM payment")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM booking")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM room")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM hostel")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM user")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM admins")
	assert.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "SET FOREIGN_KEY_CHECKS = 1")
	assert.NoError(t, err)

	return db
}
