package test

import (
	"path/filepath"
	"testing"

	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique database file in the test's temporary directory.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}

// Database connects to a new database that is closed when the test finishes.
func Database(t *testing.T) *storage.Database {
	db, err := storage.Connect(TmpFile(t))
	require.Nil(t, err, "Database connection failed")

	t.Cleanup(func() {
		// Tests may close the database on their own
		_ = db.Close()
	})

	return db
}
