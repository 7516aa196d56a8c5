package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{DB: db}, mock
}

func TestRunInTransaction_Commit(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM records").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.ExecContext(context.Background(), "DELETE FROM records")
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newMockConnection(t)
	fnErr := errors.New("falhou")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_RollbackFailureKeepsCause(t *testing.T) {
	conn, mock := newMockConnection(t)
	fnErr := errors.New("falhou")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("conexão perdida"))

	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.Contains(t, err.Error(), "conexão perdida")
}

func TestRunInTransaction_RollbackOnPanic(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransaction_BeginError(t *testing.T) {
	conn, mock := newMockConnection(t)

	mock.ExpectBegin().WillReturnError(errors.New("sem conexões"))

	called := false
	err := conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		called = true
		return nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("down"))

	conn := &Connection{DB: db}
	assert.Error(t, conn.Ping(context.Background()))
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Contains(t, names, "000001_create_principals.up.sql")
	assert.Contains(t, names, "000002_create_records.up.sql")
	assert.Len(t, names, 4)
}
