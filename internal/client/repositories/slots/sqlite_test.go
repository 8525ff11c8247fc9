package slots

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE slots (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "hrms_employees", []byte(`[{"id":"EMP001"}]`)))

	v, err := r.Get(ctx, "hrms_employees")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"EMP001"}]`), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v) // нет строки: (nil, nil)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "hrms_data_version", []byte("3")))
	require.NoError(t, r.Set(ctx, "hrms_data_version", []byte("4")))

	v, err := r.Get(ctx, "hrms_data_version")
	require.NoError(t, err)
	require.Equal(t, []byte("4"), v)
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte("1")))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	// повторное удаление не должно падать
	require.NoError(t, r.Delete(ctx, "x"))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{"a", "b"} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, v, k)
	}
}

func TestWorksInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewSQLiteRepository(tx).Set(ctx, "k", []byte("v")))
	require.NoError(t, tx.Rollback())

	v, err := NewSQLiteRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestErrorsWrapped_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get slot[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set slot[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete slot[k]")

	err = r.Clear(ctx)
	require.ErrorContains(t, err, "failed to clear slots")
}
