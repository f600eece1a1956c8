package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.value
	return nil
}

type fakeDB struct {
	sql  string
	args []any
	row  fakeRow
	tag  pgconn.CommandTag
	err  error
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.sql, db.args = sql, args
	return db.row
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.sql, db.args = sql, args
	return db.tag, db.err
}

func newTestPgxStore(db DB) *PgxStore {
	s := NewPgxStore(db)
	s.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func assertSQL(t *testing.T, got string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(got, f) {
			t.Errorf("query %q does not contain %q", got, f)
		}
	}
}

func TestPgxStoreGet(t *testing.T) {
	db := &fakeDB{row: fakeRow{value: []byte(`{"id":1}`)}}
	s := newTestPgxStore(db)

	v, ok, err := s.Get(context.Background(), "getMe:abc")
	if err != nil || !ok || string(v) != `{"id":1}` {
		t.Fatalf("Get = %s, %v, %v", v, ok, err)
	}
	assertSQL(t, db.sql, "SELECT value FROM request_cache", "key = $1", "expires_at > $2")
	if db.args[0] != "getMe:abc" {
		t.Errorf("got args %v", db.args)
	}

	db.row = fakeRow{err: pgx.ErrNoRows}
	if _, ok, err := s.Get(context.Background(), "getMe:abc"); ok || err != nil {
		t.Errorf("missing row: ok=%v err=%v", ok, err)
	}

	db.row = fakeRow{err: errors.New("conn closed")}
	if _, _, err := s.Get(context.Background(), "getMe:abc"); err == nil {
		t.Error("want error")
	}
}

func TestPgxStoreSet(t *testing.T) {
	db := &fakeDB{}
	s := newTestPgxStore(db)

	if err := s.Set(context.Background(), "k", json.RawMessage(`true`), time.Hour); err != nil {
		t.Fatal(err)
	}
	assertSQL(t, db.sql, "INSERT INTO request_cache", "ON CONFLICT (key) DO UPDATE")
	if len(db.args) != 3 {
		t.Fatalf("got args %v", db.args)
	}
	if want := s.now().Add(time.Hour); db.args[2] != want {
		t.Errorf("got expiry %v, want %v", db.args[2], want)
	}
}

func TestPgxStoreDeleteExpired(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 3")}
	s := newTestPgxStore(db)

	n, err := s.DeleteExpired(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("DeleteExpired = %d, %v", n, err)
	}
	assertSQL(t, db.sql, "DELETE FROM request_cache", "expires_at <= $1")
}
