package repository

import (
	"context"
	"errors"
	"testing"

	sqlite3 "modernc.org/sqlite/lib"
)

type fakeSQLiteErr struct {
	code int
}

func (e *fakeSQLiteErr) Error() string { return "sqlite error" }
func (e *fakeSQLiteErr) Code() int     { return e.code }

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"busy", &fakeSQLiteErr{code: sqlite3.SQLITE_BUSY}, true},
		{"locked", &fakeSQLiteErr{code: sqlite3.SQLITE_LOCKED}, true},
		{"busy extended code", &fakeSQLiteErr{code: sqlite3.SQLITE_BUSY | (2 << 8)}, true},
		{"constraint", &fakeSQLiteErr{code: sqlite3.SQLITE_CONSTRAINT}, false},
		{"wrapped busy", errors.Join(errors.New("exec"), &fakeSQLiteErr{code: sqlite3.SQLITE_BUSY}), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := isTransient(c.err); got != c.want {
				t.Fatalf("isTransient=%v, want %v", got, c.want)
			}
		})
	}
}

func TestWithRetryRecoversFromTransient(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return &fakeSQLiteErr{code: sqlite3.SQLITE_BUSY}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestWithRetryPermanentErrorNoRetry(t *testing.T) {
	calls := 0
	permanent := errors.New("disk full")
	err := withRetry(context.Background(), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("permanent error must not retry, got %d calls", calls)
	}
}

func TestWithRetryBounded(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return &fakeSQLiteErr{code: sqlite3.SQLITE_BUSY}
	})
	if err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if calls != maxRetries {
		t.Fatalf("expected %d calls, got %d", maxRetries, calls)
	}
}

func TestWithRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := withRetry(ctx, func() error {
		return &fakeSQLiteErr{code: sqlite3.SQLITE_BUSY}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
