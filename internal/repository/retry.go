package repository

import (
	"context"
	"errors"
	"time"

	sqlite3 "modernc.org/sqlite/lib"
)

const (
	maxRetries   = 5
	retryBackoff = 50 * time.Millisecond
)

type sqliteCoder interface {
	Code() int
}

// isTransient reconoce solo errores de contencion de lock de SQLite.
// Cualquier otro error es permanente y se devuelve sin reintentar.
func isTransient(err error) bool {
	var coder sqliteCoder
	if !errors.As(err, &coder) {
		return false
	}
	switch coder.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}

// withRetry ejecuta fn con reintentos acotados y backoff lineal,
// limitado a errores transitorios de storage.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if err = fn(); err == nil || !isTransient(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt+1)):
		}
	}
	return err
}
