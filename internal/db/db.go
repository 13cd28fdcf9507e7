package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	last_updated TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL REFERENCES conversations(id),
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	sentiment TEXT,
	sentiment_score REAL,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation_created
	ON messages(conversation_id, created_at);
`

// Open prepara el directorio de datos, reubica una base legada si existe,
// abre el archivo SQLite y crea las tablas si faltan.
func Open(ctx context.Context, dir, name string) (*sql.DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	if err := relocateLegacy(dir, name); err != nil {
		return nil, fmt.Errorf("relocate legacy db: %w", err)
	}

	path := filepath.Join(dir, name)
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// Un solo proceso escritor; SQLite no necesita mas.
	handle.SetMaxOpenConns(1)
	handle.SetConnMaxIdleTime(5 * time.Minute)

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := handle.ExecContext(ctx, schema); err != nil {
		handle.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return handle, nil
}

// relocateLegacy mueve una base encontrada en el directorio de trabajo a su
// ubicacion canonica. Si el destino ya existe, la copia legada se conserva
// como backup en vez de pisar la base actual.
func relocateLegacy(dir, name string) error {
	legacy := name
	if _, err := os.Stat(legacy); err != nil {
		return nil
	}

	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		backup := filepath.Join(dir, "backup_"+name)
		return copyFile(legacy, backup)
	}

	if err := os.Rename(legacy, dest); err == nil {
		return nil
	}
	// Rename puede fallar entre filesystems; caemos a copiar y borrar.
	if err := copyFile(legacy, dest); err != nil {
		return err
	}
	return os.Remove(legacy)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
