// Package sqlite is the persistent vault driver. Slot values are sealed
// with AES-256-GCM before they touch disk; the database file itself is the
// desktop stand-in for the mobile platform keychain.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/eprometna/client-go/internal/client/vault"
	"github.com/eprometna/client-go/pkg/cryptox"

	_ "modernc.org/sqlite"
)

type Vault struct {
	db     *sql.DB
	cipher *cryptox.ValueCipher
	logger *slog.Logger
}

// New opens (or creates) the vault database at dsn and prepares it for use.
func New(dsn string, cipher *cryptox.ValueCipher, logger *slog.Logger) (*Vault, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	v := &Vault{db: db, cipher: cipher, logger: logger}

	if err := v.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return v, nil
}

func (v *Vault) Close() error { return v.db.Close() }

// Ping verifies the database connection is still alive.
func (v *Vault) Ping(ctx context.Context) error {
	return v.db.PingContext(ctx)
}

func (v *Vault) Set(ctx context.Context, key vault.Key, value string) error {
	if !key.Valid() {
		return vault.ErrUnknownKey
	}

	sealed, err := v.cipher.Seal([]byte(value))
	if err != nil {
		return err
	}

	_, err = v.db.ExecContext(ctx, `
		INSERT INTO vault_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
	`, string(key), sealed, time.Now().UTC())
	return err
}

func (v *Vault) Get(ctx context.Context, key vault.Key) (string, bool) {
	var sealed []byte
	err := v.db.QueryRowContext(ctx,
		`SELECT value FROM vault_entries WHERE key = ?;`, string(key),
	).Scan(&sealed)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false
	case err != nil:
		// Storage failure reads as absent; the caller must keep working.
		v.logger.Error("vault read failed", "key", string(key), "error", err)
		return "", false
	}

	plaintext, err := v.cipher.Open(sealed)
	if err != nil {
		v.logger.Error("vault value unsealing failed", "key", string(key), "error", err)
		return "", false
	}

	return string(plaintext), true
}

func (v *Vault) Delete(ctx context.Context, key vault.Key) error {
	if !key.Valid() {
		return vault.ErrUnknownKey
	}

	_, err := v.db.ExecContext(ctx, `DELETE FROM vault_entries WHERE key = ?;`, string(key))
	return err
}
