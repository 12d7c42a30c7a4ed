package sqlite

// Package sqlite is the embedded single-file driver for deployments without
// Redis. It keeps the same whole-blob semantics as the Redis driver: each
// side of the mailbox lives as one JSON value in a key/value table and
// mutations read-modify-write it, last-write-wins.

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/planboard/planboard/internal/domain/model"
	"github.com/planboard/planboard/internal/ports"
)

const (
	blobRequests = "access_requests"
	blobReadIDs  = "read_requests"
	blobToken    = "session_token"
)

// Store owns the SQLite handle shared by the mailbox and the token vault.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at dsn.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Serialize writers; the blob semantics assume one write at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Mailbox returns the MailboxRepository backed by this store.
func (s *Store) Mailbox() *MailboxStore { return &MailboxStore{store: s} }

// TokenVault returns the TokenVault backed by this store.
func (s *Store) TokenVault() *TokenVault { return &TokenVault{store: s} }

func (s *Store) getBlob(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) setBlob(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("sqlite set %s: %w", key, err)
	}
	return nil
}

func (s *Store) deleteBlob(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite delete %s: %w", key, err)
	}
	return nil
}

// MailboxStore implements ports.MailboxRepository over the blobs table.
type MailboxStore struct {
	store *Store
}

var _ ports.MailboxRepository = (*MailboxStore)(nil)

func (m *MailboxStore) Append(ctx context.Context, req model.AccessRequest) error {
	requests, err := m.List(ctx)
	if err != nil {
		return err
	}
	requests = append(requests, req)
	return m.save(ctx, requests)
}

func (m *MailboxStore) List(ctx context.Context) ([]model.AccessRequest, error) {
	data, err := m.store.getBlob(ctx, blobRequests)
	if err != nil || data == nil {
		return nil, err
	}

	var requests []model.AccessRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("unmarshal requests: %w", err)
	}
	return requests, nil
}

func (m *MailboxStore) Remove(ctx context.Context, id int64) error {
	requests, err := m.List(ctx)
	if err != nil {
		return err
	}
	kept := requests[:0]
	for _, req := range requests {
		if req.ID != id {
			kept = append(kept, req)
		}
	}
	if len(kept) == len(requests) {
		return nil
	}
	return m.save(ctx, kept)
}

func (m *MailboxStore) ReadIDs(ctx context.Context) ([]int64, error) {
	data, err := m.store.getBlob(ctx, blobReadIDs)
	if err != nil || data == nil {
		return nil, err
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal read ids: %w", err)
	}
	return ids, nil
}

func (m *MailboxStore) SaveReadIDs(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal read ids: %w", err)
	}
	return m.store.setBlob(ctx, blobReadIDs, data)
}

func (m *MailboxStore) save(ctx context.Context, requests []model.AccessRequest) error {
	if requests == nil {
		requests = []model.AccessRequest{}
	}
	data, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("marshal requests: %w", err)
	}
	return m.store.setBlob(ctx, blobRequests, data)
}

// TokenVault implements ports.TokenVault over the blobs table. Like the
// Redis vault it is write-and-erase only.
type TokenVault struct {
	store *Store
}

var _ ports.TokenVault = (*TokenVault)(nil)

func (v *TokenVault) Store(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	return v.store.setBlob(ctx, blobToken, []byte(token))
}

func (v *TokenVault) Clear(ctx context.Context) error {
	return v.store.deleteBlob(ctx, blobToken)
}
