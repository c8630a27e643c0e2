package capacity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DocumentStore is a per-key JSON document store with optimistic concurrency.
// Put with expectedVersion 0 inserts; any other value is a compare-and-swap
// against the stored version.
type DocumentStore interface {
	Get(ctx context.Context, key string) (CapacityDocument, int64, error)
	Put(ctx context.Context, key string, doc CapacityDocument, expectedVersion int64) error
	List(ctx context.Context, prefix string) ([]CapacityDocument, error)
}

type PostgresStore struct{ conn *pgx.Conn }

func NewPostgresStore(conn *pgx.Conn) *PostgresStore {
	return &PostgresStore{conn: conn}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (CapacityDocument, int64, error) {
	sql := `SELECT doc, version FROM capacity_documents WHERE key=$1;`

	var raw []byte
	var version int64

	err := s.conn.QueryRow(ctx, sql, key).Scan(&raw, &version)

	if errors.Is(err, pgx.ErrNoRows) {
		return CapacityDocument{}, 0, ErrDocumentNotFound
	}

	if err != nil {
		return CapacityDocument{}, 0, fmt.Errorf("%w: failed to fetch document '%v': %v", ErrStoreUnavailable, key, err)
	}

	var doc CapacityDocument

	if err := json.Unmarshal(raw, &doc); err != nil {
		return CapacityDocument{}, 0, fmt.Errorf("failed to decode document '%v': %w", key, err)
	}

	return doc, version, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, doc CapacityDocument, expectedVersion int64) error {
	raw, err := json.Marshal(doc)

	if err != nil {
		return fmt.Errorf("failed to encode document '%v': %w", key, err)
	}

	if expectedVersion == 0 {
		sql := `
			INSERT INTO capacity_documents(key, doc, version, updated_at)
			VALUES ($1, $2, 1, now())
			ON CONFLICT (key) DO NOTHING;
		`

		tag, err := s.conn.Exec(ctx, sql, key, raw)

		if err != nil {
			return fmt.Errorf("%w: failed to insert document '%v': %v", ErrStoreUnavailable, key, err)
		}

		if tag.RowsAffected() == 0 {
			return ErrVersionConflict
		}

		return nil
	}

	sql := `
		UPDATE capacity_documents
		SET doc=$2, version=version+1, updated_at=now()
		WHERE key=$1 AND version=$3;
	`

	tag, err := s.conn.Exec(ctx, sql, key, raw, expectedVersion)

	if err != nil {
		return fmt.Errorf("%w: failed to update document '%v': %v", ErrStoreUnavailable, key, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}

	return nil
}

func (s *PostgresStore) List(ctx context.Context, prefix string) ([]CapacityDocument, error) {
	sql := `SELECT doc FROM capacity_documents WHERE key LIKE $1 || '%' ORDER BY key;`

	rows, err := s.conn.Query(ctx, sql, prefix)

	if err != nil {
		return nil, fmt.Errorf("%w: failed to list documents: %v", ErrStoreUnavailable, err)
	}

	defer rows.Close()

	var docs []CapacityDocument

	for rows.Next() {
		var raw []byte

		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}

		var doc CapacityDocument

		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}
