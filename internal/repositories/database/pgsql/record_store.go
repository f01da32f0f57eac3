package pgsql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecordStore keeps every collection in the single `records` table as JSONB.
type RecordStore struct {
	BaseRepository
}

// NewRecordStore creates a DocumentStore backed by PostgreSQL.
func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentStore = (*RecordStore)(nil)

func (s *RecordStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	data, err := encodeFields(fields)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	query := `
		INSERT INTO records (collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, now(), now());
	`
	if _, err := s.Pool.Exec(ctx, query, collection, id, data); err != nil {
		return "", apperrors.NewAppError(500, fmt.Sprintf("failed to create record in %s", collection), err)
	}
	return id, nil
}

func (s *RecordStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	data, err := encodeFields(fields)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO records (collection, id, data, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, now(), now())
		ON CONFLICT (collection, id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = now();
	`
	if _, err := s.Pool.Exec(ctx, query, collection, id, data); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to set record %s/%s", collection, id), err)
	}
	return nil
}

func (s *RecordStore) Get(ctx context.Context, collection, id string) (*portsrepo.Record, error) {
	query := `
		SELECT id, data, created_at, updated_at
		FROM records
		WHERE collection = $1 AND id = $2;
	`
	rec, err := scanRecord(s.Pool.QueryRow(ctx, query, collection, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s/%s: %w", collection, id, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to get record %s/%s", collection, id), err)
	}
	return rec, nil
}

func (s *RecordStore) List(ctx context.Context, collection string, q portsrepo.Query) ([]portsrepo.Record, error) {
	query, args, err := buildListQuery(collection, q)
	if err != nil {
		return nil, err
	}
	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to list records in %s", collection), err)
	}
	defer rows.Close()

	records := []portsrepo.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan record", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to iterate records in %s", collection), err)
	}
	return records, nil
}

func (s *RecordStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	data, err := encodeFields(fields)
	if err != nil {
		return err
	}
	query := `
		UPDATE records
		SET data = data || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2;
	`
	tag, err := s.Pool.Exec(ctx, query, collection, id, data)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update record %s/%s", collection, id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *RecordStore) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM records WHERE collection = $1 AND id = $2;`, collection, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete record %s/%s", collection, id), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, apperrors.ErrNotFound)
	}
	return nil
}

func scanRecord(row pgx.Row) (*portsrepo.Record, error) {
	var (
		rec  portsrepo.Record
		data []byte
	)
	if err := row.Scan(&rec.ID, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}
	rec.Data = fields
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return &rec, nil
}

func encodeFields(fields map[string]any) ([]byte, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record fields: %w", err)
	}
	return data, nil
}

// decodeFields keeps numbers as json.Number so integers and decimals survive untouched.
func decodeFields(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	fields := map[string]any{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode record fields: %w", err)
	}
	return fields, nil
}

