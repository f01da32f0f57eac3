// Package firestore implements the document store on Cloud Firestore.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	createdAtField = "createdAt"
	updatedAtField = "updatedAt"
)

// RecordStore maps each collection onto a Firestore collection of the same name.
type RecordStore struct {
	client *firestore.Client
}

// NewClient connects to Firestore. An empty credentialsFile uses application default credentials.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore project id cannot be empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// NewRecordStore creates a DocumentStore backed by Firestore.
func NewRecordStore(client *firestore.Client) *RecordStore {
	return &RecordStore{client: client}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentStore = (*RecordStore)(nil)

func (s *RecordStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref := s.client.Collection(collection).NewDoc()
	data := withTimestamps(fields, true)
	if _, err := ref.Create(ctx, data); err != nil {
		return "", apperrors.NewAppError(500, fmt.Sprintf("failed to create record in %s", collection), err)
	}
	return ref.ID, nil
}

// Set replaces the record stored under id. A replaced record keeps its original createdAt.
func (s *RecordStore) Set(ctx context.Context, collection, id string, fields map[string]any) error {
	ref := s.client.Collection(collection).Doc(id)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		var createdAt any
		if snap != nil && snap.Exists() {
			createdAt, _ = snap.DataAt(createdAtField)
		}
		return tx.Set(ref, replacement(fields, createdAt))
	})
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to set record %s/%s", collection, id), err)
	}
	return nil
}

func (s *RecordStore) Get(ctx context.Context, collection, id string) (*portsrepo.Record, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateError(err, collection, id, "get")
	}
	rec := toRecord(snap)
	return &rec, nil
}

func (s *RecordStore) List(ctx context.Context, collection string, q portsrepo.Query) ([]portsrepo.Record, error) {
	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	for _, o := range q.OrderBy {
		dir := firestore.Asc
		if o.Descending {
			dir = firestore.Desc
		}
		query = query.OrderBy(o.Field, dir)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	records := []portsrepo.Record{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to list records in %s", collection), err)
		}
		records = append(records, toRecord(snap))
	}
	return records, nil
}

func (s *RecordStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		if k == createdAtField || k == updatedAtField {
			continue
		}
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{updatedAtField}, Value: firestore.ServerTimestamp})

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return translateError(err, collection, id, "update")
	}
	return nil
}

func (s *RecordStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return translateError(err, collection, id, "delete")
	}
	return nil
}

func toRecord(snap *firestore.DocumentSnapshot) portsrepo.Record {
	return portsrepo.Record{
		ID:        snap.Ref.ID,
		Data:      stripTimestamps(snap.Data()),
		CreatedAt: snap.CreateTime.UTC(),
		UpdatedAt: snap.UpdateTime.UTC(),
	}
}

// withTimestamps copies fields and adds server timestamps; createdAt is needed as a
// real field so listings can order on it.
func withTimestamps(fields map[string]any, created bool) map[string]any {
	data := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		data[k] = v
	}
	if created {
		data[createdAtField] = firestore.ServerTimestamp
	}
	data[updatedAtField] = firestore.ServerTimestamp
	return data
}

// replacement is the body written by Set: createdAt is carried over from the
// stored record when it has one, and stamped by the server otherwise.
func replacement(fields map[string]any, createdAt any) map[string]any {
	if createdAt == nil {
		return withTimestamps(fields, true)
	}
	data := withTimestamps(fields, false)
	data[createdAtField] = createdAt
	return data
}

func stripTimestamps(data map[string]any) map[string]any {
	delete(data, createdAtField)
	delete(data, updatedAtField)
	return data
}

func translateError(err error, collection, id, op string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s/%s: %w", collection, id, apperrors.ErrNotFound)
	}
	return apperrors.NewAppError(500, fmt.Sprintf("failed to %s record %s/%s", op, collection, id), err)
}
