// Package firestore implements the record store adapter and the typed
// repositories on top of it. Firestore is treated as a generic keyed
// collection store: documents in named collections with equality/range
// filtering and atomic batch writes. There are no cross-collection joins;
// callers compose queries and intersect in memory.
package firestore

import (
	"context"
	"time"

	"gia/config"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrDocumentNotFound is returned by Store for absent documents. Typed
// repositories translate it into their own sentinel errors.
var ErrDocumentNotFound = errors.New("document not found")

// BatchKind is the kind of a single batch operation.
type BatchKind string

const (
	BatchSet    BatchKind = "set"
	BatchUpdate BatchKind = "update"
	BatchDelete BatchKind = "delete"
)

// BatchOp is one operation of an atomic batch write.
type BatchOp struct {
	Kind       BatchKind
	Collection string
	ID         string
	Data       map[string]any
}

// Store is the generic record store handle. Every call is bounded by the
// configured external call timeout; there is no retry layer.
type Store struct {
	client  *firestore.Client
	timeout time.Duration
}

// New connects to Firestore for the configured project.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	projectID := cfg.Firebase.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	return &Store{
		client:  client,
		timeout: cfg.External.CallTimeout,
	}, nil
}

// Close releases the underlying client connection.
func (s *Store) Close() error {
	return errors.WithStack(s.client.Close())
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Add creates a document with a generated ID and returns the ID.
func (s *Store) Add(ctx context.Context, collection string, data any) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ref, _, err := s.client.Collection(collection).Add(ctx, data)
	if err != nil {
		return "", errors.Wrapf(err, "failed to add document to %s", collection)
	}

	return ref.ID, nil
}

// Get reads a document into dest. Returns ErrDocumentNotFound when absent.
func (s *Store) Get(ctx context.Context, collection, id string, dest any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrDocumentNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "failed to get document %s/%s", collection, id)
	}

	if err := snap.DataTo(dest); err != nil {
		return errors.Wrapf(err, "failed to decode document %s/%s", collection, id)
	}

	return nil
}

// Set writes a document under a caller-chosen ID, overwriting any existing
// content. Repeated Sets of the same data are no-op overwrites, which is what
// upsert-by-stable-key callers rely on.
func (s *Store) Set(ctx context.Context, collection, id string, data any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return errors.Wrapf(err, "failed to set document %s/%s", collection, id)
	}

	return nil
}

// Update applies a partial field update. Returns ErrDocumentNotFound when the
// document does not exist.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrDocumentNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "failed to update document %s/%s", collection, id)
	}

	return nil
}

// Delete removes a document. Deleting an absent document is not an error,
// matching Firestore semantics.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete document %s/%s", collection, id)
	}

	return nil
}

// List reads documents from a collection with limit/offset paging. A
// non-positive limit means no limit.
func (s *Store) List(ctx context.Context, collection string, limit, offset int) ([]*firestore.DocumentSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := s.client.Collection(collection).Offset(max(offset, 0))
	if limit > 0 {
		query = query.Limit(limit)
	}

	return drain(query.Documents(ctx), collection)
}

// Query reads documents matching a single field condition. Supported
// operators are ==, <, >, <= and >=.
func (s *Store) Query(ctx context.Context, collection, field, operator string, value any, limit int) ([]*firestore.DocumentSnapshot, error) {
	switch operator {
	case "==", "<", ">", "<=", ">=":
	default:
		return nil, errors.Errorf("unsupported query operator %q", operator)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := s.client.Collection(collection).Where(field, operator, value)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return drain(query.Documents(ctx), collection)
}

// Batch applies the given operations as a single atomic commit: either all
// writes apply or none do.
func (s *Store) Batch(ctx context.Context, ops []BatchOp) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	batch := s.client.Batch()
	for _, op := range ops {
		ref := s.client.Collection(op.Collection).Doc(op.ID)
		switch op.Kind {
		case BatchSet:
			batch.Set(ref, op.Data)
		case BatchUpdate:
			updates := make([]firestore.Update, 0, len(op.Data))
			for path, value := range op.Data {
				updates = append(updates, firestore.Update{Path: path, Value: value})
			}
			batch.Update(ref, updates)
		case BatchDelete:
			batch.Delete(ref)
		default:
			return errors.Errorf("unsupported batch operation %q", op.Kind)
		}
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit batch write")
	}

	return nil
}

func drain(iter *firestore.DocumentIterator, collection string) ([]*firestore.DocumentSnapshot, error) {
	defer iter.Stop()

	var snaps []*firestore.DocumentSnapshot
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to iterate %s", collection)
		}
		snaps = append(snaps, snap)
	}

	return snaps, nil
}
