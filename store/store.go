package store

import (
	"context"
	"errors"
	"fmt"
)

// DocumentRecord is one document as returned by the store: its id plus the
// raw field map exactly as fetched. No defaulting happens at this layer.
type DocumentRecord struct {
	ID     string
	Fields map[string]interface{}
}

// DocumentStore is the narrow surface this service needs from the remote
// document database. Collections are addressed by slash path; list results
// come back in store-defined order and callers must not assume any sort.
type DocumentStore interface {
	ListCollection(ctx context.Context, path string) ([]DocumentRecord, error)
	ListSubcollection(ctx context.Context, parent, parentID, child string) ([]DocumentRecord, error)
	// AddDocument creates a document with a store-assigned id.
	AddDocument(ctx context.Context, path string, fields map[string]interface{}) (string, error)
	// SetDocument writes the whole document under a caller-assigned id.
	// Upsert semantics: an existing document with the same id is replaced
	// entirely, not merged.
	SetDocument(ctx context.Context, path, id string, fields map[string]interface{}) error
	// UpdateFields merges the given fields into an existing document.
	UpdateFields(ctx context.Context, path, id string, fields map[string]interface{}) error
	DeleteDocument(ctx context.Context, path, id string) error
}

// Kind classifies a store failure for HTTP mapping and logging.
type Kind int

const (
	KindInternal Kind = iota
	KindUnavailable
	KindPermission
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// StoreError wraps a failed store operation with enough context to log it
// at the call site. The facade never retries; the error propagates as-is.
type StoreError struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from any error in a chain, defaulting to
// KindInternal for errors that did not come from the facade.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func subPath(parent, parentID, child string) string {
	return parent + "/" + parentID + "/" + child
}
