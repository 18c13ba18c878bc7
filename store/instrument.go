package store

import (
	"context"

	"api-waste-admin/metrics"
)

// Instrumented decorates a DocumentStore with prometheus counters.
type Instrumented struct {
	Inner DocumentStore
}

func WithMetrics(inner DocumentStore) *Instrumented {
	return &Instrumented{Inner: inner}
}

func (s *Instrumented) ListCollection(ctx context.Context, path string) ([]DocumentRecord, error) {
	records, err := s.Inner.ListCollection(ctx, path)
	metrics.Observe("list", err)
	return records, err
}

func (s *Instrumented) ListSubcollection(ctx context.Context, parent, parentID, child string) ([]DocumentRecord, error) {
	records, err := s.Inner.ListSubcollection(ctx, parent, parentID, child)
	metrics.Observe("list_sub", err)
	return records, err
}

func (s *Instrumented) AddDocument(ctx context.Context, path string, fields map[string]interface{}) (string, error) {
	id, err := s.Inner.AddDocument(ctx, path, fields)
	metrics.Observe("add", err)
	return id, err
}

func (s *Instrumented) SetDocument(ctx context.Context, path, id string, fields map[string]interface{}) error {
	err := s.Inner.SetDocument(ctx, path, id, fields)
	metrics.Observe("set", err)
	return err
}

func (s *Instrumented) UpdateFields(ctx context.Context, path, id string, fields map[string]interface{}) error {
	err := s.Inner.UpdateFields(ctx, path, id, fields)
	metrics.Observe("update", err)
	return err
}

func (s *Instrumented) DeleteDocument(ctx context.Context, path, id string) error {
	err := s.Inner.DeleteDocument(ctx, path, id)
	metrics.Observe("delete", err)
	return err
}
