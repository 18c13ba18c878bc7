package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore adapts a *firestore.Client to the DocumentStore interface.
type Firestore struct {
	Client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{Client: client}
}

func (f *Firestore) ListCollection(ctx context.Context, path string) ([]DocumentRecord, error) {
	var records []DocumentRecord
	iter := f.Client.Collection(path).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return records, classify("list", path, err)
		}
		records = append(records, DocumentRecord{ID: doc.Ref.ID, Fields: doc.Data()})
	}
	return records, nil
}

func (f *Firestore) ListSubcollection(ctx context.Context, parent, parentID, child string) ([]DocumentRecord, error) {
	return f.ListCollection(ctx, subPath(parent, parentID, child))
}

func (f *Firestore) AddDocument(ctx context.Context, path string, fields map[string]interface{}) (string, error) {
	ref, _, err := f.Client.Collection(path).Add(ctx, fields)
	if err != nil {
		return "", classify("add", path, err)
	}
	return ref.ID, nil
}

func (f *Firestore) SetDocument(ctx context.Context, path, id string, fields map[string]interface{}) error {
	if _, err := f.Client.Collection(path).Doc(id).Set(ctx, fields); err != nil {
		return classify("set", path+"/"+id, err)
	}
	return nil
}

func (f *Firestore) UpdateFields(ctx context.Context, path, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for key, value := range fields {
		updates = append(updates, firestore.Update{Path: key, Value: value})
	}
	if _, err := f.Client.Collection(path).Doc(id).Update(ctx, updates); err != nil {
		return classify("update", path+"/"+id, err)
	}
	return nil
}

func (f *Firestore) DeleteDocument(ctx context.Context, path, id string) error {
	if _, err := f.Client.Collection(path).Doc(id).Delete(ctx); err != nil {
		return classify("delete", path+"/"+id, err)
	}
	return nil
}

func classify(op, path string, err error) error {
	kind := KindInternal
	switch status.Code(err) {
	case codes.NotFound:
		kind = KindNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		kind = KindPermission
	case codes.Unavailable, codes.DeadlineExceeded:
		kind = KindUnavailable
	}
	return &StoreError{Op: op, Path: path, Kind: kind, Err: err}
}
