// Package loader turns document-store collections into the flat row sets
// the admin screens display. Loaders are stateless and re-invocable; every
// reload is a full fetch, never an incremental patch.
package loader

import (
	"context"

	"api-waste-admin/model"
	"api-waste-admin/store"
)

// Flat loads one collection and tags each document with its id. Rows come
// back in store-defined order.
type Flat struct {
	Store      store.DocumentStore
	Collection string
}

func (f Flat) Load(ctx context.Context) ([]model.Row, error) {
	docs, err := f.Store.ListCollection(ctx, f.Collection)
	if err != nil {
		return nil, err
	}
	rows := make([]model.Row, 0, len(docs))
	for _, doc := range docs {
		row := make(model.Row, len(doc.Fields)+1)
		for key, value := range doc.Fields {
			row[key] = value
		}
		row["id"] = doc.ID
		rows = append(rows, row)
	}
	return rows, nil
}
