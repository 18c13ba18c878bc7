package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDocumentReplacesWholeDocument(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	require.NoError(t, mem.SetDocument(ctx, "collectors", "c1", map[string]interface{}{
		"name": "First", "phone": "071", "district": "Colombo",
	}))
	// Second set with the same id: full overwrite, not a merge. The phone
	// field must be gone afterwards.
	require.NoError(t, mem.SetDocument(ctx, "collectors", "c1", map[string]interface{}{
		"name": "Second",
	}))

	records, err := mem.ListCollection(ctx, "collectors")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Second", records[0].Fields["name"])
	assert.NotContains(t, records[0].Fields, "phone")
	assert.NotContains(t, records[0].Fields, "district")
}

func TestUpdateFieldsMerges(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.SetDocument(ctx, "pickups", "p1", map[string]interface{}{
		"status": "pending", "fee": "1500",
	}))
	require.NoError(t, mem.UpdateFields(ctx, "pickups", "p1", map[string]interface{}{
		"status": "completed",
	}))

	records, err := mem.ListCollection(ctx, "pickups")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "completed", records[0].Fields["status"])
	assert.Equal(t, "1500", records[0].Fields["fee"])
}

func TestUpdateFieldsMissingDocumentIsNotFound(t *testing.T) {
	mem := NewMemory()
	err := mem.UpdateFields(context.Background(), "pickups", "ghost", map[string]interface{}{"status": "completed"})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDeleteRemovesExactlyOneDocument(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, mem.SetDocument(ctx, "inspectors", id, map[string]interface{}{"name": id}))
	}
	require.NoError(t, mem.DeleteDocument(ctx, "inspectors", "b"))

	records, err := mem.ListCollection(ctx, "inspectors")
	require.NoError(t, err)
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	assert.Equal(t, []string{"a", "c"}, ids)

	// Deleting an absent document is a no-op success.
	require.NoError(t, mem.DeleteDocument(ctx, "inspectors", "ghost"))
}

func TestAddDocumentAssignsIDs(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	id1, err := mem.AddDocument(ctx, "inspectors", map[string]interface{}{"name": "one"})
	require.NoError(t, err)
	id2, err := mem.AddDocument(ctx, "inspectors", map[string]interface{}{"name": "two"})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestListReturnsCopies(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.SetDocument(ctx, "users", "u1", map[string]interface{}{"name": "Amaya"}))

	records, err := mem.ListCollection(ctx, "users")
	require.NoError(t, err)
	records[0].Fields["name"] = "mutated"

	again, err := mem.ListCollection(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "Amaya", again[0].Fields["name"])
}

func TestListSubcollectionIsScopedToParent(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()
	_, err := mem.AddDocument(ctx, "users/u1/feedbacks", map[string]interface{}{"rating": 5})
	require.NoError(t, err)
	_, err = mem.AddDocument(ctx, "users/u2/feedbacks", map[string]interface{}{"rating": 1})
	require.NoError(t, err)

	records, err := mem.ListSubcollection(ctx, "users", "u1", "feedbacks")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 5, records[0].Fields["rating"])
}
