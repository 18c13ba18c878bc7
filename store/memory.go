package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Memory is an in-process DocumentStore with the same contract as the
// Firestore one: insertion order on list, whole-document replace on set,
// merge on update. It backs STORE_BACKEND=memory and the test suites.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
	seq         int
}

type memCollection struct {
	order []string
	docs  map[string]map[string]interface{}
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string]*memCollection)}
}

func (m *Memory) ListCollection(_ context.Context, path string) ([]DocumentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	col, ok := m.collections[path]
	if !ok {
		return nil, nil
	}
	records := make([]DocumentRecord, 0, len(col.order))
	for _, id := range col.order {
		records = append(records, DocumentRecord{ID: id, Fields: copyFields(col.docs[id])})
	}
	return records, nil
}

func (m *Memory) ListSubcollection(ctx context.Context, parent, parentID, child string) ([]DocumentRecord, error) {
	return m.ListCollection(ctx, subPath(parent, parentID, child))
}

func (m *Memory) AddDocument(_ context.Context, path string, fields map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("doc-%04d", m.seq)
	m.put(path, id, fields)
	return id, nil
}

func (m *Memory) SetDocument(_ context.Context, path, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(path, id, fields)
	return nil
}

func (m *Memory) UpdateFields(_ context.Context, path, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	col, ok := m.collections[path]
	if !ok {
		return notFound("update", path+"/"+id)
	}
	doc, ok := col.docs[id]
	if !ok {
		return notFound("update", path+"/"+id)
	}
	for key, value := range fields {
		doc[key] = value
	}
	return nil
}

func (m *Memory) DeleteDocument(_ context.Context, path, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	col, ok := m.collections[path]
	if !ok {
		return nil
	}
	if _, ok := col.docs[id]; !ok {
		// Deleting an absent document succeeds, matching Firestore.
		return nil
	}
	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

// put replaces the whole document. Caller holds the lock.
func (m *Memory) put(path, id string, fields map[string]interface{}) {
	col, ok := m.collections[path]
	if !ok {
		col = &memCollection{docs: make(map[string]map[string]interface{})}
		m.collections[path] = col
	}
	if _, exists := col.docs[id]; !exists {
		col.order = append(col.order, id)
	}
	col.docs[id] = copyFields(fields)
}

func notFound(op, path string) error {
	return &StoreError{Op: op, Path: path, Kind: KindNotFound, Err: errors.New("no such document")}
}

func copyFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if nested, ok := value.(map[string]interface{}); ok {
			out[key] = copyFields(nested)
			continue
		}
		out[key] = value
	}
	return out
}

// SeedDemo loads a small data set so the API can be exercised without
// Firebase credentials.
func (m *Memory) SeedDemo() {
	ctx := context.Background()
	m.SetDocument(ctx, "collectors", "col-100", map[string]interface{}{
		"uid": "col-100", "name": "Ruwan Silva", "email": "ruwan@cleancity.lk",
		"phone": "0771234567", "district": "Colombo",
	})
	m.SetDocument(ctx, "collectors", "col-101", map[string]interface{}{
		"uid": "col-101", "name": "Nadeesha Perera", "email": "nadeesha@cleancity.lk",
		"phone": "0777654321", "district": "Gampaha",
	})
	m.AddDocument(ctx, "inspectors", map[string]interface{}{
		"name": "Kasun Jayasuriya", "email": "kasun@cleancity.lk", "district": "Colombo",
	})
	m.AddDocument(ctx, "pickups", map[string]interface{}{
		"enteredAddress": "24 Lake Rd, Colombo 02", "fee": "1500",
		"selectedDate":        time.Date(2024, 10, 12, 9, 0, 0, 0, time.UTC),
		"selectedGarbageType": "Organic", "selectedGarbageSize": "Large",
		"status": "pending",
	})
	m.AddDocument(ctx, "requests", map[string]interface{}{
		"category": "Missed pickup", "description": "Bin not collected on Monday",
		"fee": "0", "isResolved": false,
		"requestDate": time.Date(2024, 10, 10, 14, 30, 0, 0, time.UTC),
	})
	m.SetDocument(ctx, "users", "user-1", map[string]interface{}{
		"uid": "user-1", "name": "Amaya Fernando", "email": "amaya@example.com",
		"district": "Colombo", "image": "https://example.com/amaya.png",
	})
	m.AddDocument(ctx, "users/user-1/feedbacks", map[string]interface{}{
		"category": "Service", "comments": "Collector was on time",
		"hadIssues": false, "issueDescription": "", "rating": 5,
	})
	m.AddDocument(ctx, "users/user-1/incentives", map[string]interface{}{
		"category": "Recycling", "points": 120, "quantity": 4, "isClarified": false,
	})
}
