package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"api-waste-admin/router"
	"api-waste-admin/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func listRows(t *testing.T, engine *gin.Engine, screen string) []map[string]interface{} {
	t.Helper()
	w := perform(t, engine, http.MethodGet, "/"+screen, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	raw, _ := payload[screen].([]interface{})
	rows := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		row, ok := item.(map[string]interface{})
		require.True(t, ok)
		rows = append(rows, row)
	}
	return rows
}

func TestCollectorCreateWithDuplicateIDOverwrites(t *testing.T) {
	mem := store.NewMemory()
	engine := router.SetupRouter(mem, 1)

	first := gin.H{"uid": "col-1", "name": "First", "email": "first@x.lk", "phone": "071", "district": "Colombo"}
	w := perform(t, engine, http.MethodPost, "/collectors", first)
	require.Equal(t, http.StatusOK, w.Code)

	// Same uid, entirely different fields. No error, full replacement.
	second := gin.H{"uid": "col-1", "name": "Second", "email": "second@x.lk", "phone": "077", "district": "Kandy"}
	w = perform(t, engine, http.MethodPost, "/collectors", second)
	require.Equal(t, http.StatusOK, w.Code)

	rows := listRows(t, engine, "collectors")
	require.Len(t, rows, 1)
	assert.Equal(t, "Second", rows[0]["name"])
	assert.Equal(t, "Kandy", rows[0]["district"])
}

func TestCollectorDeleteRemovesExactlyOne(t *testing.T) {
	mem := store.NewMemory()
	engine := router.SetupRouter(mem, 1)

	for _, uid := range []string{"col-1", "col-2", "col-3"} {
		w := perform(t, engine, http.MethodPost, "/collectors", gin.H{
			"uid": uid, "name": "N " + uid, "email": uid + "@x.lk", "phone": "071", "district": "Colombo",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := perform(t, engine, http.MethodDelete, "/collectors/col-2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := listRows(t, engine, "collectors")
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i], _ = row["id"].(string)
	}
	assert.ElementsMatch(t, []string{"col-1", "col-3"}, ids)
}

func TestInspectorCreateUsesStoreAssignedID(t *testing.T) {
	mem := store.NewMemory()
	engine := router.SetupRouter(mem, 1)

	w := perform(t, engine, http.MethodPost, "/inspectors", gin.H{
		"name": "Kasun", "email": "kasun@x.lk", "district": "Colombo",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])

	rows := listRows(t, engine, "inspectors")
	require.Len(t, rows, 1)
	assert.Equal(t, resp["id"], rows[0]["id"])
}

func TestCreateValidationRejectsMissingFields(t *testing.T) {
	engine := router.SetupRouter(store.NewMemory(), 1)
	w := perform(t, engine, http.MethodPost, "/collectors", gin.H{"uid": "col-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPickupStatusUpdateRoundTrip(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	id, err := mem.AddDocument(ctx, "pickups", map[string]interface{}{
		"enteredAddress": "24 Lake Rd", "fee": "1500", "status": "pending",
	})
	require.NoError(t, err)
	engine := router.SetupRouter(mem, 1)

	// Load the screen so the row snapshot exists, then mutate.
	listRows(t, engine, "pickups")
	w := perform(t, engine, http.MethodPatch, "/pickups/"+id, gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)

	rows := listRows(t, engine, "pickups")
	require.Len(t, rows, 1)
	assert.Equal(t, "completed", rows[0]["status"])
}

func TestPickupStatusRejectsUnknownValue(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	id, err := mem.AddDocument(ctx, "pickups", map[string]interface{}{"status": "pending"})
	require.NoError(t, err)
	engine := router.SetupRouter(mem, 1)
	listRows(t, engine, "pickups")

	w := perform(t, engine, http.MethodPatch, "/pickups/"+id, gin.H{"status": "abandoned"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportResolveRoundTrip(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	id, err := mem.AddDocument(ctx, "requests", map[string]interface{}{
		"category": "Missed pickup", "isResolved": false,
	})
	require.NoError(t, err)
	engine := router.SetupRouter(mem, 1)
	listRows(t, engine, "reports")

	w := perform(t, engine, http.MethodPatch, "/reports/"+id, gin.H{"isResolved": true})
	require.Equal(t, http.StatusOK, w.Code)

	rows := listRows(t, engine, "reports")
	require.Len(t, rows, 1)
	assert.Equal(t, true, rows[0]["isResolved"])
}

func TestIncentiveClarifyWritesUnderParentUser(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.SetDocument(ctx, "users", "user-1", map[string]interface{}{
		"uid": "user-1", "name": "Amaya", "email": "amaya@x.lk", "district": "Colombo", "image": "img",
	}))
	id, err := mem.AddDocument(ctx, "users/user-1/incentives", map[string]interface{}{
		"category": "Recycling", "points": 120, "quantity": 4, "isClarified": false,
	})
	require.NoError(t, err)
	engine := router.SetupRouter(mem, 1)
	listRows(t, engine, "incentives")

	w := perform(t, engine, http.MethodPatch, "/incentives/"+id, gin.H{"isClarified": true})
	require.Equal(t, http.StatusOK, w.Code)

	rows := listRows(t, engine, "incentives")
	require.Len(t, rows, 1)
	assert.Equal(t, true, rows[0]["isClarified"])
	assert.Equal(t, "user-1", rows[0]["userId"])

	// The write must have landed under the parent user's subcollection.
	records, err := mem.ListSubcollection(ctx, "users", "user-1", "incentives")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, true, records[0].Fields["isClarified"])
}

func TestIncentiveUpdateUnknownRowIs404(t *testing.T) {
	engine := router.SetupRouter(store.NewMemory(), 1)
	listRows(t, engine, "incentives")
	w := perform(t, engine, http.MethodPatch, "/incentives/ghost", gin.H{"isClarified": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedbackListFlagsLowRatings(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.SetDocument(ctx, "users", "user-1", map[string]interface{}{
		"uid": "user-1", "name": "Amaya", "email": "amaya@x.lk", "district": "Colombo", "image": "img",
	}))
	_, err := mem.AddDocument(ctx, "users/user-1/feedbacks", map[string]interface{}{"rating": 1})
	require.NoError(t, err)
	_, err = mem.AddDocument(ctx, "users/user-1/feedbacks", map[string]interface{}{"rating": 5})
	require.NoError(t, err)
	engine := router.SetupRouter(mem, 1)

	rows := listRows(t, engine, "feedbacks")
	require.Len(t, rows, 2)
	flagged := map[bool]int{}
	for _, row := range rows {
		flagged[row["flagged"].(bool)]++
	}
	assert.Equal(t, 1, flagged[true])
	assert.Equal(t, 1, flagged[false])
}

// brokenWrites fails every mutation while leaving reads intact.
type brokenWrites struct {
	store.DocumentStore
}

func (b *brokenWrites) SetDocument(context.Context, string, string, map[string]interface{}) error {
	return &store.StoreError{Op: "set", Path: "collectors", Kind: store.KindUnavailable,
		Err: errors.New("connection reset")}
}

func TestFailedWriteLeavesRowsIntact(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.SetDocument(ctx, "collectors", "col-1", map[string]interface{}{
		"uid": "col-1", "name": "Ruwan", "email": "r@x.lk", "phone": "071", "district": "Colombo",
	}))
	engine := router.SetupRouter(&brokenWrites{DocumentStore: mem}, 1)

	before := listRows(t, engine, "collectors")
	require.Len(t, before, 1)

	w := perform(t, engine, http.MethodPost, "/collectors", gin.H{
		"uid": "col-2", "name": "New", "email": "n@x.lk", "phone": "077", "district": "Kandy",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	after := listRows(t, engine, "collectors")
	require.Len(t, after, 1)
	assert.Equal(t, "Ruwan", after[0]["name"])
}

func TestSelectReturnsSnapshotAndUnknownIDIs404(t *testing.T) {
	mem := store.NewMemory()
	mem.SeedDemo()
	engine := router.SetupRouter(mem, 1)

	w := perform(t, engine, http.MethodGet, "/collectors/col-100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	selected, ok := resp["selected"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ruwan Silva", selected["name"])

	w = perform(t, engine, http.MethodGet, "/collectors/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportEndpointsServeArtifacts(t *testing.T) {
	mem := store.NewMemory()
	mem.SeedDemo()
	engine := router.SetupRouter(mem, 1)

	w := perform(t, engine, http.MethodGet, "/pickups/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pickups_report.pdf")
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	w = perform(t, engine, http.MethodGet, "/feedbacks/report.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "feedback_report.xlsx")
}
