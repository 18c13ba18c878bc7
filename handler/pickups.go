package handler

import (
	"context"
	"net/http"

	"api-waste-admin/loader"
	"api-waste-admin/model"
	"api-waste-admin/report"
	"api-waste-admin/store"

	"github.com/gin-gonic/gin"
)

// Pickups manages the pickup-requests screen. Only the status field is
// mutable, and the write is a blind last-writer-wins overwrite of that one
// field.
type Pickups struct {
	Screen
	store store.DocumentStore
}

func NewPickups(s store.DocumentStore) *Pickups {
	h := &Pickups{store: s}
	h.Name = "pickups"
	h.Load = loader.Flat{Store: s, Collection: "pickups"}.Load
	h.Export = report.Table{
		Title:    "Pick Up Requests Report",
		Filename: "pickups_report",
		Columns: []report.Column{
			{Header: "Address", Accessor: func(r model.Row) string { return model.Str(r, "enteredAddress", "N/A") }},
			{Header: "Fee", Accessor: func(r model.Row) string { return model.Str(r, "fee", "N/A") }},
			{Header: "Date", Accessor: func(r model.Row) string { return model.Date(r, "selectedDate") }},
			{Header: "Garbage Type", Accessor: func(r model.Row) string { return model.Str(r, "selectedGarbageType", "N/A") }},
			{Header: "Garbage Size", Accessor: func(r model.Row) string { return model.Str(r, "selectedGarbageSize", "N/A") }},
			{Header: "Status", Accessor: func(r model.Row) string { return model.Str(r, "status", "N/A") }},
		},
	}
	return h
}

func (h *Pickups) UpdateStatus(c *gin.Context) {
	var payload model.PickupStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.rowByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such pickup request"})
		return
	}
	ok := h.mutateAndReload(c, "update pickup status", func(ctx context.Context) error {
		return h.store.UpdateFields(ctx, "pickups", id, map[string]interface{}{"status": payload.Status})
	})
	if ok {
		h.closeDialog()
		c.JSON(http.StatusOK, gin.H{"message": "Status updated", "id": id, "status": payload.Status})
	}
}
