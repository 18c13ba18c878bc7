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

// Collectors manages the collectors screen. Collector ids are operator
// supplied (the uid), so create is an upsert: a duplicate uid silently
// replaces the existing document. That hazard is inherited from the product
// and deliberately not papered over with a uniqueness check.
type Collectors struct {
	Screen
	store store.DocumentStore
}

func NewCollectors(s store.DocumentStore) *Collectors {
	h := &Collectors{store: s}
	h.Name = "collectors"
	h.Load = loader.Flat{Store: s, Collection: "collectors"}.Load
	h.Export = report.Table{
		Title:    "Collectors Report",
		Filename: "collectors_report",
		Columns: []report.Column{
			{Header: "UID", Accessor: func(r model.Row) string { return model.Str(r, "uid", "N/A") }},
			{Header: "Name", Accessor: func(r model.Row) string { return model.Str(r, "name", "N/A") }},
			{Header: "Email", Accessor: func(r model.Row) string { return model.Str(r, "email", "N/A") }},
			{Header: "Phone", Accessor: func(r model.Row) string { return model.Str(r, "phone", "N/A") }},
			{Header: "District", Accessor: func(r model.Row) string { return model.Str(r, "district", "N/A") }},
		},
	}
	return h
}

func (h *Collectors) Create(c *gin.Context) {
	var payload model.CollectorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok := h.mutateAndReload(c, "create collector", func(ctx context.Context) error {
		return h.store.SetDocument(ctx, "collectors", payload.UID, payload.Fields())
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"message": "Collector saved", "id": payload.UID})
	}
}

func (h *Collectors) Delete(c *gin.Context) {
	id := c.Param("id")
	ok := h.mutateAndReload(c, "delete collector", func(ctx context.Context) error {
		return h.store.DeleteDocument(ctx, "collectors", id)
	})
	if ok {
		h.closeDialog()
		c.JSON(http.StatusOK, gin.H{"message": "Collector deleted", "id": id})
	}
}
