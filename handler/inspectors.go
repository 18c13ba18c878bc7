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

// Inspectors manages the inspectors screen. Unlike collectors, the store
// assigns the document id on create.
type Inspectors struct {
	Screen
	store store.DocumentStore
}

func NewInspectors(s store.DocumentStore) *Inspectors {
	h := &Inspectors{store: s}
	h.Name = "inspectors"
	h.Load = loader.Flat{Store: s, Collection: "inspectors"}.Load
	h.Export = report.Table{
		Title:    "Inspectors Report",
		Filename: "inspectors_report",
		Columns: []report.Column{
			{Header: "Name", Accessor: func(r model.Row) string { return model.Str(r, "name", "N/A") }},
			{Header: "Email", Accessor: func(r model.Row) string { return model.Str(r, "email", "N/A") }},
			{Header: "District", Accessor: func(r model.Row) string { return model.Str(r, "district", "N/A") }},
		},
	}
	return h
}

func (h *Inspectors) Create(c *gin.Context) {
	var payload model.InspectorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var id string
	ok := h.mutateAndReload(c, "create inspector", func(ctx context.Context) error {
		var err error
		id, err = h.store.AddDocument(ctx, "inspectors", payload.Fields())
		return err
	})
	if ok {
		c.JSON(http.StatusOK, gin.H{"message": "Inspector added", "id": id})
	}
}

func (h *Inspectors) Delete(c *gin.Context) {
	id := c.Param("id")
	ok := h.mutateAndReload(c, "delete inspector", func(ctx context.Context) error {
		return h.store.DeleteDocument(ctx, "inspectors", id)
	})
	if ok {
		h.closeDialog()
		c.JSON(http.StatusOK, gin.H{"message": "Inspector deleted", "id": id})
	}
}
