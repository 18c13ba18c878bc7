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

// ServiceReports manages the service-reports screen. The backing collection
// is named "requests"; only isResolved is mutable.
type ServiceReports struct {
	Screen
	store store.DocumentStore
}

func NewServiceReports(s store.DocumentStore) *ServiceReports {
	h := &ServiceReports{store: s}
	h.Name = "reports"
	h.Load = loader.Flat{Store: s, Collection: "requests"}.Load
	h.Export = report.Table{
		Title:    "Reports List",
		Filename: "reports_list",
		Columns: []report.Column{
			{Header: "Category", Accessor: func(r model.Row) string { return model.Str(r, "category", "N/A") }},
			{Header: "Description", Accessor: func(r model.Row) string { return model.Str(r, "description", "N/A") }},
			{Header: "Fee", Accessor: func(r model.Row) string { return model.Str(r, "fee", "N/A") }},
			{Header: "ID", Accessor: func(r model.Row) string { return model.Str(r, "id", "N/A") }},
			{Header: "Is Resolved", Accessor: func(r model.Row) string { return model.YesNo(r, "isResolved") }},
			{Header: "Request Date", Accessor: func(r model.Row) string { return model.DateTime(r, "requestDate") }},
		},
	}
	return h
}

func (h *ServiceReports) UpdateResolved(c *gin.Context) {
	var payload model.ResolvePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	if _, ok := h.rowByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such report"})
		return
	}
	ok := h.mutateAndReload(c, "update report resolution", func(ctx context.Context) error {
		return h.store.UpdateFields(ctx, "requests", id, map[string]interface{}{"isResolved": *payload.IsResolved})
	})
	if ok {
		h.closeDialog()
		c.JSON(http.StatusOK, gin.H{"message": "Report updated", "id": id, "isResolved": *payload.IsResolved})
	}
}
