package handler

import (
	"context"
	"fmt"
	"net/http"

	"api-waste-admin/loader"
	"api-waste-admin/model"
	"api-waste-admin/report"
	"api-waste-admin/store"

	"github.com/gin-gonic/gin"
)

// Incentives is the joined incentive-awards screen. The parent path for an
// update comes from the selected row's userId snapshot, so a row that has
// vanished from the snapshot cannot be written to.
type Incentives struct {
	Screen
	store store.DocumentStore
}

func NewIncentives(s store.DocumentStore, concurrency int) *Incentives {
	h := &Incentives{store: s}
	h.Name = "incentives"
	h.Load = loader.Join{Store: s, Users: "users", Child: "incentives", Concurrency: concurrency}.Load
	h.Export = report.Table{
		Title:    "Incentives Report",
		Filename: "incentives_report",
		Columns: []report.Column{
			{Header: "User ID", Accessor: func(r model.Row) string { return model.Str(r, "userId", "N/A") }},
			{Header: "Category", Accessor: func(r model.Row) string { return model.Str(r, "category", "N/A") }},
			{Header: "Points", Accessor: func(r model.Row) string { return fmt.Sprintf("%v", model.Num(r, "points")) }},
			{Header: "Quantity", Accessor: func(r model.Row) string { return fmt.Sprintf("%v", model.Num(r, "quantity")) }},
			{Header: "Is Clarified", Accessor: func(r model.Row) string { return model.YesNo(r, "isClarified") }},
			{Header: "ID", Accessor: func(r model.Row) string { return model.Str(r, "id", "N/A") }},
		},
	}
	return h
}

func (h *Incentives) UpdateClarified(c *gin.Context) {
	var payload model.ClarifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := c.Param("id")
	row, found := h.rowByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such incentive"})
		return
	}
	userID, _ := row["userId"].(string)
	if userID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Incentive row has no owner"})
		return
	}
	ok := h.mutateAndReload(c, "update incentive clarification", func(ctx context.Context) error {
		return h.store.UpdateFields(ctx, "users/"+userID+"/incentives", id,
			map[string]interface{}{"isClarified": *payload.IsClarified})
	})
	if ok {
		h.closeDialog()
		c.JSON(http.StatusOK, gin.H{"message": "Incentive updated", "id": id, "isClarified": *payload.IsClarified})
	}
}
