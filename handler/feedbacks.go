package handler

import (
	"api-waste-admin/loader"
	"api-waste-admin/model"
	"api-waste-admin/report"
	"api-waste-admin/store"
)

// Feedbacks is the joined feedback screen: every user's feedbacks
// subcollection flattened into one table, each row carrying the userData
// snapshot. Feedback is read-only from this console.
type Feedbacks struct {
	Screen
}

func NewFeedbacks(s store.DocumentStore, concurrency int) *Feedbacks {
	h := &Feedbacks{}
	h.Name = "feedbacks"
	h.Load = loader.Join{Store: s, Users: "users", Child: "feedbacks", Concurrency: concurrency}.Load
	// Low ratings get flagged so the UI can highlight them, mirroring the
	// red-row treatment in the admin tables.
	h.Decorate = func(r model.Row) model.Row {
		r["flagged"] = model.Num(r, "rating") <= 2
		return r
	}
	h.Export = report.Table{
		Title:    "Feedback Report",
		Filename: "feedback_report",
		Columns: []report.Column{
			{Header: "User ID", Accessor: func(r model.Row) string { return model.Str(r, "userId", "N/A") }},
			{Header: "Category", Accessor: func(r model.Row) string { return model.Str(r, "category", "N/A") }},
			{Header: "Comments", Accessor: func(r model.Row) string { return model.Str(r, "comments", "No comments provided") }},
			{Header: "Had Issues", Accessor: func(r model.Row) string { return model.YesNo(r, "hadIssues") }},
			{Header: "Issue Description", Accessor: func(r model.Row) string { return model.Str(r, "issueDescription", "N/A") }},
			{Header: "Rating", Accessor: func(r model.Row) string { return model.Str(r, "rating", "N/A") }},
			{Header: "User Name", Accessor: func(r model.Row) string { return model.UserField(r, "name") }},
			{Header: "User Email", Accessor: func(r model.Row) string { return model.UserField(r, "email") }},
			{Header: "User District", Accessor: func(r model.Row) string { return model.UserField(r, "district") }},
		},
	}
	return h
}
