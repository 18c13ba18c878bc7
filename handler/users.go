package handler

import (
	"api-waste-admin/loader"
	"api-waste-admin/model"
	"api-waste-admin/report"
	"api-waste-admin/store"
)

// Users is the read-only end-user screen: list, detail view and export.
// This console neither creates nor mutates user accounts.
type Users struct {
	Screen
}

func NewUsers(s store.DocumentStore) *Users {
	h := &Users{}
	h.Name = "users"
	h.Load = loader.Flat{Store: s, Collection: "users"}.Load
	h.Export = report.Table{
		Title:    "User List Report",
		Filename: "user_list_report",
		Columns: []report.Column{
			{Header: "District", Accessor: func(r model.Row) string { return model.Str(r, "district", "N/A") }},
			{Header: "Email", Accessor: func(r model.Row) string { return model.Str(r, "email", "N/A") }},
			{Header: "Name", Accessor: func(r model.Row) string { return model.Str(r, "name", "N/A") }},
		},
	}
	return h
}
