// Package handler holds one controller per admin screen. A controller owns
// that screen's row snapshot, selection and dialog state; every mutation
// writes through the store facade and then reloads the whole row set. A
// failed write or reload leaves the previous snapshot intact.
package handler

import (
	"context"
	"net/http"
	"sync"

	"api-waste-admin/model"
	"api-waste-admin/report"
	"api-waste-admin/store"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Screen is the shared controller core: loader, export definition and the
// transient per-screen state. Entity handlers embed it and add their own
// create/update/delete endpoints.
type Screen struct {
	Name   string
	Load   func(ctx context.Context) ([]model.Row, error)
	Export report.Table
	// Decorate, when set, adds computed presentation fields to each row in
	// list responses. It never touches the stored snapshot.
	Decorate func(model.Row) model.Row

	mu         sync.Mutex
	rows       []model.Row
	loaded     bool
	selected   model.Row
	dialogOpen bool
}

// resync replaces the row snapshot wholesale. A total failure keeps the
// prior snapshot; a partial fan-out result is accepted and the skipped
// users are logged.
func (s *Screen) resync(ctx context.Context) error {
	rows, err := s.Load(ctx)
	if err != nil && len(rows) == 0 {
		log.WithError(err).WithField("screen", s.Name).Error("reload failed, keeping previous rows")
		return err
	}
	if err != nil {
		log.WithError(err).WithField("screen", s.Name).Warn("partial reload")
	}
	s.mu.Lock()
	s.rows = rows
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// ensureLoaded performs the on-mount load the first time a screen is hit.
func (s *Screen) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.resync(ctx)
}

func (s *Screen) snapshot() []model.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// rowByID returns a point-in-time copy of a row from the current snapshot.
func (s *Screen) rowByID(id string) (model.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.ID() == id {
			return row.Clone(), true
		}
	}
	return nil, false
}

// List returns the screen's current rows, loading on first access.
func (s *Screen) List(c *gin.Context) {
	if err := s.ensureLoaded(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to load " + s.Name})
		return
	}
	rows := s.snapshot()
	if s.Decorate != nil {
		decorated := make([]model.Row, len(rows))
		for i, row := range rows {
			decorated[i] = s.Decorate(row.Clone())
		}
		rows = decorated
	}
	s.mu.Lock()
	dialogOpen := s.dialogOpen
	selectedID := ""
	if s.selected != nil {
		selectedID = s.selected.ID()
	}
	s.mu.Unlock()
	resp := gin.H{s.Name: rows, "count": len(rows), "dialogOpen": dialogOpen}
	if selectedID != "" {
		resp["selectedId"] = selectedID
	}
	c.JSON(http.StatusOK, resp)
}

// Reload forces a full resync regardless of prior state.
func (s *Screen) Reload(c *gin.Context) {
	if err := s.resync(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to reload " + s.Name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": s.Name + " reloaded", "count": len(s.snapshot())})
}

// Select marks a row as the screen's selection (the detail dialog opening)
// and returns the snapshot copy the dialog would show.
func (s *Screen) Select(c *gin.Context) {
	if err := s.ensureLoaded(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to load " + s.Name})
		return
	}
	row, ok := s.rowByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No such record"})
		return
	}
	s.mu.Lock()
	s.selected = row
	s.dialogOpen = true
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"selected": row})
}

// CloseDialog clears the selection (the dialog closing).
func (s *Screen) CloseDialog(c *gin.Context) {
	s.mu.Lock()
	s.selected = nil
	s.dialogOpen = false
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"message": "dialog closed"})
}

func (s *Screen) closeDialog() {
	s.mu.Lock()
	s.selected = nil
	s.dialogOpen = false
	s.mu.Unlock()
}

// ReportPDF streams the screen's PDF export of the current rows.
func (s *Screen) ReportPDF(c *gin.Context) {
	if err := s.ensureLoaded(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to load " + s.Name})
		return
	}
	artifact, err := report.RenderPDF(s.Export, s.snapshot())
	if err != nil {
		log.WithError(err).WithField("screen", s.Name).Error("pdf render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+s.Export.Filename+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", artifact)
}

// ReportXLSX streams the spreadsheet variant of the same export.
func (s *Screen) ReportXLSX(c *gin.Context) {
	if err := s.ensureLoaded(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Failed to load " + s.Name})
		return
	}
	artifact, err := report.RenderXLSX(s.Export, s.snapshot())
	if err != nil {
		log.WithError(err).WithField("screen", s.Name).Error("xlsx render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+s.Export.Filename+`.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", artifact)
}

// mutateAndReload applies one write and, only on success, resyncs the
// screen. The reload failing after a successful write is reported as a
// warning, not an error: the write did land.
func (s *Screen) mutateAndReload(c *gin.Context, action string, op func(ctx context.Context) error) bool {
	ctx := c.Request.Context()
	if err := op(ctx); err != nil {
		log.WithError(err).WithFields(log.Fields{"screen": s.Name, "action": action}).Error("mutation failed")
		c.JSON(statusFor(err), gin.H{"error": "Failed to " + action})
		return false
	}
	if err := s.resync(ctx); err != nil {
		c.JSON(http.StatusOK, gin.H{"message": action + " succeeded", "warning": "reload failed, rows may be stale"})
		return false
	}
	return true
}

func statusFor(err error) int {
	switch store.KindOf(err) {
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindPermission:
		return http.StatusForbidden
	case store.KindUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
