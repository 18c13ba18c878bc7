package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"api-waste-admin/metrics"
	"api-waste-admin/model"
	"api-waste-admin/store"

	log "github.com/sirupsen/logrus"
)

// Join emulates a parent/child join the store cannot do server-side: list
// all parent users, then fetch the named subcollection once per user, and
// merge a snapshot of the parent's fields into every child row.
//
// Partial-failure policy: a failed subcollection fetch skips that user's
// rows and is recorded; the fan-out keeps going and the partial row set is
// returned together with the joined errors. Callers decide what to show.
type Join struct {
	Store store.DocumentStore
	// Users is the parent collection, normally "users".
	Users string
	// Child names the per-user subcollection ("feedbacks", "incentives").
	Child string
	// Concurrency bounds the fan-out. Zero or one means the original
	// one-user-at-a-time sequence; higher values fetch in parallel but
	// still emit rows in user iteration order.
	Concurrency int
}

func (j Join) Load(ctx context.Context) ([]model.Row, error) {
	started := time.Now()
	defer func() {
		metrics.JoinFanout.WithLabelValues(j.Child).Observe(time.Since(started).Seconds())
	}()

	users, err := j.Store.ListCollection(ctx, j.Users)
	if err != nil {
		return nil, err
	}

	perUser := make([][]model.Row, len(users))
	failures := make([]error, len(users))

	if j.Concurrency > 1 {
		sem := make(chan struct{}, j.Concurrency)
		done := make(chan int, len(users))
		for i := range users {
			sem <- struct{}{}
			go func(i int) {
				defer func() { <-sem; done <- i }()
				perUser[i], failures[i] = j.loadOne(ctx, users[i])
			}(i)
		}
		for range users {
			<-done
		}
	} else {
		for i := range users {
			perUser[i], failures[i] = j.loadOne(ctx, users[i])
		}
	}

	var rows []model.Row
	var errs []error
	for i := range users {
		if failures[i] != nil {
			log.WithError(failures[i]).WithFields(log.Fields{
				"child": j.Child, "user": users[i].ID,
			}).Warn("subcollection fetch failed, skipping user")
			errs = append(errs, fmt.Errorf("user %s: %w", users[i].ID, failures[i]))
			continue
		}
		rows = append(rows, perUser[i]...)
	}
	return rows, errors.Join(errs...)
}

// loadOne fetches one user's subcollection and builds the joined rows:
// child fields verbatim, plus userId and the userData snapshot.
func (j Join) loadOne(ctx context.Context, user store.DocumentRecord) ([]model.Row, error) {
	children, err := j.Store.ListSubcollection(ctx, j.Users, user.ID, j.Child)
	if err != nil {
		return nil, err
	}
	snapshot := model.UserSnapshot(user.Fields)
	rows := make([]model.Row, 0, len(children))
	for _, child := range children {
		row := make(model.Row, len(child.Fields)+3)
		for key, value := range child.Fields {
			row[key] = value
		}
		row["id"] = child.ID
		row["userId"] = user.ID
		row["userData"] = snapshot
		rows = append(rows, row)
	}
	return rows, nil
}
