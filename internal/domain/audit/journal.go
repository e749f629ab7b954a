// Package audit defines the change journal written by mutating commands.
package audit

import "context"

// Action is the kind of journaled operation.
type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionScrap      Action = "scrap"
	ActionReactivate Action = "reactivate"
)

// Entry is a single journal record.
type Entry struct {
	EntityType string
	EntityID   int64
	Action     Action
	UserID     int64
	Changes    map[string]any
}

// Journal persists entries inside the caller's transaction.
type Journal interface {
	Record(ctx context.Context, entry Entry) error
}

// Discard is a Journal that drops every entry.
type Discard struct{}

// Record implements Journal.
func (Discard) Record(context.Context, Entry) error { return nil }
