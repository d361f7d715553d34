// Package events carries row-change notifications from the write path to
// whoever wants them: the websocket hub for live menu pages, and optionally a
// Kafka topic for out-of-process consumers.
package events

import (
	"github.com/farhatamiine/restaurent-menu/entity"
)

type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

const TableMenuItems = "menu_items"

// Event is the typed envelope for a single row change. After carries the full
// new row for created/updated; deleted events carry only the ID.
type Event struct {
	Kind  Kind             `json:"kind"`
	Table string           `json:"table"`
	ID    uint             `json:"id"`
	After *entity.MenuItem `json:"after,omitempty"`
}

func ItemCreated(item *entity.MenuItem) Event {
	return Event{Kind: KindCreated, Table: TableMenuItems, ID: item.ID, After: item}
}

func ItemUpdated(item *entity.MenuItem) Event {
	return Event{Kind: KindUpdated, Table: TableMenuItems, ID: item.ID, After: item}
}

func ItemDeleted(id uint) Event {
	return Event{Kind: KindDeleted, Table: TableMenuItems, ID: id}
}
