package ws

import (
	"sync"

	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/events"
)

// SyncState tracks how far a locally held menu has drifted from the server.
type SyncState int

const (
	// Synced: local view matches the last confirmed server state.
	Synced SyncState = iota
	// PendingWrite: a reorder was applied locally and its write is in flight.
	PendingWrite
	// Diverged: a write partially failed; local order may not match the
	// server until the next full refetch.
	Diverged
)

func (s SyncState) String() string {
	switch s {
	case PendingWrite:
		return "pending_write"
	case Diverged:
		return "diverged"
	default:
		return "synced"
	}
}

// MenuView holds a customer-facing menu (categories with their items) and
// reconciles change-feed events into it in place, without a full reload.
//
// Only updated events mutate the view. Created and deleted events would need
// the row's ordering position and category to splice correctly, which the
// envelope does not reliably carry, so they leave the view stale until the
// next full reload.
type MenuView struct {
	mu         sync.RWMutex
	categories []entity.Category
	state      SyncState
}

func NewMenuView(initial []entity.Category) *MenuView {
	return &MenuView{categories: cloneCategories(initial)}
}

// cloneCategories copies the category headers and their Items slices so the
// view never shares item storage with a caller or a returned snapshot.
func cloneCategories(categories []entity.Category) []entity.Category {
	out := make([]entity.Category, len(categories))
	copy(out, categories)
	for i := range out {
		items := make([]entity.MenuItem, len(out[i].Items))
		copy(items, out[i].Items)
		out[i].Items = items
	}
	return out
}

// Apply merges one change event. Returns true if an item was updated.
// An updated event whose ID is not found locally is a no-op; that is also the
// implicit filter that discards other shops' events on the shared feed.
func (v *MenuView) Apply(ev events.Event) bool {
	if ev.Table != events.TableMenuItems || ev.Kind != events.KindUpdated || ev.After == nil {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for ci := range v.categories {
		items := v.categories[ci].Items
		for ii := range items {
			if items[ii].ID == ev.ID {
				items[ii] = *ev.After
				return true
			}
		}
	}
	return false
}

// Categories returns a snapshot of the current view. The copy is deep down to
// the item level, so it stays stable while Apply keeps mutating the view.
func (v *MenuView) Categories() []entity.Category {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneCategories(v.categories)
}

// BeginReorder marks a locally applied reorder whose write is in flight.
func (v *MenuView) BeginReorder() {
	v.mu.Lock()
	v.state = PendingWrite
	v.mu.Unlock()
}

// FinishReorder records the write outcome. A partial write leaves the view
// Diverged; the local order is deliberately not rolled back.
func (v *MenuView) FinishReorder(partial bool) {
	v.mu.Lock()
	if partial {
		v.state = Diverged
	} else {
		v.state = Synced
	}
	v.mu.Unlock()
}

// Refresh replaces the view with freshly fetched server state. This is the
// only transition out of Diverged.
func (v *MenuView) Refresh(categories []entity.Category) {
	v.mu.Lock()
	v.categories = cloneCategories(categories)
	v.state = Synced
	v.mu.Unlock()
}

func (v *MenuView) State() SyncState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}
