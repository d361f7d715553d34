package services

import (
	"log"

	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/repository"
)

// orderWriter is satisfied by both CategoryRepository and ItemRepository.
// Every write carries the scope (shop or category) it must stay inside.
type orderWriter interface {
	ReorderTx(scopeID uint, updates []repository.OrderUpdate) error
	UpdateOrder(scopeID, id uint, orderIndex int) error
}

// checkScope rejects a submitted sequence containing any ID that is not a
// current row of the scope. Without this a caller who owns the scope could
// slip another shop's row IDs into the batch.
func checkScope(ids, owned []uint) error {
	set := make(map[uint]bool, len(owned))
	for _, id := range owned {
		set[id] = true
	}
	for _, id := range ids {
		if !set[id] {
			return apperr.ErrNotFound
		}
	}
	return nil
}

// BuildOrderUpdates translates a drag-end result — the full ID sequence after
// the move — into a position write for every element: its zero-based index in
// the sequence. Rewriting all rows, moved or not, restores the dense 0..N-1
// invariant even if prior positions were corrupted.
func BuildOrderUpdates(ids []uint) []repository.OrderUpdate {
	updates := make([]repository.OrderUpdate, len(ids))
	for i, id := range ids {
		updates[i] = repository.OrderUpdate{ID: id, OrderIndex: i}
	}
	return updates
}

// persistOrder tries the batch as one transaction first. If that fails, it
// degrades to sequential per-row writes with no rollback: a partial failure
// leaves the sequence mixed old/new and is reported as *apperr.PartialReorder
// for the caller to log, not to retry.
func persistOrder(w orderWriter, scopeID uint, updates []repository.OrderUpdate) error {
	err := w.ReorderTx(scopeID, updates)
	if err == nil {
		return nil
	}
	log.Printf("reorder: batch write failed (%v), falling back to per-row updates", err)

	applied := 0
	var firstErr error
	for _, u := range updates {
		if rowErr := w.UpdateOrder(scopeID, u.ID, u.OrderIndex); rowErr != nil {
			if firstErr == nil {
				firstErr = rowErr
			}
			continue
		}
		applied++
	}

	if applied < len(updates) {
		return &apperr.PartialReorder{Applied: applied, Total: len(updates), Err: firstErr}
	}
	return nil
}
