// Package cache memoizes rendered public menus per shop. Every mutating
// operation invalidates the affected shop so the next public read recomputes.
package cache

import (
	"sync"

	"github.com/farhatamiine/restaurent-menu/entity"
)

type MenuCache struct {
	mu    sync.RWMutex
	menus map[uint][]entity.Category
}

func NewMenuCache() *MenuCache {
	return &MenuCache{menus: make(map[uint][]entity.Category)}
}

func (c *MenuCache) Get(shopID uint) ([]entity.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	menu, ok := c.menus[shopID]
	return menu, ok
}

func (c *MenuCache) Set(shopID uint, menu []entity.Category) {
	c.mu.Lock()
	c.menus[shopID] = menu
	c.mu.Unlock()
}

// Invalidate marks a shop's cached menu stale.
func (c *MenuCache) Invalidate(shopID uint) {
	c.mu.Lock()
	delete(c.menus, shopID)
	c.mu.Unlock()
}
