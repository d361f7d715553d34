package services

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/events"
	"github.com/farhatamiine/restaurent-menu/repository"
)

// feedRecorder captures published events for assertions.
type feedRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *feedRecorder) Publish(ev events.Event) {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
}

type testEnv struct {
	DB    *gorm.DB
	Owner entity.User
	Shop  entity.Shop

	Shops *ShopService
	Menu  *MenuService
	Items *ItemService
	Seed  *SeedService
	Feed  *feedRecorder
	Cache *cache.MenuCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Shop{}, &entity.Category{}, &entity.MenuItem{},
	))

	owner := entity.User{Email: "owner@test.local", Password: "x", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)

	shop := entity.Shop{Name: "Test Shop", Slug: "testshop123", Type: "restaurant", OwnerID: owner.ID}
	require.NoError(t, db.Create(&shop).Error)

	shopRepo := repository.NewShopRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)

	menuCache := cache.NewMenuCache()
	feed := &feedRecorder{}

	return &testEnv{
		DB:    db,
		Owner: owner,
		Shop:  shop,
		Shops: NewShopService(shopRepo, menuCache),
		Menu:  NewMenuService(catRepo, shopRepo, menuCache),
		Items: NewItemService(itemRepo, catRepo, menuCache, feed),
		Seed:  NewSeedService(shopRepo, catRepo, itemRepo, menuCache, feed),
		Feed:  feed,
		Cache: menuCache,
	}
}

func (env *testEnv) categoryNames(t *testing.T) []string {
	t.Helper()
	menu, err := env.Menu.GetMenu(env.Owner.ID, env.Shop.ID)
	require.NoError(t, err)

	names := make([]string, len(menu))
	for i, cat := range menu {
		names[i] = cat.Name
	}
	return names
}
