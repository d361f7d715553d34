package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/repository"
	"github.com/farhatamiine/restaurent-menu/services"
)

type publicEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Cache  *cache.MenuCache
	Shop   entity.Shop
}

func newPublicEnv(t *testing.T) *publicEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Shop{}, &entity.Category{}, &entity.MenuItem{},
	))

	owner := entity.User{Email: "owner@test.local", Password: "x", Role: "owner"}
	require.NoError(t, db.Create(&owner).Error)
	shop := entity.Shop{Name: "Sakura", Slug: "sakura01", Type: "restaurant", OwnerID: owner.ID}
	require.NoError(t, db.Create(&shop).Error)

	shopRepo := repository.NewShopRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuCache := cache.NewMenuCache()

	ctl := NewPublicController(services.NewShopService(shopRepo, menuCache), catRepo, menuCache)

	r := gin.New()
	r.GET("/shops/:slug", ctl.GetShop)
	r.GET("/shops/:slug/menu", ctl.GetMenu)

	return &publicEnv{DB: db, Router: r, Cache: menuCache, Shop: shop}
}

func (env *publicEnv) get(t *testing.T, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	env.Router.ServeHTTP(rec, req)

	var body struct {
		OK   bool                       `json:"ok"`
		Data map[string]json.RawMessage `json:"data"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body.Data
}

func TestGetShopBySlug(t *testing.T) {
	env := newPublicEnv(t)

	rec, _ := env.get(t, "/shops/sakura01")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = env.get(t, "/shops/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicMenuOrderedAndIncludesSoldOut(t *testing.T) {
	env := newPublicEnv(t)

	drinks := entity.Category{Name: "Drinks", OrderIndex: 1, ShopID: env.Shop.ID}
	mains := entity.Category{Name: "Mains", OrderIndex: 0, ShopID: env.Shop.ID}
	require.NoError(t, env.DB.Create(&drinks).Error)
	require.NoError(t, env.DB.Create(&mains).Error)

	require.NoError(t, env.DB.Create(&entity.MenuItem{
		Name: "Ramen", IsAvailable: true, OrderIndex: 1, CategoryID: mains.ID,
	}).Error)
	soldOut := entity.MenuItem{Name: "Gyoza", OrderIndex: 0, CategoryID: mains.ID}
	require.NoError(t, env.DB.Create(&soldOut).Error)
	require.NoError(t, env.DB.Model(&soldOut).Update("is_available", false).Error)

	rec, data := env.get(t, "/shops/sakura01/menu")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []entity.Category
	require.NoError(t, json.Unmarshal(data["categories"], &categories))
	require.Len(t, categories, 2)
	require.Equal(t, "Mains", categories[0].Name)
	require.Equal(t, "Drinks", categories[1].Name)

	// Sold-out items ship too; the client grays them out.
	require.Len(t, categories[0].Items, 2)
	require.Equal(t, "Gyoza", categories[0].Items[0].Name)
	require.False(t, categories[0].Items[0].IsAvailable)
}

func TestPublicMenuServedFromCacheUntilInvalidated(t *testing.T) {
	env := newPublicEnv(t)

	cat := entity.Category{Name: "Mains", OrderIndex: 0, ShopID: env.Shop.ID}
	require.NoError(t, env.DB.Create(&cat).Error)

	rec, _ := env.get(t, "/shops/sakura01/menu")
	require.Equal(t, http.StatusOK, rec.Code)

	// Write behind the cache's back: reads stay stale...
	require.NoError(t, env.DB.Model(&cat).Update("name", "Renamed").Error)
	_, data := env.get(t, "/shops/sakura01/menu")
	var categories []entity.Category
	require.NoError(t, json.Unmarshal(data["categories"], &categories))
	require.Equal(t, "Mains", categories[0].Name)

	// ...until the revalidation signal drops the shop's entry.
	env.Cache.Invalidate(env.Shop.ID)
	_, data = env.get(t, "/shops/sakura01/menu")
	require.NoError(t, json.Unmarshal(data["categories"], &categories))
	require.Equal(t, "Renamed", categories[0].Name)
}
