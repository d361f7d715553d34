package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
)

func TestCreateShopGeneratesSlug(t *testing.T) {
	env := newTestEnv(t)

	shop, err := env.Shops.Create(env.Owner.ID, "Noodle Bar", "")
	require.NoError(t, err)
	require.Len(t, shop.Slug, 10)
	require.Equal(t, "restaurant", shop.Type)

	got, err := env.Shops.GetBySlug(shop.Slug)
	require.NoError(t, err)
	require.Equal(t, shop.ID, got.ID)
}

func TestCreateShopRequiresName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Shops.Create(env.Owner.ID, "", "")
	require.Error(t, err)
}

func TestListShopsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Shops.Create(env.Owner.ID, "First", "")
	require.NoError(t, err)
	_, err = env.Shops.Create(env.Owner.ID, "Second", "")
	require.NoError(t, err)

	shops, err := env.Shops.List(env.Owner.ID)
	require.NoError(t, err)
	// Fixture shop plus the two above.
	require.Len(t, shops, 3)
}

func TestUpdateTheme(t *testing.T) {
	env := newTestEnv(t)

	cfg := json.RawMessage(`{"icon":"Utensils","palette":"jp"}`)
	require.NoError(t, env.Shops.UpdateTheme(env.Owner.ID, env.Shop.ID, cfg))

	got, err := env.Shops.GetBySlug(env.Shop.Slug)
	require.NoError(t, err)
	require.JSONEq(t, string(cfg), string(got.ThemeConfig))
}

func TestUpdateThemeForeignShopRejected(t *testing.T) {
	env := newTestEnv(t)

	err := env.Shops.UpdateTheme(env.Owner.ID+1, env.Shop.ID, json.RawMessage(`{}`))
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetBySlugUnknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Shops.GetBySlug("missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
