package events

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farhatamiine/restaurent-menu/entity"
)

type recordingSink struct {
	got []Event
}

func (s *recordingSink) Publish(ev Event) {
	s.got = append(s.got, ev)
}

func TestBusFansOutToAllSinks(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	bus := NewBus(a)
	bus.Add(b)

	item := &entity.MenuItem{Model: gorm.Model{ID: 5}, Name: "Pad Thai"}
	bus.Publish(ItemUpdated(item))

	require.Len(t, a.got, 1)
	require.Len(t, b.got, 1)
	require.Equal(t, a.got, b.got)
}

func TestEnvelopeConstructors(t *testing.T) {
	item := &entity.MenuItem{Model: gorm.Model{ID: 5}}

	created := ItemCreated(item)
	require.Equal(t, KindCreated, created.Kind)
	require.Equal(t, TableMenuItems, created.Table)
	require.Equal(t, uint(5), created.ID)
	require.Same(t, item, created.After)

	deleted := ItemDeleted(5)
	require.Equal(t, KindDeleted, deleted.Kind)
	require.Nil(t, deleted.After)
}
