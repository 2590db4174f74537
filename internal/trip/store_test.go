package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(0)

	created := store.Create(validPreferences())
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.GeneratedItinerary)
	assert.False(t, created.IsBooked)

	got, ok := store.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	_, ok = store.Get("no-such-id")
	assert.False(t, ok)
}

func TestStoreCreateAssignsUniqueIDs(t *testing.T) {
	store := NewStore(0)
	a := store.Create(validPreferences())
	b := store.Create(validPreferences())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStoreAttachItinerary(t *testing.T) {
	store := NewStore(0)
	created := store.Create(validPreferences())

	it := &GeneratedItinerary{Destination: "Goa", TotalBudget: 2500}
	updated, ok := store.AttachItinerary(created.ID, it)
	require.True(t, ok)
	assert.Equal(t, it, updated.GeneratedItinerary)

	got, _ := store.Get(created.ID)
	assert.Equal(t, it, got.GeneratedItinerary)

	_, ok = store.AttachItinerary("no-such-id", it)
	assert.False(t, ok)
}

func TestStoreMarkBookedIsIdempotent(t *testing.T) {
	store := NewStore(0)
	created := store.Create(validPreferences())

	first, ok := store.MarkBooked(created.ID)
	require.True(t, ok)
	assert.True(t, first.IsBooked)

	second, ok := store.MarkBooked(created.ID)
	require.True(t, ok)
	assert.True(t, second.IsBooked)

	_, ok = store.MarkBooked("no-such-id")
	assert.False(t, ok)
}

func TestStoreListAllNewestFirst(t *testing.T) {
	store := NewStore(0)

	first := store.Create(validPreferences())
	time.Sleep(5 * time.Millisecond)
	second := store.Create(validPreferences())
	time.Sleep(5 * time.Millisecond)
	third := store.Create(validPreferences())

	all := store.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
}

func TestStoreTTLEvictsRecords(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	created := store.Create(validPreferences())

	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(created.ID)
	assert.False(t, ok)
}
