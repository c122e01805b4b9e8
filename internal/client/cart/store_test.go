package cart

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tee = Product{ID: "p1", Name: "Classic Tee", Price: 49900, Image: "/images/classic-tee.jpg"}
var mug = Product{ID: "p2", Name: "Ceramic Mug", Price: 25000, Image: "/images/ceramic-mug.jpg"}

func TestAddCreatesSeparateLines(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	store.Add(tee)
	store.Add(tee)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p1", items[1].ProductID)
	assert.NotEqual(t, items[0].CartItemID, items[1].CartItemID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	store.Add(tee)
	store.Add(mug)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Classic Tee", items[0].Name)
	assert.Equal(t, "Ceramic Mug", items[1].Name)
}

func TestRemove(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	store.Add(tee)
	store.Add(mug)
	items := store.Items()

	store.Remove(items[0].CartItemID)

	remaining := store.Items()
	require.Len(t, remaining, 1)
	assert.Equal(t, "p2", remaining[0].ProductID)

	// Unknown ids are a no-op.
	store.Remove("not-a-line")
	assert.Len(t, store.Items(), 1)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(tee)
	id := store.Items()[0].CartItemID

	store.UpdateQuantity(id, 5)
	assert.Equal(t, 5, store.Items()[0].Quantity)

	store.UpdateQuantity(id, 0)
	assert.Equal(t, 1, store.Items()[0].Quantity)

	store.UpdateQuantity(id, -3)
	assert.Equal(t, 1, store.Items()[0].Quantity)

	// Unknown ids leave the cart untouched.
	store.UpdateQuantity("not-a-line", 9)
	assert.Equal(t, 1, store.Items()[0].Quantity)
}

func TestTotal(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	assert.Equal(t, int64(0), store.Total())

	store.Add(tee)
	store.Add(mug)
	id := store.Items()[0].CartItemID
	store.UpdateQuantity(id, 2)

	assert.Equal(t, int64(2*49900+25000), store.Total())
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(tee)

	store.Clear()
	assert.Empty(t, store.Items())

	store.Clear()
	assert.Empty(t, store.Items())
}

func TestCorruptSnapshotIsEmptyCart(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Write([]byte("{not json")))

	store := NewStore(storage)
	assert.Empty(t, store.Items())
	assert.Equal(t, int64(0), store.Total())

	// The cart recovers on the next write.
	store.Add(tee)
	assert.Len(t, store.Items(), 1)
}

func TestPersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	first := NewStore(NewFileStorage(path))
	first.Add(tee)
	first.Add(mug)

	// A second store over the same file sees the same cart.
	second := NewStore(NewFileStorage(path))
	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
}

func TestMissingFileIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	store := NewStore(NewFileStorage(path))
	assert.Empty(t, store.Items())
}

func TestSubscribeFiresOnEveryMutation(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	var mu sync.Mutex
	fired := 0
	done := make(chan struct{}, 8)
	unsubscribe := store.Subscribe(func() {
		mu.Lock()
		fired++
		mu.Unlock()
		done <- struct{}{}
	})

	store.Add(tee)
	store.UpdateQuantity(store.Items()[0].CartItemID, 2)
	store.Clear()

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("listener was not notified")
		}
	}

	mu.Lock()
	assert.Equal(t, 3, fired)
	mu.Unlock()

	unsubscribe()
	store.Add(mug)

	select {
	case <-done:
		t.Fatal("listener fired after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}
