package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreSetGet(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("k", "v", time.Minute)
	got, ok := store.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestMemoryStoreExpiration(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("k", "v", time.Minute)
	store.Delete("k")

	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	store.Set("k", "first", time.Minute)
	store.Set("k", "second", time.Minute)

	got, _ := store.Get("k")
	assert.Equal(t, "second", got)
}
