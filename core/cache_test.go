package core

import (
	"fmt"
	"testing"
	"time"
)

func TestInMemoryCacheGetSetShouldStoreAndRetrieve(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	session := &Session{
		ID:        "session123",
		UserID:    "user456",
		TokenHash: "hash789",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := cache.Set("hash789", session); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	retrieved, err := cache.Get("hash789")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if retrieved.ID != session.ID {
		t.Errorf("Expected ID %s, got %s", session.ID, retrieved.ID)
	}
	if retrieved.UserID != session.UserID {
		t.Errorf("Expected UserID %s, got %s", session.UserID, retrieved.UserID)
	}
}

func TestInMemoryCacheGetNonExistentShouldReturnErrCacheNotFound(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	_, err := cache.Get("nonexistent")
	if err != ErrCacheNotFound {
		t.Errorf("Expected ErrCacheNotFound, got %v", err)
	}
}

func TestInMemoryCacheExpiryShouldExpireEntriesAfterTTL(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     100 * time.Millisecond,
		MaxSize: 500,
	})

	session := &Session{
		ID:        "session123",
		TokenHash: "hash789",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	cache.Set("hash789", session)

	if _, err := cache.Get("hash789"); err != nil {
		t.Error("Session should exist immediately after Set")
	}

	time.Sleep(150 * time.Millisecond)

	if _, err := cache.Get("hash789"); err != ErrCacheNotFound {
		t.Error("Session should be expired and removed from cache")
	}
	if cache.Len() != 0 {
		t.Errorf("Cache should be empty after expired entry removed, got size %d", cache.Len())
	}
}

func TestInMemoryCacheDeleteShouldRemoveEntry(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	cache.Set("hash789", &Session{ID: "session123", TokenHash: "hash789"})

	if err := cache.Delete("hash789"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := cache.Get("hash789"); err != ErrCacheNotFound {
		t.Errorf("Expected ErrCacheNotFound after Delete, got %v", err)
	}
}

func TestInMemoryCacheEvictionShouldCapSize(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 10,
	})

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("hash%d", i)
		cache.Set(key, &Session{ID: key})
	}

	if cache.Len() > 10 {
		t.Errorf("Cache should be capped at 10 entries, got %d", cache.Len())
	}
	if cache.Stats().Evictions == 0 {
		t.Error("Evictions counter should be non-zero after overflow")
	}
}

func TestInMemoryCacheStatsShouldCountHitsAndMisses(t *testing.T) {
	cache := NewInMemoryCache(CacheConfig{
		TTL:     5 * time.Minute,
		MaxSize: 500,
	})

	cache.Set("hash1", &Session{ID: "s1"})
	cache.Get("hash1")
	cache.Get("hash1")
	cache.Get("missing")

	stats := cache.Stats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Expected 1 set, got %d", stats.Sets)
	}
}
