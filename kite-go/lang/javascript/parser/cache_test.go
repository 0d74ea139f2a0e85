package parser

import (
	"fmt"
	"testing"
	"time"

	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseCache(t *testing.T) {
	// make sure cache is empty on start
	PurgeCache()
	assert.Equal(t, 0, cacheLen(), "parse cache should be empty on start")

	opts := Options{UseCache: true}

	// get on an empty parse cache should not return anything
	p, ok := getCachedParse([]byte("var x;"), opts)
	assert.False(t, ok, "contents should not exist")
	assert.Nil(t, p, "contents should not exist")

	// add ten entries
	for i := 0; i < 10; i++ {
		_, err := Parse(kitectx.Background(), []byte(fmt.Sprintf("var x%d;", i)), opts)
		require.NoError(t, err)
	}
	assert.Equal(t, 10, cacheLen(), "parse cache should have ten entries")

	// adding the same entries should not result in more items in the cache
	for i := 0; i < 10; i++ {
		_, err := Parse(kitectx.Background(), []byte(fmt.Sprintf("var x%d;", i)), opts)
		require.NoError(t, err)
	}
	assert.Equal(t, 10, cacheLen(), "parse cache should have ten entries")

	// the same source under another goal is a separate entry
	_, err := Parse(kitectx.Background(), []byte("var x0;"), Options{UseCache: true, Module: true})
	require.NoError(t, err)
	assert.Equal(t, 11, cacheLen(), "parse cache should have eleven entries")

	// purging the cache should result in an empty cache
	PurgeCache()
	assert.Equal(t, 0, cacheLen(), "parse cache should be empty after purge")
}

func Test_ParseCacheSharesResults(t *testing.T) {
	PurgeCache()
	defer PurgeCache()

	opts := Options{UseCache: true}
	first, err := Parse(kitectx.Background(), []byte("a + b;"), opts)
	require.NoError(t, err)
	second, err := Parse(kitectx.Background(), []byte("a + b;"), opts)
	require.NoError(t, err)
	assert.True(t, first == second, "cached parse should return the same result")

	// failures are cached too
	_, err1 := Parse(kitectx.Background(), []byte("a +;"), opts)
	_, err2 := Parse(kitectx.Background(), []byte("a +;"), opts)
	require.Error(t, err1)
	assert.Equal(t, err1, err2)

	// parses that skip the cache never see its entries
	third, err := Parse(kitectx.Background(), []byte("a + b;"), Options{})
	require.NoError(t, err)
	assert.False(t, first == third)
}

func Test_StaleCacheEntries(t *testing.T) {
	// make sure cache is empty on start
	PurgeCache()
	assert.Equal(t, 0, cacheLen(), "parse cache should be empty on start")

	opts := Options{UseCache: true}
	contents := []byte("var a;")
	key := newCacheKey(contents, opts)
	lock.Lock()
	parseCache.Set(key, &parseEntry{
		lastAccessTs: time.Now().Add(-20 * time.Minute),
	})
	lock.Unlock()
	assert.Equal(t, 1, cacheLen(), "parse cache should have one entry")

	// getting entry that does not exist should cause stale entries to be removed
	getCachedParse([]byte("not exist"), opts)
	assert.Equal(t, 0, cacheLen(), "parse cache should be empty")

	// getting entry that exists should cause stale entries to be removed
	oldContents := []byte("var old;")
	oldKey := newCacheKey(oldContents, opts)
	lock.Lock()
	parseCache.Set(oldKey, &parseEntry{
		lastAccessTs: time.Now().Add(-20 * time.Minute),
	})
	parseCache.Set(key, &parseEntry{
		lastAccessTs: time.Now(),
	})
	lock.Unlock()
	assert.Equal(t, 2, cacheLen(), "parse cache should have two entries")
	_, ok := getCachedParse(contents, opts)
	assert.True(t, ok)
	assert.Equal(t, 1, cacheLen(), "parse cache should have one entry")

	// parsing should cause stale entries to be removed
	PurgeCache()
	lock.Lock()
	parseCache.Set(oldKey, &parseEntry{
		lastAccessTs: time.Now().Add(-20 * time.Minute),
	})
	lock.Unlock()
	assert.Equal(t, 1, cacheLen(), "parse cache should have one entry")
	// parse should add a new entry and remove the stale entry
	_, err := Parse(kitectx.Background(), contents, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, cacheLen(), "parse cache should have one entry")
	PurgeCache()
}

func Test_LimitCacheEntries(t *testing.T) {
	// make sure cache is empty on start
	PurgeCache()
	assert.Equal(t, 0, cacheLen(), "parse cache should be empty on start")

	now := time.Now()
	for i := 0; i < parseCacheSize+5; i++ {
		key := newCacheKey([]byte(fmt.Sprintf("var x%d;", i)), Options{})
		lock.Lock()
		parseCache.Set(key, &parseEntry{
			lastAccessTs: now,
		})
		lock.Unlock()
	}
	assert.Equal(t, parseCacheSize+5, cacheLen(), "parse cache should have too many entries")

	lock.Lock()
	removeStaleCacheEntriesLocked()
	lock.Unlock()
	assert.Equal(t, parseCacheSize, cacheLen(), "parse cache should be at capacity")

	// the oldest entries are the ones evicted
	lock.Lock()
	_, ok := parseCache.Get(newCacheKey([]byte("var x0;"), Options{}))
	_, okNewest := parseCache.Get(newCacheKey([]byte(fmt.Sprintf("var x%d;", parseCacheSize+4)), Options{}))
	lock.Unlock()
	assert.False(t, ok)
	assert.True(t, okNewest)
	PurgeCache()
}
