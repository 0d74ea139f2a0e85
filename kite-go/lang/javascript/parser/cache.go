package parser

import (
	"sync"
	"time"

	spooky "github.com/dgryski/go-spooky"
	"github.com/kiteco/esparse/kite-golib/collections"
)

const (
	// parseCacheSize specifies the max number of parse results to cache
	parseCacheSize = 1000
	// staleCutoff specifies when cache entries are considered stale
	staleCutoff = 10 * time.Minute
)

var (
	lock       sync.Mutex
	parseCache = collections.NewOrderedMap(parseCacheSize + 1)
)

// cacheKey identifies a parse by its source and every option that changes the result.
type cacheKey struct {
	hash                  uint64
	module                bool
	locations             bool
	comments              bool
	skipPatternValidation bool
	maxDepth              int
}

type parseEntry struct {
	lastAccessTs time.Time
	res          *Result
	err          error
}

// PurgeCache empties the parse cache.
func PurgeCache() {
	lock.Lock()
	defer lock.Unlock()
	parseCache.RangeInc(func(k, v interface{}) bool {
		parseCache.Delete(k)
		return true
	})
}

// --

func newCacheKey(src []byte, opts Options) cacheKey {
	return cacheKey{
		hash:                  spooky.Hash64(src),
		module:                opts.Module,
		locations:             opts.Locations,
		comments:              opts.Comments,
		skipPatternValidation: opts.SkipPatternValidation,
		maxDepth:              opts.MaxDepth,
	}
}

// getCachedParse returns a previous result for src. Cached results are shared
// between callers and must not be modified.
func getCachedParse(src []byte, opts Options) (*parseEntry, bool) {
	key := newCacheKey(src, opts)
	lock.Lock()
	defer lock.Unlock()
	removeStaleCacheEntriesLocked()
	entry, ok := parseCache.Get(key)
	if !ok {
		return nil, false
	}
	// move the entry to the back and update its access time
	e := entry.(*parseEntry)
	cacheParseLocked(key, e.res, e.err)
	return e, true
}

func cacheParse(src []byte, opts Options, res *Result, err error) {
	key := newCacheKey(src, opts)
	lock.Lock()
	defer lock.Unlock()
	cacheParseLocked(key, res, err)
	removeStaleCacheEntriesLocked()
}

func cacheParseLocked(key cacheKey, res *Result, err error) {
	entry, ok := parseCache.Delete(key)
	if entry == nil || !ok {
		entry = &parseEntry{}
	}

	*(entry.(*parseEntry)) = parseEntry{
		lastAccessTs: time.Now(),
		res:          res,
		err:          err,
	}
	parseCache.Set(key, entry)
}

// removeStaleCacheEntriesLocked evicts entries, least recently used first,
// while the cache is over capacity or they are older than the cutoff.
func removeStaleCacheEntriesLocked() {
	parseCache.RangeInc(func(k, v interface{}) bool {
		if parseCache.Len() > parseCacheSize || time.Since(v.(*parseEntry).lastAccessTs) > staleCutoff {
			parseCache.Delete(k)
			return true
		}
		return false
	})
}

func cacheLen() int {
	lock.Lock()
	defer lock.Unlock()
	return parseCache.Len()
}
