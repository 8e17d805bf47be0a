package document

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timewindow"
	"github.com/hoyle1974/timewindow/storage"
	"github.com/patrickmn/go-cache"
)

const (
	cacheExpiration = 5 * time.Minute
	cacheCleanup    = time.Hour
)

// Loader reads documents from a storage system and keeps decoded documents for a few
// minutes.
type Loader struct {
	store            storage.System
	cache            *cache.Cache
	stats            CacheStats
	defaultThreshold float64
}

// NewLoader uses defaultThreshold for documents that do not set their own.
func NewLoader(store storage.System, defaultThreshold float64) *Loader {
	return &Loader{
		store:            store,
		cache:            cache.New(cacheExpiration, cacheCleanup),
		defaultThreshold: defaultThreshold,
	}
}

func (l *Loader) Stats() *CacheStats {
	return &l.stats
}

// ClearCache drops every cached document and resets the stats.
func (l *Loader) ClearCache() {
	l.cache.Flush()
	l.stats.Reset()
}

// Load returns the decoded document stored under key.
func (l *Loader) Load(ctx context.Context, key string) (Document, error) {
	if cached, ok := l.cache.Get(key); ok {
		l.stats.Hit()
		return cached.(Document), nil
	}
	l.stats.Miss()

	data, err := l.store.Read(ctx, key)
	if err != nil {
		return Document{}, err
	}

	doc, err := Decode(data)
	if err != nil {
		return Document{}, errors.Wrapf(err, "key %q", key)
	}

	l.cache.Set(key, doc, cache.DefaultExpiration)
	return doc, nil
}

// Windows loads a document and merges its windows with timewindow.Array.
func (l *Loader) Windows(ctx context.Context, key string) ([]timewindow.Window, error) {
	doc, err := l.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	windows, err := timewindow.Array(doc.Inputs(), doc.ThresholdOr(l.defaultThreshold))
	if err != nil {
		return nil, errors.Wrapf(err, "key %q", key)
	}
	return windows, nil
}
