package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/misectl/misectl/src/internal/mise"
	"github.com/misectl/misectl/src/internal/ui"
)

// DefaultCacheTTL is how long a cached registry listing stays fresh
const DefaultCacheTTL = 24 * time.Hour

// errCacheExpired marks a readable cache that is older than the TTL
var errCacheExpired = errors.New("registry cache expired")

// CachedSource wraps a Source and keeps the last listing in a JSON file.
// Caching is best-effort: cache read and write failures never fail a call.
type CachedSource struct {
	source Source
	path   string
	ttl    time.Duration
	now    func() time.Time
}

// cacheEntry stores a listing along with its cache timestamp
type cacheEntry struct {
	CachedAt time.Time            `json:"cached_at"`
	Entries  []mise.RegistryEntry `json:"entries"`
}

// NewCachedSource caches source in the file at path. A non-positive ttl
// uses DefaultCacheTTL.
func NewCachedSource(source Source, path string, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		source: source,
		path:   path,
		ttl:    ttl,
		now:    time.Now,
	}
}

// ListRegistry returns the cached listing while fresh, otherwise fetches it.
// When the fetch fails an expired cache is served instead of the error.
func (s *CachedSource) ListRegistry(ctx context.Context) ([]mise.RegistryEntry, error) {
	entry, err := s.load()
	if err == nil {
		ui.Debug("Using cached registry from %s", entry.CachedAt.Format(time.RFC3339))
		return entry.Entries, nil
	}

	entries, fetchErr := s.source.ListRegistry(ctx)
	if fetchErr != nil {
		if errors.Is(err, errCacheExpired) {
			ui.Debug("Registry fetch failed: %v, using expired cache", fetchErr)
			return entry.Entries, nil
		}
		return nil, fetchErr
	}

	s.save(entries)
	return entries, nil
}

// ForceRefresh discards the cache and fetches a fresh listing
func (s *CachedSource) ForceRefresh(ctx context.Context) ([]mise.RegistryEntry, error) {
	_ = os.Remove(s.path)

	entries, err := s.source.ListRegistry(ctx)
	if err != nil {
		return nil, err
	}

	s.save(entries)
	return entries, nil
}

// ClearCache removes the cache file; a missing file is not an error
func (s *CachedSource) ClearCache() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove registry cache: %w", err)
	}
	return nil
}

// Path returns the cache file location
func (s *CachedSource) Path() string {
	return s.path
}

// load returns the cached entry. An expired entry is returned together
// with errCacheExpired.
func (s *CachedSource) load() (*cacheEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}

	if s.now().Sub(entry.CachedAt) > s.ttl {
		return &entry, errCacheExpired
	}

	return &entry, nil
}

func (s *CachedSource) save(entries []mise.RegistryEntry) {
	if err := s.write(entries); err != nil {
		ui.Debug("Failed to write registry cache: %v", err)
	}
}

func (s *CachedSource) write(entries []mise.RegistryEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(cacheEntry{CachedAt: s.now(), Entries: entries})
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}
