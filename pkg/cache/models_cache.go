package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/farescout/farescout/pkg/config"
)

const (
	cacheFileName = "models_cache.json"
	cacheVersion  = 1

	// Model listings go stale when deployments change; refetch daily.
	maxEntryAge = 24 * time.Hour
)

// ModelsEntry holds the cached model listing for one provider
type ModelsEntry struct {
	Models    []string  `json:"models"`
	Checksum  string    `json:"checksum"` // credential checksum at fetch time
	FetchedAt time.Time `json:"fetchedAt"`
}

// PersistentModelsCache is the structure stored in the cache file
type PersistentModelsCache struct {
	Version     int                    `json:"version"`
	LastUpdated time.Time              `json:"lastUpdated"`
	Providers   map[string]ModelsEntry `json:"providers"` // provider id -> entry
}

// Global in-memory copy for fast access
var (
	memoryCache    *PersistentModelsCache
	cacheMu        sync.RWMutex
	cacheLoaded    bool
	customCacheDir string
)

// SetCacheDir sets a custom directory for the cache file (used for testing)
func SetCacheDir(dir string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	customCacheDir = dir
	memoryCache = nil
	cacheLoaded = false
}

// getCachePath returns the path to the cache file using OS config directory
func getCachePath() (string, error) {
	if customCacheDir != "" {
		return filepath.Join(customCacheDir, cacheFileName), nil
	}
	configDir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, cacheFileName), nil
}

func emptyCache() *PersistentModelsCache {
	return &PersistentModelsCache{
		Version:     cacheVersion,
		LastUpdated: time.Now(),
		Providers:   make(map[string]ModelsEntry),
	}
}

// LoadCache loads the cache from disk into memory
// Returns an empty cache if file doesn't exist
func LoadCache() (*PersistentModelsCache, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	// If already loaded, return memory copy
	if cacheLoaded && memoryCache != nil {
		return memoryCache, nil
	}

	cachePath, err := getCachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cachePath)
	if os.IsNotExist(err) {
		memoryCache = emptyCache()
		cacheLoaded = true
		return memoryCache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var cache PersistentModelsCache
	if err := json.Unmarshal(data, &cache); err != nil || cache.Version != cacheVersion {
		// Corrupt or outdated cache - return empty
		memoryCache = emptyCache()
		cacheLoaded = true
		return memoryCache, nil
	}

	if cache.Providers == nil {
		cache.Providers = make(map[string]ModelsEntry)
	}

	memoryCache = &cache
	cacheLoaded = true
	return memoryCache, nil
}

// SaveCache saves the current cache to disk
func SaveCache() error {
	cacheMu.RLock()
	if memoryCache == nil {
		cacheMu.RUnlock()
		return nil
	}

	memoryCache.LastUpdated = time.Now()
	data, err := json.MarshalIndent(memoryCache, "", "  ")
	cacheMu.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	cachePath, err := getCachePath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// GetModels returns the cached model listing for a provider if it is still
// valid: same credential checksum and younger than maxEntryAge.
func GetModels(providerID, checksum string) ([]string, bool) {
	cacheMu.RLock()
	defer cacheMu.RUnlock()

	if memoryCache == nil {
		return nil, false
	}

	entry, ok := memoryCache.Providers[providerID]
	if !ok {
		return nil, false
	}
	if entry.Checksum != checksum {
		return nil, false
	}
	if time.Since(entry.FetchedAt) > maxEntryAge {
		return nil, false
	}

	result := make([]string, len(entry.Models))
	copy(result, entry.Models)
	return result, true
}

// PutModels stores a freshly fetched model listing for a provider
func PutModels(providerID string, models []string, checksum string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if memoryCache == nil {
		memoryCache = emptyCache()
	}

	stored := make([]string, len(models))
	copy(stored, models)
	memoryCache.Providers[providerID] = ModelsEntry{
		Models:    stored,
		Checksum:  checksum,
		FetchedAt: time.Now(),
	}
}

// RemoveProvider drops the cached listing for a provider
func RemoveProvider(providerID string) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if memoryCache == nil {
		return
	}
	delete(memoryCache.Providers, providerID)
}

// ComputeCredentialChecksum computes a checksum over a credential set.
// Used to detect when stored credentials changed and the listing must be
// refetched.
func ComputeCredentialChecksum(parts ...string) string {
	data := ""
	for _, p := range parts {
		data += p + "|"
	}
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:8]) // Short hash
}

// IsEmpty returns true if cache has no entries
func IsEmpty() bool {
	cacheMu.RLock()
	defer cacheMu.RUnlock()
	return memoryCache == nil || len(memoryCache.Providers) == 0
}

// InvalidateCache clears the in-memory cache, forcing next LoadCache to read from disk
func InvalidateCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	memoryCache = nil
	cacheLoaded = false
}
