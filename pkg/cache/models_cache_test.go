package cache

import (
	"testing"
	"time"
)

// testSetup points the cache at a temp directory and resets global state
func testSetup(t *testing.T) {
	t.Helper()

	SetCacheDir(t.TempDir())

	t.Cleanup(func() {
		SetCacheDir("")
	})
}

func TestLoadCacheEmpty(t *testing.T) {
	testSetup(t)

	cache, err := LoadCache()
	if err != nil {
		t.Fatalf("LoadCache() unexpected error: %v", err)
	}
	if cache == nil {
		t.Fatal("LoadCache() returned nil cache")
	}
	if cache.Version != cacheVersion {
		t.Errorf("Expected version %d, got %d", cacheVersion, cache.Version)
	}
	if cache.Providers == nil {
		t.Error("Providers map should not be nil")
	}
	if !IsEmpty() {
		t.Error("Fresh cache should be empty")
	}
}

func TestPutAndGetModels(t *testing.T) {
	testSetup(t)

	if _, err := LoadCache(); err != nil {
		t.Fatalf("LoadCache() unexpected error: %v", err)
	}

	models := []string{"gpt-4o", "gpt-4o-mini"}
	checksum := ComputeCredentialChecksum("azure_openai", "https://example.openai.azure.com", "key")
	PutModels("azure_openai", models, checksum)

	got, ok := GetModels("azure_openai", checksum)
	if !ok {
		t.Fatal("GetModels() should hit after PutModels()")
	}
	if len(got) != 2 || got[0] != "gpt-4o" || got[1] != "gpt-4o-mini" {
		t.Errorf("GetModels() = %v, want %v", got, models)
	}

	// A different credential checksum must miss
	if _, ok := GetModels("azure_openai", "different"); ok {
		t.Error("GetModels() should miss on checksum mismatch")
	}

	// Unknown provider must miss
	if _, ok := GetModels("openai", checksum); ok {
		t.Error("GetModels() should miss for provider never stored")
	}
}

func TestGetModelsExpiry(t *testing.T) {
	testSetup(t)

	if _, err := LoadCache(); err != nil {
		t.Fatalf("LoadCache() unexpected error: %v", err)
	}

	checksum := ComputeCredentialChecksum("openai", "key")
	PutModels("openai", []string{"gpt-4o"}, checksum)

	// Age the entry past the cutoff
	cacheMu.Lock()
	entry := memoryCache.Providers["openai"]
	entry.FetchedAt = time.Now().Add(-maxEntryAge - time.Minute)
	memoryCache.Providers["openai"] = entry
	cacheMu.Unlock()

	if _, ok := GetModels("openai", checksum); ok {
		t.Error("GetModels() should miss once the entry is older than maxEntryAge")
	}
}

func TestSaveAndReloadCache(t *testing.T) {
	testSetup(t)

	if _, err := LoadCache(); err != nil {
		t.Fatalf("LoadCache() unexpected error: %v", err)
	}

	checksum := ComputeCredentialChecksum("openai", "key")
	PutModels("openai", []string{"gpt-4o", "gpt-4o-mini"}, checksum)

	if err := SaveCache(); err != nil {
		t.Fatalf("SaveCache() unexpected error: %v", err)
	}

	// Force a reload from disk
	InvalidateCache()

	if _, err := LoadCache(); err != nil {
		t.Fatalf("LoadCache() after save unexpected error: %v", err)
	}

	got, ok := GetModels("openai", checksum)
	if !ok {
		t.Fatal("GetModels() should hit after save and reload")
	}
	if len(got) != 2 {
		t.Errorf("GetModels() returned %d models, want 2", len(got))
	}
}

func TestRemoveProvider(t *testing.T) {
	testSetup(t)

	if _, err := LoadCache(); err != nil {
		t.Fatalf("LoadCache() unexpected error: %v", err)
	}

	checksum := ComputeCredentialChecksum("openai", "key")
	PutModels("openai", []string{"gpt-4o"}, checksum)
	RemoveProvider("openai")

	if _, ok := GetModels("openai", checksum); ok {
		t.Error("GetModels() should miss after RemoveProvider()")
	}
}

func TestComputeCredentialChecksum(t *testing.T) {
	a := ComputeCredentialChecksum("azure_openai", "endpoint", "key-one")
	b := ComputeCredentialChecksum("azure_openai", "endpoint", "key-one")
	c := ComputeCredentialChecksum("azure_openai", "endpoint", "key-two")

	if a != b {
		t.Error("Checksum should be deterministic for identical inputs")
	}
	if a == c {
		t.Error("Checksum should differ when a credential field changes")
	}
	if len(a) != 16 {
		t.Errorf("Checksum length = %d, want 16 hex chars", len(a))
	}
}
