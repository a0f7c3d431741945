package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tanishpoddar/GreenVision/internal/properties"
)

type testStats struct {
	Mean  *float64 `json:"mean"`
	Count int      `json:"count"`
}

func setupCacheDir(t *testing.T) {
	t.Helper()
	os.Setenv("ROOT_PATH", t.TempDir())
	t.Cleanup(func() { os.Unsetenv("ROOT_PATH") })
	if err := properties.Load(); err != nil {
		t.Fatalf("failed to load properties: %v", err)
	}
}

func TestFileCacheSetAndGet(t *testing.T) {
	setupCacheDir(t)
	fc := NewFileCache[testStats]("analysis")

	mean := 0.364
	want := testStats{Mean: &mean, Count: 4}
	key := fc.GenerateKey("ndvi_2020.tif", "abc123")

	if err := fc.Set(key, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := fc.Get(key)
	if !ok {
		t.Fatal("expected cache hit after Set")
	}
	if got.Count != want.Count {
		t.Errorf("count = %d, want %d", got.Count, want.Count)
	}
	if got.Mean == nil || *got.Mean != mean {
		t.Errorf("mean = %v, want %v", got.Mean, mean)
	}
}

func TestFileCacheMiss(t *testing.T) {
	setupCacheDir(t)
	fc := NewFileCache[testStats]("analysis")

	if _, ok := fc.Get(fc.GenerateKey("never-set")); ok {
		t.Error("expected cache miss for unknown key")
	}
}

func TestFileCacheRejectsTamperedEntry(t *testing.T) {
	setupCacheDir(t)
	fc := NewFileCache[testStats]("analysis")

	key := fc.GenerateKey("ndvi_2021.tif")
	if err := fc.Set(key, testStats{Count: 1}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	cacheFile := filepath.Join(properties.DataPath(), "analysis", key+".json")
	raw, err := os.ReadFile(cacheFile)
	if err != nil {
		t.Fatalf("failed to read cache file: %v", err)
	}

	var entry CacheEntry[testStats]
	if err := json.Unmarshal(raw, &entry); err != nil {
		t.Fatalf("failed to unmarshal cache entry: %v", err)
	}
	entry.Data.Count = 99
	tampered, _ := json.Marshal(entry)
	if err := os.WriteFile(cacheFile, tampered, 0644); err != nil {
		t.Fatalf("failed to rewrite cache file: %v", err)
	}

	if _, ok := fc.Get(key); ok {
		t.Error("expected checksum mismatch to read as a miss")
	}
}

func TestGenerateKeyIsStable(t *testing.T) {
	setupCacheDir(t)
	fc := NewFileCache[testStats]("analysis")

	a := fc.GenerateKey("path.tif", 42)
	b := fc.GenerateKey("path.tif", 42)
	c := fc.GenerateKey("path.tif", 43)

	if a != b {
		t.Error("expected identical params to produce the same key")
	}
	if a == c {
		t.Error("expected different params to produce different keys")
	}
}

func TestFileContentKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.tif")
	if err := os.WriteFile(path, []byte("band data"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	first, err := FileContentKey(path)
	if err != nil {
		t.Fatalf("FileContentKey failed: %v", err)
	}

	second, err := FileContentKey(path)
	if err != nil {
		t.Fatalf("FileContentKey failed: %v", err)
	}
	if first != second {
		t.Error("expected stable key for unchanged content")
	}

	if err := os.WriteFile(path, []byte("other data"), 0644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}
	changed, err := FileContentKey(path)
	if err != nil {
		t.Fatalf("FileContentKey failed: %v", err)
	}
	if changed == first {
		t.Error("expected key to change with content")
	}

	if _, err := FileContentKey(filepath.Join(dir, "missing.tif")); err == nil {
		t.Error("expected error for missing file")
	}
}
